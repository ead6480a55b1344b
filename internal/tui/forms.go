package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/tally/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

// formKind identifies which modal form is open.
type formKind int

const (
	formNone formKind = iota
	formExpense
	formBudget
	formFilter
)

const formWidth = 64

var errDateFormat = errors.New("use YYYY-MM-DD")

func validDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := model.ParseDay(s); err != nil {
		return errDateFormat
	}
	return nil
}

func categoryOptions(categories []model.Category) []huh.Option[string] {
	opts := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		opts[i] = huh.NewOption(c.Name, c.Name)
	}
	return opts
}

// ─── Add expense ────────────────────────────────────────────────

type expenseFormValues struct {
	Description string
	Amount      string
	Category    string
	Date        string
	Notes       string
	Tags        string
}

func newExpenseForm(v *expenseFormValues, categories []model.Category) *huh.Form {
	*v = expenseFormValues{}
	if len(categories) > 0 {
		v.Category = categories[0].Name
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Value(&v.Description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return model.ErrEmptyDescription
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&v.Amount).
				Validate(func(s string) error {
					_, err := model.ParseAmount(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions(categories)...).
				Value(&v.Category),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, blank for now").
				Value(&v.Date).
				Validate(validDate),
			huh.NewInput().
				Title("Notes").
				Value(&v.Notes),
			huh.NewInput().
				Title("Tags").
				Description("comma separated").
				Value(&v.Tags),
		).Title("New expense"),
	).WithShowHelp(true).WithWidth(formWidth)
}

// expense builds the expense from submitted values.
func (v expenseFormValues) expense() (model.Expense, error) {
	amount, err := model.ParseAmount(v.Amount)
	if err != nil {
		return model.Expense{}, err
	}

	var at time.Time
	if d := strings.TrimSpace(v.Date); d != "" {
		at, err = model.ParseDay(d)
		if err != nil {
			return model.Expense{}, errDateFormat
		}
	}

	return model.NewExpense(model.ExpenseInput{
		Description: v.Description,
		Amount:      amount,
		Category:    v.Category,
		Date:        at,
		Notes:       v.Notes,
		Tags:        strings.Split(v.Tags, ","),
	})
}

// ─── Add budget ─────────────────────────────────────────────────

type budgetFormValues struct {
	Category string
	Limit    string
	Period   string
}

// newBudgetForm offers only categories that have no budget yet.
func newBudgetForm(v *budgetFormValues, categories []model.Category) *huh.Form {
	*v = budgetFormValues{Period: string(model.Monthly)}
	if len(categories) > 0 {
		v.Category = categories[0].Name
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions(categories)...).
				Value(&v.Category),
			huh.NewInput().
				Title("Limit").
				Placeholder("0.00").
				Value(&v.Limit).
				Validate(func(s string) error {
					d, err := model.ParseAmount(s)
					if err != nil {
						return err
					}
					if !d.IsPositive() {
						return fmt.Errorf("limit must be greater than zero")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Period").
				Options(
					huh.NewOption("Monthly", string(model.Monthly)),
					huh.NewOption("Yearly", string(model.Yearly)),
				).
				Value(&v.Period),
		).Title("New budget"),
	).WithShowHelp(true).WithWidth(formWidth)
}

func (v budgetFormValues) limit() decimal.Decimal {
	d, _ := model.ParseAmount(v.Limit)
	return d
}

// ─── Filter and sort ────────────────────────────────────────────

type filterFormValues struct {
	Category string
	From     string
	To       string
	Sort     string
	Order    string
}

func newFilterForm(v *filterFormValues, categories []model.Category, f model.Filter, s model.SortConfig) *huh.Form {
	*v = filterFormValues{
		Category: f.Category,
		From:     f.Start,
		To:       f.End,
		Sort:     string(s.Field),
		Order:    string(s.Order),
	}

	catOpts := append([]huh.Option[string]{huh.NewOption("All categories", "")}, categoryOptions(categories)...)
	sortOpts := make([]huh.Option[string], len(model.SortFields))
	for i, field := range model.SortFields {
		sortOpts[i] = huh.NewOption(strings.ToUpper(string(field[:1]))+string(field[1:]), string(field))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(catOpts...).
				Value(&v.Category),
			huh.NewInput().
				Title("From").
				Description("YYYY-MM-DD, blank for no lower bound").
				Value(&v.From).
				Validate(validDate),
			huh.NewInput().
				Title("To").
				Description("YYYY-MM-DD, blank for no upper bound").
				Value(&v.To).
				Validate(validDate),
			huh.NewSelect[string]().
				Title("Sort by").
				Options(sortOpts...).
				Value(&v.Sort),
			huh.NewSelect[string]().
				Title("Order").
				Options(
					huh.NewOption("Descending", string(model.Descending)),
					huh.NewOption("Ascending", string(model.Ascending)),
				).
				Value(&v.Order),
		).Title("Filter and sort"),
	).WithShowHelp(true).WithWidth(formWidth)
}

func (v filterFormValues) filter() model.Filter {
	return model.Filter{
		Category: v.Category,
		Start:    strings.TrimSpace(v.From),
		End:      strings.TrimSpace(v.To),
	}
}

func (v filterFormValues) sort() model.SortConfig {
	return model.SortConfig{Field: model.SortField(v.Sort), Order: model.SortOrder(v.Order)}
}
