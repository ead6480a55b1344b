package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAddCategory string
	flagAddNotes    string
	flagAddTags     []string
	flagAddDate     string
)

var addCmd = &cobra.Command{
	Use:   "add DESCRIPTION AMOUNT",
	Short: "Record an expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	// Shadows the persistent --category filter.
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category (default: first configured category)")
	addCmd.Flags().StringVar(&flagAddNotes, "notes", "", "Free-text notes")
	addCmd.Flags().StringSliceVarP(&flagAddTags, "tag", "t", nil, "Tag, repeatable")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Expense date YYYY-MM-DD (default: now)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	amount, err := model.ParseAmount(args[1])
	if err != nil {
		return fmt.Errorf("amount %q: %w", args[1], err)
	}

	category, err := resolveCategory(s.state.Categories(), flagAddCategory)
	if err != nil {
		return err
	}

	var at time.Time
	if flagAddDate != "" {
		d, err := model.ParseDay(flagAddDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", flagAddDate)
		}
		at = d
	}

	e, err := model.NewExpense(model.ExpenseInput{
		Description: args[0],
		Amount:      amount,
		Category:    category,
		Date:        at,
		Notes:       flagAddNotes,
		Tags:        flagAddTags,
	})
	if err != nil {
		return err
	}

	if !s.state.AddExpense(e) {
		return fmt.Errorf("expense rejected")
	}
	if err := s.saved(); err != nil {
		return err
	}

	infof("  Added %s  %s  %s  (%s)\n", cli.ShortID(e.ID), e.Description, cli.FormatAmount(e.Amount), e.Category)
	return nil
}

// resolveCategory matches name case-insensitively against the registry.
// Empty selects the first category.
func resolveCategory(categories []model.Category, name string) (string, error) {
	if len(categories) == 0 {
		return name, nil
	}
	if name == "" {
		return categories[0].Name, nil
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c.Name, nil
		}
		names = append(names, c.Name)
	}
	return "", fmt.Errorf("unknown category %q (have: %s)", name, strings.Join(names, ", "))
}
