package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/model"

	"github.com/spf13/cobra"
)

var flagBudgetPeriod string

var budgetsCmd = &cobra.Command{
	Use:     "budgets",
	Aliases: []string{"budget"},
	Short:   "Spending against each budget for the current period",
	RunE:    runBudgets,
}

var budgetsAddCmd = &cobra.Command{
	Use:   "add CATEGORY LIMIT",
	Short: "Add a budget for a category without one",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetsAdd,
}

var budgetsRemoveCmd = &cobra.Command{
	Use:     "remove CATEGORY",
	Aliases: []string{"rm"},
	Short:   "Remove the budget for a category",
	Args:    cobra.ExactArgs(1),
	RunE:    runBudgetsRemove,
}

func init() {
	budgetsAddCmd.Flags().StringVar(&flagBudgetPeriod, "period", string(model.Monthly), "Budget period: monthly or yearly")
	budgetsCmd.AddCommand(budgetsAddCmd, budgetsRemoveCmd)
	rootCmd.AddCommand(budgetsCmd)
}

const budgetBarWidth = 20

func runBudgets(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	view := s.state.View()

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGETS"))
	fmt.Println()

	if len(view.Budgets) == 0 {
		fmt.Println("  No budgets.")
		fmt.Println("  Add one with `tally budgets add CATEGORY LIMIT`.")
		return nil
	}

	rows := make([][]string, 0, len(view.Budgets))
	for _, u := range view.Budgets {
		remaining := cli.FormatAmount(u.Remaining)
		used := cli.FormatPercent(u.Percent)
		if u.Over() {
			remaining = cli.RenderOver(remaining)
			used = cli.RenderOver(used)
		}
		rows = append(rows, []string{
			u.Budget.Category,
			string(u.Budget.Period),
			cli.FormatAmount(u.Budget.Limit),
			cli.FormatAmount(u.Spent),
			remaining,
			cli.RenderBudgetBar(u.Percent, budgetBarWidth, u.Budget.Color, u.Over()),
			used,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:     []string{"Category", "Period", "Limit", "Spent", "Remaining", "", "Used"},
		Rows:        rows,
		LeftAligned: []int{0, 1, 5},
	}))

	if rest := s.state.Registry().UnbudgetedCategories(); len(rest) > 0 {
		names := make([]string, len(rest))
		for i, c := range rest {
			names[i] = c.Name
		}
		fmt.Println()
		fmt.Println(cli.RenderMuted("  Without a budget: " + strings.Join(names, ", ")))
	}
	return nil
}

func runBudgetsAdd(cmd *cobra.Command, args []string) error {
	period, ok := model.ParsePeriod(flagBudgetPeriod)
	if !ok {
		return fmt.Errorf("invalid --period %q, want monthly or yearly", flagBudgetPeriod)
	}
	limit, err := model.ParseAmount(args[1])
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", args[1], err)
	}
	if !limit.IsPositive() {
		return errors.New("limit must be greater than zero")
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	category, err := resolveCategory(s.state.Categories(), args[0])
	if err != nil {
		return err
	}
	if !s.state.AddBudget(category, limit, period) {
		return fmt.Errorf("%s already has a budget; remove it first", category)
	}
	if err := s.saved(); err != nil {
		return err
	}

	infof("  Added %s budget for %s: %s\n", period, category, cli.FormatAmount(limit))
	return nil
}

func runBudgetsRemove(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	category, err := resolveCategory(s.state.Categories(), args[0])
	if err != nil {
		// budgets for categories no longer configured can still be removed
		category = args[0]
	}
	if !s.state.RemoveBudget(category) {
		return fmt.Errorf("no budget for %s", category)
	}
	if err := s.saved(); err != nil {
		return err
	}

	infof("  Removed budget for %s\n", category)
	return nil
}
