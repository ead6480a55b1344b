package cmd

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/cli"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with their colors, budgets, and spend",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	view := s.state.View()
	spent := make(map[string]string, len(view.Categories))
	for _, c := range view.Categories {
		spent[c.Category] = cli.FormatAmount(c.Amount)
	}

	rows := make([][]string, 0, len(s.state.Categories()))
	for _, c := range s.state.Categories() {
		swatch := lipgloss.NewStyle().Foreground(cli.ColorFor(c.Color)).Render("●")
		budget := "-"
		for _, b := range s.state.Budgets() {
			if b.Category == c.Name {
				budget = fmt.Sprintf("%s %s", cli.FormatAmount(b.Limit), b.Period)
				break
			}
		}
		amount, ok := spent[c.Name]
		if !ok {
			amount = cli.FormatAmount(decimal.Zero)
		}
		rows = append(rows, []string{swatch + " " + c.Name, c.Color, budget, amount})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CATEGORIES" + describeFilter(view.Filter)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:     []string{"Category", "Color", "Budget", "Spent"},
		Rows:        rows,
		LeftAligned: []int{1},
	}))
	return nil
}
