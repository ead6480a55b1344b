package cmd

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Total, average, and highest expense with a category breakdown",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	view := s.state.View()

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSES" + describeFilter(view.Filter)))
	fmt.Println()

	if view.Summary.Count == 0 {
		fmt.Println("  No expenses found.")
		fmt.Println("  Record one with `tally add DESCRIPTION AMOUNT`.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Expenses", cli.FormatCount(view.Summary.Count)},
			{"Total", cli.FormatAmount(view.Summary.Total)},
			{"Average", cli.FormatAmount(view.Summary.Average)},
			{"Highest", cli.FormatAmount(view.Summary.Max)},
		},
	}))
	fmt.Println()

	rows := make([][]string, 0, len(view.Categories))
	for _, c := range view.Categories {
		rows = append(rows, []string{
			c.Category,
			cli.FormatAmount(c.Amount),
			cli.FormatPercent(c.Percent),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Amount", "Share"},
		Rows:    rows,
	}))

	return nil
}
