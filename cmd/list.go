package cmd

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/cli"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List expenses, filtered and sorted",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	view := s.state.View()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  by %s %s%s", view.Sort.Field, view.Sort.Order, describeFilter(view.Filter))))
	fmt.Println()

	if len(view.Expenses) == 0 {
		fmt.Println("  No expenses match.")
		return nil
	}

	rows := make([][]string, 0, len(view.Expenses)+2)
	for _, e := range view.Expenses {
		rows = append(rows, []string{
			cli.ShortID(e.ID),
			cli.FormatDate(e.Date, s.state.Location()),
			cli.Truncate(e.Description, 32),
			e.Category,
			cli.FormatTags(e.Tags),
			cli.FormatAmount(e.Amount),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"", "", fmt.Sprintf("%s expenses", cli.FormatCount(view.Summary.Count)), "", "",
		cli.FormatAmount(view.Summary.Total),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:     []string{"ID", "Date", "Description", "Category", "Tags", "Amount"},
		Rows:        rows,
		LeftAligned: []int{1, 2, 3, 4},
	}))

	return nil
}
