package cmd

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/model"

	"github.com/spf13/cobra"
)

var flagChartView string

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Spending bars by category or by month",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVar(&flagChartView, "view", string(model.ChartByCategory), "Breakdown: category or timeline")
	rootCmd.AddCommand(chartCmd)
}

const chartBarWidth = 30

func runChart(cmd *cobra.Command, _ []string) error {
	v, ok := model.ParseChartView(flagChartView)
	if !ok {
		return fmt.Errorf("invalid --view %q, want category or timeline", flagChartView)
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	s.state.SetChartView(v)
	view := s.state.View()

	title := "BY CATEGORY"
	if view.ChartView == model.ChartTimeline {
		title = "BY MONTH"
	}
	fmt.Println()
	fmt.Println(cli.RenderTitle(title + describeFilter(view.Filter)))
	fmt.Println()

	if view.Summary.Count == 0 {
		fmt.Println("  No expenses found.")
		return nil
	}

	switch view.ChartView {
	case model.ChartTimeline:
		width := 0
		for _, m := range view.Months {
			width = max(width, len(m.Label))
		}
		for _, m := range view.Months {
			fmt.Println(cli.RenderHorizontalBar(m.Label, width, m.Percent, chartBarWidth, "teal", cli.FormatAmount(m.Amount)))
		}
	default:
		width := 0
		for _, c := range view.Categories {
			width = max(width, len([]rune(c.Category)))
		}
		for _, c := range view.Categories {
			trailer := fmt.Sprintf("%s (%s)", cli.FormatAmount(c.Amount), cli.FormatPercent(c.Percent))
			fmt.Println(cli.RenderHorizontalBar(c.Category, width, c.Percent, chartBarWidth, c.Color, trailer))
		}
	}
	fmt.Println()

	return nil
}
