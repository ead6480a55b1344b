package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/model"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an expense by id or unique id prefix",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	e, err := findExpense(s.state.Expenses(), args[0])
	if err != nil {
		return err
	}

	if !s.state.DeleteExpense(e.ID) {
		return fmt.Errorf("expense %s not found", args[0])
	}
	if err := s.saved(); err != nil {
		return err
	}

	infof("  Deleted %s  %s  %s\n", cli.ShortID(e.ID), e.Description, cli.FormatAmount(e.Amount))
	return nil
}

// findExpense resolves a full id or an unambiguous prefix.
func findExpense(expenses []model.Expense, ref string) (model.Expense, error) {
	var matches []model.Expense
	for _, e := range expenses {
		if e.ID == ref {
			return e, nil
		}
		if strings.HasPrefix(e.ID, ref) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return model.Expense{}, fmt.Errorf("expense %s not found", ref)
	case 1:
		return matches[0], nil
	default:
		return model.Expense{}, fmt.Errorf("id prefix %s matches %d expenses", ref, len(matches))
	}
}
