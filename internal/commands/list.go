package commands

import (
	"github.com/spf13/cobra"

	"github.com/coderustle/budgetcli/internal/actions"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List data from the spreadsheet",
	}
	cmd.AddCommand(newListTransactionsCommand())
	cmd.AddCommand(newListCategoriesCommand())
	return cmd
}

func newListTransactionsCommand() *cobra.Command {
	var rows int
	var month string

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions, most recent page or a whole month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(cmd.Context())
			if err != nil {
				return err
			}
			action := &actions.ListTransactions{
				Transactions: d.transactions(),
				Rows:         rows,
				Month:        month,
				Out:          cmd.OutOrStdout(),
			}
			return action.Execute(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 100, "maximum number of rows to list")
	cmd.Flags().StringVar(&month, "month", "", "month name or abbreviation, e.g. may")
	return cmd
}

func newListCategoriesCommand() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(cmd.Context())
			if err != nil {
				return err
			}
			action := &actions.ListCategories{
				Categories: d.categories(),
				Rows:       rows,
				Out:        cmd.OutOrStdout(),
			}
			return action.Execute(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 100, "maximum number of rows to list")
	return cmd
}
