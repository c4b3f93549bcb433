package commands

import (
	"github.com/spf13/cobra"

	"github.com/coderustle/budgetcli/internal/actions"
	"github.com/coderustle/budgetcli/internal/core"
	"github.com/coderustle/budgetcli/internal/ui"
)

func newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add data to the spreadsheet",
	}
	cmd.AddCommand(newAddCategoryCommand())
	cmd.AddCommand(newAddEntryCommand("income", "Add an income transaction"))
	cmd.AddCommand(newAddEntryCommand("outcome", "Add an outcome transaction"))
	cmd.AddCommand(newAddBudgetCommand())
	return cmd
}

func newAddCategoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "category NAME",
		Short: "Add a budget/transaction category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(cmd.Context())
			if err != nil {
				return err
			}
			action := &actions.AddCategory{
				Categories: d.categories(),
				Category:   core.NewCategory(args[0]),
				Out:        cmd.OutOrStdout(),
			}
			return ui.Progress(cmd.OutOrStdout(), "Processing..", func() error {
				return action.Execute(cmd.Context())
			})
		},
	}
}

// newAddEntryCommand builds the income and outcome subcommands; the
// two differ only in which amount column the value lands in.
func newAddEntryCommand(use, short string) *cobra.Command {
	var description, dateStr string

	cmd := &cobra.Command{
		Use:   use + " AMOUNT CATEGORY",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validation happens before any remote call.
			amount, err := core.ParseAmount(args[0])
			if err != nil {
				return err
			}
			date, err := core.ParseDate(dateStr)
			if err != nil {
				return err
			}
			transaction := core.NewTransaction(date, args[1], description)
			if use == "income" {
				transaction.Income = amount
			} else {
				transaction.Outcome = amount
			}

			d, err := newDeps(cmd.Context())
			if err != nil {
				return err
			}
			action := &actions.AddTransaction{
				Transactions: d.transactions(),
				Categories:   d.categories(),
				Transaction:  transaction,
				Out:          cmd.OutOrStdout(),
			}
			return ui.Progress(cmd.OutOrStdout(), "Processing..", func() error {
				return action.Execute(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "transaction description")
	cmd.Flags().StringVar(&dateStr, "date", core.Today(), "transaction date")
	return cmd
}

func newAddBudgetCommand() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "budget CATEGORY AMOUNT",
		Short: "Add a budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := core.ParseAmount(args[1])
			if err != nil {
				return err
			}
			date, err := core.ParseDate(dateStr)
			if err != nil {
				return err
			}

			d, err := newDeps(cmd.Context())
			if err != nil {
				return err
			}
			action := &actions.AddBudget{
				Budgets: d.budgets(),
				Budget:  core.NewBudget(date, args[0], amount),
				Out:     cmd.OutOrStdout(),
			}
			return ui.Progress(cmd.OutOrStdout(), "Processing..", func() error {
				return action.Execute(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", core.Today(), "budget date")
	return cmd
}
