package commands

import (
	"github.com/spf13/cobra"

	"github.com/coderustle/budgetcli/internal/actions"
	"github.com/coderustle/budgetcli/internal/data"
	"github.com/coderustle/budgetcli/internal/ui"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the entity sheets and write their headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(cmd.Context())
			if err != nil {
				return err
			}
			action := &actions.Init{
				Managers: []data.Manager{d.transactions(), d.categories(), d.budgets()},
				Out:      cmd.OutOrStdout(),
			}
			return ui.Progress(cmd.OutOrStdout(), "Processing..", func() error {
				return action.Execute(cmd.Context())
			})
		},
	}
}
