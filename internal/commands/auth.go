package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coderustle/budgetcli/internal/auth"
)

func newAuthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize the application against the Google account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.Authorize(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Authorization was completed successfully")
			return nil
		},
	}
}
