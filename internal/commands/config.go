package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coderustle/budgetcli/internal/auth"
	"github.com/coderustle/budgetcli/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the application configuration",
	}
	cmd.AddCommand(newConfigSpreadsheetIDCommand())
	cmd.AddCommand(newConfigCredentialsCommand())
	return cmd
}

func newConfigSpreadsheetIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "spreadsheet-id ID",
		Short: "Set the spreadsheet all data is stored in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.Open()
			if err != nil {
				return err
			}
			if err := store.Update(config.KeySpreadsheetID, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "spreadsheet_id was updated")
			return nil
		},
	}
}

func newConfigCredentialsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "credentials-file-path PATH",
		Short: "Copy the OAuth client secret file into the config dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := auth.SecretPath()
			if err != nil {
				return err
			}
			if err := copyFile(args[0], dst); err != nil {
				return fmt.Errorf("copying client secret: %w", err)
			}
			store, err := config.Open()
			if err != nil {
				return err
			}
			if err := store.Update(config.KeyClientSecret, dst); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "File copied successfully to %s\n", dst)
			return nil
		},
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}
