package commands

import (
	"fmt"

	"github.com/dyluth/tock/internal/scaffold"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create tock.yml and a sample work log",
		Long: `Initialize the current directory with a default configuration.

Creates:
  • tock.yml - Ingestion policies and Redis settings
  • worklog.json - A sample work log to try the other commands on

Use --force to overwrite existing files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if err := scaffold.CheckExisting("."); err != nil {
					return err
				}
			}

			created, err := scaffold.Initialize(".", force)
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}

			scaffold.PrintSuccess(cmd.OutOrStdout(), created)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing tock.yml and worklog.json")

	return cmd
}
