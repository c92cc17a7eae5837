package commands

import (
	"fmt"

	"github.com/dyluth/tock/internal/printer"
	"github.com/dyluth/tock/internal/report"
	"github.com/dyluth/tock/internal/resolver"
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	cs := &catalogSource{}

	cmd := &cobra.Command{
		Use:   "get [FILE] KEY",
		Short: "Print a single task as JSON",
		Long: `Ingest a work log and print one task as pretty-printed JSON.

KEY is the catalog key: the task id, or the title with --key-by-title.
A unique prefix of at least 4 characters is also accepted.
With --from-redis only KEY is given and the pushed catalog is searched.

Examples:
  tock get worklog.json 3f2b9c4e
  tock get worklog.json coding --key-by-title
  tock get --from-redis 3f2b9c4e`,
		Args: catalogArgs(1, cs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(cmd, args, cs)
		},
	}

	addCatalogFlags(cmd, cs)

	return cmd
}

func (a *app) runGet(cmd *cobra.Command, args []string, cs *catalogSource) error {
	cat, label, rest, err := a.loadCatalog(args, cs)
	if err != nil {
		return err
	}
	key := rest[0]

	task, err := resolver.ResolveKey(cat, key)
	if err != nil {
		if ambErr, ok := err.(*resolver.AmbiguousError); ok {
			fmt.Fprintln(cmd.ErrOrStderr(), resolver.FormatAmbiguousError(ambErr))
			return &printer.ReportedError{Title: "ambiguous key"}
		}
		if resolver.IsNotFoundError(err) {
			return printer.ErrorWithContext(
				"task not found",
				fmt.Sprintf("No task with key '%s' exists in the catalog.", key),
				map[string]string{"Catalog": label, "Key mode": cat.KeyMode().String()},
				[]string{
					fmt.Sprintf("List available tasks:\n  %s", showCommandFor(label, cs)),
					"Use at least 4 characters of the key",
				},
			)
		}
		return err
	}

	if err := report.FormatSingleJSON(cmd.OutOrStdout(), task); err != nil {
		return fmt.Errorf("failed to format task: %w", err)
	}
	return nil
}

func showCommandFor(label string, cs *catalogSource) string {
	if cs.fromRedis {
		return "tock show --from-redis"
	}
	return "tock show " + label
}
