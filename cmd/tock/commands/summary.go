package commands

import (
	"github.com/dyluth/tock/internal/report"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	cs := &catalogSource{}

	cmd := &cobra.Command{
		Use:   "summary [FILE]",
		Short: "Show time totals per tag",
		Long: `Ingest a work log and show, per tag, the number of tasks and the
total, effective and break time, with each tag's share of the overall total.

With --from-redis no FILE is given and the pushed catalog is summarized.`,
		Args: catalogArgs(0, cs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, _, err := a.loadCatalog(args, cs)
			if err != nil {
				return err
			}
			report.FormatSummary(cmd.OutOrStdout(), report.Summarize(cat.Tasks()))
			return nil
		},
	}

	addCatalogFlags(cmd, cs)

	return cmd
}
