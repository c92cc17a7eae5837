package commands

import (
	"fmt"

	"github.com/dyluth/tock/internal/filter"
	"github.com/dyluth/tock/internal/printer"
	"github.com/dyluth/tock/internal/report"
	"github.com/dyluth/tock/internal/timespec"
	"github.com/spf13/cobra"
)

type showOptions struct {
	catalog  catalogSource
	output   string
	tag      string
	day      string
	minTotal string
	maxTotal string
}

func newShowCmd(a *app) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show [FILE]",
		Short: "Ingest a work log and list its tasks",
		Long: `Ingest a work log and list the resulting catalog.

Output Formats:
  default - Human-readable table with key, title, day, range, total, break and tag
  jsonl   - Line-delimited JSON, one task per line

Filters:
  --tag        - Filter by tag (glob pattern: "dev*", "*ops")
  --day        - Filter by day of week (Mon, Tue, ...)
  --min-total  - Only tasks with at least this total time
  --max-total  - Only tasks with at most this total time

Durations accept Go syntax (1h30m) or clock syntax (01:30:00).

With --from-redis no FILE is given; the catalog last pushed to the namespace
is listed instead, keyed as it was when pushed.

Examples:
  # List every task
  tock show worklog.json

  # Long development days as JSONL for jq
  tock show worklog.json --tag="dev*" --min-total=8h --output=jsonl | jq .title

  # What was pushed to the team namespace
  tock show --from-redis -n team`,
		Args: catalogArgs(0, &opts.catalog),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "default", "Output format: default or jsonl")
	cmd.Flags().StringVar(&opts.tag, "tag", "", "Filter by tag (glob pattern)")
	cmd.Flags().StringVar(&opts.day, "day", "", "Filter by day of week")
	cmd.Flags().StringVar(&opts.minTotal, "min-total", "", "Minimum total time")
	cmd.Flags().StringVar(&opts.maxTotal, "max-total", "", "Maximum total time")
	addCatalogFlags(cmd, &opts.catalog)

	return cmd
}

func (a *app) runShow(cmd *cobra.Command, args []string, opts *showOptions) error {
	format, err := report.ParseOutputFormat(opts.output)
	if err != nil {
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", opts.output),
			[]string{"Valid formats: default, jsonl"},
		)
	}

	minTotal, maxTotal, err := timespec.ParseRange(opts.minTotal, opts.maxTotal)
	if err != nil {
		return printer.Error(
			"invalid duration filter",
			err.Error(),
			[]string{"Use Go durations (1h30m) or clock form (01:30:00)"},
		)
	}

	criteria := &filter.Criteria{
		TagGlob:  opts.tag,
		Day:      opts.day,
		MinTotal: minTotal,
		MaxTotal: maxTotal,
	}

	cat, label, _, err := a.loadCatalog(args, &opts.catalog)
	if err != nil {
		return err
	}

	tasks := criteria.Apply(cat.Tasks())
	return report.Write(cmd.OutOrStdout(), format, tasks, label)
}
