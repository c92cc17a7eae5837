package commands

import (
	"fmt"

	"github.com/dyluth/tock/internal/source"
	"github.com/spf13/cobra"
)

var versionString = "dev"

// globalFlags are shared by every subcommand and override tock.yml
type globalFlags struct {
	configPath    string
	permissiveIDs bool
	lenient       bool
	collect       bool
	keyByTitle    bool
	overnight     bool
	optionalTags  bool
	logLevel      string
}

// app carries what subcommands need; tests swap the document source
type app struct {
	flags  globalFlags
	source source.Source
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tock",
		Short: "Tock - time-tracked work log inspector",
		Long: `Tock ingests a JSON work log of time-tracked tasks, validates every
record and reports on the resulting catalog.

Each record carries an id, a title (name), a composite timedate field and a tag:

  {"id":"...","name":"coding","timedate":"07:00:00\nMon, 12/05 09:00:00 – 17:30:00","tags":"dev"}

The first clock is the effective (reported) work time; total time is derived
from the start and end clocks and break time is total minus effective.`,
		Version: versionString,
		// If no subcommand is specified, show help
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "Path to tock.yml (default: ./tock.yml if present)")
	pf.BoolVar(&a.flags.permissiveIDs, "permissive-ids", false, "Accept any non-empty identifier instead of UUIDs only")
	pf.BoolVar(&a.flags.lenient, "lenient", false, "Skip invalid records instead of failing")
	pf.BoolVar(&a.flags.collect, "collect", false, "Report every invalid record instead of only the first")
	pf.BoolVar(&a.flags.keyByTitle, "key-by-title", false, "Key the catalog by task title instead of id")
	pf.BoolVar(&a.flags.overnight, "overnight", false, "Accept ranges whose end is before their start as crossing midnight")
	pf.BoolVar(&a.flags.optionalTags, "optional-tags", false, "Treat blank tags as absent instead of invalid")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newInitCmd(),
		newShowCmd(a),
		newGetCmd(a),
		newSummaryCmd(a),
		newPushCmd(a),
	)

	return rootCmd
}

// Execute builds the command tree and runs it against os.Args.
// This is called by main.main().
func Execute() error {
	return newRootCmd(&app{source: source.FileSource{}}).Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	versionString = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
