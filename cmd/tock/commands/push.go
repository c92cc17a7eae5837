package commands

import (
	"context"
	"fmt"

	"github.com/dyluth/tock/internal/printer"
	"github.com/spf13/cobra"
)

func newPushCmd(a *app) *cobra.Command {
	opts := &redisOptions{}

	cmd := &cobra.Command{
		Use:   "push FILE",
		Short: "Ingest a work log and store it in Redis",
		Long: `Ingest a work log and write every task to Redis.

Each task is stored as a hash under tock:{namespace}:task:{key}, and the keys
are indexed in the set tock:{namespace}:tasks. A push replaces whatever catalog
the namespace held before. Read it back with --from-redis on show, get and
summary.

The Redis address and namespace default to the redis section of tock.yml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPush(args[0], opts)
		},
	}

	addRedisFlags(cmd, opts)

	return cmd
}

func (a *app) runPush(path string, opts *redisOptions) error {
	cat, cfg, err := a.ingest(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	st, err := openStore(ctx, cfg, opts)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.SaveCatalog(ctx, cat)
	if err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}

	printer.Success("Pushed %d tasks to %s (namespace '%s')\n", n, st.addr, st.namespace)
	return nil
}
