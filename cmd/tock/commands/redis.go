package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/dyluth/tock/internal/config"
	"github.com/dyluth/tock/internal/printer"
	"github.com/dyluth/tock/internal/store"
	"github.com/dyluth/tock/pkg/timesheet"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// redisOptions override the redis section of tock.yml
type redisOptions struct {
	addr      string
	namespace string
	timeout   time.Duration
}

func addRedisFlags(cmd *cobra.Command, o *redisOptions) {
	cmd.Flags().StringVar(&o.addr, "redis-addr", "", "Redis address (overrides tock.yml)")
	cmd.Flags().StringVarP(&o.namespace, "namespace", "n", "", "Key namespace (overrides tock.yml)")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 10*time.Second, "Timeout for Redis operations")
}

// connectedStore is a reachable store plus the settings it was opened with
type connectedStore struct {
	*store.Store
	addr      string
	namespace string
}

// openStore connects to Redis and checks the server answers
func openStore(ctx context.Context, cfg *config.Config, o *redisOptions) (*connectedStore, error) {
	addr := cfg.Redis.Addr
	if o.addr != "" {
		addr = o.addr
	}
	namespace := cfg.Redis.Namespace
	if o.namespace != "" {
		namespace = o.namespace
	}

	st, err := store.NewStore(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, namespace)
	if err != nil {
		return nil, printer.Error("invalid Redis settings", err.Error(), nil)
	}

	if err := st.Ping(ctx); err != nil {
		st.Close()
		return nil, printer.ErrorWithContext(
			"Redis unreachable",
			err.Error(),
			map[string]string{"Address": addr},
			[]string{
				"Start Redis or point --redis-addr at a running server",
				"Set redis.addr in tock.yml",
			},
		)
	}

	return &connectedStore{Store: st, addr: addr, namespace: namespace}, nil
}

// catalogSource selects where a reading command gets its catalog: a work
// log FILE argument, or the catalog last pushed to Redis
type catalogSource struct {
	fromRedis bool
	redis     redisOptions
}

func addCatalogFlags(cmd *cobra.Command, cs *catalogSource) {
	cmd.Flags().BoolVar(&cs.fromRedis, "from-redis", false, "Read the catalog last pushed to Redis instead of a FILE")
	addRedisFlags(cmd, &cs.redis)
}

// catalogArgs expects FILE followed by n more arguments, or only the n
// arguments with --from-redis
func catalogArgs(n int, cs *catalogSource) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if cs.fromRedis {
			return cobra.ExactArgs(n)(cmd, args)
		}
		return cobra.ExactArgs(n+1)(cmd, args)
	}
}

// loadCatalog returns the catalog, a label naming where it came from, and
// the arguments that follow FILE
func (a *app) loadCatalog(args []string, cs *catalogSource) (*timesheet.Catalog, string, []string, error) {
	if !cs.fromRedis {
		cat, _, err := a.ingest(args[0])
		if err != nil {
			return nil, "", nil, err
		}
		return cat, args[0], args[1:], nil
	}

	cfg, err := a.resolveConfig()
	if err != nil {
		return nil, "", nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cs.redis.timeout)
	defer cancel()

	st, err := openStore(ctx, cfg, &cs.redis)
	if err != nil {
		return nil, "", nil, err
	}
	defer st.Close()

	label := fmt.Sprintf("redis:%s", st.namespace)

	cat, err := st.LoadCatalog(ctx, cfg.Assembler())
	if err != nil {
		if store.IsNotFound(err) {
			return nil, "", nil, printer.ErrorWithContext(
				"no catalog in Redis",
				fmt.Sprintf("Nothing has been pushed to namespace '%s'.", st.namespace),
				map[string]string{"Address": st.addr},
				[]string{"Push a work log first:\n  tock push FILE"},
			)
		}
		return nil, "", nil, printer.ErrorWithContext(
			"cannot load catalog from Redis",
			err.Error(),
			map[string]string{"Address": st.addr, "Namespace": st.namespace},
			[]string{
				"Push the work log again:\n  tock push FILE",
				"Match the ingest policies used when it was pushed",
			},
		)
	}

	return cat, label, args, nil
}
