package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/dyluth/tock/pkg/timesheet"
	"github.com/redis/go-redis/v9"
)

// Store persists catalogs to Redis. All keys are namespaced.
// The store is safe for concurrent use.
type Store struct {
	rdb       *redis.Client
	namespace string
}

// NewStore creates a store writing under the given namespace.
// Returns an error if namespace is empty.
func NewStore(redisOpts *redis.Options, namespace string) (*Store, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}

	return &Store{
		rdb:       redis.NewClient(redisOpts),
		namespace: namespace,
	}, nil
}

// Close closes the Redis connection. Implements io.Closer.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// Ping verifies Redis connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// SaveCatalog writes every task of cat in a single transaction, replacing any
// previously stored catalog in the namespace. Returns the number of tasks written.
func (s *Store) SaveCatalog(ctx context.Context, cat *timesheet.Catalog) (int, error) {
	oldKeys, err := s.ListKeys(ctx)
	if err != nil {
		return 0, err
	}

	index := TaskIndexKey(s.namespace)
	count := 0

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range oldKeys {
			pipe.Del(ctx, TaskKey(s.namespace, key))
		}
		pipe.Del(ctx, index)

		for key, task := range cat.All() {
			pipe.HSet(ctx, TaskKey(s.namespace, key), timesheet.TaskToHash(task))
			pipe.SAdd(ctx, index, key)
			count++
		}

		pipe.HSet(ctx, MetaKey(s.namespace), map[string]interface{}{
			"key_mode": cat.KeyMode().String(),
			"tasks":    count,
		})
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to write catalog to Redis: %w", err)
	}

	return count, nil
}

// GetTask retrieves a stored task by catalog key. Fields are re-validated by a
// (nil means timesheet.DefaultAssembler) and total and break times re-derived.
// Returns (nil, redis.Nil) if the task doesn't exist. Use IsNotFound() to check.
func (s *Store) GetTask(ctx context.Context, key string, a *timesheet.Assembler) (*timesheet.Task, error) {
	hash, err := s.rdb.HGetAll(ctx, TaskKey(s.namespace, key)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read task from Redis: %w", err)
	}

	// HGetAll returns an empty map for non-existent keys
	if len(hash) == 0 {
		return nil, redis.Nil
	}

	task, err := timesheet.HashToTask(hash, a)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize task %s: %w", key, err)
	}

	return task, nil
}

// ListKeys returns the stored task keys in ascending order.
func (s *Store) ListKeys(ctx context.Context) ([]string, error) {
	keys, err := s.rdb.SMembers(ctx, TaskIndexKey(s.namespace)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list task keys: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// LoadCatalog rebuilds the stored catalog, validating every task with a. The
// key mode recorded at save time is reused.
func (s *Store) LoadCatalog(ctx context.Context, a *timesheet.Assembler) (*timesheet.Catalog, error) {
	meta, err := s.rdb.HGetAll(ctx, MetaKey(s.namespace)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog metadata: %w", err)
	}
	if len(meta) == 0 {
		return nil, redis.Nil
	}

	mode := timesheet.KeyByID
	if meta["key_mode"] == timesheet.KeyByTitle.String() {
		mode = timesheet.KeyByTitle
	}

	keys, err := s.ListKeys(ctx)
	if err != nil {
		return nil, err
	}

	cat := timesheet.NewCatalog(mode)
	for _, key := range keys {
		task, err := s.GetTask(ctx, key, a)
		if err != nil {
			return nil, err
		}
		cat.Insert(task)
	}

	if want, err := strconv.Atoi(meta["tasks"]); err == nil && want != cat.Len() {
		return nil, fmt.Errorf("stored catalog is incomplete: expected %d tasks, found %d", want, cat.Len())
	}

	return cat, nil
}

// IsNotFound reports whether err means the requested entry does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
