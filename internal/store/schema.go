package store

import "fmt"

// Redis key pattern helpers
//
// All keys are namespaced so several work logs can share one Redis server.
//
// Key pattern: tock:{namespace}:{entity}[:{key}]

// TaskKey returns the Redis key for a task hash.
// Pattern: tock:{namespace}:task:{key}
func TaskKey(namespace, key string) string {
	return fmt.Sprintf("tock:%s:task:%s", namespace, key)
}

// TaskIndexKey returns the Redis key for the set of stored task keys.
// Pattern: tock:{namespace}:tasks
func TaskIndexKey(namespace string) string {
	return fmt.Sprintf("tock:%s:tasks", namespace)
}

// MetaKey returns the Redis key for catalog metadata (key mode, size).
// Pattern: tock:{namespace}:meta
func MetaKey(namespace string) string {
	return fmt.Sprintf("tock:%s:meta", namespace)
}
