package timesheet

import (
	"fmt"
	"iter"
	"sort"
	"sync"
)

// KeyMode selects which task field keys the catalog.
type KeyMode int

const (
	// KeyByID keys tasks by their TaskID.
	KeyByID KeyMode = iota

	// KeyByTitle keys tasks by their normalized title.
	KeyByTitle
)

func (m KeyMode) String() string {
	switch m {
	case KeyByID:
		return "id"
	case KeyByTitle:
		return "title"
	default:
		return fmt.Sprintf("KeyMode(%d)", int(m))
	}
}

// Catalog maps keys to tasks. The first task inserted under a key is kept and
// later ones are discarded. Insert takes an exclusive lock so there is never
// more than one writer; readers may run concurrently.
//
// Tasks returned by a Catalog are shared and must not be modified.
type Catalog struct {
	mu         sync.RWMutex
	keyMode    KeyMode
	tasks      map[string]*Task
	duplicates int
	skipped    []*RecordError
}

// NewCatalog returns an empty catalog keyed according to mode.
func NewCatalog(mode KeyMode) *Catalog {
	return &Catalog{
		keyMode: mode,
		tasks:   make(map[string]*Task),
	}
}

// KeyMode returns the field this catalog is keyed by.
func (c *Catalog) KeyMode() KeyMode {
	return c.keyMode
}

// KeyFor returns the key t would be stored under.
func (c *Catalog) KeyFor(t *Task) string {
	if c.keyMode == KeyByTitle {
		return t.Title.String()
	}
	return t.ID.String()
}

// Insert stores t under its key unless the key is already taken.
// Returns false when t was discarded as a duplicate.
func (c *Catalog) Insert(t *Task) bool {
	key := c.KeyFor(t)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tasks[key]; exists {
		c.duplicates++
		return false
	}
	c.tasks[key] = t
	return true
}

// Get returns the task stored under key.
func (c *Catalog) Get(key string) (*Task, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tasks[key]
	return t, ok
}

// Len returns the number of tasks in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tasks)
}

// Keys returns all keys in ascending order.
func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.tasks))
	for k := range c.tasks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tasks returns all tasks ordered by key.
func (c *Catalog) Tasks() []*Task {
	keys := c.Keys()

	c.mu.RLock()
	defer c.mu.RUnlock()

	tasks := make([]*Task, 0, len(keys))
	for _, k := range keys {
		if t, ok := c.tasks[k]; ok {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// All iterates over a snapshot of the catalog in key order.
func (c *Catalog) All() iter.Seq2[string, *Task] {
	tasks := c.Tasks()
	return func(yield func(string, *Task) bool) {
		for _, t := range tasks {
			if !yield(c.KeyFor(t), t) {
				return
			}
		}
	}
}

// Duplicates returns how many tasks were discarded because their key was taken.
func (c *Catalog) Duplicates() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.duplicates
}

// Skipped returns the records rejected under BatchLenient.
func (c *Catalog) Skipped() []*RecordError {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*RecordError, len(c.skipped))
	copy(out, c.skipped)
	return out
}

func (c *Catalog) recordSkip(err *RecordError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skipped = append(c.skipped, err)
}
