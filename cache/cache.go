package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// A Cache is a JSON-persisted map of name category to the names generated
// for it. It lets a run reuse exactly the same artists, albums, and tracks
// as an earlier one.
type Cache struct {
	lock      sync.RWMutex
	store     map[string][]string
	storePath string
}

// NewCache returns a properly configured cache with the initial size provided
// and a fully-qualified path for file storage.
func NewCache(size int, storePath string) *Cache {
	return &Cache{
		store:     make(map[string][]string, size),
		storePath: storePath,
	}
}

func (c *Cache) Add(key string, names []string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.store[key] = names
}

func (c *Cache) Get(key string) []string {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.store[key]
}

// Exists reports whether the backing file is present
func (c *Cache) Exists() bool {
	_, err := os.Stat(c.storePath)
	return err == nil
}

// Load reads the cache from the file back into memory
func (c *Cache) Load() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	data, err := os.ReadFile(c.storePath)
	if err != nil {
		return fmt.Errorf("failed to load cache from %s: %w", c.storePath, err)
	}

	err = json.Unmarshal(data, &c.store)
	if err != nil {
		return fmt.Errorf("failed to unmarshal cache from %s: %w", c.storePath, err)
	}

	// A file containing only "null" leaves us without a map
	if c.store == nil {
		c.store = make(map[string][]string)
	}

	return nil
}

// Persist stores the cache out to a file
func (c *Cache) Persist() error {
	c.lock.RLock()
	defer c.lock.RUnlock()

	data, err := json.MarshalIndent(c.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	err = os.WriteFile(c.storePath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to persist to %s: %w", c.storePath, err)
	}

	return nil
}
