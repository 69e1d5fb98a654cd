package answer

import "sync"

type cacheKey struct {
	business string
	question string
}

// Cache stores answers for the lifetime of the process, keyed by
// (business name, exact question text). Keys are matched byte-for-byte:
// the same question with different casing or whitespace is a different
// key. There is no eviction, TTL, or size bound.
//
// Individual reads and writes are guarded, but the callers'
// check-then-generate-then-write sequence is not atomic: two concurrent
// identical misses may both generate and overwrite the same key. Answers
// are idempotent in content, so last-write-wins is accepted.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]string
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]string)}
}

// Get returns the stored answer for (business, question), if any.
func (c *Cache) Get(business, question string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[cacheKey{business, question}]
	return v, ok
}

// Set stores an answer under (business, question), replacing any previous
// value.
func (c *Cache) Set(business, question, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{business, question}] = text
}

// Len reports the number of stored entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
