package geocode

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"
)

// Cache is an in-memory geocode result cache with an explicit lifetime:
// create one, hand it to a Client, drop it when the dataset it served is
// replaced. Non-matches are cached too, so repeated lookups of a bad
// address skip the provider. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Result
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Result)}
}

// Get returns the cached result for an address, if present.
func (c *Cache) Get(addr AddressInput) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.entries[cacheKey(addr)]
	return r, ok
}

// Put stores a result for an address.
func (c *Cache) Put(addr AddressInput, r *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(addr)] = r
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cacheKey returns SHA-256 hex of the normalized address.
func cacheKey(addr AddressInput) string {
	normalized := fmt.Sprintf("%s|%s|%s",
		strings.ToLower(strings.TrimSpace(addr.City)),
		strings.ToLower(strings.TrimSpace(addr.State)),
		strings.ToLower(strings.TrimSpace(addr.Country)),
	)
	h := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", h)
}
