package country

import (
	"context"
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	info    *Info
	expires time.Time
}

// CachedLookup wraps a Lookup with an in-process TTL cache so repeated
// lookups of the same name do not hit the upstream API. Only hits are cached.
type CachedLookup struct {
	next Lookup
	ttl  time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

var _ Lookup = (*CachedLookup)(nil)

func NewCachedLookup(next Lookup, ttl time.Duration) *CachedLookup {
	return &CachedLookup{
		next:    next,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *CachedLookup) FindByName(ctx context.Context, name string) (*Info, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && c.now().Before(entry.expires) {
		c.mu.Unlock()
		return entry.info, nil
	}
	if ok {
		delete(c.entries, key)
	}
	c.mu.Unlock()

	info, err := c.next.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{info: info, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()

	return info, nil
}
