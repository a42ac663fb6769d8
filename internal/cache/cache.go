// Package cache is a process-wide keyed read cache shared by the entity
// services. Keys are structured as [entityType, ...params]; invalidating a
// prefix invalidates every key under it. Reads for the same key are
// deduplicated so at most one store call is in flight per key, and a
// successful mutation invalidates and eagerly refetches the affected
// entries. There is no optimistic update: displayed data changes only after
// the store has confirmed a write.
package cache

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// keySep joins key parts for map storage. Unit separator keeps params that
// contain slashes or spaces from colliding.
const keySep = "\x1f"

// Key identifies a cached query: entity type followed by query parameters.
type Key []string

func (k Key) String() string {
	return strings.Join(k, keySep)
}

// HasPrefix reports whether k falls under the given prefix key.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, part := range prefix {
		if k[i] != part {
			return false
		}
	}
	return true
}

// FetchFunc loads fresh data for a key from the backing store.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	key   Key
	value any
	stale bool
	fetch FetchFunc
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group
}

func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// get returns the cached value for key, fetching it when absent or stale.
// Fetch errors are returned to the caller and never cached.
func (c *Cache) get(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	ks := key.String()

	c.mu.Lock()
	if e, ok := c.entries[ks]; ok && !e.stale {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(ks, func() (any, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, v, fetch)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Cache) store(key Key, v any, fetch FetchFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key.String()] = &entry{key: key, value: v, fetch: fetch}
}

// Invalidate marks every entry under the given prefixes stale and refetches
// it in the background. Callers invoke this only after a write has been
// confirmed, so a subsequent read never observes a state older than the
// just-completed write.
func (c *Cache) Invalidate(prefixes ...Key) {
	var refresh []*entry
	c.mu.Lock()
	for _, e := range c.entries {
		for _, p := range prefixes {
			if e.key.HasPrefix(p) {
				e.stale = true
				refresh = append(refresh, e)
				break
			}
		}
	}
	c.mu.Unlock()

	for _, e := range refresh {
		go c.refresh(e)
	}
}

func (c *Cache) refresh(e *entry) {
	v, err := e.fetch(context.Background())
	if err != nil {
		// Drop the entry; the next read goes to the store.
		c.mu.Lock()
		delete(c.entries, e.key.String())
		c.mu.Unlock()
		return
	}
	c.store(e.key, v, e.fetch)
}

// Len reports the number of cached entries, stale or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Fetch is the typed read operation. Concurrent calls for the same key share
// a single store call.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Mutate runs a write against the backing store. On success the given key
// prefixes are invalidated; on failure the cache is left untouched and the
// error is returned for user-facing reporting.
func (c *Cache) Mutate(ctx context.Context, mutate func(ctx context.Context) error, invalidates ...Key) error {
	if err := mutate(ctx); err != nil {
		return err
	}
	c.Invalidate(invalidates...)
	return nil
}
