// Package cache holds the read-through row-set cache keyed by filter
// signature. Caching is advisory: a miss or a cache error only costs a query.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/normalize"
)

// DefaultTTL applies when no TTL is configured
const DefaultTTL = 300 * time.Second

// RowSetCache stores normalized row-sets by filter signature.
type RowSetCache interface {
	// Get returns the cached row-set, or ok=false on a miss
	Get(ctx context.Context, key string) (rs *normalize.RowSet, ok bool, err error)
	Set(ctx context.Context, key string, rs *normalize.RowSet) error
	// Invalidate drops every entry
	Invalidate(ctx context.Context) error
}

// MemoryCache is an in-process TTL cache.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	rs      *normalize.RowSet
	expires time.Time
}

// NewMemoryCache creates an in-process cache. A non-positive ttl uses DefaultTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

// WithClock replaces the clock used for expiry
func (c *MemoryCache) WithClock(now func() time.Time) *MemoryCache {
	c.now = now
	return c
}

func (c *MemoryCache) Get(_ context.Context, key string) (*normalize.RowSet, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.rs, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, rs *normalize.RowSet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{rs: rs, expires: c.now().Add(c.ttl)}
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) (*normalize.RowSet, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, *normalize.RowSet) error         { return nil }
func (Nop) Invalidate(context.Context) error                             { return nil }

// payload is the serialized form of a row-set. The schema is rebuilt from
// the column list.
type payload struct {
	Columns []string              `json:"columns"`
	Lines   []domain.DeliveryLine `json:"lines"`
	Today   time.Time             `json:"today"`
}

func encode(rs *normalize.RowSet) ([]byte, error) {
	return json.Marshal(payload{Columns: rs.Columns, Lines: rs.Lines, Today: rs.Today})
}

func decode(b []byte) (*normalize.RowSet, error) {
	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	if p.Lines == nil {
		p.Lines = []domain.DeliveryLine{}
	}
	return &normalize.RowSet{
		Columns: p.Columns,
		Lines:   p.Lines,
		Schema:  normalize.NewSchema(p.Columns),
		Today:   p.Today,
	}, nil
}
