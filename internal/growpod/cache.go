package growpod

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// cachedAccountEntry wraps an account with version metadata for cache invalidation
type cachedAccountEntry struct {
	Version  string
	Account  *domain.AccountState
	CachedAt time.Time
}

// accountCache is a read-through cache of committed account state. Entries
// are replaced by the writer that committed them, so readers never see a
// state older than their own last write.
//
// Every write bumps writes. A reader that missed takes a Ticket before going
// to the store and fills through Fill, which drops the value if any write
// landed in between.
type accountCache struct {
	mu     sync.Mutex
	writes uint64
	lru    *expirable.LRU[string, *cachedAccountEntry]
}

func newAccountCache(size int, ttl time.Duration) *accountCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &accountCache{
		lru: expirable.NewLRU[string, *cachedAccountEntry](size, nil, ttl),
	}
}

// Get returns a copy of the cached account
func (c *accountCache) Get(address string) (*domain.AccountState, bool) {
	entry, found := c.lru.Get(address)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(address)
		return nil, false
	}
	return entry.Account.Clone(), true
}

// Set stores a copy of freshly committed account state
func (c *accountCache) Set(a *domain.AccountState) {
	if a == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++
	c.add(a)
}

// Ticket marks the start of a store read for a later Fill
func (c *accountCache) Ticket() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

// Fill stores a copy of a read-path value unless a write happened after
// ticket was taken. Reports whether the value was stored.
func (c *accountCache) Fill(a *domain.AccountState, ticket uint64) bool {
	if a == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writes != ticket {
		return false
	}
	c.add(a)
	return true
}

func (c *accountCache) add(a *domain.AccountState) {
	c.lru.Add(a.Address, &cachedAccountEntry{
		Version:  CacheSchemaVersion,
		Account:  a.Clone(),
		CachedAt: time.Now(),
	})
}

func (c *accountCache) Invalidate(address string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++
	c.lru.Remove(address)
}
