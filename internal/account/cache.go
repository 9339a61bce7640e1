package account

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mingleton/dawson-rp/internal/domain"
)

// Default cache sizing. Account rows are tiny; the cache exists to absorb
// repeated profile lookups from the front end, not to shadow the store.
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 30 * time.Second
)

// accountCache provides an in-memory LRU cache for account lookups
// with time-based expiration.
type accountCache struct {
	lru *expirable.LRU[int64, *domain.Account]
}

func newAccountCache(size int, ttl time.Duration) *accountCache {
	return &accountCache{
		lru: expirable.NewLRU[int64, *domain.Account](size, nil, ttl),
	}
}

func (c *accountCache) Get(id int64) (*domain.Account, bool) {
	return c.lru.Get(id)
}

func (c *accountCache) Set(account *domain.Account) {
	c.lru.Add(account.ID, account)
}

// Invalidate removes an account from the cache. Every mutation path calls
// this so a follow-up read never sees a pre-mutation balance.
func (c *accountCache) Invalidate(id int64) {
	c.lru.Remove(id)
}

func (c *accountCache) Clear() {
	c.lru.Purge()
}
