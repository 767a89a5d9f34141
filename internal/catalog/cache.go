package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

// IndexCache memoizes built indexes by catalog content.
// Loading the same item list twice (a refresh that changed nothing) reuses the index.
type IndexCache struct {
	lru *expirable.LRU[string, *Index]
}

// NewIndexCache creates a cache holding at most size indexes for ttl
func NewIndexCache(size int, ttl time.Duration) *IndexCache {
	if size <= 0 {
		size = DefaultIndexCacheSize
	}
	return &IndexCache{
		lru: expirable.NewLRU[string, *Index](size, nil, ttl),
	}
}

// Get returns the index for items, building it on a miss.
// hit reports whether the index came from the cache.
func (c *IndexCache) Get(items []domain.Item) (index *Index, hit bool, err error) {
	key, err := Fingerprint(items)
	if err != nil {
		return nil, false, err
	}

	if cached, ok := c.lru.Get(key); ok {
		return cached, true, nil
	}

	index = NewIndex(items)
	index.fingerprint = key
	c.lru.Add(key, index)
	return index, false, nil
}

// Len returns the number of cached indexes
func (c *IndexCache) Len() int {
	return c.lru.Len()
}

// Purge drops all cached indexes
func (c *IndexCache) Purge() {
	c.lru.Purge()
}

// Fingerprint hashes the canonical JSON encoding of items
func Fingerprint(items []domain.Item) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for i := range items {
		if err := enc.Encode(&items[i]); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
