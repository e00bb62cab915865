package twoiplib

import (
	"fmt"
	"net/netip"

	lru "github.com/hashicorp/golang-lru"
)

type lruCache struct {
	cache *lru.Cache
}

func (l lruCache) Add(key string, value []byte) {
	l.cache.Add(key, value)
}

func (l lruCache) Get(key string) ([]byte, bool) {
	item, ok := l.cache.Get(key)
	if !ok {
		return nil, false
	}

	value, ok := item.([]byte)

	return value, ok
}

// NewLRUCache returns an in-memory Cache which evicts least recently
// used records beyond the given size.
func NewLRUCache(size int) (Cache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("cannot create a cache: %w", err)
	}

	return lruCache{cache: cache}, nil
}

func cacheKey(kind LookupKind, addr netip.Addr) string {
	return string(kind) + "/" + addr.String()
}
