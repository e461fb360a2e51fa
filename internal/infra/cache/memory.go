// Package cache provides the caching tiers backing the authorization resolver:
// a process-local bounded TTL cache and a Redis-backed shared substrate.
package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// Memory is a bounded in-process cache with per-cache TTL. Entries expire
// after the TTL or get evicted LRU-first once maxEntries is reached, so the
// cache cannot grow without bound under many distinct keys.
type Memory[V any] struct {
	lru *lru.LRU[string, V]
}

// NewMemory creates a bounded TTL cache.
func NewMemory[V any](maxEntries int, ttl time.Duration) *Memory[V] {
	if maxEntries <= 0 {
		maxEntries = 1000
	}

	return &Memory[V]{
		lru: lru.NewLRU[string, V](maxEntries, nil, ttl),
	}
}

// Get returns the cached value for key, if present and not expired.
func (m *Memory[V]) Get(key string) (V, bool) {
	return m.lru.Get(key)
}

// Add stores a value under key, restarting its TTL.
func (m *Memory[V]) Add(key string, value V) {
	m.lru.Add(key, value)
}

// Remove drops the value for key, if any.
func (m *Memory[V]) Remove(key string) {
	m.lru.Remove(key)
}

// Purge drops every entry.
func (m *Memory[V]) Purge() {
	m.lru.Purge()
}

// Len returns the number of live entries.
func (m *Memory[V]) Len() int {
	return m.lru.Len()
}
