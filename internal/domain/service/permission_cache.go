package service

import (
	"context"
	"time"
)

// ComputeFunc produces the authoritative value for a cache key.
type ComputeFunc func(ctx context.Context) ([]byte, error)

// PermissionCache is the TTL-bearing key-value substrate wrapping the
// authorization resolver's database reads. Implementations cache resolver
// outputs only (roles, booleans), never credentials.
//
// Caching is an optimization, never a correctness dependency: when the
// substrate itself fails, GetOrCompute must execute compute and treat its
// result as authoritative instead of surfacing the substrate error.
type PermissionCache interface {
	// GetOrCompute returns the cached value for key, computing and storing it
	// with the given TTL on a miss. Substrate errors fall through to compute.
	GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute ComputeFunc) ([]byte, error)

	// Invalidate drops the cached value for key, if any. Best effort.
	Invalidate(ctx context.Context, key string) error
}

// AdminVerdictCache is the process-local tier caching platform-admin
// verdicts. It is bounded and TTL-bearing so a revoked administrator loses
// the override within one TTL on every instance.
type AdminVerdictCache interface {
	// Get returns the cached verdict for key, if present and not expired.
	Get(key string) (bool, bool)

	// Add stores a verdict under key, restarting its TTL.
	Add(key string, value bool)

	// Remove drops the verdict for key, if any.
	Remove(key string)
}
