package cache

import (
	"context"
	"time"

	"horeca/internal/domain/service"
)

// passthrough is a PermissionCache that never caches: every lookup executes
// the compute function. Used when no Redis substrate is configured.
type passthrough struct{}

// NewPassthrough creates a cache that always computes.
func NewPassthrough() service.PermissionCache {
	return passthrough{}
}

func (passthrough) GetOrCompute(ctx context.Context, _ string, _ time.Duration, compute service.ComputeFunc) ([]byte, error) {
	return compute(ctx)
}

func (passthrough) Invalidate(context.Context, string) error {
	return nil
}
