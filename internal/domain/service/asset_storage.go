package service

import (
	"context"
	"io"
)

// AssetStorage defines the interface for storing merchant-facing binary
// assets (logos, banners) in a blob store.
type AssetStorage interface {
	// Store writes the asset under key and returns its public URL.
	Store(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes the asset under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
