// Package storage persists merchant assets (logos, banners) in a blob store
// addressed by URL, so local disk and cloud buckets are interchangeable.
package storage

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Register the bucket drivers usable via Assets.BucketURL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"

	"horeca/config"
	"horeca/internal/domain/lifecycle"
	"horeca/internal/domain/service"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the parameters required for the asset storage
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the configured bucket and returns it as a service.AssetStorage.
func New(params Params) (service.AssetStorage, error) {
	cfg := params.Config.Assets
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("assets bucket URL must be configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Store writes the asset under key and returns its public URL.
func (s *blobStorage) Store(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Abort the write so no partial object stays behind.
		_ = writer.Close()

		return "", errors.Wrapf(err, "write asset %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "commit asset %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the asset under key. Missing keys are not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete asset %s", key)
	}

	return nil
}
