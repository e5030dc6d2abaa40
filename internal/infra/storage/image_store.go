// Package storage implements meal image hosting on top of gocloud blob buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"harmony/config"
	"harmony/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket drivers used in deployments.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StoreParams holds dependencies for the image store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured blob bucket. When no bucket is
// configured the store is nil and image uploads are rejected upstream.
func NewImageStore(params StoreParams) (service.ImageStore, error) {
	cfg := params.Config.Images
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Image storage not configured, uploads disabled")

		return nil, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image bucket")

			return bucket.Close()
		},
	})

	params.Logger.Info("Image storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Save stores the image content under the given name and returns its public URL.
func (s *blobImageStore) Save(ctx context.Context, name string, contentType string, content io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", name)
	}

	if _, err := io.Copy(writer, content); err != nil {
		// Abort the write so a partial object is not committed.
		_ = writer.Close()

		return "", errors.Wrapf(err, "write %s", name)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "commit %s", name)
	}

	return s.publicBaseURL + "/" + name, nil
}
