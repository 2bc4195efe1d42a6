// Package storage serves product images from a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"cakeshop/config"
	"cakeshop/internal/domain/service"
	"cakeshop/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

type blobImageStore struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the image store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. Without a bucket URL an in-memory bucket is used.
func New(params Params) (service.ImageStore, error) {
	bucketURL := defaultBucketURL
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Image bucket opened", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobImageStore(bucket), nil
}

// NewBlobImageStore wraps an already opened bucket
func NewBlobImageStore(bucket *blob.Bucket) service.ImageStore {
	return &blobImageStore{bucket: bucket}
}

func (s *blobImageStore) Open(ctx context.Context, key string) (io.ReadCloser, *service.ImageAttributes, error) {
	cleanKey, err := normalizeKey(key)
	if err != nil {
		return nil, nil, err
	}

	attrs, err := s.bucket.Attributes(ctx, cleanKey)
	if err != nil {
		return nil, nil, translateBlobError(err)
	}

	reader, err := s.bucket.NewReader(ctx, cleanKey, nil)
	if err != nil {
		return nil, nil, translateBlobError(err)
	}

	return reader, &service.ImageAttributes{
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
		ETag:        attrs.ETag,
	}, nil
}

func (s *blobImageStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	cleanKey, err := normalizeKey(key)
	if err != nil {
		return err
	}

	return errors.WithStack(s.bucket.WriteAll(ctx, cleanKey, data, &blob.WriterOptions{ContentType: contentType}))
}

// normalizeKey rejects keys escaping the bucket root.
func normalizeKey(key string) (string, error) {
	cleaned := strings.TrimPrefix(path.Clean("/"+key), "/")
	if cleaned == "" || cleaned == "." || strings.Contains(key, "..") {
		return "", service.ErrImageNotFound
	}

	return cleaned, nil
}

func translateBlobError(err error) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return service.ErrImageNotFound
	}

	return errors.WithStack(err)
}
