package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrImageNotFound is returned when no image exists under the key.
var ErrImageNotFound = errors.New("image not found")

// ImageAttributes describes a stored image.
type ImageAttributes struct {
	ContentType string
	Size        int64
	ETag        string
}

// ImageStore serves product images from object storage.
type ImageStore interface {
	// Open returns a reader for the image and its attributes. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, *ImageAttributes, error)

	// Put stores an image under key.
	Put(ctx context.Context, key, contentType string, data []byte) error
}
