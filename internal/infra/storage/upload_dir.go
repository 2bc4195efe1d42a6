package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"cakeshop/internal/domain/service"
	"cakeshop/internal/errors"
)

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// UploadDir copies the images found directly under dir into the store, keyed by file name,
// so /images/<name> serves them. Other files and subdirectories are skipped.
func UploadDir(ctx context.Context, store service.ImageStore, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read image directory %s", dir)
	}

	uploaded := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		contentType, ok := imageExtensions[ext]
		if !ok {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return uploaded, errors.Wrapf(err, "failed to read image %s", entry.Name())
		}
		if err := store.Put(ctx, entry.Name(), contentType, data); err != nil {
			return uploaded, errors.Wrapf(err, "failed to upload image %s", entry.Name())
		}
		uploaded++
	}

	return uploaded, nil
}
