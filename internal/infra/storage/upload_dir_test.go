package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestUploadDir(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3.jpg"), []byte("cocoa"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "4.PNG"), []byte("ocean"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts"), 0o700))

	store := NewBlobImageStore(memblob.OpenBucket(nil))

	uploaded, err := UploadDir(ctx, store, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, uploaded)

	reader, attrs, err := store.Open(ctx, "3.jpg")
	require.NoError(t, err)
	defer reader.Close()
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "cocoa", string(body))
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	pngReader, attrs, err := store.Open(ctx, "4.PNG")
	require.NoError(t, err)
	defer pngReader.Close()
	assert.Equal(t, "image/png", attrs.ContentType)

	_, _, err = store.Open(ctx, "notes.txt")
	assert.Error(t, err)
}

func TestUploadDir_MissingDirectory(t *testing.T) {
	store := NewBlobImageStore(memblob.OpenBucket(nil))

	_, err := UploadDir(context.Background(), store, filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
