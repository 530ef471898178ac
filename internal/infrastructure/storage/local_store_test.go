package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratul75/report360/internal/infrastructure/config"
)

func newTestStore(t *testing.T) *LocalFileStore {
	t.Helper()
	store, err := NewLocalFileStore(config.UploadConfig{
		BaseDir:     t.TempDir(),
		MaxFileSize: 64,
		PublicPath:  "/uploads",
	})
	require.NoError(t, err)
	return store
}

func TestLocalFileStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("stores file under category with random name", func(t *testing.T) {
		store := newTestStore(t)

		stored, err := store.Save(ctx, CategoryReceipts, "fuel bill.jpg", strings.NewReader("fake image"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(stored.PublicPath, "/uploads/receipts/"))
		assert.True(t, strings.HasSuffix(stored.PublicPath, ".jpg"))
		assert.NotContains(t, stored.PublicPath, "fuel bill")
		assert.Equal(t, "fuel bill.jpg", stored.OriginalName)
		assert.Equal(t, int64(len("fake image")), stored.Size)

		data, err := os.ReadFile(stored.DiskPath)
		require.NoError(t, err)
		assert.Equal(t, "fake image", string(data))
	})

	t.Run("rejects oversized upload and leaves no file", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.Save(ctx, CategoryPhotos, "big.png", strings.NewReader(strings.Repeat("x", 65)))
		assert.ErrorIs(t, err, ErrFileTooLarge)

		entries, err := os.ReadDir(filepath.Join(store.BaseDir(), CategoryPhotos))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("rejects disallowed extension", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.Save(ctx, CategoryDocuments, "malware.exe", strings.NewReader("nope"))
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("rejects path-like category", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.Save(ctx, "../escape", "a.jpg", strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})
}

func TestLocalFileStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes stored file", func(t *testing.T) {
		store := newTestStore(t)

		stored, err := store.Save(ctx, CategoryInvoices, "inv.pdf", strings.NewReader("pdf"))
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, stored.PublicPath))
		_, err = os.Stat(stored.DiskPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		store := newTestStore(t)
		assert.NoError(t, store.Delete(ctx, "/uploads/receipts/gone.jpg"))
	})

	t.Run("refuses traversal outside base dir", func(t *testing.T) {
		store := newTestStore(t)
		assert.ErrorIs(t, store.Delete(ctx, "/uploads/../../etc/passwd"), ErrInvalidCategory)
	})
}
