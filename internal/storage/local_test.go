package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStoreListImagesFiltersExtensions(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pool"), 0o755))
	for _, name := range []string{"a.jpg", "b.png", "c.webp", "d.JPEG", "notes.txt", "model.onnx"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, "pool", name), []byte(name), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pool", "nested.jpg"), 0o755))

	store := NewLocalStore(root, nil)
	images, err := store.ListImages(context.Background(), "pool")
	require.NoError(t, err)

	require.Len(t, images, 4)
	for _, uri := range images {
		require.True(t, filepath.IsAbs(uri))
	}
}

func TestLocalStoreListImagesMissingDir(t *testing.T) {
	store := NewLocalStore(t.TempDir(), nil)
	_, err := store.ListImages(context.Background(), "does-not-exist")
	require.Error(t, err)
}

func TestLocalStoreDownloadImage(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "img.png"), []byte("pixels"), 0o644))

	store := NewLocalStore(root, nil)
	data, err := store.DownloadImage(context.Background(), "img.png")
	require.NoError(t, err)
	require.Equal(t, []byte("pixels"), data)
}

func TestLocalStoreUploadDataset(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "raw"), 0o755))
	var uris []string
	for _, name := range []string{"a.jpg", "b.jpg"} {
		p := filepath.Join(root, "raw", name)
		require.NoError(t, os.WriteFile(p, []byte(name), 0o644))
		uris = append(uris, p)
	}

	store := NewLocalStore(root, nil)
	require.NoError(t, store.UploadDataset(context.Background(), uris, "raw-curated"))

	manifest, err := os.ReadFile(filepath.Join(root, "raw-curated", ManifestName))
	require.NoError(t, err)
	require.Equal(t, uris[0]+"\n"+uris[1], string(manifest))

	for _, name := range []string{"a.jpg", "b.jpg"} {
		copied, err := os.ReadFile(filepath.Join(root, "raw-curated", name))
		require.NoError(t, err)
		require.Equal(t, []byte(name), copied)
	}
}

func TestLocalStorePutObject(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, nil)

	require.NoError(t, store.PutObject(context.Background(), "out/report.xlsx", []byte{1, 2, 3}))
	data, err := os.ReadFile(filepath.Join(root, "out", "report.xlsx"))
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, data)
}

func TestDeriveCuratedURI(t *testing.T) {
	require.Equal(t, "data/pool-curated", DeriveCuratedURI("data/pool"))
	require.Equal(t, "data/pool-curated", DeriveCuratedURI("data/pool/"))
	require.Equal(t, "s3://bucket/raw-curated", DeriveCuratedURI("s3://bucket/raw"))
}
