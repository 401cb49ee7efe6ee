package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/meridian-ml/data-curator/constants"
)

// LocalStore implements ObjectStore on the local filesystem, rooted at a
// base directory. URIs are paths relative to the root (absolute paths are
// used as-is), which keeps development and tests free of any remote setup.
type LocalStore struct {
	root   string
	logger *slog.Logger
}

func NewLocalStore(root string, logger *slog.Logger) *LocalStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalStore{root: root, logger: logger}
}

func (s *LocalStore) resolve(uri string) string {
	uri = strings.TrimPrefix(uri, "file://")
	if filepath.IsAbs(uri) {
		return uri
	}
	return filepath.Join(s.root, uri)
}

func (s *LocalStore) ListImages(ctx context.Context, uri string) ([]string, error) {
	dir := s.resolve(uri)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() || !constants.IsImageURI(entry.Name()) {
			continue
		}
		images = append(images, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(images)
	s.logger.Debug("listed images", "uri", uri, "count", len(images))
	return images, nil
}

func (s *LocalStore) DownloadImage(ctx context.Context, uri string) ([]byte, error) {
	data, err := os.ReadFile(s.resolve(uri))
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", uri, err)
	}
	return data, nil
}

func (s *LocalStore) UploadDataset(ctx context.Context, imageURIs []string, destURI string) error {
	dest := s.resolve(destURI)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("create dataset directory %s: %w", dest, err)
	}

	manifest := strings.Join(imageURIs, "\n")
	if err := os.WriteFile(filepath.Join(dest, ManifestName), []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	for _, uri := range imageURIs {
		src := s.resolve(uri)
		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("read %s: %w", src, err)
		}
		if err := os.WriteFile(filepath.Join(dest, filepath.Base(src)), data, 0o644); err != nil {
			return fmt.Errorf("copy %s: %w", src, err)
		}
	}

	s.logger.Info("dataset uploaded", "dest", destURI, "images", len(imageURIs))
	return nil
}

func (s *LocalStore) PutObject(ctx context.Context, uri string, data []byte) error {
	path := s.resolve(uri)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", uri, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write object %s: %w", uri, err)
	}
	return nil
}
