package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/meridian-ml/data-curator/constants"
)

// MinioStore implements ObjectStore against MinIO or any S3-compatible
// service. URIs use the s3://bucket/prefix form.
type MinioStore struct {
	client *minio.Client
	logger *slog.Logger
}

func NewMinioStore(client *minio.Client, logger *slog.Logger) *MinioStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &MinioStore{client: client, logger: logger}
}

// parseURI splits s3://bucket/key into its bucket and key parts.
func parseURI(uri string) (bucket, key string, err error) {
	trimmed, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("invalid object URI %q: expected s3://bucket/key", uri)
	}
	bucket, key, ok = strings.Cut(trimmed, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid object URI %q: expected s3://bucket/key", uri)
	}
	return bucket, key, nil
}

func (s *MinioStore) ListImages(ctx context.Context, uri string) ([]string, error) {
	bucket, prefix, err := parseURI(uri)
	if err != nil {
		return nil, err
	}

	var images []string
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s: %w", uri, obj.Err)
		}
		if constants.IsImageURI(obj.Key) {
			images = append(images, fmt.Sprintf("s3://%s/%s", bucket, obj.Key))
		}
	}
	s.logger.Debug("listed images", "uri", uri, "count", len(images))
	return images, nil
}

func (s *MinioStore) DownloadImage(ctx context.Context, uri string) ([]byte, error) {
	bucket, key, err := parseURI(uri)
	if err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", uri, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", uri, err)
	}
	return data, nil
}

func (s *MinioStore) UploadDataset(ctx context.Context, imageURIs []string, destURI string) error {
	bucket, prefix, err := parseURI(destURI)
	if err != nil {
		return err
	}

	manifest := strings.Join(imageURIs, "\n")
	manifestKey := path.Join(prefix, ManifestName)
	if _, err := s.client.PutObject(ctx, bucket, manifestKey,
		bytes.NewReader([]byte(manifest)), int64(len(manifest)), minio.PutObjectOptions{}); err != nil {
		return fmt.Errorf("upload manifest: %w", err)
	}

	for _, uri := range imageURIs {
		srcBucket, srcKey, err := parseURI(uri)
		if err != nil {
			return err
		}
		destKey := path.Join(prefix, path.Base(srcKey))
		_, err = s.client.CopyObject(ctx,
			minio.CopyDestOptions{Bucket: bucket, Object: destKey},
			minio.CopySrcOptions{Bucket: srcBucket, Object: srcKey},
		)
		if err != nil {
			return fmt.Errorf("copy %s: %w", uri, err)
		}
	}

	s.logger.Info("dataset uploaded", "dest", destURI, "images", len(imageURIs))
	return nil
}

func (s *MinioStore) PutObject(ctx context.Context, uri string, data []byte) error {
	bucket, key, err := parseURI(uri)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, bucket, key,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("put %s: %w", uri, err)
	}
	return nil
}
