// Package storage abstracts the object store that holds raw image pools and
// receives curated datasets. Backends: local filesystem (development) and
// MinIO / S3-compatible services.
package storage

import "context"

// ManifestName is the file listing every accepted image URI in a curated
// dataset, one per line.
const ManifestName = "manifest.txt"

// ObjectStore is the collaborator interface consumed by the curation core.
type ObjectStore interface {
	// ListImages enumerates image URIs under uri, filtered to recognized
	// image extensions.
	ListImages(ctx context.Context, uri string) ([]string, error)
	// DownloadImage fetches the raw bytes of one image.
	DownloadImage(ctx context.Context, uri string) ([]byte, error)
	// UploadDataset writes a manifest listing imageURIs and copies the
	// referenced images into destURI.
	UploadDataset(ctx context.Context, imageURIs []string, destURI string) error
	// PutObject writes an arbitrary blob at uri. Used for auxiliary
	// artifacts written next to the dataset manifest.
	PutObject(ctx context.Context, uri string, data []byte) error
}

// DeriveCuratedURI returns the destination for a job's curated dataset:
// a sibling of the raw pool with a "-curated" suffix.
func DeriveCuratedURI(rawDataURI string) string {
	for len(rawDataURI) > 0 && rawDataURI[len(rawDataURI)-1] == '/' {
		rawDataURI = rawDataURI[:len(rawDataURI)-1]
	}
	return rawDataURI + "-curated"
}
