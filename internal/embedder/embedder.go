// Package embedder maps raw image bytes to fixed-length, L2-normalized
// vectors. Backends: a deterministic mock for development and tests, and a
// model-serving HTTP client for production inference.
package embedder

import "context"

// Embedder is the collaborator interface consumed by the embedding sweep.
type Embedder interface {
	// GenerateEmbedding returns a normalized vector of Dimensions() length.
	GenerateEmbedding(ctx context.Context, image []byte) ([]float32, error)
	// Dimensions is the store-wide embedding dimensionality.
	Dimensions() int
}
