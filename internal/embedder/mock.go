package embedder

import (
	"context"
	"hash/fnv"
	"math/rand"

	"github.com/meridian-ml/data-curator/internal/vectors"
)

// DefaultDimensions matches CLIP ViT-L/14 output.
const DefaultDimensions = 768

// Mock generates a deterministic pseudo-random embedding seeded from the
// image content. Identical bytes always embed to the identical vector, which
// keeps sweeps idempotent under re-runs without a model.
type Mock struct {
	dim int
}

func NewMock(dim int) *Mock {
	if dim <= 0 {
		dim = DefaultDimensions
	}
	return &Mock{dim: dim}
}

func (m *Mock) GenerateEmbedding(_ context.Context, image []byte) ([]float32, error) {
	h := fnv.New64a()
	_, _ = h.Write(image)
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	vec := make([]float32, m.dim)
	for i := range vec {
		vec[i] = rng.Float32()*2 - 1
	}
	return vectors.Normalize(vec), nil
}

func (m *Mock) Dimensions() int {
	return m.dim
}
