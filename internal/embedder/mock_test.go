package embedder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-ml/data-curator/internal/vectors"
)

func TestMockDeterministic(t *testing.T) {
	m := NewMock(64)
	ctx := context.Background()

	a, err := m.GenerateEmbedding(ctx, []byte("image-a"))
	require.NoError(t, err)
	b, err := m.GenerateEmbedding(ctx, []byte("image-a"))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := m.GenerateEmbedding(ctx, []byte("image-b"))
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestMockNormalizedAndSized(t *testing.T) {
	m := NewMock(32)
	vec, err := m.GenerateEmbedding(context.Background(), []byte("anything"))
	require.NoError(t, err)
	require.Len(t, vec, 32)
	require.Equal(t, 32, m.Dimensions())
	require.InDelta(t, 1.0, float64(vectors.Norm(vec)), 1e-5)
}

func TestMockDefaultDimensions(t *testing.T) {
	m := NewMock(0)
	require.Equal(t, DefaultDimensions, m.Dimensions())
}
