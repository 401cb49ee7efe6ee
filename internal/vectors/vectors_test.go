package vectors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	v := Normalize([]float32{3, 4})
	require.InDelta(t, 1.0, float64(Norm(v)), 1e-6)
	require.InDelta(t, 0.6, float64(v[0]), 1e-6)
	require.InDelta(t, 0.8, float64(v[1]), 1e-6)
}

func TestNormalizeZeroVector(t *testing.T) {
	v := Normalize([]float32{0, 0, 0})
	require.Equal(t, []float32{0, 0, 0}, v)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := []float32{2, 0}
	_ = Normalize(in)
	require.Equal(t, []float32{2, 0}, in)
}

func TestCosine(t *testing.T) {
	require.InDelta(t, 1.0, float64(Cosine([]float32{1, 0}, []float32{2, 0})), 1e-6)
	require.InDelta(t, 0.0, float64(Cosine([]float32{1, 0}, []float32{0, 5})), 1e-6)
	require.InDelta(t, -1.0, float64(Cosine([]float32{1, 0}, []float32{-3, 0})), 1e-6)
	require.Equal(t, float32(0), Cosine([]float32{0, 0}, []float32{1, 1}))
}

func TestDotPanicsOnDimensionMismatch(t *testing.T) {
	require.Panics(t, func() { Dot([]float32{1}, []float32{1, 2}) })
}
