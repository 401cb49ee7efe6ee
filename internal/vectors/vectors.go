// Package vectors provides the small amount of vector math the curation
// pipeline needs: L2 normalization and cosine similarity over embeddings.
package vectors

import "math"

// Norm returns the L2 norm of v.
func Norm(v []float32) float32 {
	var sum float32
	for _, x := range v {
		sum += x * x
	}
	return float32(math.Sqrt(float64(sum)))
}

// Normalize returns a copy of v scaled to unit L2 norm.
// A zero vector is returned unchanged.
func Normalize(v []float32) []float32 {
	out := make([]float32, len(v))
	n := Norm(v)
	if n == 0 {
		copy(out, v)
		return out
	}
	for i, x := range v {
		out[i] = x / n
	}
	return out
}

// Dot returns the dot product of a and b. Panics if lengths differ.
func Dot(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("vectors: dimension mismatch")
	}
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Cosine returns the cosine similarity of a and b.
// For unit vectors this equals Dot.
func Cosine(a, b []float32) float32 {
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return Dot(a, b) / (na * nb)
}
