// Package sampling selects a bounded, spread-out subset of a project's
// embeddings for human review. The stride baseline stands in for a real
// clustering/diversity algorithm; replacements plug in behind Strategy.
package sampling

// Item is one embedding in the candidate pool.
type Item struct {
	ID     string
	Vector []float32
}

// Strategy picks at most n items from the pool. Implementations must be
// deterministic for a fixed pool ordering and n, return the whole pool when
// it fits within n, and never return duplicates.
type Strategy interface {
	Select(pool []Item, n int) []Item
}

// Stride selects n items spread evenly across the ordered pool at stride
// floor(len(pool)/n), taking indices 0, stride, 2*stride, …
type Stride struct{}

func (Stride) Select(pool []Item, n int) []Item {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if len(pool) <= n {
		out := make([]Item, len(pool))
		copy(out, pool)
		return out
	}

	stride := len(pool) / n
	seen := make(map[int]struct{}, n)
	out := make([]Item, 0, n)
	for i := 0; len(out) < n; i++ {
		idx := i * stride
		if idx >= len(pool) {
			break
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, pool[idx])
	}
	return out
}
