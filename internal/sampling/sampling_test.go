package sampling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func pool(size int) []Item {
	items := make([]Item, size)
	for i := range items {
		items[i] = Item{ID: fmt.Sprintf("img-%03d", i), Vector: []float32{float32(i)}}
	}
	return items
}

func TestStrideReturnsWholePoolWhenItFits(t *testing.T) {
	s := Stride{}
	p := pool(4)

	got := s.Select(p, 4)
	require.Equal(t, p, got)

	got = s.Select(p, 10)
	require.Equal(t, p, got)
}

func TestStrideSpreadsAcrossPool(t *testing.T) {
	s := Stride{}

	// 10 items, 3 requested: stride 3, indices 0, 3, 6.
	got := s.Select(pool(10), 3)
	require.Len(t, got, 3)
	require.Equal(t, "img-000", got[0].ID)
	require.Equal(t, "img-003", got[1].ID)
	require.Equal(t, "img-006", got[2].ID)
}

func TestStrideDeterministic(t *testing.T) {
	s := Stride{}
	p := pool(25)
	first := s.Select(p, 7)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, s.Select(p, 7))
	}
}

func TestStrideBoundedOutput(t *testing.T) {
	s := Stride{}
	for size := 1; size <= 40; size++ {
		for n := 0; n <= 12; n++ {
			got := s.Select(pool(size), n)
			require.LessOrEqual(t, len(got), n, "size=%d n=%d", size, n)
			if n > 0 {
				require.NotEmpty(t, got, "size=%d n=%d", size, n)
			}
			ids := make(map[string]struct{}, len(got))
			for _, item := range got {
				ids[item.ID] = struct{}{}
			}
			require.Len(t, ids, len(got), "duplicates for size=%d n=%d", size, n)
		}
	}
}

func TestStrideEdgeCases(t *testing.T) {
	s := Stride{}
	require.Empty(t, s.Select(nil, 5))
	require.Empty(t, s.Select(pool(5), 0))
	require.Empty(t, s.Select(pool(5), -1))
	require.Empty(t, s.Select(nil, 0))
}
