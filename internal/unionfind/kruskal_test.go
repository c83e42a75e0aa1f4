package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimumSpanningForest(t *testing.T) {
	t.Parallel()
	edges := []Edge{
		{0, 1, 4}, {0, 2, 1}, {1, 2, 2}, {1, 3, 5}, {2, 3, 8}, {4, 5, 3},
	}
	forest, total, err := MinimumSpanningForest(6, edges)
	require.NoError(t, err)

	assert.Equal(t, int64(1+2+5+3), total)
	assert.Len(t, forest, 4, "two components leave a forest of n-2 edges")
	assert.Equal(t, Edge{0, 2, 1}, edges[1], "input is not reordered")
}

func TestMinimumSpanningForest_InvalidEdge(t *testing.T) {
	t.Parallel()
	_, _, err := MinimumSpanningForest(2, []Edge{{0, 3, 1}})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestConnectWithOffers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []int64
		offers []Edge
		want   int64
	}{
		{"no vertices", nil, nil, 0},
		{"single vertex", []int64{7}, nil, 0},
		{"offers beat the cheapest hub", []int64{1, 3, 3}, []Edge{{1, 2, 5}, {1, 0, 1}}, 5},
		{"no offers", []int64{1, 3, 3, 7}, nil, 16},
		{"hub only", []int64{1, 2, 3, 4, 5}, []Edge{{0, 1, 10}, {0, 2, 10}}, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ConnectWithOffers(tt.values, tt.offers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
