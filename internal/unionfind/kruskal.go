package unionfind

import (
	"cmp"
	"slices"
)

// Edge is a weighted undirected edge between vertices X and Y.
type Edge struct {
	X, Y   int
	Weight int64
}

// MinimumSpanningForest returns the edges of a minimum spanning forest of the
// graph with n vertices, and their total weight. Edges are taken in weight
// order; ties keep their input order. The input slice is not modified.
func MinimumSpanningForest(n int, edges []Edge) ([]Edge, int64, error) {
	sorted := slices.Clone(edges)
	slices.SortStableFunc(sorted, func(a, b Edge) int { return cmp.Compare(a.Weight, b.Weight) })

	u := New(n)
	var (
		forest []Edge
		total  int64
	)
	for _, e := range sorted {
		merged, err := u.Union(e.X, e.Y)
		if err != nil {
			return nil, 0, err
		}
		if merged {
			forest = append(forest, e)
			total += e.Weight
		}
	}
	return forest, total, nil
}

// ConnectWithOffers returns the minimum cost to connect n vertices with
// values when joining x and y costs values[x]+values[y], or the weight of a
// special offer between them when it is cheaper.
func ConnectWithOffers(values []int64, offers []Edge) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}
	best := 0
	for i, v := range values {
		if v < values[best] {
			best = i
		}
	}
	edges := slices.Clone(offers)
	for i, v := range values {
		if i != best {
			edges = append(edges, Edge{X: i, Y: best, Weight: v + values[best]})
		}
	}
	_, total, err := MinimumSpanningForest(len(values), edges)
	return total, err
}
