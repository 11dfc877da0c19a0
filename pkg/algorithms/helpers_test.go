package algorithms

import (
	"math"
	"testing"

	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
)

// buildTestGraph creates a graph from (from, to) pairs
func buildTestGraph(t testing.TB, pairs ...[2]uint64) *graph.Graph {
	t.Helper()
	edges := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = graph.Edge{From: p[0], To: p[1]}
	}
	return graph.Build(edges)
}

// starGraph returns a star with centre 0 and leaves 1..k
func starGraph(t testing.TB, k int) *graph.Graph {
	t.Helper()
	pairs := make([][2]uint64, k)
	for i := 0; i < k; i++ {
		pairs[i] = [2]uint64{0, uint64(i + 1)}
	}
	return buildTestGraph(t, pairs...)
}

// pathGraph returns 1-2-...-n
func pathGraph(t testing.TB, n int) *graph.Graph {
	t.Helper()
	pairs := make([][2]uint64, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]uint64{uint64(i), uint64(i + 1)})
	}
	return buildTestGraph(t, pairs...)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}
