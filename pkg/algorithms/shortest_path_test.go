package algorithms

import (
	"errors"
	"slices"
	"testing"

	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
)

func assertDistances(t *testing.T, got, want DistanceMap) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d reached nodes, got %d: %v", len(want), len(got), got)
	}
	for id, d := range want {
		if gd, ok := got[id]; !ok || gd != d {
			t.Errorf("dist(%d) = %d (present=%v), want %d", id, gd, ok, d)
		}
	}
}

// TestShortestPaths_PathGraph tests BFS along 1-2-3-4-5-6
func TestShortestPaths_PathGraph(t *testing.T) {
	g := pathGraph(t, 6)

	dist, err := ShortestPaths(g, 1)
	if err != nil {
		t.Fatalf("ShortestPaths failed: %v", err)
	}

	assertDistances(t, dist, DistanceMap{1: 0, 2: 1, 3: 2, 4: 3, 5: 4, 6: 5})
}

// TestShortestPaths_WithShortcut tests BFS where two nodes share a level
func TestShortestPaths_WithShortcut(t *testing.T) {
	g := buildTestGraph(t, [2]uint64{1, 2}, [2]uint64{2, 3}, [2]uint64{2, 4}, [2]uint64{3, 4}, [2]uint64{4, 5}, [2]uint64{5, 6})

	dist, err := ShortestPaths(g, 1)
	if err != nil {
		t.Fatalf("ShortestPaths failed: %v", err)
	}

	assertDistances(t, dist, DistanceMap{1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 6: 4})
}

// TestShortestPaths_Disconnected tests that other components are absent
func TestShortestPaths_Disconnected(t *testing.T) {
	g := buildTestGraph(t, [2]uint64{1, 2}, [2]uint64{3, 4})

	dist, err := ShortestPaths(g, 1)
	if err != nil {
		t.Fatalf("ShortestPaths failed: %v", err)
	}

	assertDistances(t, dist, DistanceMap{1: 0, 2: 1})
	if _, ok := dist[3]; ok {
		t.Error("Node 3 is in another component and must be absent")
	}
}

// TestShortestPaths_IsolatedNode tests a node kept only through a self-loop
func TestShortestPaths_IsolatedNode(t *testing.T) {
	g := buildTestGraph(t, [2]uint64{9, 9}, [2]uint64{1, 2})

	dist, err := ShortestPaths(g, 9)
	if err != nil {
		t.Fatalf("ShortestPaths failed: %v", err)
	}
	assertDistances(t, dist, DistanceMap{9: 0})
}

func TestShortestPaths_UnknownSource(t *testing.T) {
	g := pathGraph(t, 3)

	_, err := ShortestPaths(g, 42)
	if !errors.Is(err, graph.ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound, got %v", err)
	}

	_, err = ShortestPathTree(g, 42)
	if !errors.Is(err, graph.ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound from ShortestPathTree, got %v", err)
	}
}

// TestShortestPaths_Symmetric tests dist(u,v) == dist(v,u)
func TestShortestPaths_Symmetric(t *testing.T) {
	g := buildTestGraph(t,
		[2]uint64{1, 2}, [2]uint64{2, 3}, [2]uint64{3, 4}, [2]uint64{4, 1},
		[2]uint64{4, 5}, [2]uint64{5, 6}, [2]uint64{2, 6}, [2]uint64{7, 8},
	)

	all := make(map[uint64]DistanceMap)
	for _, id := range g.Nodes() {
		dist, err := ShortestPaths(g, id)
		if err != nil {
			t.Fatalf("ShortestPaths(%d) failed: %v", id, err)
		}
		all[id] = dist
	}

	for u, du := range all {
		for v, d := range du {
			if all[v][u] != d {
				t.Errorf("dist(%d,%d)=%d but dist(%d,%d)=%d", u, v, d, v, u, all[v][u])
			}
		}
	}
}

// TestShortestPathTree_Diamond tests σ and predecessor tracking
func TestShortestPathTree_Diamond(t *testing.T) {
	// 1 reaches 4 through both 2 and 3
	g := buildTestGraph(t, [2]uint64{1, 2}, [2]uint64{1, 3}, [2]uint64{2, 4}, [2]uint64{3, 4}, [2]uint64{4, 5})

	tree, err := ShortestPathTree(g, 1)
	if err != nil {
		t.Fatalf("ShortestPathTree failed: %v", err)
	}

	if tree.Order[0] != 1 {
		t.Errorf("Expected source first in order, got %v", tree.Order)
	}
	if !slices.Equal(tree.Order, []uint64{1, 2, 3, 4, 5}) {
		t.Errorf("Order = %v, want [1 2 3 4 5]", tree.Order)
	}

	wantSigma := map[uint64]float64{1: 1, 2: 1, 3: 1, 4: 2, 5: 2}
	for id, want := range wantSigma {
		if tree.PathCounts[id] != want {
			t.Errorf("σ(%d) = %v, want %v", id, tree.PathCounts[id], want)
		}
	}

	if got := tree.Predecessors[4]; !slices.Equal(got, []uint64{2, 3}) {
		t.Errorf("pred(4) = %v, want [2 3]", got)
	}
	if got := tree.Predecessors[1]; len(got) != 0 {
		t.Errorf("pred(source) = %v, want empty", got)
	}
	assertDistances(t, tree.Distances, DistanceMap{1: 0, 2: 1, 3: 1, 4: 2, 5: 3})
}

// TestTreeWorkspace_Reuse tests that a workspace gives identical results
// when reused across sources
func TestTreeWorkspace_Reuse(t *testing.T) {
	g := buildTestGraph(t, [2]uint64{1, 2}, [2]uint64{1, 3}, [2]uint64{2, 4}, [2]uint64{3, 4}, [2]uint64{6, 7})
	shared := newTreeWorkspace(g.NodeCount())

	for s := 0; s < g.NodeCount(); s++ {
		fresh := newTreeWorkspace(g.NodeCount())
		fresh.run(g, s)
		shared.run(g, s)

		if !slices.Equal(fresh.order, shared.order) {
			t.Fatalf("source %d: order differs %v vs %v", s, fresh.order, shared.order)
		}
		for _, v := range fresh.order {
			if fresh.sigma[v] != shared.sigma[v] || fresh.dist[v] != shared.dist[v] {
				t.Errorf("source %d node %d: σ/dist differ after reuse", s, v)
			}
			if !slices.Equal(fresh.pred[v], shared.pred[v]) {
				t.Errorf("source %d node %d: pred %v vs %v", s, v, fresh.pred[v], shared.pred[v])
			}
		}
	}
}

func BenchmarkShortestPaths(b *testing.B) {
	g := pathGraph(b, 2000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ShortestPaths(g, 1); err != nil {
			b.Fatal(err)
		}
	}
}
