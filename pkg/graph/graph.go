package graph

import (
	"slices"
)

// Edge is an undirected connection between two node identifiers.
type Edge struct {
	From uint64 `json:"from"`
	To   uint64 `json:"to"`
}

// BuildStats records how the input edge list was normalised.
type BuildStats struct {
	InputEdges       int `json:"input_edges"`
	SelfLoopsDropped int `json:"self_loops_dropped"`
	DuplicateEdges   int `json:"duplicate_edges"`
}

// Graph is an immutable, undirected, simple graph.
//
// Nodes are stored densely: index i in [0, NodeCount) maps to the i-th
// smallest identifier. Adjacency is kept in compressed sparse row form, so
// NeighborIndexes(i) is targets[offsets[i]:offsets[i+1]], sorted ascending.
// A Graph is safe for concurrent readers once Build returns.
type Graph struct {
	ids     []uint64
	index   map[uint64]int
	offsets []int
	targets []int
	edges   int
	stats   BuildStats
}

// Build constructs a graph from an edge list.
//
// Every endpoint becomes a node. Self-loops are dropped, although their
// endpoint is still a node. Repeated edges, in either orientation, collapse
// into one.
func Build(edges []Edge) *Graph {
	g := &Graph{
		index: make(map[uint64]int),
		stats: BuildStats{InputEdges: len(edges)},
	}

	for _, e := range edges {
		g.index[e.From] = 0
		g.index[e.To] = 0
	}

	g.ids = make([]uint64, 0, len(g.index))
	for id := range g.index {
		g.ids = append(g.ids, id)
	}
	slices.Sort(g.ids)
	for i, id := range g.ids {
		g.index[id] = i
	}

	adjacency := make([][]int, len(g.ids))
	for _, e := range edges {
		if e.From == e.To {
			g.stats.SelfLoopsDropped++
			continue
		}
		u, v := g.index[e.From], g.index[e.To]
		adjacency[u] = append(adjacency[u], v)
		adjacency[v] = append(adjacency[v], u)
	}

	g.offsets = make([]int, len(g.ids)+1)
	total := 0
	for i, neighbors := range adjacency {
		slices.Sort(neighbors)
		before := len(neighbors)
		neighbors = slices.Compact(neighbors)
		// each duplicate undirected edge is removed from both endpoints' lists
		g.stats.DuplicateEdges += before - len(neighbors)
		adjacency[i] = neighbors
		total += len(neighbors)
		g.offsets[i+1] = total
	}
	g.stats.DuplicateEdges /= 2

	g.targets = make([]int, 0, total)
	for _, neighbors := range adjacency {
		g.targets = append(g.targets, neighbors...)
	}
	g.edges = total / 2

	return g
}
