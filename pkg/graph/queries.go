package graph

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.ids)
}

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Stats returns normalisation counters collected by Build.
func (g *Graph) Stats() BuildStats {
	return g.stats
}

// Nodes returns all identifiers in ascending order. The slice is a copy.
func (g *Graph) Nodes() []uint64 {
	out := make([]uint64, len(g.ids))
	copy(out, g.ids)
	return out
}

// HasNode reports whether id is a member of the graph.
func (g *Graph) HasNode(id uint64) bool {
	_, ok := g.index[id]
	return ok
}

// Neighbors returns the neighbors of id in ascending order, or nil when id is
// not a member.
func (g *Graph) Neighbors(id uint64) []uint64 {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	adjacent := g.NeighborIndexes(i)
	out := make([]uint64, len(adjacent))
	for k, j := range adjacent {
		out[k] = g.ids[j]
	}
	return out
}

// Degree returns the number of distinct neighbors of id (0 when absent).
func (g *Graph) Degree(id uint64) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}
	return g.offsets[i+1] - g.offsets[i]
}

// IndexOf returns the dense index for id.
func (g *Graph) IndexOf(id uint64) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// IDAt returns the identifier stored at dense index i.
func (g *Graph) IDAt(i int) uint64 {
	return g.ids[i]
}

// NeighborIndexes returns the dense indexes adjacent to index i.
// The returned slice aliases internal storage and must not be modified.
func (g *Graph) NeighborIndexes(i int) []int {
	return g.targets[g.offsets[i]:g.offsets[i+1]]
}

// DegreeAt returns the degree of the node at dense index i.
func (g *Graph) DegreeAt(i int) int {
	return g.offsets[i+1] - g.offsets[i]
}

// Density returns 2|E| / (N(N-1)), or 0 when the graph has fewer than two nodes.
func (g *Graph) Density() float64 {
	n := len(g.ids)
	if n < 2 {
		return 0.0
	}
	return 2 * float64(g.edges) / (float64(n) * float64(n-1))
}

// MinDegreeNode returns the node with the smallest degree. Ties go to the
// smallest identifier. ok is false for an empty graph.
func (g *Graph) MinDegreeNode() (id uint64, degree int, ok bool) {
	return g.extremeDegree(func(candidate, best int) bool { return candidate < best })
}

// MaxDegreeNode returns the node with the largest degree. Ties go to the
// smallest identifier, as in MinDegreeNode. ok is false for an empty graph.
func (g *Graph) MaxDegreeNode() (id uint64, degree int, ok bool) {
	return g.extremeDegree(func(candidate, best int) bool { return candidate > best })
}

func (g *Graph) extremeDegree(better func(candidate, best int) bool) (uint64, int, bool) {
	if len(g.ids) == 0 {
		return 0, 0, false
	}
	bestIdx, bestDeg := 0, g.DegreeAt(0)
	// ids are ascending, so strict comparison keeps the smallest identifier on ties
	for i := 1; i < len(g.ids); i++ {
		if d := g.DegreeAt(i); better(d, bestDeg) {
			bestIdx, bestDeg = i, d
		}
	}
	return g.ids[bestIdx], bestDeg, true
}
