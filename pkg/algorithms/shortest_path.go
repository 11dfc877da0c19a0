package algorithms

import (
	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
)

// DistanceMap maps every node reached by a traversal to its hop count from
// the source. Nodes in other components are absent.
type DistanceMap map[uint64]int

// PathTree is the shortest-path DAG rooted at Source.
type PathTree struct {
	Source uint64
	// Order lists reached nodes in BFS discovery order, starting with Source.
	Order []uint64
	// Distances holds the hop count to every reached node.
	Distances DistanceMap
	// PathCounts holds σ, the number of distinct shortest paths from Source.
	PathCounts map[uint64]float64
	// Predecessors holds, for each reached node, its immediate predecessors
	// on some shortest path. Source has none.
	Predecessors map[uint64][]uint64
}

// ShortestPaths runs an unweighted breadth-first search from source and
// returns the hop count to every reachable node, including source itself at 0.
func ShortestPaths(g *graph.Graph, source uint64) (DistanceMap, error) {
	s, ok := g.IndexOf(source)
	if !ok {
		return nil, graph.NotFound("ShortestPaths", source)
	}

	ws := newBFSWorkspace(g.NodeCount())
	ws.run(g, s)

	distances := make(DistanceMap, len(ws.order))
	for _, v := range ws.order {
		distances[g.IDAt(v)] = ws.dist[v]
	}
	return distances, nil
}

// ShortestPathTree runs the predecessor-tracking BFS from source.
func ShortestPathTree(g *graph.Graph, source uint64) (*PathTree, error) {
	s, ok := g.IndexOf(source)
	if !ok {
		return nil, graph.NotFound("ShortestPathTree", source)
	}

	ws := newTreeWorkspace(g.NodeCount())
	ws.run(g, s)

	tree := &PathTree{
		Source:       source,
		Order:        make([]uint64, len(ws.order)),
		Distances:    make(DistanceMap, len(ws.order)),
		PathCounts:   make(map[uint64]float64, len(ws.order)),
		Predecessors: make(map[uint64][]uint64, len(ws.order)),
	}
	for i, v := range ws.order {
		id := g.IDAt(v)
		tree.Order[i] = id
		tree.Distances[id] = ws.dist[v]
		tree.PathCounts[id] = ws.sigma[v]

		preds := make([]uint64, len(ws.pred[v]))
		for k, p := range ws.pred[v] {
			preds[k] = g.IDAt(p)
		}
		tree.Predecessors[id] = preds
	}
	return tree, nil
}

// bfsWorkspace holds the buffers of a plain BFS so a worker can reuse them
// across sources. dist is -1 for unvisited nodes; order is both the FIFO
// queue and the discovery order.
type bfsWorkspace struct {
	dist  []int
	order []int
}

func newBFSWorkspace(n int) *bfsWorkspace {
	ws := &bfsWorkspace{
		dist:  make([]int, n),
		order: make([]int, 0, n),
	}
	for i := range ws.dist {
		ws.dist[i] = -1
	}
	return ws
}

func (ws *bfsWorkspace) run(g *graph.Graph, source int) {
	ws.runLimited(g, source, -1)
}

// runLimited stops expanding at maxDepth hops; a negative maxDepth means no
// limit.
func (ws *bfsWorkspace) runLimited(g *graph.Graph, source, maxDepth int) {
	// only nodes touched by the previous run need resetting
	for _, v := range ws.order {
		ws.dist[v] = -1
	}

	ws.dist[source] = 0
	ws.order = append(ws.order[:0], source)

	for head := 0; head < len(ws.order); head++ {
		current := ws.order[head]
		if maxDepth >= 0 && ws.dist[current] >= maxDepth {
			continue
		}
		next := ws.dist[current] + 1
		for _, neighbor := range g.NeighborIndexes(current) {
			if ws.dist[neighbor] < 0 {
				ws.dist[neighbor] = next
				ws.order = append(ws.order, neighbor)
			}
		}
	}
}

// treeWorkspace extends the BFS buffers with σ, δ and predecessor lists for
// Brandes' algorithm.
type treeWorkspace struct {
	dist  []int
	sigma []float64
	delta []float64
	pred  [][]int
	order []int
}

func newTreeWorkspace(n int) *treeWorkspace {
	ws := &treeWorkspace{
		dist:  make([]int, n),
		sigma: make([]float64, n),
		delta: make([]float64, n),
		pred:  make([][]int, n),
		order: make([]int, 0, n),
	}
	for i := range ws.dist {
		ws.dist[i] = -1
	}
	return ws
}

func (ws *treeWorkspace) run(g *graph.Graph, source int) {
	for _, v := range ws.order {
		ws.dist[v] = -1
		ws.sigma[v] = 0
		ws.delta[v] = 0
		ws.pred[v] = ws.pred[v][:0]
	}

	ws.dist[source] = 0
	ws.sigma[source] = 1
	ws.order = append(ws.order[:0], source)

	for head := 0; head < len(ws.order); head++ {
		current := ws.order[head]
		next := ws.dist[current] + 1
		for _, neighbor := range g.NeighborIndexes(current) {
			if ws.dist[neighbor] < 0 {
				ws.dist[neighbor] = next
				ws.order = append(ws.order, neighbor)
			}
			if ws.dist[neighbor] == next {
				ws.sigma[neighbor] += ws.sigma[current]
				ws.pred[neighbor] = append(ws.pred[neighbor], current)
			}
		}
	}
}

// accumulate runs the reverse dependency pass for the tree rooted at source
// and adds each node's dependency to totals. Nodes are processed in reverse
// discovery order, so every successor of a node is finished before the node
// itself.
func (ws *treeWorkspace) accumulate(source int, totals []float64) {
	for i := len(ws.order) - 1; i >= 0; i-- {
		w := ws.order[i]
		for _, v := range ws.pred[w] {
			ws.delta[v] += (ws.sigma[v] / ws.sigma[w]) * (1 + ws.delta[w])
		}
		if w != source {
			totals[w] += ws.delta[w]
		}
	}
}
