package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
)

// Component is one connected component.
type Component struct {
	ID    int      `json:"id"`
	Nodes []uint64 `json:"nodes"`
}

// ComponentsResult describes the connected components of a graph.
type ComponentsResult struct {
	// Components are ordered by size descending, then by smallest member.
	Components    []Component    `json:"components"`
	NodeComponent map[uint64]int `json:"-"`
}

// Count returns the number of components.
func (r *ComponentsResult) Count() int {
	return len(r.Components)
}

// LargestSize returns the size of the largest component (0 for an empty graph).
func (r *ComponentsResult) LargestSize() int {
	if len(r.Components) == 0 {
		return 0
	}
	return len(r.Components[0].Nodes)
}

// ConnectedComponents finds all connected components with one BFS per
// unvisited node.
func ConnectedComponents(g *graph.Graph) *ComponentsResult {
	n := g.NodeCount()
	ws := newBFSWorkspace(n)
	visited := make([]bool, n)
	components := make([]Component, 0)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		ws.run(g, start)
		members := make([]uint64, len(ws.order))
		for i, v := range ws.order {
			visited[v] = true
			members[i] = g.IDAt(v)
		}
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		components = append(components, Component{Nodes: members})
	}

	// starts are visited in ascending identifier order, so a stable sort by
	// size keeps ties ordered by smallest member
	sort.SliceStable(components, func(i, j int) bool {
		return len(components[i].Nodes) > len(components[j].Nodes)
	})

	nodeComponent := make(map[uint64]int, n)
	for id := range components {
		components[id].ID = id
		for _, node := range components[id].Nodes {
			nodeComponent[node] = id
		}
	}

	return &ComponentsResult{
		Components:    components,
		NodeComponent: nodeComponent,
	}
}
