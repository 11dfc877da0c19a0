package algorithms

import (
	"fmt"
	"slices"

	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
)

// KHopOptions configures the k-hop neighbourhood traversal.
type KHopOptions struct {
	MaxHops    int // must be >= 1
	MaxResults int // 0 = unlimited; BFS order gives closer nodes priority
}

// KHopResult holds the BFS neighbourhood of a source node.
type KHopResult struct {
	Source         uint64           `json:"source"`
	ByHop          map[int][]uint64 `json:"by_hop"` // hop distance → node IDs, ascending
	Distances      DistanceMap      `json:"distances"`
	TotalReachable int              `json:"total_reachable"`
	// Truncated is set when MaxResults cut the neighbourhood short.
	Truncated bool `json:"truncated"`
}

// DefaultKHopOptions returns sensible defaults.
func DefaultKHopOptions() KHopOptions {
	return KHopOptions{
		MaxHops: 2,
	}
}

// KHopNeighbours performs a BFS from source up to MaxHops levels, returning
// all discovered nodes grouped by distance. The source is never included.
func KHopNeighbours(g *graph.Graph, source uint64, opts KHopOptions) (*KHopResult, error) {
	if opts.MaxHops < 1 {
		return nil, fmt.Errorf("MaxHops must be >= 1, got %d", opts.MaxHops)
	}
	s, ok := g.IndexOf(source)
	if !ok {
		return nil, graph.NotFound("KHopNeighbours", source)
	}

	ws := newBFSWorkspace(g.NodeCount())
	ws.runLimited(g, s, opts.MaxHops)

	reached := ws.order[1:]
	result := &KHopResult{
		Source:    source,
		ByHop:     make(map[int][]uint64),
		Distances: make(DistanceMap, len(reached)),
	}
	if opts.MaxResults > 0 && len(reached) > opts.MaxResults {
		reached = reached[:opts.MaxResults]
		result.Truncated = true
	}

	for _, v := range reached {
		id := g.IDAt(v)
		hop := ws.dist[v]
		result.Distances[id] = hop
		result.ByHop[hop] = append(result.ByHop[hop], id)
	}
	for _, ids := range result.ByHop {
		slices.Sort(ids)
	}
	result.TotalReachable = len(reached)
	return result, nil
}
