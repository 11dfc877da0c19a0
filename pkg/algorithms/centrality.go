package algorithms

import (
	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
	"github.com/dd0wney/cluso-netcentrality/pkg/parallel"
)

// BetweennessOptions configures BetweennessCentrality.
type BetweennessOptions struct {
	// Workers is the number of parallel source partitions; <= 0 means NumCPU.
	Workers int
	// Normalize scales scores by 2/((N-1)(N-2)) so they fall in [0, 1].
	Normalize bool
}

// DefaultBetweennessOptions returns raw (unnormalised) scores using every CPU.
func DefaultBetweennessOptions() BetweennessOptions {
	return BetweennessOptions{}
}

// DegreeCentrality computes degree(v) / (N-1) for every node.
// When the graph has a single node its score is 0.
func DegreeCentrality(g *graph.Graph) map[uint64]float64 {
	n := g.NodeCount()
	degree := make(map[uint64]float64, n)

	for i := 0; i < n; i++ {
		if n > 1 {
			degree[g.IDAt(i)] = float64(g.DegreeAt(i)) / float64(n-1)
		} else {
			degree[g.IDAt(i)] = 0.0
		}
	}

	return degree
}

// BetweennessCentrality computes exact betweenness centrality with Brandes'
// algorithm for unweighted undirected graphs.
//
// For each source a BFS records σ (shortest-path counts), predecessor sets
// and discovery order; a second pass over the reverse order accumulates
// δ(v) += σ(v)/σ(w) · (1 + δ(w)) for every predecessor v of w. Summing δ over
// all sources counts each unordered pair twice, so totals are halved.
//
// Accumulating on the forward BFS frontier without that reverse pass does
// not yield betweenness and must not be substituted here.
func BetweennessCentrality(g *graph.Graph, opts BetweennessOptions) (map[uint64]float64, error) {
	n := g.NodeCount()
	scores := make(map[uint64]float64, n)
	if n == 0 {
		return scores, nil
	}

	totals, err := brandes(g, opts.Workers)
	if err != nil {
		return nil, err
	}

	scale := 0.5
	if opts.Normalize && n > 2 {
		scale *= 2.0 / (float64(n-1) * float64(n-2))
	}
	for i, total := range totals {
		scores[g.IDAt(i)] = total * scale
	}

	return scores, nil
}

// brandes returns the unhalved dependency totals indexed densely. Sources
// are split into contiguous partitions; each partition accumulates into its
// own buffer and the buffers are summed in partition order.
func brandes(g *graph.Graph, workers int) ([]float64, error) {
	n := g.NodeCount()
	ranges := parallel.Partition(n, parallel.ResolveWorkers(workers))
	partials := make([][]float64, len(ranges))

	err := parallel.RunPartitions(ranges, func(part int, r parallel.Range) {
		totals := make([]float64, n)
		ws := newTreeWorkspace(n)
		for source := r.Lo; source < r.Hi; source++ {
			ws.run(g, source)
			ws.accumulate(source, totals)
		}
		partials[part] = totals
	})
	if err != nil {
		return nil, err
	}

	merged := partials[0]
	for _, partial := range partials[1:] {
		for i, v := range partial {
			merged[i] += v
		}
	}
	return merged, nil
}
