package algorithms

import (
	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
	"github.com/dd0wney/cluso-netcentrality/pkg/parallel"
)

// PathOptions configures the all-sources BFS sweep.
type PathOptions struct {
	// Workers is the number of parallel source partitions; <= 0 means NumCPU.
	Workers int
}

// PathStatistics summarises shortest-path lengths over every ordered pair of
// distinct, mutually reachable nodes.
type PathStatistics struct {
	// AveragePathLength is TotalPathLength / ReachablePairs.
	AveragePathLength float64 `json:"average_path_length"`
	// AverageDegreesOfSeparation is the mean, over sources that reach at
	// least one other node, of that source's own mean distance. It differs
	// from AveragePathLength when components have unequal sizes.
	AverageDegreesOfSeparation float64 `json:"average_degrees_of_separation"`
	TotalPathLength            uint64  `json:"total_path_length"`
	ReachablePairs             uint64  `json:"reachable_pairs"`
	// ConnectedSources counts sources that reach at least one other node.
	ConnectedSources int `json:"connected_sources"`
	// Overflowed is set when TotalPathLength or ReachablePairs saturated.
	// The averages are computed from float64 sums and remain valid.
	Overflowed bool `json:"overflowed"`
}

// pathPartial is the private accumulator of one source partition.
type pathPartial struct {
	total      uint64
	pairs      uint64
	overflowed bool

	lengthSum float64
	pairSum   float64
	meanSum   float64
	connected int
}

func (p *pathPartial) addSource(sum uint64, reached int) {
	var of bool
	p.total, of = addSaturating(p.total, sum)
	p.overflowed = p.overflowed || of
	p.pairs, of = addSaturating(p.pairs, uint64(reached))
	p.overflowed = p.overflowed || of

	p.lengthSum += float64(sum)
	p.pairSum += float64(reached)
	p.meanSum += float64(sum) / float64(reached)
	p.connected++
}

func (p *pathPartial) merge(other pathPartial) {
	var of bool
	p.total, of = addSaturating(p.total, other.total)
	p.overflowed = p.overflowed || of || other.overflowed
	p.pairs, of = addSaturating(p.pairs, other.pairs)
	p.overflowed = p.overflowed || of

	p.lengthSum += other.lengthSum
	p.pairSum += other.pairSum
	p.meanSum += other.meanSum
	p.connected += other.connected
}

func (p pathPartial) statistics() PathStatistics {
	stats := PathStatistics{
		TotalPathLength:  p.total,
		ReachablePairs:   p.pairs,
		ConnectedSources: p.connected,
		Overflowed:       p.overflowed,
	}
	if p.pairSum > 0 {
		stats.AveragePathLength = p.lengthSum / p.pairSum
	}
	if p.connected > 0 {
		stats.AverageDegreesOfSeparation = p.meanSum / float64(p.connected)
	}
	return stats
}

// sweep runs a BFS from every node. Per-source distance sums and reached
// counts are stored densely in sums/reached when those are non-nil.
func sweep(g *graph.Graph, workers int, sums []uint64, reached []int) (pathPartial, error) {
	n := g.NodeCount()
	ranges := parallel.Partition(n, parallel.ResolveWorkers(workers))
	partials := make([]pathPartial, len(ranges))

	err := parallel.RunPartitions(ranges, func(part int, r parallel.Range) {
		acc := &partials[part]
		ws := newBFSWorkspace(n)
		for source := r.Lo; source < r.Hi; source++ {
			ws.run(g, source)

			var sum uint64
			for _, v := range ws.order[1:] {
				// a single distance is at most N-1, so this cannot wrap
				// for any graph that fits in memory
				sum += uint64(ws.dist[v])
			}
			count := len(ws.order) - 1

			if sums != nil {
				sums[source] = sum
				reached[source] = count
			}
			if count > 0 {
				acc.addSource(sum, count)
			}
		}
	})
	if err != nil {
		return pathPartial{}, err
	}

	var merged pathPartial
	for _, p := range partials {
		merged.merge(p)
	}
	return merged, nil
}

// ComputePathStatistics runs a BFS from every node and aggregates the
// distances. Graphs without edges yield zero averages.
func ComputePathStatistics(g *graph.Graph, opts PathOptions) (PathStatistics, error) {
	merged, err := sweep(g, opts.Workers, nil, nil)
	if err != nil {
		return PathStatistics{}, err
	}
	return merged.statistics(), nil
}

// PathProfile is the result of a single all-sources sweep: the global
// statistics plus per-node distance summaries.
type PathProfile struct {
	Stats PathStatistics
	// AverageDistance holds nodes that reach at least one other node.
	AverageDistance map[uint64]float64
	// Closeness is reachable / total distance within the node's component;
	// isolated nodes score 0.
	Closeness map[uint64]float64
}

// ProfilePaths runs one BFS per node and derives every distance-based
// measure from that sweep.
func ProfilePaths(g *graph.Graph, opts PathOptions) (*PathProfile, error) {
	n := g.NodeCount()
	sums := make([]uint64, n)
	reached := make([]int, n)
	merged, err := sweep(g, opts.Workers, sums, reached)
	if err != nil {
		return nil, err
	}

	profile := &PathProfile{
		Stats:           merged.statistics(),
		AverageDistance: make(map[uint64]float64, n),
		Closeness:       make(map[uint64]float64, n),
	}
	for i := 0; i < n; i++ {
		id := g.IDAt(i)
		if reached[i] == 0 {
			profile.Closeness[id] = 0.0
			continue
		}
		profile.AverageDistance[id] = float64(sums[i]) / float64(reached[i])
		profile.Closeness[id] = float64(reached[i]) / float64(sums[i])
	}
	return profile, nil
}

// AverageDistances returns, for each node that reaches at least one other
// node, the mean hop count to the nodes it reaches.
func AverageDistances(g *graph.Graph, opts PathOptions) (map[uint64]float64, error) {
	profile, err := ProfilePaths(g, opts)
	if err != nil {
		return nil, err
	}
	return profile.AverageDistance, nil
}

// ClosenessCentrality computes reachable / total distance for every node,
// restricted to the node's own component. Isolated nodes score 0.
func ClosenessCentrality(g *graph.Graph, opts PathOptions) (map[uint64]float64, error) {
	profile, err := ProfilePaths(g, opts)
	if err != nil {
		return nil, err
	}
	return profile.Closeness, nil
}
