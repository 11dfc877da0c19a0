package analysis

import (
	"time"

	"github.com/dd0wney/cluso-netcentrality/pkg/algorithms"
	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
)

// DegreeExtreme names a node with the smallest or largest degree.
type DegreeExtreme struct {
	NodeID uint64 `json:"node_id"`
	Degree int    `json:"degree"`
}

// GraphSummary describes the shape of a built graph.
type GraphSummary struct {
	Nodes             int     `json:"nodes"`
	Edges             int     `json:"edges"`
	InputEdges        int     `json:"input_edges"`
	SelfLoopsDropped  int     `json:"self_loops_dropped"`
	DuplicateEdges    int     `json:"duplicate_edges"`
	Density           float64 `json:"density"`
	Components        int     `json:"components"`
	LargestComponent  int     `json:"largest_component"`
	Triangles         int     `json:"triangles"`
	AverageClustering float64 `json:"average_clustering"`

	MinDegree *DegreeExtreme `json:"min_degree,omitempty"`
	MaxDegree *DegreeExtreme `json:"max_degree,omitempty"`
}

// Summarize computes the graph summary. Triangle counting dominates at
// O(sum of squared degrees).
func Summarize(g *graph.Graph) GraphSummary {
	stats := g.Stats()
	components := algorithms.ConnectedComponents(g)
	triangles := algorithms.CountTriangles(g)

	summary := GraphSummary{
		Nodes:             g.NodeCount(),
		Edges:             g.EdgeCount(),
		InputEdges:        stats.InputEdges,
		SelfLoopsDropped:  stats.SelfLoopsDropped,
		DuplicateEdges:    stats.DuplicateEdges,
		Density:           g.Density(),
		Components:        components.Count(),
		LargestComponent:  components.LargestSize(),
		Triangles:         triangles.GlobalCount,
		AverageClustering: triangles.AverageClustering,
	}
	if id, degree, ok := g.MinDegreeNode(); ok {
		summary.MinDegree = &DegreeExtreme{NodeID: id, Degree: degree}
	}
	if id, degree, ok := g.MaxDegreeNode(); ok {
		summary.MaxDegree = &DegreeExtreme{NodeID: id, Degree: degree}
	}
	return summary
}

// StageTiming records how long one pipeline stage took.
type StageTiming struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration_ns"`
}

// SeparationVerdict is the outcome of the six-degrees test.
type SeparationVerdict struct {
	Threshold         float64 `json:"threshold"`
	AveragePathLength float64 `json:"average_path_length"`
	Holds             bool    `json:"holds"`
}

// Result is everything one analysis run produces.
type Result struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Workers   int       `json:"workers"`
	Normalize bool      `json:"normalized_betweenness"`

	Graph GraphSummary `json:"graph"`

	DegreeCentrality      map[uint64]float64 `json:"degree_centrality"`
	BetweennessCentrality map[uint64]float64 `json:"betweenness_centrality"`
	ClosenessCentrality   map[uint64]float64 `json:"closeness_centrality"`
	AverageDistance       map[uint64]float64 `json:"average_distance"`

	Paths      algorithms.PathStatistics `json:"path_statistics"`
	SixDegrees SeparationVerdict         `json:"six_degrees"`

	TopDegree      []algorithms.RankedNode `json:"top_degree,omitempty"`
	TopBetweenness []algorithms.RankedNode `json:"top_betweenness,omitempty"`

	Stages []StageTiming `json:"stages"`
}

// Elapsed sums the stage durations.
func (r *Result) Elapsed() time.Duration {
	var total time.Duration
	for _, s := range r.Stages {
		total += s.Duration
	}
	return total
}
