package algorithms

import "github.com/dd0wney/cluso-netcentrality/pkg/graph"

// TriangleCountResult holds triangle counting results including per-node counts,
// global count and clustering coefficients.
type TriangleCountResult struct {
	PerNode                map[uint64]int
	GlobalCount            int
	ClusteringCoefficients map[uint64]float64
	// AverageClustering is the mean local coefficient over all nodes.
	AverageClustering float64
}

// CountTriangles enumerates each triangle u < v < w exactly once by
// intersecting the sorted neighbour lists of u and v above v.
// Clustering coefficients are computed in the same pass.
func CountTriangles(g *graph.Graph) *TriangleCountResult {
	n := g.NodeCount()
	counts := make([]int, n)
	global := 0

	for u := 0; u < n; u++ {
		nu := g.NeighborIndexes(u)
		for _, v := range nu {
			if v <= u {
				continue
			}
			nv := g.NeighborIndexes(v)
			i, j := 0, 0
			for i < len(nu) && j < len(nv) {
				switch {
				case nu[i] < nv[j]:
					i++
				case nu[i] > nv[j]:
					j++
				default:
					if w := nu[i]; w > v {
						counts[u]++
						counts[v]++
						counts[w]++
						global++
					}
					i++
					j++
				}
			}
		}
	}

	result := &TriangleCountResult{
		PerNode:                make(map[uint64]int, n),
		GlobalCount:            global,
		ClusteringCoefficients: make(map[uint64]float64, n),
	}
	var sum float64
	for i := 0; i < n; i++ {
		id := g.IDAt(i)
		result.PerNode[id] = counts[i]

		k := g.DegreeAt(i)
		if k < 2 {
			result.ClusteringCoefficients[id] = 0.0
			continue
		}
		possible := k * (k - 1) / 2
		c := float64(counts[i]) / float64(possible)
		result.ClusteringCoefficients[id] = c
		sum += c
	}
	if n > 0 {
		result.AverageClustering = sum / float64(n)
	}
	return result
}
