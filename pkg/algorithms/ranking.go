package algorithms

import (
	"container/heap"
	"sort"
)

// RankedNode represents a node with its score.
type RankedNode struct {
	NodeID uint64  `json:"node_id"`
	Score  float64 `json:"score"`
}

// outranks orders by score descending, then by identifier ascending so that
// rankings are deterministic.
func outranks(a, b RankedNode) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.NodeID < b.NodeID
}

// rankedNodeHeap is a min-heap: the root is the weakest node kept so far.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int           { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool { return outranks(h[j], h[i]) }
func (h rankedNodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopNodes returns the n highest-scoring nodes, best first.
// Time complexity: O(m log n) where m = len(scores).
func TopNodes(scores map[uint64]float64, n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)

	for nodeID, score := range scores {
		candidate := RankedNode{NodeID: nodeID, Score: score}
		if h.Len() < n {
			heap.Push(&h, candidate)
		} else if outranks(candidate, h[0]) {
			heap.Pop(&h)
			heap.Push(&h, candidate)
		}
	}

	result := make([]RankedNode, h.Len())
	copy(result, h)
	sort.Slice(result, func(i, j int) bool {
		return outranks(result[i], result[j])
	})
	return result
}
