package algorithms

import (
	"math"
	"testing"

	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
)

// TestPathStatistics_PathGraph tests the 6-node path: 70 / 30 = 7/3
func TestPathStatistics_PathGraph(t *testing.T) {
	stats, err := ComputePathStatistics(pathGraph(t, 6), PathOptions{})
	if err != nil {
		t.Fatalf("ComputePathStatistics failed: %v", err)
	}

	if !approxEqual(stats.AveragePathLength, 7.0/3.0) {
		t.Errorf("AveragePathLength = %f, want %f", stats.AveragePathLength, 7.0/3.0)
	}
	if !approxEqual(stats.AverageDegreesOfSeparation, 7.0/3.0) {
		t.Errorf("AverageDegreesOfSeparation = %f, want %f", stats.AverageDegreesOfSeparation, 7.0/3.0)
	}
	if stats.TotalPathLength != 70 || stats.ReachablePairs != 30 {
		t.Errorf("Totals = (%d, %d), want (70, 30)", stats.TotalPathLength, stats.ReachablePairs)
	}
	if stats.ConnectedSources != 6 {
		t.Errorf("ConnectedSources = %d, want 6", stats.ConnectedSources)
	}
	if stats.Overflowed {
		t.Error("Unexpected overflow flag")
	}
	if !ValidateSixDegrees(stats.AveragePathLength) {
		t.Error("Expected six-degrees validation to pass")
	}
}

// TestPathStatistics_Disconnected tests that only reachable pairs count and
// that the two averages diverge for unequal components
func TestPathStatistics_Disconnected(t *testing.T) {
	g := buildTestGraph(t, [2]uint64{1, 2}, [2]uint64{3, 4}, [2]uint64{4, 5})

	stats, err := ComputePathStatistics(g, PathOptions{Workers: 2})
	if err != nil {
		t.Fatalf("ComputePathStatistics failed: %v", err)
	}

	// {1,2}: 2 pairs summing 2; {3,4,5}: 6 pairs summing 8
	if stats.ReachablePairs != 8 || stats.TotalPathLength != 10 {
		t.Errorf("Totals = (%d, %d), want (10, 8)", stats.TotalPathLength, stats.ReachablePairs)
	}
	if !approxEqual(stats.AveragePathLength, 1.25) {
		t.Errorf("AveragePathLength = %f, want 1.25", stats.AveragePathLength)
	}
	// per-node means 1, 1, 1.5, 1, 1.5
	if !approxEqual(stats.AverageDegreesOfSeparation, 1.2) {
		t.Errorf("AverageDegreesOfSeparation = %f, want 1.2", stats.AverageDegreesOfSeparation)
	}
}

// TestPathStatistics_Degenerate tests graphs that have no reachable pairs
func TestPathStatistics_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		g    *graph.Graph
	}{
		{"empty", graph.Build(nil)},
		{"single node", buildTestGraph(t, [2]uint64{4, 4})},
		{"isolated nodes", buildTestGraph(t, [2]uint64{4, 4}, [2]uint64{5, 5})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := ComputePathStatistics(tt.g, PathOptions{})
			if err != nil {
				t.Fatalf("ComputePathStatistics failed: %v", err)
			}
			if stats.AveragePathLength != 0 || stats.AverageDegreesOfSeparation != 0 {
				t.Errorf("Expected zero averages, got %+v", stats)
			}
			if math.IsNaN(stats.AveragePathLength) {
				t.Error("AveragePathLength is NaN")
			}
		})
	}
}

// TestPathStatistics_IsolatedNodeSkipped tests that a source reaching nobody
// does not drag the per-node average down
func TestPathStatistics_IsolatedNodeSkipped(t *testing.T) {
	g := buildTestGraph(t, [2]uint64{1, 2}, [2]uint64{2, 3}, [2]uint64{9, 9})

	stats, err := ComputePathStatistics(g, PathOptions{})
	if err != nil {
		t.Fatalf("ComputePathStatistics failed: %v", err)
	}

	// means: 1.5, 1, 1.5
	if !approxEqual(stats.AverageDegreesOfSeparation, 4.0/3.0) {
		t.Errorf("AverageDegreesOfSeparation = %f, want %f", stats.AverageDegreesOfSeparation, 4.0/3.0)
	}
	if stats.ConnectedSources != 3 {
		t.Errorf("ConnectedSources = %d, want 3", stats.ConnectedSources)
	}
}

func TestAverageDistances(t *testing.T) {
	g := buildTestGraph(t, [2]uint64{1, 2}, [2]uint64{2, 3}, [2]uint64{9, 9})

	averages, err := AverageDistances(g, PathOptions{Workers: 3})
	if err != nil {
		t.Fatalf("AverageDistances failed: %v", err)
	}

	want := map[uint64]float64{1: 1.5, 2: 1, 3: 1.5}
	if len(averages) != len(want) {
		t.Fatalf("Expected %d averages, got %v", len(want), averages)
	}
	for id, w := range want {
		if !approxEqual(averages[id], w) {
			t.Errorf("average(%d) = %f, want %f", id, averages[id], w)
		}
	}
	if _, ok := averages[9]; ok {
		t.Error("Isolated node must be omitted")
	}
}

// TestClosenessCentrality_LinearChain tests that the middle of a chain is closest
func TestClosenessCentrality_LinearChain(t *testing.T) {
	g := buildTestGraph(t, [2]uint64{1, 2}, [2]uint64{2, 3}, [2]uint64{7, 7})

	closeness, err := ClosenessCentrality(g, PathOptions{})
	if err != nil {
		t.Fatalf("ClosenessCentrality failed: %v", err)
	}

	if !approxEqual(closeness[2], 1.0) {
		t.Errorf("closeness(2) = %f, want 1.0", closeness[2])
	}
	if !approxEqual(closeness[1], 2.0/3.0) {
		t.Errorf("closeness(1) = %f, want %f", closeness[1], 2.0/3.0)
	}
	if closeness[7] != 0 {
		t.Errorf("closeness(7) = %f, want 0", closeness[7])
	}
}

// TestProfilePaths tests that one sweep agrees with the standalone measures
func TestProfilePaths(t *testing.T) {
	g := buildTestGraph(t, [2]uint64{1, 2}, [2]uint64{3, 4}, [2]uint64{4, 5})

	profile, err := ProfilePaths(g, PathOptions{Workers: 2})
	if err != nil {
		t.Fatalf("ProfilePaths failed: %v", err)
	}
	stats, _ := ComputePathStatistics(g, PathOptions{})
	if profile.Stats != stats {
		t.Errorf("Stats = %+v, want %+v", profile.Stats, stats)
	}

	for id, avg := range profile.AverageDistance {
		if !approxEqual(profile.Closeness[id], 1/avg) {
			t.Errorf("closeness(%d) = %f, want 1/%f", id, profile.Closeness[id], avg)
		}
	}
	if len(profile.Closeness) != g.NodeCount() {
		t.Errorf("Closeness covers %d nodes, want %d", len(profile.Closeness), g.NodeCount())
	}
}

func TestAddSaturating(t *testing.T) {
	tests := []struct {
		a, b     uint64
		want     uint64
		overflow bool
	}{
		{1, 2, 3, false},
		{math.MaxUint64 - 1, 1, math.MaxUint64, false},
		{math.MaxUint64, 1, math.MaxUint64, true},
		{math.MaxUint64 / 2, math.MaxUint64, math.MaxUint64, true},
	}

	for _, tt := range tests {
		got, of := addSaturating(tt.a, tt.b)
		if got != tt.want || of != tt.overflow {
			t.Errorf("addSaturating(%d, %d) = (%d, %v), want (%d, %v)", tt.a, tt.b, got, of, tt.want, tt.overflow)
		}
	}
}

// TestPathPartial_Overflow tests that saturation is flagged and averages
// stay valid
func TestPathPartial_Overflow(t *testing.T) {
	a := pathPartial{total: math.MaxUint64 - 5, pairs: 10, lengthSum: 100, pairSum: 10, meanSum: 10, connected: 1}
	b := pathPartial{}
	b.addSource(20, 4)

	a.merge(b)
	stats := a.statistics()

	if !stats.Overflowed {
		t.Error("Expected overflow flag")
	}
	if stats.TotalPathLength != math.MaxUint64 {
		t.Errorf("TotalPathLength = %d, want saturated", stats.TotalPathLength)
	}
	if stats.ReachablePairs != 14 {
		t.Errorf("ReachablePairs = %d, want 14", stats.ReachablePairs)
	}
	if !approxEqual(stats.AveragePathLength, 120.0/14.0) {
		t.Errorf("AveragePathLength = %f, want %f", stats.AveragePathLength, 120.0/14.0)
	}

	// the flag survives further merges
	var c pathPartial
	c.merge(a)
	if !c.statistics().Overflowed {
		t.Error("Overflow flag lost on merge")
	}
}

func TestValidateSeparation(t *testing.T) {
	tests := []struct {
		avg       float64
		threshold float64
		want      bool
	}{
		{0, SixDegrees, true},
		{7.0 / 3.0, SixDegrees, true},
		{6.0, SixDegrees, true},
		{6.0000001, SixDegrees, false},
		{math.NaN(), SixDegrees, false},
		{3.5, 3.0, false},
	}

	for _, tt := range tests {
		if got := ValidateSeparation(tt.avg, tt.threshold); got != tt.want {
			t.Errorf("ValidateSeparation(%v, %v) = %v, want %v", tt.avg, tt.threshold, got, tt.want)
		}
	}

	if ValidateSixDegrees(6.5) {
		t.Error("ValidateSixDegrees(6.5) should be false")
	}
}
