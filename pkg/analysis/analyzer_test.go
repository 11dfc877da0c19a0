package analysis

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-netcentrality/pkg/algorithms"
	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
	"github.com/dd0wney/cluso-netcentrality/pkg/logging"
	"github.com/dd0wney/cluso-netcentrality/pkg/metrics"
)

func chain(n uint64) []graph.Edge {
	edges := make([]graph.Edge, 0, n-1)
	for i := uint64(1); i < n; i++ {
		edges = append(edges, graph.Edge{From: i, To: i + 1})
	}
	return edges
}

func TestRun_PathGraph(t *testing.T) {
	a := New(DefaultOptions(), nil, nil)

	res, err := a.Run(context.Background(), chain(6))
	require.NoError(t, err)

	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err, "run id should be a UUID")

	assert.Equal(t, 6, res.Graph.Nodes)
	assert.Equal(t, 5, res.Graph.Edges)
	assert.Equal(t, 1, res.Graph.Components)
	assert.InDelta(t, 7.0/3.0, res.Paths.AveragePathLength, 1e-9)
	assert.InDelta(t, 7.0/3.0, res.Paths.AverageDegreesOfSeparation, 1e-9)
	assert.True(t, res.SixDegrees.Holds)
	assert.Equal(t, algorithms.SixDegrees, res.SixDegrees.Threshold)

	// interior nodes of P6: 1*4, 2*3, 3*2 ...
	assert.InDelta(t, 4.0, res.BetweennessCentrality[2], 1e-9)
	assert.InDelta(t, 6.0, res.BetweennessCentrality[3], 1e-9)
	assert.InDelta(t, 0.4, res.DegreeCentrality[3], 1e-9)

	require.Len(t, res.TopBetweenness, 6)
	assert.Equal(t, uint64(3), res.TopBetweenness[0].NodeID)
	assert.Equal(t, uint64(4), res.TopBetweenness[1].NodeID)

	names := make([]string, 0, len(res.Stages))
	for _, s := range res.Stages {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{StageBuild, StageSummary, StageDegree, StageBetweenness, StagePaths}, names)
}

func TestRun_ThresholdAndNormalize(t *testing.T) {
	opts := Options{Normalize: true, TopN: 2, SeparationThreshold: 2.0, Workers: 3}
	res, err := New(opts, nil, nil).Run(context.Background(), chain(6))
	require.NoError(t, err)

	assert.False(t, res.SixDegrees.Holds, "7/3 exceeds a threshold of 2")
	assert.True(t, res.Normalize)
	// 6 normalised by 2/((5)(4))
	assert.InDelta(t, 0.6, res.BetweennessCentrality[3], 1e-9)
	assert.Len(t, res.TopDegree, 2)
	assert.Equal(t, 3, res.Workers)
}

func TestRun_Degenerate(t *testing.T) {
	tests := []struct {
		name  string
		edges []graph.Edge
		nodes int
	}{
		{"empty", nil, 0},
		{"self loop only", []graph.Edge{{From: 7, To: 7}}, 1},
		{"single edge", []graph.Edge{{From: 1, To: 2}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New(DefaultOptions(), nil, nil).Run(context.Background(), tt.edges)
			require.NoError(t, err)
			assert.Equal(t, tt.nodes, res.Graph.Nodes)
			assert.False(t, res.Paths.Overflowed)
			assert.GreaterOrEqual(t, res.Paths.AveragePathLength, 0.0)
			for _, score := range res.BetweennessCentrality {
				assert.Zero(t, score)
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	reg := metrics.NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DefaultOptions(), nil, reg).Run(ctx, chain(4))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	counter, err := reg.RunsTotal.GetMetricWithLabelValues(metrics.StatusCancelled)
	require.NoError(t, err)
	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))
	assert.Equal(t, 1.0, metric.GetCounter().GetValue())
}

func TestRun_RecordsMetrics(t *testing.T) {
	reg := metrics.NewRegistry()
	edges := append(chain(4), graph.Edge{From: 2, To: 1}, graph.Edge{From: 9, To: 9})

	_, err := New(DefaultOptions(), nil, reg).Run(context.Background(), edges)
	require.NoError(t, err)

	var metric dto.Metric
	require.NoError(t, reg.GraphNodes.Write(&metric))
	assert.Equal(t, 5.0, metric.GetGauge().GetValue())

	metric.Reset()
	require.NoError(t, reg.SelfLoopsDropped.Write(&metric))
	assert.Equal(t, 1.0, metric.GetCounter().GetValue())

	metric.Reset()
	require.NoError(t, reg.DuplicateEdges.Write(&metric))
	assert.Equal(t, 1.0, metric.GetCounter().GetValue())

	metric.Reset()
	require.NoError(t, reg.GraphComponents.Write(&metric))
	assert.Equal(t, 2.0, metric.GetGauge().GetValue())

	success, err := reg.RunsTotal.GetMetricWithLabelValues(metrics.StatusSuccess)
	require.NoError(t, err)
	metric.Reset()
	require.NoError(t, success.Write(&metric))
	assert.Equal(t, 1.0, metric.GetCounter().GetValue())
}

func TestRun_LogsStagesWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONLogger(&buf, logging.InfoLevel)

	res, err := New(DefaultOptions(), logger, nil).Run(context.Background(), chain(3))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// started + five stages + finished
	assert.Len(t, lines, 7)
	for _, line := range lines {
		assert.Contains(t, line, res.RunID)
		assert.Contains(t, line, `"component":"analysis"`)
	}
}

func TestSummarize(t *testing.T) {
	g := graph.Build([]graph.Edge{
		{From: 1, To: 2}, {From: 1, To: 3}, {From: 1, To: 4},
		{From: 10, To: 11},
	})

	summary := Summarize(g)
	assert.Equal(t, 6, summary.Nodes)
	assert.Equal(t, 4, summary.Edges)
	assert.Equal(t, 2, summary.Components)
	assert.Equal(t, 4, summary.LargestComponent)
	require.NotNil(t, summary.MaxDegree)
	assert.Equal(t, DegreeExtreme{NodeID: 1, Degree: 3}, *summary.MaxDegree)
	require.NotNil(t, summary.MinDegree)
	assert.Equal(t, DegreeExtreme{NodeID: 2, Degree: 1}, *summary.MinDegree)
	assert.InDelta(t, 4.0/15.0, summary.Density, 1e-9)
	assert.Zero(t, summary.Triangles)
}

func TestSummarize_Clustering(t *testing.T) {
	g := graph.Build([]graph.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}, {From: 3, To: 4}})

	summary := Summarize(g)
	assert.Equal(t, 1, summary.Triangles)
	// coefficients 1, 1, 1/3, 0
	assert.InDelta(t, (1+1+1.0/3)/4, summary.AverageClustering, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(graph.Build(nil))
	assert.Zero(t, summary.Nodes)
	assert.Nil(t, summary.MinDegree)
	assert.Nil(t, summary.MaxDegree)
}
