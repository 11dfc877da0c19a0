// Package analysis runs the full centrality pipeline over an edge list.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-netcentrality/pkg/algorithms"
	"github.com/dd0wney/cluso-netcentrality/pkg/graph"
	"github.com/dd0wney/cluso-netcentrality/pkg/logging"
	"github.com/dd0wney/cluso-netcentrality/pkg/metrics"
	"github.com/dd0wney/cluso-netcentrality/pkg/parallel"
)

// Stage names, used in logs, metrics and Result.Stages.
const (
	StageBuild       = "build"
	StageSummary     = "summary"
	StageDegree      = "degree"
	StageBetweenness = "betweenness"
	StagePaths       = "paths"
)

// Options tunes an analysis run.
type Options struct {
	// Workers <= 0 means one per CPU.
	Workers   int
	Normalize bool
	// TopN bounds the ranked lists; 0 disables ranking.
	TopN                int
	SeparationThreshold float64
}

// DefaultOptions returns raw betweenness, top 10 and the six-degrees threshold.
func DefaultOptions() Options {
	return Options{
		TopN:                10,
		SeparationThreshold: algorithms.SixDegrees,
	}
}

// Analyzer runs the pipeline. It is safe for sequential reuse.
type Analyzer struct {
	opts    Options
	logger  logging.Logger
	metrics *metrics.Registry
}

// New creates an analyzer. A nil logger discards output; a nil registry
// disables metrics.
func New(opts Options, logger logging.Logger, reg *metrics.Registry) *Analyzer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if opts.SeparationThreshold <= 0 {
		opts.SeparationThreshold = algorithms.SixDegrees
	}
	return &Analyzer{
		opts:    opts,
		logger:  logger.With(logging.Component("analysis")),
		metrics: reg,
	}
}

// Run builds the graph from edges and computes every measure. The context
// is checked between stages.
func (a *Analyzer) Run(ctx context.Context, edges []graph.Edge) (*Result, error) {
	res := &Result{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Workers:   parallel.ResolveWorkers(a.opts.Workers),
		Normalize: a.opts.Normalize,
	}
	log := a.logger.With(logging.RunID(res.RunID))
	log.Info("analysis started", logging.Int("input_edges", len(edges)), logging.Workers(res.Workers))

	err := a.run(ctx, log, edges, res)
	a.finish(log, res, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (a *Analyzer) run(ctx context.Context, log logging.Logger, edges []graph.Edge, res *Result) error {
	var g *graph.Graph

	if err := a.stage(ctx, log, res, StageBuild, func() error {
		g = graph.Build(edges)
		stats := g.Stats()
		if a.metrics != nil {
			a.metrics.RecordGraph(g.NodeCount(), g.EdgeCount(), stats.SelfLoopsDropped, stats.DuplicateEdges)
		}
		if stats.SelfLoopsDropped > 0 || stats.DuplicateEdges > 0 {
			log.Debug("edge list normalised",
				logging.Int("self_loops_dropped", stats.SelfLoopsDropped),
				logging.Int("duplicate_edges", stats.DuplicateEdges))
		}
		return nil
	}); err != nil {
		return err
	}

	if err := a.stage(ctx, log, res, StageSummary, func() error {
		res.Graph = Summarize(g)
		if a.metrics != nil {
			a.metrics.RecordComponents(res.Graph.Components)
		}
		if res.Graph.Edges == 0 {
			log.Warn("graph has no edges; path measures are zero", logging.Nodes(res.Graph.Nodes))
		}
		return nil
	}); err != nil {
		return err
	}

	if err := a.stage(ctx, log, res, StageDegree, func() error {
		res.DegreeCentrality = algorithms.DegreeCentrality(g)
		res.TopDegree = algorithms.TopNodes(res.DegreeCentrality, a.opts.TopN)
		return nil
	}); err != nil {
		return err
	}

	if err := a.stage(ctx, log, res, StageBetweenness, func() error {
		scores, err := algorithms.BetweennessCentrality(g, algorithms.BetweennessOptions{
			Workers:   res.Workers,
			Normalize: a.opts.Normalize,
		})
		if err != nil {
			return err
		}
		res.BetweennessCentrality = scores
		res.TopBetweenness = algorithms.TopNodes(scores, a.opts.TopN)
		if a.metrics != nil {
			a.metrics.RecordSources(StageBetweenness, g.NodeCount())
		}
		return nil
	}); err != nil {
		return err
	}

	return a.stage(ctx, log, res, StagePaths, func() error {
		profile, err := algorithms.ProfilePaths(g, algorithms.PathOptions{Workers: res.Workers})
		if err != nil {
			return err
		}
		res.Paths = profile.Stats
		res.AverageDistance = profile.AverageDistance
		res.ClosenessCentrality = profile.Closeness
		res.SixDegrees = SeparationVerdict{
			Threshold:         a.opts.SeparationThreshold,
			AveragePathLength: profile.Stats.AveragePathLength,
			Holds:             algorithms.ValidateSeparation(profile.Stats.AveragePathLength, a.opts.SeparationThreshold),
		}
		if a.metrics != nil {
			a.metrics.RecordSources(StagePaths, g.NodeCount())
		}
		if profile.Stats.Overflowed {
			log.Warn("path totals saturated; averages remain exact",
				logging.Uint64("total_path_length", profile.Stats.TotalPathLength),
				logging.Uint64("reachable_pairs", profile.Stats.ReachablePairs))
			if a.metrics != nil {
				a.metrics.RecordPathOverflow()
			}
		}
		return nil
	})
}

// stage runs fn as a named, timed pipeline step.
func (a *Analyzer) stage(ctx context.Context, log logging.Logger, res *Result, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("before %s: %w", name, err)
	}

	timer := logging.StartTimer(log, "stage completed", logging.Stage(name))
	if err := fn(); err != nil {
		timer.EndError(err)
		return fmt.Errorf("%s: %w", name, err)
	}
	elapsed := timer.End()

	res.Stages = append(res.Stages, StageTiming{Name: name, Duration: elapsed})
	if a.metrics != nil {
		a.metrics.RecordStage(name, elapsed)
	}
	return nil
}

func (a *Analyzer) finish(log logging.Logger, res *Result, err error) {
	status := metrics.StatusSuccess
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = metrics.StatusCancelled
		log.Warn("analysis cancelled", logging.Error(err))
	case err != nil:
		status = metrics.StatusFailed
		log.Error("analysis failed", logging.Error(err))
	default:
		log.Info("analysis finished",
			logging.Nodes(res.Graph.Nodes),
			logging.Edges(res.Graph.Edges),
			logging.Float64("average_path_length", res.Paths.AveragePathLength),
			logging.Bool("six_degrees", res.SixDegrees.Holds),
			logging.Latency(res.Elapsed()))
	}

	if a.metrics != nil {
		a.metrics.RecordRun(status, res.Workers)
		a.metrics.UpdateRuntimeMetrics()
	}
}
