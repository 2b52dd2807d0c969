package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/detourgraph/chfilter"
	"github.com/katalvlaran/detourgraph/classify"
	"github.com/katalvlaran/detourgraph/config"
	"github.com/katalvlaran/detourgraph/edgecluster"
	"github.com/katalvlaran/detourgraph/geom"
	"github.com/katalvlaran/detourgraph/graphmodel"
	"github.com/katalvlaran/detourgraph/nodecluster"
	"github.com/katalvlaran/detourgraph/temporalsplit"
)

// Option configures a BuildGraph run.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	strategy edgecluster.Strategy
}

// WithLogger overrides the pipeline's structured logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithEdgeClusterStrategy overrides the representative-selection strategy
// used by the edge-clustering stage (default: edgecluster.MedoidStrategy).
func WithEdgeClusterStrategy(s edgecluster.Strategy) Option {
	return func(o *options) { o.strategy = s }
}

func resolveOptions(opts []Option) options {
	o := options{logger: slog.Default(), strategy: edgecluster.MedoidStrategy}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Stats summarizes one BuildGraph run for logging and monitoring.
type Stats struct {
	RunID         string
	Streams       int
	TimeoutSplits int
	PathsBuilt    int
	PathsSkipped  int
}

// BuildGraph runs every input stream through the spike filter, stream
// splitter and path classifier concurrently (one goroutine per stream, via
// errgroup), then folds the resulting paths into a single DetourGraph and
// applies node clustering, temporal splitting and edge clustering in order.
//
// Grounded on original_source/src/graph/graph_builder.rs's get_graph: the
// per-stream map step there (`streams.into_iter().flat_map(get_paths)`) is
// naturally parallel since each stream's classification is independent;
// this implementation makes that parallelism explicit.
func BuildGraph(ctx context.Context, streams [][]geom.Point, cfg config.Config, opts ...Option) (*graphmodel.DetourGraph, Stats, error) {
	o := resolveOptions(opts)
	runID := uuid.NewString()
	logger := o.logger.With("run_id", runID, "streams", len(streams))
	logger.Info("pipeline: starting")

	paths := make([][]classify.Path, len(streams))
	timeoutCounts := make([]int, len(streams))

	g, gctx := errgroup.WithContext(ctx)
	for i, stream := range streams {
		i, stream := i, stream
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			ps, timeouts := processStream(stream, cfg)
			paths[i] = ps
			timeoutCounts[i] = timeouts

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{RunID: runID}, fmt.Errorf("pipeline: classifying streams: %w", err)
	}

	stats := Stats{RunID: runID, Streams: len(streams)}
	for _, n := range timeoutCounts {
		stats.TimeoutSplits += n
	}

	dg := graphmodel.New()
	for _, ps := range paths {
		for _, p := range ps {
			if p.Len() < 2 {
				stats.PathsSkipped++

				continue
			}
			if err := dg.AddPath(p); err != nil {
				return nil, stats, fmt.Errorf("pipeline: adding path: %w", err)
			}
			stats.PathsBuilt++
		}
	}
	logger.Info("pipeline: paths built", "count", stats.PathsBuilt, "skipped", stats.PathsSkipped)

	if err := nodecluster.Merge(dg); err != nil {
		return nil, stats, fmt.Errorf("pipeline: node clustering: %w", err)
	}
	if err := temporalsplit.Split(dg); err != nil {
		return nil, stats, fmt.Errorf("pipeline: temporal splitting: %w", err)
	}
	if err := edgecluster.Cluster(dg, cfg, o.strategy); err != nil {
		return nil, stats, fmt.Errorf("pipeline: edge clustering: %w", err)
	}

	if err := dg.VerifyConstraints(); err != nil {
		return nil, stats, fmt.Errorf("pipeline: post-build invariant check: %w", err)
	}
	if err := dg.VerifyTemporalMonotonicity(); err != nil {
		return nil, stats, fmt.Errorf("pipeline: post-build monotonicity check: %w", err)
	}

	logger.Info("pipeline: done", "vertices", len(dg.Vertices()), "edges", len(dg.Edges()))

	return dg, stats, nil
}

// processStream runs the convex-hull spike filter, duplicate-timestamp
// cleanup, connectivity-timeout splitting and path classification for one
// raw point stream.
func processStream(stream []geom.Point, cfg config.Config) ([]classify.Path, int) {
	filtered := chfilter.All(cfg.WindowSize, stream)
	cleaned := classify.CleanStream(filtered)
	substreams, timeouts := classify.SplitOnTimeout(cleaned, cfg.ConnectionTimeout)

	paths := make([]classify.Path, 0, len(substreams))
	for _, sub := range substreams {
		if len(sub) == 0 {
			continue
		}
		c := classify.NewClassifier(
			cfg.StopDurationMinutes*60000.0,
			cfg.StopDiagonalMeters,
			cfg.MotionDetectorTimespan,
			cfg.MinimumVelocity,
			cfg.EpsilonVelocity,
		)
		paths = append(paths, classify.BuildPath(sub, c))
	}

	return paths, timeouts
}
