package engine

import (
	"context"
	"io"

	"github.com/lintang-b-s/meshload/pkg/accumulator"
	"github.com/lintang-b-s/meshload/pkg/config"
	"github.com/lintang-b-s/meshload/pkg/datastructure"
	"github.com/lintang-b-s/meshload/pkg/metrics"
	"github.com/lintang-b-s/meshload/pkg/util"
	"go.uber.org/zap"
)

type Options struct {
	// Workers > 1 accumulates flows on a worker pool.
	Workers int
	// StrictBrokenLinks rejects broken links that reference nodes outside the grid.
	StrictBrokenLinks bool
}

type Engine struct {
	topology *datastructure.Topology
	flows    []datastructure.Flow
	opts     Options
	logger   *zap.Logger
}

func NewEngine(cfg *config.NoCConfig, opts Options, logger *zap.Logger) (*Engine, error) {
	topology, flows, err := initializeNoC(cfg, opts, logger)
	if err != nil {
		return nil, err
	}
	return &Engine{
		topology: topology,
		flows:    flows,
		opts:     opts,
		logger:   logger,
	}, nil
}

// NewEngineFromFile loads the description at path and builds the engine.
func NewEngineFromFile(path string, opts Options, logger *zap.Logger) (*Engine, error) {
	logger.Info("Reading NoC description", zap.String("path", path))
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return NewEngine(cfg, opts, logger)
}

func initializeNoC(cfg *config.NoCConfig, opts Options, logger *zap.Logger) (*datastructure.Topology,
	[]datastructure.Flow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	broken, err := cfg.ParseBrokenLinks()
	if err != nil {
		return nil, nil, err
	}

	var topology *datastructure.Topology
	if opts.StrictBrokenLinks {
		topology, err = datastructure.NewTopologyStrict(cfg.Grid.Width, cfg.Grid.Height, broken)
	} else {
		topology, err = datastructure.NewTopology(cfg.Grid.Width, cfg.Grid.Height, broken)
	}
	if err != nil {
		return nil, nil, util.WrapErrorf(err, util.ErrBadParamInput, "building %dx%d mesh", cfg.Grid.Width, cfg.Grid.Height)
	}

	logger.Info("Built mesh topology",
		zap.Int("width", topology.GetWidth()),
		zap.Int("height", topology.GetHeight()),
		zap.Int("nodes", topology.NumberOfNodes()),
		zap.Int("edges", topology.NumberOfEdges()),
		zap.Int("brokenLinks", len(broken.GetDeclared())),
		zap.Int("components", topology.RunKosaraju().NumberOfComponents()))

	for _, link := range topology.GetUnmatchedBrokenLinks() {
		logger.Warn("broken link does not match any mesh link, ignoring", zap.String("link", link.String()))
	}

	flows, err := cfg.ParseFlows()
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Loaded flows", zap.Int("flows", len(flows)))

	return topology, flows, nil
}

func (e *Engine) GetTopology() *datastructure.Topology {
	return e.topology
}

func (e *Engine) GetFlows() []datastructure.Flow {
	return e.flows
}

// ComputeLoads accumulates every flow into per-edge loads and logs each integrity
// violation. Violations never abort the computation.
func (e *Engine) ComputeLoads(ctx context.Context) (*metrics.Report, error) {
	var (
		res *accumulator.Result
		err error
	)
	if e.opts.Workers > 1 {
		res, err = accumulator.AccumulateParallel(ctx, e.topology, e.flows, e.opts.Workers)
		if err != nil {
			return nil, err
		}
	} else {
		res = accumulator.Accumulate(e.topology, e.flows)
	}

	for _, v := range res.Violations {
		e.logger.Warn("edge used in path but not in graph definition (or is broken)",
			zap.String("edge", v.Edge.String()),
			zap.Int("flow", v.FlowIndex),
			zap.Int("step", v.StepIndex),
			zap.String("reason", string(v.Reason)))
	}

	report := metrics.NewReport(res, e.topology)
	summary := report.GetSummary()
	e.logger.Info("Computed edge loads",
		zap.Int("loadedEdges", summary.LoadedEdges),
		zap.Float64("totalLoad", summary.TotalLoad),
		zap.Float64("maxLoad", summary.MaxLoad),
		zap.Int("violations", len(res.Violations)))
	return report, nil
}

// DumpTopology writes the adjacency relation, see datastructure.Topology.WriteAdjacency.
func (e *Engine) DumpTopology(w io.Writer) error {
	return e.topology.WriteAdjacency(w)
}
