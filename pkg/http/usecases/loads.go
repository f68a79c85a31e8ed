package usecases

import (
	"context"

	"github.com/lintang-b-s/meshload/pkg/config"
	"github.com/lintang-b-s/meshload/pkg/datastructure"
	"github.com/lintang-b-s/meshload/pkg/engine"
	"github.com/lintang-b-s/meshload/pkg/metrics"
	"github.com/lintang-b-s/meshload/pkg/util"
	"go.uber.org/zap"
)

type LoadService struct {
	log  *zap.Logger
	opts engine.Options
}

func NewLoadService(log *zap.Logger, opts engine.Options) *LoadService {
	return &LoadService{
		log:  log,
		opts: opts,
	}
}

// ComputeLoads builds a fresh engine for the submitted description and returns its report.
func (ls *LoadService) ComputeLoads(ctx context.Context, cfg *config.NoCConfig) (*metrics.Report, error) {
	eng, err := engine.NewEngine(cfg, ls.opts, ls.log)
	if err != nil {
		return nil, err
	}
	return eng.ComputeLoads(ctx)
}

// TopologyStats returns node and directed edge counts of an undamaged width x height mesh.
func (ls *LoadService) TopologyStats(width, height int) (int, int, error) {
	topo, err := datastructure.NewTopology(width, height, nil)
	if err != nil {
		return 0, 0, util.WrapErrorf(err, util.ErrBadParamInput, "building %dx%d mesh", width, height)
	}
	return topo.NumberOfNodes(), topo.NumberOfEdges(), nil
}
