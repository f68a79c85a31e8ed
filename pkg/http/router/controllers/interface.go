package controllers

import (
	"context"

	"github.com/lintang-b-s/meshload/pkg/config"
	"github.com/lintang-b-s/meshload/pkg/metrics"
)

type LoadService interface {
	ComputeLoads(ctx context.Context, cfg *config.NoCConfig) (*metrics.Report, error)
	TopologyStats(width, height int) (int, int, error)
}
