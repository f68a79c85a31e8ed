package main

import (
	"flag"
	"time"

	"github.com/lintang-b-s/meshload/pkg"
	"github.com/lintang-b-s/meshload/pkg/config"
	"github.com/lintang-b-s/meshload/pkg/generator"
	"github.com/lintang-b-s/meshload/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	width  = flag.Int("width", 10, "grid width")
	height = flag.Int("height", 10, "grid height")
	flows  = flag.Int("flows", 1000, "number of flows")
	broken = flag.Int("broken", 50, "number of broken links")
	seed   = flag.Int64("seed", 0, "random seed (0 uses the current time)")
	output = flag.String("output", pkg.DEFAULT_LARGE_CONFIG_PATH, "output file path")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	s := uint64(*seed)
	if *seed == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rd := rand.New(rand.NewSource(s))

	cfg, err := generator.Generate(generator.Params{
		Width:  *width,
		Height: *height,
		Flows:  *flows,
		Broken: *broken,
	}, rd)
	if err != nil {
		logger.Fatal("generating NoC description", zap.Error(err))
	}

	if err := config.Write(*output, cfg); err != nil {
		logger.Fatal("writing NoC description", zap.Error(err), zap.String("output", *output))
	}
	logger.Info("Generated NoC description", zap.String("output", *output),
		zap.Int("flows", len(cfg.Flows)), zap.Int("brokenLinks", len(cfg.BrokenLinks)))
}
