package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/meshload/pkg/engine"
	"github.com/lintang-b-s/meshload/pkg/http"
	"github.com/lintang-b-s/meshload/pkg/http/usecases"
	"github.com/lintang-b-s/meshload/pkg/logger"
	"github.com/lintang-b-s/meshload/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", true, "apply the RATE_LIMIT_RPS token bucket to every request")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	loadService := usecases.NewLoadService(logger, engine.Options{
		Workers:           viper.GetInt("ACCUMULATOR_WORKERS"),
		StrictBrokenLinks: viper.GetBool("STRICT_BROKEN_LINKS"),
	})

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, *useRateLimit, loadService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()
	cleanup()
	if err := api.Wait(); err != nil {
		logger.Error("API stopped with error", zap.Error(err))
	}

	logger.Info("meshload server stopped", zap.String("signal", signal.String()))
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
