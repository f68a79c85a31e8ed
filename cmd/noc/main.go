package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lintang-b-s/meshload/pkg"
	"github.com/lintang-b-s/meshload/pkg/engine"
	"github.com/lintang-b-s/meshload/pkg/logger"
	"github.com/lintang-b-s/meshload/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage")

func main() {
	if err := util.ReadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[0], os.Args[1:], log); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, outW, errW io.Writer, prog string, args []string, log *zap.Logger) error {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(errW)
	workers := fs.Int("workers", viper.GetInt("ACCUMULATOR_WORKERS"), "number of goroutines accumulating flows (<=1 is sequential)")
	reportFile := fs.String("report", "", "also write the loads to this file (bzip2 compressed when it ends in .bz2)")
	dumpTopology := fs.String("dump_topology", "", "write the adjacency relation to this file")
	strict := fs.Bool("strict", viper.GetBool("STRICT_BROKEN_LINKS"), "reject broken links that reference nodes outside the grid")
	fs.Usage = func() {
		fmt.Fprintf(errW, "Usage: %s [flags] [config_file.json]\n", prog)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return errUsage
	}
	configPath := pkg.DEFAULT_CONFIG_PATH
	if fs.NArg() == 1 {
		configPath = fs.Arg(0)
	}

	configPath, err := resolveConfigPath(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(outW, "Loading configuration from: %s\n", configPath)
	eng, err := engine.NewEngineFromFile(configPath, engine.Options{
		Workers:           *workers,
		StrictBrokenLinks: *strict,
	}, log)
	if err != nil {
		return err
	}

	if *dumpTopology != "" {
		if err := writeTopology(eng, *dumpTopology); err != nil {
			return err
		}
	}

	fmt.Fprintf(outW, "Calculating flows...\n")
	report, err := eng.ComputeLoads(ctx)
	if err != nil {
		return err
	}

	if err := report.Print(outW); err != nil {
		return err
	}

	if *reportFile != "" {
		if err := report.WriteToFile(*reportFile); err != nil {
			return err
		}
		log.Info("Wrote edge load report", zap.String("path", *reportFile))
	}
	return nil
}

// resolveConfigPath also tries one directory up, for runs from a build directory.
func resolveConfigPath(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if !filepath.IsAbs(path) {
		parent := filepath.Join("..", path)
		if _, err := os.Stat(parent); err == nil {
			return parent, nil
		}
	}
	return "", fmt.Errorf("configuration file not found at %s", path)
}

func writeTopology(eng *engine.Engine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return eng.DumpTopology(f)
}
