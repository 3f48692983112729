package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	scene "github.com/storozhukBM/figures/scene/internal"
)

func main() {
	configPath := flag.StringP("config", "c", "", "scene file in YAML format; must be set")
	format := flag.StringP("format", "f", "text", "output format: text or json")
	remove := flag.IntSliceP("remove", "r", nil, "indexes of figures to remove, applied in order")
	strict := flag.Bool("strict", false, "reject degenerate figures instead of clamping their dimensions")
	stats := flag.Bool("stats", false, "print array storage statistics")
	verbose := flag.BoolP("verbose", "v", false, "verbose logging")

	flag.Parse()
	if len(*configPath) == 0 {
		fmt.Fprintln(os.Stderr, "the flag -config must be set")
		flag.Usage()
		os.Exit(2)
	}

	logger, loggerErr := newLogger(*verbose)
	if loggerErr != nil {
		fmt.Fprintf(os.Stderr, "can't create logger: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	runErr := scene.Run(scene.RunOptions{
		ConfigPath: *configPath,
		Format:     *format,
		Remove:     *remove,
		Strict:     *strict,
		ShowStats:  *stats,
		Logger:     logger,
	}, os.Stdout)
	if runErr != nil {
		logger.Error("scene run failed", zap.Error(runErr))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
