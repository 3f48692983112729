package scene

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RunOptions are the options of a single CLI run.
type RunOptions struct {
	ConfigPath string
	Format     string
	Remove     []int
	Strict     bool
	ShowStats  bool
	Logger     *zap.Logger
}

// Run loads the scene, applies removals in order and writes the report to w.
func Run(opts RunOptions, w io.Writer) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	renderer, rendererErr := NewRenderer(opts.Format)
	if rendererErr != nil {
		return rendererErr
	}
	cfg, configErr := LoadConfig(opts.ConfigPath)
	if configErr != nil {
		return configErr
	}
	s, buildErr := Build(cfg, BuildOptions{Strict: opts.Strict, Logger: logger})
	if buildErr != nil {
		return buildErr
	}
	logger.Info("scene loaded", zap.String("config", opts.ConfigPath), zap.Int("figures", s.Figures().Size()))

	for _, idx := range opts.Remove {
		id := s.ID(idx)
		if removeErr := s.Remove(idx); removeErr != nil {
			return errors.Wrapf(removeErr, "can't remove figure %d", idx)
		}
		logger.Info("figure removed", zap.Int("index", idx), zap.String("id", id))
	}

	report, reportErr := NewReport(s)
	if reportErr != nil {
		return errors.Wrap(reportErr, "can't build report")
	}
	if opts.ShowStats {
		report.Stats = s.Figures().Stats().String()
	}
	return renderer.Render(w, report)
}
