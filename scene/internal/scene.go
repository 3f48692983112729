// Package scene builds arrays of figures from scene files and renders their reports.
package scene

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/storozhukBM/figures/lib/dynarray"
	"github.com/storozhukBM/figures/lib/figure"
)

// BuildOptions control how figures of the scene are constructed.
type BuildOptions struct {
	Strict bool
	Logger *zap.Logger
}

// Scene is an array of figures together with ids of its elements.
type Scene struct {
	ids     []string
	figures *dynarray.Array[figure.Figure]
}

// Build constructs figures described by cfg and adds them to a new array in file order.
// Figures without id get a random UUID.
func Build(cfg *Config, opts BuildOptions) (*Scene, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	result := &Scene{
		figures: dynarray.New[figure.Figure](dynarray.Options{Logger: logger}),
	}
	for i, fc := range cfg.Figures {
		f, figureErr := newFigure(fc, figure.Options{Strict: opts.Strict})
		if figureErr != nil {
			return nil, errors.Wrapf(figureErr, "can't build figure #%d (%v)", i, fc.Kind)
		}
		id := fc.ID
		if id == "" {
			id = uuid.New().String()
		}
		result.ids = append(result.ids, id)
		result.figures.Add(dynarray.NewHandle(f))
		logger.Debug("figure added", zap.String("id", id), zap.Stringer("figure", f))
	}
	return result, nil
}

// Figures returns the array of the scene.
func (s *Scene) Figures() *dynarray.Array[figure.Figure] {
	return s.figures
}

// ID returns the id of the figure at index, or empty string if there is no such figure.
func (s *Scene) ID(index int) string {
	if index < 0 || index >= len(s.ids) {
		return ""
	}
	return s.ids[index]
}

// Remove deletes the figure at index.
func (s *Scene) Remove(index int) error {
	removeErr := s.figures.Remove(index)
	if removeErr != nil {
		return removeErr
	}
	s.ids = append(s.ids[:index], s.ids[index+1:]...)
	return nil
}

func newFigure(fc FigureConfig, opts figure.Options) (figure.Figure, error) {
	if len(fc.Points) != 2 || len(fc.Points[0]) != 2 || len(fc.Points[1]) != 2 {
		return nil, errors.Errorf("expected 2 points with 2 coordinates, got %v", fc.Points)
	}
	p1 := figure.Pt(fc.Points[0][0], fc.Points[0][1])
	p2 := figure.Pt(fc.Points[1][0], fc.Points[1][1])
	switch fc.Kind {
	case "square":
		return figure.NewSquareWithOptions(p1, p2, opts)
	case "triangle":
		return figure.NewTriangleWithOptions(p1, p2, fc.Height, opts)
	case "octagon":
		return figure.NewOctagonWithOptions(p1, p2, opts)
	default:
		return nil, errors.Errorf("unknown figure kind %q", fc.Kind)
	}
}
