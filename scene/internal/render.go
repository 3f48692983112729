package scene

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"

	"github.com/storozhukBM/figures/lib/dynarray"
)

// Report is the result of all queries of a scene.
type Report struct {
	Size      int            `json:"size"`
	Figures   []FigureReport `json:"figures"`
	TotalArea float64        `json:"totalArea"`
	Stats     string         `json:"stats,omitempty"`
}

// FigureReport describes one figure of the scene.
type FigureReport struct {
	Index       int        `json:"index"`
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	Area        float64    `json:"area"`
	Center      [2]float64 `json:"center"`
}

// NewReport runs Enumerate, Centers and TotalArea queries on the scene.
// It returns *dynarray.RangeError if the scene is empty.
func NewReport(s *Scene) (*Report, error) {
	entries, enumerateErr := dynarray.Enumerate(s.figures)
	if enumerateErr != nil {
		return nil, enumerateErr
	}
	centers, centersErr := dynarray.Centers(s.figures)
	if centersErr != nil {
		return nil, centersErr
	}
	totalArea, totalErr := dynarray.TotalArea(s.figures)
	if totalErr != nil {
		return nil, totalErr
	}
	result := &Report{
		Size:      s.figures.Size(),
		Figures:   make([]FigureReport, 0, len(entries)),
		TotalArea: totalArea,
	}
	for i, e := range entries {
		c := centers[i].Center
		result.Figures = append(result.Figures, FigureReport{
			Index:       e.Index,
			ID:          s.ID(e.Index),
			Kind:        e.Kind.String(),
			Description: e.Description,
			Area:        e.Area,
			Center:      [2]float64{c.X(), c.Y()},
		})
	}
	return result, nil
}

// Renderer writes a report in some output format.
type Renderer interface {
	Render(w io.Writer, r *Report) error
}

// NewRenderer returns renderer for format "text" or "json".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return TextRenderer{}, nil
	case "json":
		return JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// TextRenderer writes the report line by line.
type TextRenderer struct{}

func (TextRenderer) Render(w io.Writer, r *Report) error {
	lines := make([]string, 0, 2*len(r.Figures)+3)
	lines = append(lines, fmt.Sprintf("Figures: %d", r.Size))
	for _, f := range r.Figures {
		lines = append(lines, fmt.Sprintf("%d: %s | Area: %v", f.Index, f.Description, f.Area))
	}
	for _, f := range r.Figures {
		lines = append(lines, fmt.Sprintf("%d: Center = (%v, %v)", f.Index, f.Center[0], f.Center[1]))
	}
	lines = append(lines, fmt.Sprintf("Total Area: %s", humanize.CommafWithDigits(r.TotalArea, 6)))
	if r.Stats != "" {
		lines = append(lines, "Stats: "+r.Stats)
	}
	for _, line := range lines {
		if _, writeErr := fmt.Fprintln(w, line); writeErr != nil {
			return writeErr
		}
	}
	return nil
}

// JSONRenderer writes the report as an indented JSON document.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, r *Report) error {
	data, marshalErr := json.MarshalIndent(r, "", "  ")
	if marshalErr != nil {
		return marshalErr
	}
	_, writeErr := w.Write(append(data, '\n'))
	return writeErr
}
