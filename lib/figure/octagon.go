package figure

import (
	"fmt"
	"math"
)

// Octagon is a regular octagon defined by its center and circumradius.
type Octagon struct {
	center Point
	radius float64
}

// NewOctagon creates an Octagon centered at c with the vertex p on its rim.
func NewOctagon(c, p Point) Octagon {
	result, _ := NewOctagonWithOptions(c, p, Options{})
	return result
}

// NewOctagonWithOptions is NewOctagon that can reject degenerate input in strict mode.
func NewOctagonWithOptions(c, p Point, opts Options) (Octagon, error) {
	finiteErr := checkFinite(opts, c.x, c.y, p.x, p.y)
	if finiteErr != nil {
		return Octagon{}, finiteErr
	}
	radius, radiusErr := dimension(Distance(c, p), opts)
	if radiusErr != nil {
		return Octagon{}, radiusErr
	}
	return Octagon{center: c, radius: radius}, nil
}

func (o Octagon) Radius() float64 {
	return o.radius
}

func (o Octagon) Kind() Kind {
	return KindOctagon
}

func (o Octagon) Center() Point {
	return o.center
}

// Area of a regular octagon with circumradius r is 2*sqrt(2)*r^2.
func (o Octagon) Area() float64 {
	return 2 * math.Sqrt2 * o.radius * o.radius
}

func (o Octagon) Equal(other Figure) bool {
	var v Octagon
	switch t := other.(type) {
	case Octagon:
		v = t
	case *Octagon:
		if t == nil {
			return false
		}
		v = *t
	default:
		return false
	}
	return o.center.Equal(v.center) && o.radius == v.radius
}

func (o Octagon) String() string {
	return fmt.Sprintf("Octagon{center: %v, radius: %v}", o.center, o.radius)
}
