package figure

import "fmt"

// Square is defined by its corner and side length.
type Square struct {
	corner Point
	side   float64
}

// NewSquare creates a Square from the corner p1 and the adjacent vertex p2.
// Coincident points produce a square with side MinDimension.
func NewSquare(p1, p2 Point) Square {
	result, _ := NewSquareWithOptions(p1, p2, Options{})
	return result
}

// NewSquareWithOptions is NewSquare that can reject degenerate input in strict mode.
func NewSquareWithOptions(p1, p2 Point, opts Options) (Square, error) {
	finiteErr := checkFinite(opts, p1.x, p1.y, p2.x, p2.y)
	if finiteErr != nil {
		return Square{}, finiteErr
	}
	side, sideErr := dimension(Distance(p1, p2), opts)
	if sideErr != nil {
		return Square{}, sideErr
	}
	return Square{corner: p1, side: side}, nil
}

func (s Square) Corner() Point {
	return s.corner
}

func (s Square) Side() float64 {
	return s.side
}

func (s Square) Kind() Kind {
	return KindSquare
}

func (s Square) Center() Point {
	half := s.side / 2
	return Point{x: s.corner.x + half, y: s.corner.y + half}
}

func (s Square) Area() float64 {
	return s.side * s.side
}

func (s Square) Equal(other Figure) bool {
	var o Square
	switch v := other.(type) {
	case Square:
		o = v
	case *Square:
		if v == nil {
			return false
		}
		o = *v
	default:
		return false
	}
	return s.corner.Equal(o.corner) && s.side == o.side
}

func (s Square) String() string {
	return fmt.Sprintf("Square{corner: %v, side: %v}", s.corner, s.side)
}
