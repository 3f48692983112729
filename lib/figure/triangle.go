package figure

import "fmt"

// Triangle is defined by two base points and the height of its apex over the base.
// The apex lies on the left normal of the base direction p1 -> p2.
type Triangle struct {
	p1     Point
	p2     Point
	height float64
}

// NewTriangle creates a Triangle with base p1-p2 and the given height.
// Non-positive height, as well as a zero-length base, is clamped to MinDimension.
func NewTriangle(p1, p2 Point, height float64) Triangle {
	result, _ := NewTriangleWithOptions(p1, p2, height, Options{})
	return result
}

// NewTriangleWithOptions is NewTriangle that can reject degenerate input in strict mode.
func NewTriangleWithOptions(p1, p2 Point, height float64, opts Options) (Triangle, error) {
	finiteErr := checkFinite(opts, p1.x, p1.y, p2.x, p2.y, height)
	if finiteErr != nil {
		return Triangle{}, finiteErr
	}
	if _, baseErr := dimension(Distance(p1, p2), opts); baseErr != nil {
		return Triangle{}, baseErr
	}
	h, heightErr := dimension(height, opts)
	if heightErr != nil {
		return Triangle{}, heightErr
	}
	return Triangle{p1: p1, p2: p2, height: h}, nil
}

func (t Triangle) Base() (Point, Point) {
	return t.p1, t.p2
}

func (t Triangle) Height() float64 {
	return t.height
}

func (t Triangle) Kind() Kind {
	return KindTriangle
}

// Apex is the midpoint of the base shifted along the base normal by height.
func (t Triangle) Apex() Point {
	mid := midpoint(t.p1, t.p2)
	base := Distance(t.p1, t.p2)
	nx, ny := 0.0, 1.0
	if base > 0 {
		nx = -(t.p2.y - t.p1.y) / base
		ny = (t.p2.x - t.p1.x) / base
	}
	return Point{x: mid.x + nx*t.height, y: mid.y + ny*t.height}
}

// Center is the centroid of the base points and the apex.
func (t Triangle) Center() Point {
	apex := t.Apex()
	return Point{
		x: (t.p1.x + t.p2.x + apex.x) / 3,
		y: (t.p1.y + t.p2.y + apex.y) / 3,
	}
}

func (t Triangle) Area() float64 {
	base := Distance(t.p1, t.p2)
	if base <= 0 {
		base = MinDimension
	}
	return base * t.height / 2
}

func (t Triangle) Equal(other Figure) bool {
	var o Triangle
	switch v := other.(type) {
	case Triangle:
		o = v
	case *Triangle:
		if v == nil {
			return false
		}
		o = *v
	default:
		return false
	}
	return t.p1.Equal(o.p1) && t.p2.Equal(o.p2) && t.height == o.height
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{base: %v-%v, height: %v}", t.p1, t.p2, t.height)
}
