package figure

import (
	"fmt"
	"math"
)

// Point is an immutable 2D coordinate.
// Points are compared exactly, so Point values can be used with == as well as Equal.
type Point struct {
	x float64
	y float64
}

// Pt creates a Point.
func Pt(x, y float64) Point {
	return Point{x: x, y: y}
}

func (p Point) X() float64 {
	return p.x
}

func (p Point) Y() float64 {
	return p.y
}

// Equal performs exact field-wise comparison.
// For approximate comparison please refer to ApproxEqual.
func (p Point) Equal(other Point) bool {
	return p.x == other.x && p.y == other.y
}

// String provides a string snapshot of the Point.
func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// Distance is the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.x-a.x, b.y-a.y)
}

// ApproxEqual reports whether both coordinates differ by no more than eps.
func ApproxEqual(a, b Point, eps float64) bool {
	return math.Abs(a.x-b.x) <= eps && math.Abs(a.y-b.y) <= eps
}

func midpoint(a, b Point) Point {
	return Point{x: (a.x + b.x) / 2, y: (a.y + b.y) / 2}
}
