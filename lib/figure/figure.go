// Package figure contains a closed family of 2D figures
// that share the Figure capability interface.
package figure

// Kind identifies the concrete figure behind the Figure interface.
type Kind uint8

const (
	KindSquare Kind = iota + 1
	KindTriangle
	KindOctagon
)

func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "Square"
	case KindTriangle:
		return "Triangle"
	case KindOctagon:
		return "Octagon"
	default:
		return "Unknown"
	}
}

// Figure is implemented by Square, Triangle and Octagon.
//
// Area is the scalar value of the figure and is what sums of figures are built from.
// Equal is kind-aware: figures of different kinds are never equal,
// even if they were constructed from the same points.
type Figure interface {
	Kind() Kind
	Center() Point
	Area() float64
	Equal(other Figure) bool
	String() string
}

// Equal compares two figures through the Figure interface.
// Two nil figures are equal, nil is never equal to a non-nil figure.
func Equal(a, b Figure) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
