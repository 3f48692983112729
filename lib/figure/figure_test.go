package figure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storozhukBM/figures/lib/figure"
)

const eps = 1e-9

func TestPointConstruction(t *testing.T) {
	zero := figure.Point{}
	assert.Equal(t, 0.0, zero.X())
	assert.Equal(t, 0.0, zero.Y())

	p := figure.Pt(3.5, 4.2)
	assert.Equal(t, 3.5, p.X())
	assert.Equal(t, 4.2, p.Y())
	assert.Equal(t, "(3.5, 4.2)", p.String())
}

func TestPointEquality(t *testing.T) {
	p1 := figure.Pt(1, 2)
	p2 := figure.Pt(1, 2)
	p3 := figure.Pt(1, 3)
	assert.True(t, p1.Equal(p2))
	assert.True(t, p1 == p2)
	assert.False(t, p1.Equal(p3))

	a, b := 0.1, 0.2
	assert.False(t, figure.Pt(a+b, 0).Equal(figure.Pt(0.3, 0)), "point equality is exact")
	assert.True(t, figure.ApproxEqual(figure.Pt(a+b, 0), figure.Pt(0.3, 0), eps))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, figure.Distance(figure.Pt(0, 0), figure.Pt(3, 4)), eps)
	assert.Equal(t, 0.0, figure.Distance(figure.Pt(1, 1), figure.Pt(1, 1)))
}

func TestSquare(t *testing.T) {
	sq := figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0))
	center := sq.Center()
	assert.InDelta(t, 0.5, center.X(), eps)
	assert.InDelta(t, 0.5, center.Y(), eps)
	assert.InDelta(t, 1.0, sq.Area(), eps)
	assert.Equal(t, figure.KindSquare, sq.Kind())

	bigger := figure.NewSquare(figure.Pt(0, 0), figure.Pt(2, 0))
	assert.InDelta(t, 4.0, bigger.Area(), eps)

	rotated := figure.NewSquare(figure.Pt(0, 0), figure.Pt(3, 4))
	assert.InDelta(t, 25.0, rotated.Area(), eps)
}

func TestTriangle(t *testing.T) {
	tri := figure.NewTriangle(figure.Pt(0, 0), figure.Pt(2, 0), 2)
	c := tri.Center()
	assert.InDelta(t, 1.0, c.X(), eps)
	assert.InDelta(t, 2.0/3.0, c.Y(), eps)
	assert.True(t, figure.ApproxEqual(figure.Pt(1, 2), tri.Apex(), eps))

	area := figure.NewTriangle(figure.Pt(0, 0), figure.Pt(4, 0), 3)
	assert.InDelta(t, 6.0, area.Area(), eps)
	assert.Equal(t, figure.KindTriangle, area.Kind())
}

func TestTriangleApexFollowsBaseDirection(t *testing.T) {
	tri := figure.NewTriangle(figure.Pt(0, 0), figure.Pt(0, 2), 3)
	assert.True(t, figure.ApproxEqual(figure.Pt(-3, 1), tri.Apex(), eps), "apex: %v", tri.Apex())
	assert.InDelta(t, 3.0, tri.Area(), eps)
}

func TestOctagon(t *testing.T) {
	oct := figure.NewOctagon(figure.Pt(0, 0), figure.Pt(1, 0))
	assert.Equal(t, figure.Pt(0, 0), oct.Center())
	assert.InDelta(t, 2.8284271247461903, oct.Area(), eps)
	assert.Equal(t, figure.KindOctagon, oct.Kind())

	moved := figure.NewOctagon(figure.Pt(5, -2), figure.Pt(5, 0))
	assert.Equal(t, figure.Pt(5, -2), moved.Center())
	assert.InDelta(t, 8*math.Sqrt2, moved.Area(), eps)
}

func TestEqualityThroughInterface(t *testing.T) {
	cases := []struct {
		name  string
		a     figure.Figure
		b     figure.Figure
		equal bool
	}{
		{
			name:  "same squares",
			a:     figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0)),
			b:     figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0)),
			equal: true,
		},
		{
			name:  "same triangles",
			a:     figure.NewTriangle(figure.Pt(0, 0), figure.Pt(2, 0), 2),
			b:     figure.NewTriangle(figure.Pt(0, 0), figure.Pt(2, 0), 2),
			equal: true,
		},
		{
			name:  "same octagons",
			a:     figure.NewOctagon(figure.Pt(0, 0), figure.Pt(1, 0)),
			b:     figure.NewOctagon(figure.Pt(0, 0), figure.Pt(1, 0)),
			equal: true,
		},
		{
			name:  "square and its pointer",
			a:     figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0)),
			b:     squarePtr(figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0))),
			equal: true,
		},
		{
			name:  "square and triangle from the same points",
			a:     figure.NewSquare(figure.Pt(0, 0), figure.Pt(2, 0)),
			b:     figure.NewTriangle(figure.Pt(0, 0), figure.Pt(2, 0), 2),
			equal: false,
		},
		{
			name:  "octagon and square from the same points",
			a:     figure.NewOctagon(figure.Pt(0, 0), figure.Pt(1, 0)),
			b:     figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0)),
			equal: false,
		},
		{
			name:  "different triangle heights",
			a:     figure.NewTriangle(figure.Pt(0, 0), figure.Pt(2, 0), 2),
			b:     figure.NewTriangle(figure.Pt(0, 0), figure.Pt(2, 0), 3),
			equal: false,
		},
		{
			name:  "different square corners",
			a:     figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0)),
			b:     figure.NewSquare(figure.Pt(1, 0), figure.Pt(2, 0)),
			equal: false,
		},
		{
			name:  "figure and nil",
			a:     figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0)),
			b:     nil,
			equal: false,
		},
		{
			name:  "nil and nil",
			equal: true,
		},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.equal, figure.Equal(c.a, c.b))
			assert.Equal(t, c.equal, figure.Equal(c.b, c.a))
		})
	}
}

func TestDegenerateInputIsClamped(t *testing.T) {
	sq := figure.NewSquare(figure.Pt(0, 0), figure.Pt(0, 0))
	assert.Greater(t, sq.Area(), 0.0)
	assert.Equal(t, figure.MinDimension, sq.Side())

	tri := figure.NewTriangle(figure.Pt(0, 0), figure.Pt(1, 0), 0)
	assert.Greater(t, tri.Area(), 0.0)
	assert.Equal(t, figure.MinDimension, tri.Height())

	negative := figure.NewTriangle(figure.Pt(0, 0), figure.Pt(1, 0), -5)
	assert.Greater(t, negative.Area(), 0.0)

	flat := figure.NewTriangle(figure.Pt(1, 1), figure.Pt(1, 1), 2)
	assert.Greater(t, flat.Area(), 0.0)

	oct := figure.NewOctagon(figure.Pt(3, 3), figure.Pt(3, 3))
	assert.Greater(t, oct.Area(), 0.0)
	assert.Equal(t, figure.Pt(3, 3), oct.Center())
}

func TestStrictModeRejectsDegenerateInput(t *testing.T) {
	strict := figure.Options{Strict: true}

	_, sqErr := figure.NewSquareWithOptions(figure.Pt(0, 0), figure.Pt(0, 0), strict)
	require.ErrorIs(t, sqErr, figure.DegenerateFigureError)

	_, triErr := figure.NewTriangleWithOptions(figure.Pt(0, 0), figure.Pt(1, 0), 0, strict)
	require.ErrorIs(t, triErr, figure.DegenerateFigureError)

	_, flatErr := figure.NewTriangleWithOptions(figure.Pt(0, 0), figure.Pt(0, 0), 1, strict)
	require.ErrorIs(t, flatErr, figure.DegenerateFigureError)

	_, octErr := figure.NewOctagonWithOptions(figure.Pt(0, 0), figure.Pt(0, 0), strict)
	require.ErrorIs(t, octErr, figure.DegenerateFigureError)

	_, nanErr := figure.NewSquareWithOptions(figure.Pt(math.NaN(), 0), figure.Pt(1, 0), strict)
	require.ErrorIs(t, nanErr, figure.NonFiniteInputError)

	_, infErr := figure.NewTriangleWithOptions(figure.Pt(0, 0), figure.Pt(1, 0), math.Inf(1), strict)
	require.ErrorIs(t, infErr, figure.NonFiniteInputError)

	sq, okErr := figure.NewSquareWithOptions(figure.Pt(0, 0), figure.Pt(1, 0), strict)
	require.NoError(t, okErr)
	assert.True(t, sq.Equal(figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0))))
}

func TestDescriptions(t *testing.T) {
	assert.Equal(t, "Square{corner: (0, 0), side: 1}", figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0)).String())
	assert.Equal(t, "Triangle{base: (0, 0)-(2, 0), height: 2}", figure.NewTriangle(figure.Pt(0, 0), figure.Pt(2, 0), 2).String())
	assert.Equal(t, "Octagon{center: (0, 0), radius: 1}", figure.NewOctagon(figure.Pt(0, 0), figure.Pt(1, 0)).String())
	assert.Equal(t, "Unknown", figure.Kind(0).String())
}

func squarePtr(s figure.Square) *figure.Square {
	return &s
}
