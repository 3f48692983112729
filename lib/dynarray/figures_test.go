package dynarray_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storozhukBM/figures/lib/dynarray"
	"github.com/storozhukBM/figures/lib/figure"
)

func TestQueriesOnEmptyArray(t *testing.T) {
	arr := &figureArray{}

	entries, enumerateErr := dynarray.Enumerate(arr)
	require.ErrorIs(t, enumerateErr, dynarray.OutOfRangeError)
	require.ErrorIs(t, enumerateErr, dynarray.EmptyArrayError)
	assert.Nil(t, entries)

	centers, centersErr := dynarray.Centers(arr)
	require.ErrorIs(t, centersErr, dynarray.EmptyArrayError)
	assert.Nil(t, centers)

	total, totalErr := dynarray.TotalArea(arr)
	require.ErrorIs(t, totalErr, dynarray.EmptyArrayError)
	assert.Equal(t, 0.0, total)
}

func TestEnumerate(t *testing.T) {
	f := newTestFigures()
	arr := &figureArray{}
	arr.Add(f.square)
	arr.Add(f.triangle)
	arr.Add(f.octagon)

	entries, enumerateErr := dynarray.Enumerate(arr)
	require.NoError(t, enumerateErr)
	expected := []dynarray.Entry{
		{Index: 0, Kind: figure.KindSquare, Description: "Square{corner: (0, 0), side: 1}", Area: 1},
		{Index: 1, Kind: figure.KindTriangle, Description: "Triangle{base: (0, 0)-(2, 0), height: 2}", Area: 2},
		{Index: 2, Kind: figure.KindOctagon, Description: "Octagon{center: (0, 0), radius: 1}", Area: 2.8284271247461903},
	}
	if diff := cmp.Diff(expected, entries, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Enumerate() mismatch (-want +got):\n%s", diff)
	}
}

func TestCenters(t *testing.T) {
	f := newTestFigures()
	arr := &figureArray{}
	arr.Add(f.square)
	arr.Add(f.triangle)
	arr.Add(f.octagon)

	centers, centersErr := dynarray.Centers(arr)
	require.NoError(t, centersErr)
	require.Len(t, centers, 3)

	expected := []figure.Point{figure.Pt(0.5, 0.5), figure.Pt(1, 2.0/3.0), figure.Pt(0, 0)}
	for i, c := range centers {
		assert.Equal(t, i, c.Index)
		assert.True(t, figure.ApproxEqual(expected[i], c.Center, 1e-9), "center %d: %v", i, c.Center)
	}
}

func TestTotalAreaAfterRemoval(t *testing.T) {
	f := newTestFigures()
	arr := &figureArray{}
	arr.Add(f.square)
	arr.Add(f.triangle)
	arr.Add(f.octagon)

	total, totalErr := dynarray.TotalArea(arr)
	require.NoError(t, totalErr)
	assert.InDelta(t, 1+2+2.8284271247461903, total, 1e-9)

	require.NoError(t, arr.Remove(1))
	assert.Equal(t, 2, arr.Size())

	total, totalErr = dynarray.TotalArea(arr)
	require.NoError(t, totalErr)
	assert.InDelta(t, 1+2.8284271247461903, total, 1e-9)

	entries, enumerateErr := dynarray.Enumerate(arr)
	require.NoError(t, enumerateErr)
	require.Len(t, entries, 2)
	assert.Equal(t, figure.KindSquare, entries[0].Kind)
	assert.Equal(t, figure.KindOctagon, entries[1].Kind)
	assert.Equal(t, 1, entries[1].Index)
}

func TestQueriesOnConcreteElementType(t *testing.T) {
	arr := dynarray.New[figure.Square](dynarray.Options{})
	arr.Add(dynarray.NewHandle(figure.NewSquare(figure.Pt(0, 0), figure.Pt(2, 0))))
	arr.Add(dynarray.NewHandle(figure.NewSquare(figure.Pt(1, 1), figure.Pt(1, 4))))

	total, totalErr := dynarray.TotalArea(arr)
	require.NoError(t, totalErr)
	assert.InDelta(t, 4+9, total, 1e-9)
}
