package dynarray_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/storozhukBM/figures/lib/dynarray"
	"github.com/storozhukBM/figures/lib/figure"
)

type figureArray = dynarray.Array[figure.Figure]

type testFigures struct {
	square   dynarray.Handle[figure.Figure]
	triangle dynarray.Handle[figure.Figure]
	octagon  dynarray.Handle[figure.Figure]
}

func newTestFigures() testFigures {
	return testFigures{
		square:   dynarray.NewHandle[figure.Figure](figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0))),
		triangle: dynarray.NewHandle[figure.Figure](figure.NewTriangle(figure.Pt(0, 0), figure.Pt(2, 0), 2)),
		octagon:  dynarray.NewHandle[figure.Figure](figure.NewOctagon(figure.Pt(0, 0), figure.Pt(1, 0))),
	}
}

func checkArrayState(t *testing.T, arr *figureArray, expected dynarray.Stats) {
	t.Helper()
	actual := arr.Stats()
	if diff := cmp.Diff(expected, actual, cmpopts.IgnoreFields(dynarray.Stats{}, "StorageBytes")); diff != "" {
		t.Fatalf("array stats mismatch (-want +got):\n%s", diff)
	}
	if actual.Size != arr.Size() || actual.Capacity != arr.Cap() {
		t.Fatalf("stats %v don't match array %v", actual, arr)
	}
}

func checkContent(t *testing.T, arr *figureArray, expected ...figure.Figure) {
	t.Helper()
	var actual []figure.Figure
	arr.Each(func(_ int, h dynarray.Handle[figure.Figure]) bool {
		actual = append(actual, h.Get())
		return true
	})
	if len(actual) != len(expected) {
		t.Fatalf("unexpected count of elements.\n exp: %v\n act: %v", expected, actual)
	}
	for i := range expected {
		if !figure.Equal(expected[i], actual[i]) {
			t.Fatalf("unexpected element at %d.\n exp: %v\n act: %v", i, expected[i], actual[i])
		}
	}
}
