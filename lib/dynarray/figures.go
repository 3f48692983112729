package dynarray

import "github.com/storozhukBM/figures/lib/figure"

// Entry describes one element of an array of figures.
type Entry struct {
	Index       int
	Kind        figure.Kind
	Description string
	Area        float64
}

// CenterEntry is the center of one element of an array of figures.
type CenterEntry struct {
	Index  int
	Center figure.Point
}

// Enumerate describes every figure of the array in index order.
// It returns *RangeError of kind EmptyArrayError if the array is empty.
func Enumerate[T figure.Figure](a *Array[T]) ([]Entry, error) {
	checkErr := a.checkNotEmpty()
	if checkErr != nil {
		return nil, checkErr
	}
	result := make([]Entry, 0, a.size)
	for i := 0; i < a.size; i++ {
		f := a.data[i].Get()
		result = append(result, Entry{
			Index:       i,
			Kind:        f.Kind(),
			Description: f.String(),
			Area:        f.Area(),
		})
	}
	return result, nil
}

// Centers reports the center of every figure of the array in index order.
// It returns *RangeError of kind EmptyArrayError if the array is empty.
func Centers[T figure.Figure](a *Array[T]) ([]CenterEntry, error) {
	checkErr := a.checkNotEmpty()
	if checkErr != nil {
		return nil, checkErr
	}
	result := make([]CenterEntry, 0, a.size)
	for i := 0; i < a.size; i++ {
		result = append(result, CenterEntry{Index: i, Center: a.data[i].Get().Center()})
	}
	return result, nil
}

// TotalArea sums areas of all figures in index order.
// It returns *RangeError of kind EmptyArrayError if the array is empty.
func TotalArea[T figure.Figure](a *Array[T]) (float64, error) {
	checkErr := a.checkNotEmpty()
	if checkErr != nil {
		return 0, checkErr
	}
	totalArea := 0.0
	for i := 0; i < a.size; i++ {
		totalArea += a.data[i].Get().Area()
	}
	return totalArea, nil
}
