package main

import (
	"fmt"

	"github.com/storozhukBM/figures/lib/dynarray"
	"github.com/storozhukBM/figures/lib/figure"
)

func main() {
	arr := &dynarray.Array[figure.Figure]{}

	square := dynarray.NewHandle[figure.Figure](figure.NewSquare(figure.Pt(0, 0), figure.Pt(1, 0)))
	arr.Add(square.Share())
	arr.Add(dynarray.NewHandle[figure.Figure](figure.NewTriangle(figure.Pt(0, 0), figure.Pt(2, 0), 2)))
	arr.Add(dynarray.NewHandle[figure.Figure](figure.NewOctagon(figure.Pt(0, 0), figure.Pt(1, 0))))
	fmt.Printf("%v\n", arr)

	entries, _ := dynarray.Enumerate(arr)
	for _, e := range entries {
		fmt.Printf("%d: %s | Area: %v\n", e.Index, e.Description, e.Area)
	}

	if removeErr := arr.Remove(0); removeErr != nil {
		fmt.Printf("can't remove: %v\n", removeErr)
	}
	fmt.Printf("square is still alive: %v\n", square)

	total, _ := dynarray.TotalArea(arr)
	fmt.Printf("Total Area: %v\n", total)

	moved := arr.Take()
	fmt.Printf("source: %v; destination: %v\n", arr, moved)
	fmt.Printf("%+v\n", moved.Stats())
	if removeErr := arr.Remove(0); removeErr != nil {
		fmt.Printf("can't remove: %v\n", removeErr)
	}
}
