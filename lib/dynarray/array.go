// Package dynarray provides a growable array of shared handles.
package dynarray

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"
)

// Array is a growable sequence of shared handles to values of type T.
//
// Storage starts empty, is allocated with 2 slots on the first Add and doubles every time it is full.
// Capacity never shrinks on Remove.
//
// The array is one of the holders of every element it contains:
// Add takes over the passed share, and Remove and Clear release the array's share.
// A caller that keeps using a handle after Add should pass h.Share() instead of h.
//
// Array must not be copied after first use. Its content can be transferred
// to another array with Take or MoveFrom, which leave the source empty.
//
// The zero Array is empty and ready to use.
type Array[T any] struct {
	noCopy noCopy

	data []Handle[T]
	size int

	logger *zap.Logger

	countOfGrowths  int
	movedHandles    int
	releasedHandles int
}

// New creates an array configured by opts.
func New[T any](opts Options) *Array[T] {
	result := &Array[T]{logger: opts.Logger}
	if opts.InitialCapacity > 0 {
		result.data = make([]Handle[T], opts.InitialCapacity)
	}
	return result
}

// Add appends h at index Size(), growing storage first if it is full.
//
// The array takes over the share passed as h.
// Adding the nil handle is a programming error, so it panics.
func (a *Array[T]) Add(h Handle[T]) {
	if h.IsNil() {
		panic("can't add nil handle")
	}
	if a.size == len(a.data) {
		a.grow()
	}
	a.data[a.size] = h
	a.size++
}

// Remove deletes the element at index, shifting all subsequent elements one slot to the front.
// The array's share of the removed element is released.
//
// It returns *RangeError of kind EmptyArrayError or IndexOutOfRangeError
// and leaves the array untouched if there is no element at index.
func (a *Array[T]) Remove(index int) error {
	checkErr := a.checkIndex(index)
	if checkErr != nil {
		return checkErr
	}
	removed := a.data[index]
	copy(a.data[index:a.size-1], a.data[index+1:a.size])
	a.data[a.size-1] = Handle[T]{}
	a.size--

	removed.Release()
	a.releasedHandles++
	a.log().Debug("element removed", zap.Int("index", index), zap.Int("size", a.size))
	return nil
}

// At returns the array's own share of the element at index.
// The result has to be shared if the caller wants to keep it after removal.
func (a *Array[T]) At(index int) (Handle[T], error) {
	checkErr := a.checkIndex(index)
	if checkErr != nil {
		return Handle[T]{}, checkErr
	}
	return a.data[index], nil
}

// Each calls f for every element in index order until f returns false.
func (a *Array[T]) Each(f func(index int, h Handle[T]) bool) {
	for i := 0; i < a.size; i++ {
		if !f(i, a.data[i]) {
			return
		}
	}
}

// Size returns the count of live elements.
func (a *Array[T]) Size() int {
	return a.size
}

// Cap returns the count of allocated slots.
func (a *Array[T]) Cap() int {
	return len(a.data)
}

// Take transfers storage and elements into a new array and leaves a empty with zero capacity.
func (a *Array[T]) Take() *Array[T] {
	result := &Array[T]{
		data:   a.data,
		size:   a.size,
		logger: a.logger,
	}
	a.data = nil
	a.size = 0
	return result
}

// MoveFrom releases current elements of a and transfers storage and elements of src into a.
// src is left empty with zero capacity. Moving an array into itself does nothing.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if src == nil || a == src {
		return
	}
	a.Clear()
	a.data = src.data
	a.size = src.size
	src.data = nil
	src.size = 0
}

// Clear releases the array's share of every element and drops the storage.
func (a *Array[T]) Clear() {
	for i := 0; i < a.size; i++ {
		a.data[i].Release()
	}
	a.releasedHandles += a.size
	a.data = nil
	a.size = 0
}

// Stats provides a snapshot of current array statistics.
func (a *Array[T]) Stats() Stats {
	var slot Handle[T]
	return Stats{
		Size:            a.size,
		Capacity:        len(a.data),
		StorageBytes:    len(a.data) * int(unsafe.Sizeof(slot)),
		CountOfGrowths:  a.countOfGrowths,
		MovedHandles:    a.movedHandles,
		ReleasedHandles: a.releasedHandles,
	}
}

// String provides a string snapshot of the array state.
func (a *Array[T]) String() string {
	return fmt.Sprintf("dynarray{size: %v capacity: %v}", a.size, len(a.data))
}

func (a *Array[T]) grow() {
	newCapacity := 2
	if len(a.data) > 0 {
		newCapacity = len(a.data) * 2
	}
	newData := make([]Handle[T], newCapacity)
	for i := 0; i < a.size; i++ {
		newData[i] = a.data[i]
		a.data[i] = Handle[T]{}
	}
	a.log().Debug(
		"storage grown",
		zap.Int("from", len(a.data)), zap.Int("to", newCapacity), zap.Int("moved", a.size),
	)
	a.data = newData
	a.countOfGrowths++
	a.movedHandles += a.size
}

func (a *Array[T]) checkIndex(index int) error {
	if a.size == 0 {
		return &RangeError{Kind: EmptyArrayError, Index: index}
	}
	if index < 0 || index >= a.size {
		return &RangeError{Kind: IndexOutOfRangeError, Index: index, Size: a.size}
	}
	return nil
}

func (a *Array[T]) checkNotEmpty() error {
	if a.size == 0 {
		return &RangeError{Kind: EmptyArrayError}
	}
	return nil
}

func (a *Array[T]) log() *zap.Logger {
	if a.logger == nil {
		return nopLogger
	}
	return a.logger
}

// noCopy may be embedded into structs which must not be copied
// after the first use. See https://golang.org/issues/8005#issuecomment-190753527
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
