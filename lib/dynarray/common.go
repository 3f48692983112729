package dynarray

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Error type used by the library to declare error constants.
type Error string

// Error method that implements error interface.
func (e Error) Error() string {
	return string(e)
}

// OutOfRangeError matches, via errors.Is, every error returned
// for access to a missing element, whatever its more specific kind is.
const OutOfRangeError = Error("out of range")

// EmptyArrayError is the kind of RangeError returned by any read or remove on an empty array.
const EmptyArrayError = Error("array is empty")

// IndexOutOfRangeError is the kind of RangeError returned if index isn't within [0, size).
const IndexOutOfRangeError = Error("index out of range")

// RangeError describes failed access to an element of the array.
type RangeError struct {
	Kind  Error
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	if e.Kind == EmptyArrayError {
		return string(EmptyArrayError)
	}
	return fmt.Sprintf("%v [%d] with length %d", e.Kind, e.Index, e.Size)
}

// Is allows matching by both the specific kind and OutOfRangeError.
func (e *RangeError) Is(target error) bool {
	return target == OutOfRangeError || target == e.Kind
}

// Options of the array.
type Options struct {
	InitialCapacity uint        // slots allocated upfront; growth keeps doubling from there
	Logger          *zap.Logger // debug events on growth and removal; no-op if nil
}

// Stats is a snapshot of array state and storage statistics
// that can be used by end-users for introspection.
type Stats struct {
	Size            int // count of live elements
	Capacity        int // count of allocated slots
	StorageBytes    int // bytes occupied by allocated slots
	CountOfGrowths  int // count of storage reallocations
	MovedHandles    int // handles transferred from old storage during growth
	ReleasedHandles int // shares released by Remove and Clear
}

// String provides a string snapshot of the Stats state.
func (s Stats) String() string {
	return fmt.Sprintf(
		"{Size: %v Capacity: %v StorageBytes: %v CountOfGrowths: %v MovedHandles: %v ReleasedHandles: %v}",
		s.Size, s.Capacity, humanize.IBytes(uint64(s.StorageBytes)), s.CountOfGrowths, s.MovedHandles, s.ReleasedHandles,
	)
}

var nopLogger = zap.NewNop()
