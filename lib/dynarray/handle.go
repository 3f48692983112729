package dynarray

import "fmt"

// Handle is a shared handle to a value of type T.
//
// Each holder owns one share of the value. Shares are created by NewHandle and Share
// and dropped by Release; the value stays reachable through the handle while at least one share is alive.
// Copying a Handle value doesn't create a new share, so a copy has to be treated as the same share.
//
// Holder counting is not synchronized. Handles of the same value
// must not be shared and released from different goroutines without external locking.
type Handle[T any] struct {
	c *control[T]
}

type control[T any] struct {
	value   T
	holders int
}

// NewHandle wraps value into a handle with one holder.
func NewHandle[T any](value T) Handle[T] {
	return Handle[T]{c: &control[T]{value: value, holders: 1}}
}

// Share registers a new holder and returns its share of the value.
// Share of the nil handle is the nil handle.
func (h Handle[T]) Share() Handle[T] {
	if h.c != nil {
		h.c.holders++
	}
	return h
}

// Release drops this share and resets h to the nil handle.
// When the last share is released, the value is dropped.
func (h *Handle[T]) Release() {
	if h.c == nil {
		return
	}
	h.c.holders--
	if h.c.holders <= 0 {
		var zero T
		h.c.value = zero
	}
	h.c = nil
}

// Get returns the value behind the handle.
// It panics if the handle is nil or all its shares are already released.
func (h Handle[T]) Get() T {
	if h.c == nil {
		panic("nil handle dereference")
	}
	if h.c.holders <= 0 {
		panic("released handle dereference")
	}
	return h.c.value
}

// IsNil reports whether h doesn't refer to any value.
func (h Handle[T]) IsNil() bool {
	return h.c == nil
}

// Holders returns the count of alive shares of the value.
func (h Handle[T]) Holders() int {
	if h.c == nil {
		return 0
	}
	return h.c.holders
}

// Same reports whether both handles refer to the same value.
func (h Handle[T]) Same(other Handle[T]) bool {
	return h.c == other.c
}

// String provides a string snapshot of the handle.
func (h Handle[T]) String() string {
	if h.c == nil {
		return "handle{nil}"
	}
	return fmt.Sprintf("handle{holders: %v value: %v}", h.c.holders, h.c.value)
}
