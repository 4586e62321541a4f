// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package dynarray provides Array, a growable array with an explicit split
// between its logical size and its allocated capacity.
//
// Capacity is never grown implicitly by single-element insertion: callers
// Resize before pushing into a full array. Positions are addressed either by
// index or by linear.Cursor values taken from the array. A cursor is only
// meaningful until the next mutation of the array it came from.
package dynarray

import (
	"github.com/cockroachdb/linear/pkg/util/linear"
	"github.com/cockroachdb/redact"
)

const containerName redact.SafeString = "array"

// Array is a growable array of comparable elements. The zero value is an
// empty array with zero capacity.
type Array[T comparable] struct {
	// buf holds the element slots; len(buf) is the capacity.
	buf  []T
	size int
}

// New returns an empty array with the given capacity.
func New[T comparable](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, linear.NewInvalidArgumentErrorf(
			"capacity must not be negative, got %d", redact.Safe(capacity))
	}
	return &Array[T]{buf: make([]T, capacity)}, nil
}

// Filled returns a full array of the given size, every slot holding value.
func Filled[T comparable](size int, value T) (*Array[T], error) {
	a, err := New[T](size)
	if err != nil {
		return nil, err
	}
	for i := range a.buf {
		a.buf[i] = value
	}
	a.size = size
	return a, nil
}

// FromBuffer copies the first n slots of buf into a new full array.
func FromBuffer[T comparable](n int, buf []T) (*Array[T], error) {
	if n < 0 || n > len(buf) {
		return nil, linear.NewOutOfRangeErrorf(
			"cannot copy %d slots from a buffer of length %d", redact.Safe(n), redact.Safe(len(buf)))
	}
	return FromSlice(buf[:n]), nil
}

// FromSlice copies values into a new full array.
func FromSlice[T comparable](values []T) *Array[T] {
	a := &Array[T]{buf: make([]T, len(values)), size: len(values)}
	copy(a.buf, values)
	return a
}

// FromRange copies the half-open range [from, to) into a new full array. Both
// cursors must come from the same buffer and from must precede to.
func FromRange[T comparable](from, to linear.Cursor[T]) (*Array[T], error) {
	if !from.SameSource(to) {
		return nil, linear.NewInvalidArgumentErrorf("range cursors reference different buffers")
	}
	if !from.Less(to) {
		return nil, linear.NewInvalidArgumentErrorf(
			"range start %s must precede range end %s", from, to)
	}
	a := &Array[T]{buf: make([]T, 0, to.Pos()-from.Pos())}
	for c := from.Unmarked(); c.Less(to); c.Next() {
		v, err := c.Get()
		if err != nil {
			return nil, err
		}
		a.buf = append(a.buf, v)
	}
	a.size = len(a.buf)
	return a, nil
}

// Clone returns a deep copy of the array with the same capacity.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{buf: make([]T, len(a.buf)), size: a.size}
	copy(c.buf, a.buf[:a.size])
	return c
}

// Swap exchanges the contents of two arrays.
func Swap[T comparable](a, b *Array[T]) {
	*a, *b = *b, *a
}

// Resize grows the capacity to exactly capacity, preserving the elements and
// their order. It is a no-op when capacity does not exceed the current one.
// Growing reallocates, which invalidates every outstanding cursor.
func (a *Array[T]) Resize(capacity int) {
	if capacity <= len(a.buf) {
		return
	}
	buf := make([]T, capacity)
	copy(buf, a.buf[:a.size])
	a.buf = buf
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.buf) }

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool { return a.size == 0 }

// Full reports whether every allocated slot is in use.
func (a *Array[T]) Full() bool { return a.size == len(a.buf) }

// Contains reports whether v is present.
func (a *Array[T]) Contains(v T) bool {
	for _, e := range a.buf[:a.size] {
		if e == v {
			return true
		}
	}
	return false
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	var zero T
	if err := a.checkNonEmpty(); err != nil {
		return zero, err
	}
	if err := linear.CheckIndex(i, a.size); err != nil {
		return zero, err
	}
	return a.buf[i], nil
}

// Begin returns a cursor at the first position.
func (a *Array[T]) Begin() linear.Cursor[T] { return a.cursor(0) }

// End returns the one-past-end sentinel cursor.
func (a *Array[T]) End() linear.Cursor[T] { return a.cursor(a.size) }

// Last returns a cursor at the last element, or Begin when the array is
// empty.
func (a *Array[T]) Last() linear.Cursor[T] {
	if a.size == 0 {
		return a.Begin()
	}
	return a.cursor(a.size - 1)
}

func (a *Array[T]) cursor(pos int) linear.Cursor[T] {
	c, err := linear.NewCursor(a.buf, a.size, pos)
	if err != nil {
		// Positions handed to cursor are always within [0, size].
		panic(err)
	}
	return c
}

// checkCursor verifies that c was taken from this array and references an
// element.
func (a *Array[T]) checkCursor(c linear.Cursor[T]) error {
	if !c.SameBuffer(a.buf) {
		return linear.NewInvalidArgumentErrorf("%s does not reference this %s", c, containerName)
	}
	return linear.CheckIndex(c.Pos(), a.size)
}

// checkRange verifies an inclusive cursor range over this array and returns
// its bounds. A range ending at End covers the last element.
func (a *Array[T]) checkRange(from, to linear.Cursor[T]) (lo, hi int, _ error) {
	lo, hi = from.Pos(), linear.ClampRangeEnd(to.Pos(), a.size)
	if err := linear.CheckOrdered(lo, hi); err != nil {
		return 0, 0, err
	}
	if err := a.checkCursor(from); err != nil {
		return 0, 0, err
	}
	if !to.SameBuffer(a.buf) {
		return 0, 0, linear.NewInvalidArgumentErrorf("%s does not reference this %s", to, containerName)
	}
	if err := linear.CheckIndex(hi, a.size); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

func (a *Array[T]) checkNonEmpty() error {
	if a.size == 0 {
		return linear.NewEmptyError(containerName)
	}
	return nil
}

// ToSlice returns a copy of the elements.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.size)
	copy(out, a.buf[:a.size])
	return out
}

// values returns the live prefix of the buffer without copying.
func (a *Array[T]) values() []T { return a.buf[:a.size] }

// ToString renders the elements separated by ", " and terminated by ".".
func (a *Array[T]) ToString() (string, error) {
	if err := a.checkNonEmpty(); err != nil {
		return "", err
	}
	return linear.Join(a.values(), ", ", "."), nil
}

// SafeFormat implements redact.SafeFormatter.
func (a *Array[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	linear.FormatValues(w, containerName, a.values())
	w.Printf(" (%d/%d)", redact.Safe(a.size), redact.Safe(len(a.buf)))
}

// String implements fmt.Stringer.
func (a *Array[T]) String() string { return redact.StringWithoutMarkers(a) }

// Equal reports whether both arrays hold the same elements in the same order.
// Capacity is not compared.
func (a *Array[T]) Equal(o *Array[T]) bool {
	return linear.EqualSlices(a.values(), o.values())
}
