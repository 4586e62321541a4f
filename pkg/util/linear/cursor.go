// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linear

import (
	"unsafe"

	"github.com/cockroachdb/redact"
)

// Cursor is a position within a snapshot of an array-backed container's
// buffer. It does not own the buffer: the container it was taken from may
// reallocate or shift elements, after which the cursor is stale. There is no
// invalidation tracking beyond the buffer identity check that containers
// perform when a cursor is handed back to them.
//
// Valid positions are [0, size]; size itself is the one-past-end sentinel,
// which can be compared and moved but not dereferenced.
//
// The found flag distinguishes cursors produced by a successful search from
// plain position cursors. It takes part in equality, so a search result that
// happens to be co-located with a plain cursor does not compare equal to it.
type Cursor[T any] struct {
	buf   []T
	size  int
	pos   int
	found bool
}

// NewCursor returns a cursor at pos over the first size slots of buf.
func NewCursor[T any](buf []T, size, pos int) (Cursor[T], error) {
	if size < 0 || size > len(buf) {
		return Cursor[T]{}, NewOutOfRangeErrorf(
			"declared size %d exceeds buffer length %d", redact.Safe(size), redact.Safe(len(buf)))
	}
	if pos < 0 || pos > size {
		return Cursor[T]{}, NewOutOfRangeErrorf(
			"cursor position %d is out of range [0, %d]", redact.Safe(pos), redact.Safe(size))
	}
	return Cursor[T]{buf: buf, size: size, pos: pos}, nil
}

// Pos returns the cursor position.
func (c Cursor[T]) Pos() int { return c.pos }

// Size returns the buffer size declared when the cursor was created.
func (c Cursor[T]) Size() int { return c.size }

// Found reports whether the cursor was produced by a successful search.
func (c Cursor[T]) Found() bool { return c.found }

// Valid reports whether the cursor references an element, i.e. it is not
// the one-past-end sentinel.
func (c Cursor[T]) Valid() bool { return c.pos >= 0 && c.pos < c.size }

// Marked returns a copy of the cursor flagged as a search result.
func (c Cursor[T]) Marked() Cursor[T] {
	c.found = true
	return c
}

// Unmarked returns a copy of the cursor with the search flag cleared.
func (c Cursor[T]) Unmarked() Cursor[T] {
	c.found = false
	return c
}

// Get dereferences the cursor.
func (c Cursor[T]) Get() (T, error) {
	if !c.Valid() {
		var zero T
		return zero, c.derefError()
	}
	return c.buf[c.pos], nil
}

// Set overwrites the element the cursor references.
func (c Cursor[T]) Set(v T) error {
	if !c.Valid() {
		return c.derefError()
	}
	c.buf[c.pos] = v
	return nil
}

func (c Cursor[T]) derefError() error {
	return NewOutOfRangeErrorf(
		"cannot dereference cursor at position %d of %d", redact.Safe(c.pos), redact.Safe(c.size))
}

// Add returns a new, unmarked cursor moved n positions forward.
func (c Cursor[T]) Add(n int) (Cursor[T], error) {
	p := c.pos + n
	if p < 0 || p > c.size {
		return Cursor[T]{}, NewOutOfRangeErrorf(
			"resulting position %d is out of range [0, %d]", redact.Safe(p), redact.Safe(c.size))
	}
	return Cursor[T]{buf: c.buf, size: c.size, pos: p}, nil
}

// Sub returns a new, unmarked cursor moved n positions backward.
func (c Cursor[T]) Sub(n int) (Cursor[T], error) {
	return c.Add(-n)
}

// Next advances the cursor by one position, stopping at the sentinel. It
// reports whether the cursor still references an element.
func (c *Cursor[T]) Next() bool {
	if c.pos < c.size {
		c.pos++
	}
	return c.Valid()
}

// Prev moves the cursor back by one position. It reports false, leaving the
// cursor in place, when it is already at the first position.
func (c *Cursor[T]) Prev() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--
	return true
}

// SameBuffer reports whether the cursor references buf.
//
// Identity is the address of the backing array. Every zero-capacity buffer
// may share one address, so cursors over two distinct zero-capacity
// containers compare as the same. Such cursors can only sit at position 0,
// which is the sentinel, so no element is ever reached through them.
func (c Cursor[T]) SameBuffer(buf []T) bool {
	return unsafe.SliceData(c.buf) == unsafe.SliceData(buf)
}

// SameSource reports whether both cursors reference the same buffer.
func (c Cursor[T]) SameSource(o Cursor[T]) bool {
	return c.SameBuffer(o.buf)
}

// Equal reports whether both cursors reference the same buffer at the same
// position with the same search flag.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.SameBuffer(o.buf) && c.pos == o.pos && c.found == o.found
}

// Compare orders cursors by position only.
func (c Cursor[T]) Compare(o Cursor[T]) int {
	switch {
	case c.pos < o.pos:
		return -1
	case c.pos > o.pos:
		return 1
	default:
		return 0
	}
}

// Less reports whether c is positioned before o.
func (c Cursor[T]) Less(o Cursor[T]) bool { return c.pos < o.pos }

// Greater reports whether c is positioned after o.
func (c Cursor[T]) Greater(o Cursor[T]) bool { return c.pos > o.pos }

// LessEq reports whether c is not positioned after o.
func (c Cursor[T]) LessEq(o Cursor[T]) bool { return c.pos <= o.pos }

// GreaterEq reports whether c is not positioned before o.
func (c Cursor[T]) GreaterEq(o Cursor[T]) bool { return c.pos >= o.pos }

// SafeFormat implements redact.SafeFormatter.
func (c Cursor[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("cursor(%d/%d", redact.Safe(c.pos), redact.Safe(c.size))
	if c.found {
		w.SafeString(", found")
	}
	w.SafeRune(')')
}

// String implements fmt.Stringer.
func (c Cursor[T]) String() string { return redact.StringWithoutMarkers(c) }
