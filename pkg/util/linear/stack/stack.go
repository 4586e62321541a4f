// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package stack provides a fixed-capacity LIFO stack backed by a contiguous
// buffer. The bottom of the stack is index 0.
package stack

import (
	"cmp"

	"github.com/cockroachdb/linear/pkg/util/linear"
	"github.com/cockroachdb/redact"
)

// DefaultCapacity is the capacity used by callers that have no better
// estimate.
const DefaultCapacity = 10

const containerName redact.SafeString = "stack"

// Stack is a LIFO stack with a fixed capacity. Push fails on a full stack
// rather than growing; callers Resize explicitly.
type Stack[T comparable] struct {
	buf  []T
	size int
}

// New returns an empty stack with the given capacity.
func New[T comparable](capacity int) (*Stack[T], error) {
	if capacity < 0 {
		return nil, linear.NewInvalidArgumentErrorf(
			"capacity must not be negative, got %d", redact.Safe(capacity))
	}
	return &Stack[T]{buf: make([]T, capacity)}, nil
}

// Filled returns a full stack of the given size holding value in every slot.
func Filled[T comparable](size int, value T) (*Stack[T], error) {
	s, err := New[T](size)
	if err != nil {
		return nil, err
	}
	for i := range s.buf {
		s.buf[i] = value
	}
	s.size = size
	return s, nil
}

// FromSlice returns a full stack holding values, values[0] at the bottom.
func FromSlice[T comparable](values []T) *Stack[T] {
	s := &Stack[T]{buf: make([]T, len(values)), size: len(values)}
	copy(s.buf, values)
	return s
}

// FromRange returns a full stack holding the half-open cursor range
// [from, to), the element at from at the bottom.
func FromRange[T comparable](from, to linear.Cursor[T]) (*Stack[T], error) {
	if !from.SameSource(to) {
		return nil, linear.NewInvalidArgumentErrorf("range cursors reference different buffers")
	}
	if !from.Less(to) {
		return nil, linear.NewInvalidArgumentErrorf(
			"range start %s must precede range end %s", from, to)
	}
	var values []T
	for c := from.Unmarked(); c.Less(to); c.Next() {
		v, err := c.Get()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return FromSlice(values), nil
}

// Clone returns a deep copy with the same capacity.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{buf: make([]T, len(s.buf)), size: s.size}
	copy(c.buf, s.values())
	return c
}

// Resize grows the capacity to exactly capacity. It never shrinks.
func (s *Stack[T]) Resize(capacity int) {
	if capacity <= len(s.buf) {
		return
	}
	buf := make([]T, capacity)
	copy(buf, s.values())
	s.buf = buf
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.size }

// Cap returns the capacity.
func (s *Stack[T]) Cap() int { return len(s.buf) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.size == 0 }

// Full reports whether the stack is at capacity.
func (s *Stack[T]) Full() bool { return s.size == len(s.buf) }

func (s *Stack[T]) values() []T { return s.buf[:s.size] }

func (s *Stack[T]) checkNonEmpty() error {
	if s.size == 0 {
		return linear.NewEmptyError(containerName)
	}
	return nil
}

func (s *Stack[T]) checkNotFull() error {
	if s.Full() {
		return linear.NewCapacityExceededError(containerName, len(s.buf))
	}
	return nil
}

// Contains reports whether v is on the stack.
func (s *Stack[T]) Contains(v T) bool {
	return s.Count(v) > 0
}

// Push places v on top.
func (s *Stack[T]) Push(v T) error {
	if err := s.checkNotFull(); err != nil {
		return err
	}
	s.buf[s.size] = v
	s.size++
	return nil
}

// Insert places v at index i counted from the bottom, shifting the elements
// above it up by one. i may equal Len, which is equivalent to Push.
func (s *Stack[T]) Insert(i int, v T) error {
	if err := s.checkNotFull(); err != nil {
		return err
	}
	if err := linear.CheckIndex(i, s.size+1); err != nil {
		return err
	}
	copy(s.buf[i+1:s.size+1], s.buf[i:s.size])
	s.buf[i] = v
	s.size++
	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if err := s.checkNonEmpty(); err != nil {
		return zero, err
	}
	s.size--
	v := s.buf[s.size]
	s.buf[s.size] = zero
	return v, nil
}

// Peek returns the top element.
func (s *Stack[T]) Peek() (T, error) {
	if err := s.checkNonEmpty(); err != nil {
		var zero T
		return zero, err
	}
	return s.buf[s.size-1], nil
}

// Bottom returns the bottom element.
func (s *Stack[T]) Bottom() (T, error) {
	if err := s.checkNonEmpty(); err != nil {
		var zero T
		return zero, err
	}
	return s.buf[0], nil
}

// At returns the element at index i counted from the bottom.
func (s *Stack[T]) At(i int) (T, error) {
	var zero T
	if err := s.checkNonEmpty(); err != nil {
		return zero, err
	}
	if err := linear.CheckIndex(i, s.size); err != nil {
		return zero, err
	}
	return s.buf[i], nil
}

// TopN returns the n topmost elements, top first.
func (s *Stack[T]) TopN(n int) ([]T, error) {
	if err := s.checkCount(n); err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		out[i] = s.buf[s.size-1-i]
	}
	return out, nil
}

// BottomN returns the n bottommost elements, bottom first.
func (s *Stack[T]) BottomN(n int) ([]T, error) {
	if err := s.checkCount(n); err != nil {
		return nil, err
	}
	out := make([]T, n)
	copy(out, s.buf[:n])
	return out, nil
}

func (s *Stack[T]) checkCount(n int) error {
	if err := s.checkNonEmpty(); err != nil {
		return err
	}
	if n < 0 || n > s.size {
		return linear.NewInvalidArgumentErrorf(
			"n = %d must lie in [0, %d]", redact.Safe(n), redact.Safe(s.size))
	}
	return nil
}

// ToSlice returns a copy of the elements, bottom first.
func (s *Stack[T]) ToSlice() []T {
	out := make([]T, s.size)
	copy(out, s.values())
	return out
}

// ToString renders the elements top first, one per line, with a "---" line
// between consecutive elements.
func (s *Stack[T]) ToString() (string, error) {
	top, err := s.TopN(s.size)
	if err != nil {
		return "", err
	}
	return linear.Join(top, "\n---\n", ""), nil
}

// SafeFormat implements redact.SafeFormatter.
func (s *Stack[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	linear.FormatValues(w, containerName, s.values())
	w.Printf(" (%d/%d)", redact.Safe(s.size), redact.Safe(len(s.buf)))
}

// String implements fmt.Stringer.
func (s *Stack[T]) String() string { return redact.StringWithoutMarkers(s) }

// Count returns the number of occurrences of v.
func (s *Stack[T]) Count(v T) int {
	return s.CountIf(func(e T) bool { return e == v })
}

// CountIf returns the number of elements satisfying pred.
func (s *Stack[T]) CountIf(pred func(T) bool) int {
	n := 0
	for _, e := range s.values() {
		if pred(e) {
			n++
		}
	}
	return n
}

// Equal reports whether both stacks hold the same elements in the same
// order.
func (s *Stack[T]) Equal(o *Stack[T]) bool {
	return linear.EqualSlices(s.values(), o.values())
}

// Greater reports whether a dominates b; see linear.Greater.
func Greater[T cmp.Ordered](a, b *Stack[T]) bool {
	return linear.Greater(a.values(), b.values())
}

// Less reports whether a is dominated by b; see linear.Less.
func Less[T cmp.Ordered](a, b *Stack[T]) bool {
	return linear.Less(a.values(), b.values())
}

// Max returns the largest element, the lowest one on ties.
func Max[T cmp.Ordered](s *Stack[T]) (T, error) {
	return s.extreme(func(cand, best T) bool { return cand > best })
}

// Min returns the smallest element, the lowest one on ties.
func Min[T cmp.Ordered](s *Stack[T]) (T, error) {
	return s.extreme(func(cand, best T) bool { return cand < best })
}

// MaxBy returns the element with the largest key.
func (s *Stack[T]) MaxBy(key func(T) int) (T, error) {
	return s.extreme(func(cand, best T) bool { return key(cand) > key(best) })
}

// MinBy returns the element with the smallest key.
func (s *Stack[T]) MinBy(key func(T) int) (T, error) {
	return s.extreme(func(cand, best T) bool { return key(cand) < key(best) })
}

func (s *Stack[T]) extreme(beats func(cand, best T) bool) (T, error) {
	var best T
	if err := s.checkNonEmpty(); err != nil {
		return best, err
	}
	best = s.buf[0]
	for _, e := range s.values()[1:] {
		if beats(e, best) {
			best = e
		}
	}
	return best, nil
}
