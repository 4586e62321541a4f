// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linkedlist

import (
	"github.com/cockroachdb/linear/pkg/util/linear"
	"github.com/cockroachdb/redact"
)

// ListCursor references a node of a List. A cursor whose node is nil is the
// End sentinel. Like linear.Cursor it carries a found flag that takes part in
// equality.
type ListCursor[T comparable] struct {
	node  *Node[T]
	found bool
}

// Begin returns a cursor at the first node, End on an empty list.
func (l *List[T]) Begin() ListCursor[T] { return ListCursor[T]{node: l.head} }

// End returns the sentinel cursor past the last node.
func (l *List[T]) End() ListCursor[T] { return ListCursor[T]{} }

// Find returns a found cursor at the first node holding v, or End.
func (l *List[T]) Find(v T) (ListCursor[T], error) {
	if err := l.checkNonEmpty(); err != nil {
		return ListCursor[T]{}, err
	}
	for n := l.head; n != nil; n = n.next {
		if n.Value == v {
			return ListCursor[T]{node: n, found: true}, nil
		}
	}
	return l.End(), nil
}

// Node returns the referenced node, nil for End.
func (c ListCursor[T]) Node() *Node[T] { return c.node }

// Valid reports whether the cursor references a node.
func (c ListCursor[T]) Valid() bool { return c.node != nil }

// Found reports whether the cursor was produced by a successful search.
func (c ListCursor[T]) Found() bool { return c.found }

// Marked returns a copy flagged as a search result.
func (c ListCursor[T]) Marked() ListCursor[T] {
	c.found = true
	return c
}

// Get returns the referenced value.
func (c ListCursor[T]) Get() (T, error) {
	if c.node == nil {
		var zero T
		return zero, linear.NewOutOfRangeErrorf("cannot dereference the end of a %s", containerName)
	}
	return c.node.Value, nil
}

// Set overwrites the referenced value.
func (c ListCursor[T]) Set(v T) error {
	if c.node == nil {
		return linear.NewOutOfRangeErrorf("cannot dereference the end of a %s", containerName)
	}
	c.node.Value = v
	return nil
}

// Next moves to the following node; stepping off the last node yields End.
// It reports whether the cursor still references a node.
func (c *ListCursor[T]) Next() bool {
	if c.node != nil {
		c.node = c.node.next
	}
	return c.node != nil
}

// Prev moves to the preceding node; stepping off the first node yields End.
func (c *ListCursor[T]) Prev() bool {
	if c.node != nil {
		c.node = c.node.prev
	}
	return c.node != nil
}

func checkStep(n int) error {
	if n < 0 {
		return linear.NewInvalidArgumentErrorf("step must not be negative, got %d", redact.Safe(n))
	}
	return nil
}

// Add returns an unmarked cursor n nodes further on, stopping at the last
// node.
func (c ListCursor[T]) Add(n int) (ListCursor[T], error) {
	if err := checkStep(n); err != nil {
		return ListCursor[T]{}, err
	}
	node := c.node
	for ; n > 0 && node != nil && node.next != nil; n-- {
		node = node.next
	}
	return ListCursor[T]{node: node}, nil
}

// Sub returns an unmarked cursor n nodes back, stopping at the first node.
func (c ListCursor[T]) Sub(n int) (ListCursor[T], error) {
	if err := checkStep(n); err != nil {
		return ListCursor[T]{}, err
	}
	node := c.node
	for ; n > 0 && node != nil && node.prev != nil; n-- {
		node = node.prev
	}
	return ListCursor[T]{node: node}, nil
}

// Advance moves the cursor in place by n nodes, backwards when n is
// negative, stopping at either end of the list.
func (c *ListCursor[T]) Advance(n int) {
	for ; n > 0 && c.node != nil && c.node.next != nil; n-- {
		c.node = c.node.next
	}
	for ; n < 0 && c.node != nil && c.node.prev != nil; n++ {
		c.node = c.node.prev
	}
}

// Equal reports whether both cursors reference the same node with the same
// search flag.
func (c ListCursor[T]) Equal(o ListCursor[T]) bool {
	return c.node == o.node && c.found == o.found
}
