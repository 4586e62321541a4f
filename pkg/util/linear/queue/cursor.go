// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package queue

import (
	"github.com/cockroachdb/linear/pkg/util/linear"
	"github.com/cockroachdb/redact"
)

// QueueCursor references a node of a Queue and only moves towards the back.
// The cursor whose node is nil is the End sentinel.
type QueueCursor[T comparable] struct {
	node  *Node[T]
	found bool
}

// Begin returns a cursor at the front node, End on an empty queue.
func (q *Queue[T]) Begin() QueueCursor[T] { return QueueCursor[T]{node: q.head} }

// End returns the sentinel cursor past the back node.
func (q *Queue[T]) End() QueueCursor[T] { return QueueCursor[T]{} }

// Node returns the referenced node, nil for End.
func (c QueueCursor[T]) Node() *Node[T] { return c.node }

// Valid reports whether the cursor references a node.
func (c QueueCursor[T]) Valid() bool { return c.node != nil }

// Found reports whether the cursor was produced by a successful search.
func (c QueueCursor[T]) Found() bool { return c.found }

// Marked returns a copy flagged as a search result.
func (c QueueCursor[T]) Marked() QueueCursor[T] {
	c.found = true
	return c
}

// Get returns the referenced value.
func (c QueueCursor[T]) Get() (T, error) {
	if c.node == nil {
		var zero T
		return zero, linear.NewOutOfRangeErrorf("cannot dereference the end of a %s", containerName)
	}
	return c.node.Value, nil
}

// Set overwrites the referenced value.
func (c QueueCursor[T]) Set(v T) error {
	if c.node == nil {
		return linear.NewOutOfRangeErrorf("cannot dereference the end of a %s", containerName)
	}
	c.node.Value = v
	return nil
}

// Next moves to the following node, or to End from the back node. It
// reports whether the cursor still references a node.
func (c *QueueCursor[T]) Next() bool {
	if c.node != nil {
		c.node = c.node.next
	}
	return c.node != nil
}

// Add returns an unmarked cursor n nodes further on, stopping at the back
// node.
func (c QueueCursor[T]) Add(n int) (QueueCursor[T], error) {
	if n < 0 {
		return QueueCursor[T]{}, linear.NewInvalidArgumentErrorf(
			"step must not be negative, got %d", redact.Safe(n))
	}
	node := c.node
	for ; n > 0 && node != nil && node.next != nil; n-- {
		node = node.next
	}
	return QueueCursor[T]{node: node}, nil
}

// Equal reports whether both cursors reference the same node with the same
// search flag.
func (c QueueCursor[T]) Equal(o QueueCursor[T]) bool {
	return c.node == o.node && c.found == o.found
}
