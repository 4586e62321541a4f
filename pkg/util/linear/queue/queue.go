// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package queue provides a FIFO queue over a singly linked list of nodes.
// Elements enter at the back and leave from the front; positional
// operations take QueueCursor values or nodes returned by the queue.
package queue

import (
	"github.com/cockroachdb/linear/pkg/util/linear"
	"github.com/cockroachdb/redact"
)

const containerName redact.SafeString = "queue"

// Node is an element of a Queue.
type Node[T comparable] struct {
	Value T

	next *Node[T]
	// queue is the owning queue; nil once the node is removed.
	queue *Queue[T]
}

// Next returns the following node or nil.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Queue is a FIFO queue. The zero value is an empty queue.
type Queue[T comparable] struct {
	head, tail *Node[T]
	len        int
}

// New returns an empty queue.
func New[T comparable]() *Queue[T] { return &Queue[T]{} }

// FromSlice returns a queue holding values, values[0] at the front.
func FromSlice[T comparable](values []T) *Queue[T] {
	q := New[T]()
	for _, v := range values {
		q.Enqueue(v)
	}
	return q
}

// FromRange returns a queue holding the values from the node at from up to
// but excluding the node at to, which may be End.
func FromRange[T comparable](from, to QueueCursor[T]) (*Queue[T], error) {
	if from.node == nil || (to.node != nil && to.node.queue != from.node.queue) {
		return nil, linear.NewInvalidArgumentErrorf("invalid cursor range")
	}
	q := New[T]()
	for n := from.node; n != to.node; n = n.next {
		if n == nil {
			return nil, linear.NewInvalidArgumentErrorf("range start must precede range end")
		}
		q.Enqueue(n.Value)
	}
	return q, nil
}

// Clone returns a copy with fresh nodes.
func (q *Queue[T]) Clone() *Queue[T] { return FromSlice(q.ToSlice()) }

// Len returns the number of elements.
func (q *Queue[T]) Len() int { return q.len }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.len == 0 }

func (q *Queue[T]) checkNonEmpty() error {
	if q.len == 0 {
		return linear.NewEmptyError(containerName)
	}
	return nil
}

// Front returns the value at the front, the next to be dequeued.
func (q *Queue[T]) Front() (T, error) {
	if err := q.checkNonEmpty(); err != nil {
		var zero T
		return zero, err
	}
	return q.head.Value, nil
}

// Back returns the most recently enqueued value.
func (q *Queue[T]) Back() (T, error) {
	if err := q.checkNonEmpty(); err != nil {
		var zero T
		return zero, err
	}
	return q.tail.Value, nil
}

// Head returns the front node or nil.
func (q *Queue[T]) Head() *Node[T] { return q.head }

// Tail returns the back node or nil.
func (q *Queue[T]) Tail() *Node[T] { return q.tail }

// Contains reports whether v is queued.
func (q *Queue[T]) Contains(v T) bool {
	for n := q.head; n != nil; n = n.next {
		if n.Value == v {
			return true
		}
	}
	return false
}

// At returns the node at index i, counted from the front.
func (q *Queue[T]) At(i int) (*Node[T], error) {
	if err := q.checkNonEmpty(); err != nil {
		return nil, err
	}
	if err := linear.CheckIndex(i, q.len); err != nil {
		return nil, err
	}
	n := q.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n, nil
}

// Index returns the position of node n, counted from the front.
func (q *Queue[T]) Index(n *Node[T]) (int, error) {
	if err := q.checkNonEmpty(); err != nil {
		return 0, err
	}
	i := 0
	for e := q.head; e != nil; e, i = e.next, i+1 {
		if e == n {
			return i, nil
		}
	}
	return 0, linear.NewNotFoundError(containerName, "node")
}

// IndexOf returns the position of the first occurrence of v.
func (q *Queue[T]) IndexOf(v T) (int, error) {
	if err := q.checkNonEmpty(); err != nil {
		return 0, err
	}
	i := 0
	for e := q.head; e != nil; e, i = e.next, i+1 {
		if e.Value == v {
			return i, nil
		}
	}
	return 0, linear.NewNotFoundError(containerName, v)
}

// Enqueue adds v at the back.
func (q *Queue[T]) Enqueue(v T) *Node[T] {
	n := &Node[T]{Value: v, queue: q}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.len++
	return n
}

// Dequeue removes and returns the value at the front.
func (q *Queue[T]) Dequeue() (T, error) {
	if err := q.checkNonEmpty(); err != nil {
		var zero T
		return zero, err
	}
	n := q.head
	q.unlink(nil, n)
	return n.Value, nil
}

// unlink removes n, whose predecessor is prev (nil for the head).
func (q *Queue[T]) unlink(prev, n *Node[T]) {
	if prev == nil {
		q.head = n.next
	} else {
		prev.next = n.next
	}
	if q.tail == n {
		q.tail = prev
	}
	n.next, n.queue = nil, nil
	q.len--
}

// linkBefore links a new node holding v in front of at, or at the back when
// at is nil, and returns it.
func (q *Queue[T]) linkBefore(at *Node[T], v T) *Node[T] {
	if at == nil {
		return q.Enqueue(v)
	}
	n := &Node[T]{Value: v, queue: q, next: at}
	if prev := q.predecessor(at); prev == nil {
		q.head = n
	} else {
		prev.next = n
	}
	q.len++
	return n
}

// predecessor returns the node before n, nil when n is the head.
func (q *Queue[T]) predecessor(n *Node[T]) *Node[T] {
	var prev *Node[T]
	for e := q.head; e != n; e = e.next {
		prev = e
	}
	return prev
}

// checkCursor verifies that c is End or references a node of this queue.
func (q *Queue[T]) checkCursor(c QueueCursor[T]) error {
	if c.node != nil && c.node.queue != q {
		return linear.NewInvalidArgumentErrorf("cursor does not reference this %s", containerName)
	}
	return nil
}

// Insert places v in front of the node c references. Inserting at End
// enqueues.
func (q *Queue[T]) Insert(c QueueCursor[T], v T) error {
	if err := q.checkCursor(c); err != nil {
		return err
	}
	q.linkBefore(c.node, v)
	return nil
}

// InsertSlice places vs, in order, in front of the node c references.
func (q *Queue[T]) InsertSlice(c QueueCursor[T], vs []T) error {
	if len(vs) == 0 {
		return linear.NewInvalidArgumentErrorf("cannot insert an empty slice")
	}
	if err := q.checkCursor(c); err != nil {
		return err
	}
	for _, v := range vs {
		q.linkBefore(c.node, v)
	}
	return nil
}

// Erase removes the first occurrence of v.
func (q *Queue[T]) Erase(v T) error {
	if err := q.checkNonEmpty(); err != nil {
		return err
	}
	var prev *Node[T]
	for n := q.head; n != nil; prev, n = n, n.next {
		if n.Value == v {
			q.unlink(prev, n)
			return nil
		}
	}
	return linear.NewNotFoundError(containerName, v)
}

// EraseAt removes the node c references.
func (q *Queue[T]) EraseAt(c QueueCursor[T]) error {
	if err := q.checkNonEmpty(); err != nil {
		return err
	}
	if c.node == nil {
		return linear.NewInvalidArgumentErrorf("cannot erase the end of a %s", containerName)
	}
	if err := q.checkCursor(c); err != nil {
		return err
	}
	q.unlink(q.predecessor(c.node), c.node)
	return nil
}

// EraseAll removes every occurrence of v.
func (q *Queue[T]) EraseAll(v T) error {
	if err := q.checkNonEmpty(); err != nil {
		return err
	}
	if !q.Contains(v) {
		return linear.NewNotFoundError(containerName, v)
	}
	var prev *Node[T]
	for n := q.head; n != nil; {
		next := n.next
		if n.Value == v {
			q.unlink(prev, n)
		} else {
			prev = n
		}
		n = next
	}
	return nil
}

// Clear removes every element.
func (q *Queue[T]) Clear() {
	for n := q.head; n != nil; {
		next := n.next
		n.next, n.queue = nil, nil
		n = next
	}
	q.head, q.tail, q.len = nil, nil, 0
}

// Swap exchanges the contents of two queues.
func Swap[T comparable](a, b *Queue[T]) {
	*a, *b = *b, *a
	for n := a.head; n != nil; n = n.next {
		n.queue = a
	}
	for n := b.head; n != nil; n = n.next {
		n.queue = b
	}
}

// ToSlice returns the values front to back.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, 0, q.len)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}

// ToString renders the values front to back joined by " -> ".
func (q *Queue[T]) ToString() (string, error) {
	if err := q.checkNonEmpty(); err != nil {
		return "", err
	}
	return linear.Join(q.ToSlice(), " -> ", ""), nil
}

// SafeFormat implements redact.SafeFormatter.
func (q *Queue[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	linear.FormatValues(w, containerName, q.ToSlice())
}

// String implements fmt.Stringer.
func (q *Queue[T]) String() string { return redact.StringWithoutMarkers(q) }
