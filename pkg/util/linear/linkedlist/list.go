// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package linkedlist provides a doubly linked list whose nodes are exposed to
// callers for positional insertion and removal, in the manner of
// container/list, together with a cursor for walking it.
package linkedlist

import (
	"cmp"

	"github.com/cockroachdb/linear/pkg/util/linear"
	"github.com/cockroachdb/redact"
	"golang.org/x/exp/rand"
)

const containerName redact.SafeString = "list"

// Node is an element of a List.
type Node[T comparable] struct {
	Value T

	next, prev *Node[T]
	// list is the owning list; nil once the node is removed.
	list *List[T]
}

// Next returns the following node or nil.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node or nil.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List is a doubly linked list. The zero value is an empty list.
type List[T comparable] struct {
	head, tail *Node[T]
	len        int
}

// New returns an empty list.
func New[T comparable]() *List[T] { return &List[T]{} }

// Filled returns a list of n copies of value.
func Filled[T comparable](n int, value T) *List[T] {
	l := New[T]()
	for i := 0; i < n; i++ {
		l.PushBack(value)
	}
	return l
}

// FromSlice returns a list holding values in order.
func FromSlice[T comparable](values []T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// FromRange returns a list holding the values from the node at from up to but
// excluding the node at to. to may be End. Both cursors must reference the
// same list and from must precede to.
func FromRange[T comparable](from, to ListCursor[T]) (*List[T], error) {
	if from.node == nil || (to.node != nil && to.node.list != from.node.list) {
		return nil, linear.NewInvalidArgumentErrorf("invalid cursor range")
	}
	l := New[T]()
	for n := from.node; n != to.node; n = n.next {
		if n == nil {
			return nil, linear.NewInvalidArgumentErrorf("range start must precede range end")
		}
		l.PushBack(n.Value)
	}
	return l, nil
}

// Clone returns a copy of the list with fresh nodes.
func (l *List[T]) Clone() *List[T] {
	return FromSlice(l.ToSlice())
}

// Len returns the number of nodes.
func (l *List[T]) Len() int { return l.len }

// Empty reports whether the list has no nodes.
func (l *List[T]) Empty() bool { return l.len == 0 }

// Front returns the first node or nil.
func (l *List[T]) Front() *Node[T] { return l.head }

// Back returns the last node or nil.
func (l *List[T]) Back() *Node[T] { return l.tail }

// insertAfter links a new node holding v after at, or at the front when at
// is nil.
func (l *List[T]) insertAfter(at *Node[T], v T) *Node[T] {
	n := &Node[T]{Value: v, list: l, prev: at}
	if at == nil {
		n.next = l.head
		l.head = n
	} else {
		n.next = at.next
		at.next = n
	}
	if n.next != nil {
		n.next.prev = n
	} else {
		l.tail = n
	}
	l.len++
	return n
}

func (l *List[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.next, n.prev, n.list = nil, nil, nil
	l.len--
}

func (l *List[T]) checkNonEmpty() error {
	if l.len == 0 {
		return linear.NewEmptyError(containerName)
	}
	return nil
}

// checkNode verifies that n is a live node of this list.
func (l *List[T]) checkNode(n *Node[T]) error {
	if err := l.checkNonEmpty(); err != nil {
		return err
	}
	if n == nil {
		return linear.NewInvalidArgumentErrorf("node is nil")
	}
	if n.list != l {
		return linear.NewInvalidArgumentErrorf("node does not belong to this %s", containerName)
	}
	return nil
}

// PushBack appends v and returns its node.
func (l *List[T]) PushBack(v T) *Node[T] { return l.insertAfter(l.tail, v) }

// PushFront prepends v and returns its node.
func (l *List[T]) PushFront(v T) *Node[T] { return l.insertAfter(nil, v) }

// PushAfter inserts v after n.
func (l *List[T]) PushAfter(n *Node[T], v T) (*Node[T], error) {
	if err := l.checkNode(n); err != nil {
		return nil, err
	}
	return l.insertAfter(n, v), nil
}

// PushBefore inserts v before n.
func (l *List[T]) PushBefore(n *Node[T], v T) (*Node[T], error) {
	if err := l.checkNode(n); err != nil {
		return nil, err
	}
	return l.insertAfter(n.prev, v), nil
}

// nodeAt returns the node at index i, which must be in [0, len).
func (l *List[T]) nodeAt(i int) *Node[T] {
	if i < l.len/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for j := l.len - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

// PushAt inserts v so that it ends up at index i. i may equal Len, which
// appends.
func (l *List[T]) PushAt(i int, v T) (*Node[T], error) {
	if err := linear.CheckIndex(i, l.len+1); err != nil {
		return nil, err
	}
	if i == 0 {
		return l.PushFront(v), nil
	}
	return l.insertAfter(l.nodeAt(i-1), v), nil
}

// PushMiddle inserts v after the node at index (Len-1)/2, or at the front of
// an empty list.
func (l *List[T]) PushMiddle(v T) *Node[T] {
	if l.len == 0 {
		return l.PushFront(v)
	}
	return l.insertAfter(l.nodeAt((l.len-1)/2), v)
}

// PushRandom inserts v before a node chosen uniformly by rng, or at the front
// of an empty list.
func (l *List[T]) PushRandom(rng *rand.Rand, v T) *Node[T] {
	if l.len == 0 {
		return l.PushFront(v)
	}
	n, _ := l.PushAt(rng.Intn(l.len), v)
	return n
}

// PushSlice inserts vs, in order, so that vs[0] ends up at index i, which
// must reference an existing node.
func (l *List[T]) PushSlice(i int, vs []T) error {
	if err := l.checkNonEmpty(); err != nil {
		return err
	}
	if err := linear.CheckIndex(i, l.len); err != nil {
		return err
	}
	var at *Node[T]
	if i > 0 {
		at = l.nodeAt(i - 1)
	}
	for _, v := range vs {
		at = l.insertAfter(at, v)
	}
	return nil
}

// RemoveFront removes the first node.
func (l *List[T]) RemoveFront() error {
	if err := l.checkNonEmpty(); err != nil {
		return err
	}
	l.unlink(l.head)
	return nil
}

// RemoveBack removes the last node.
func (l *List[T]) RemoveBack() error {
	if err := l.checkNonEmpty(); err != nil {
		return err
	}
	l.unlink(l.tail)
	return nil
}

// Remove unlinks n from the list.
func (l *List[T]) Remove(n *Node[T]) error {
	if err := l.checkNode(n); err != nil {
		return err
	}
	l.unlink(n)
	return nil
}

// Clear removes every node.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev, n.list = nil, nil, nil
		n = next
	}
	l.head, l.tail, l.len = nil, nil, 0
}

// ToSlice returns the values front to back.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}

// ToSliceReversed returns the values back to front.
func (l *List[T]) ToSliceReversed() []T {
	out := make([]T, 0, l.len)
	for n := l.tail; n != nil; n = n.prev {
		out = append(out, n.Value)
	}
	return out
}

// ToString renders the values joined by " <-> ", front to back when forward
// is set and back to front otherwise.
func (l *List[T]) ToString(forward bool) (string, error) {
	if err := l.checkNonEmpty(); err != nil {
		return "", err
	}
	vs := l.ToSlice()
	if !forward {
		vs = l.ToSliceReversed()
	}
	return linear.Join(vs, " <-> ", ""), nil
}

// SafeFormat implements redact.SafeFormatter.
func (l *List[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	linear.FormatValues(w, containerName, l.ToSlice())
}

// String implements fmt.Stringer.
func (l *List[T]) String() string { return redact.StringWithoutMarkers(l) }

// Equal reports whether both lists hold the same values in the same order.
func (l *List[T]) Equal(o *List[T]) bool {
	if l.len != o.len {
		return false
	}
	for a, b := l.head, o.head; a != nil; a, b = a.next, b.next {
		if a.Value != b.Value {
			return false
		}
	}
	return true
}

// Greater reports whether a dominates b; see linear.Greater.
func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return linear.Greater(a.ToSlice(), b.ToSlice())
}

// Less reports whether a is dominated by b; see linear.Less.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return linear.Less(a.ToSlice(), b.ToSlice())
}
