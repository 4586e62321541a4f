// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package queue

import (
	"cmp"

	"github.com/cockroachdb/linear/pkg/util/linear"
)

// Find returns a found cursor at the first node holding v, or End.
func (q *Queue[T]) Find(v T) (QueueCursor[T], error) {
	if err := q.checkNonEmpty(); err != nil {
		return QueueCursor[T]{}, err
	}
	for n := q.head; n != nil; n = n.next {
		if n.Value == v {
			return QueueCursor[T]{node: n, found: true}, nil
		}
	}
	return q.End(), nil
}

// FindAll returns cursors at every node holding v, front first.
func (q *Queue[T]) FindAll(v T) ([]QueueCursor[T], error) {
	return q.FindIf(func(e T) bool { return e == v })
}

// FindIf returns cursors at every node whose value satisfies pred.
func (q *Queue[T]) FindIf(pred func(T) bool) ([]QueueCursor[T], error) {
	if err := q.checkNonEmpty(); err != nil {
		return nil, err
	}
	var found []QueueCursor[T]
	for n := q.head; n != nil; n = n.next {
		if pred(n.Value) {
			found = append(found, QueueCursor[T]{node: n})
		}
	}
	return found, nil
}

// Replace overwrites the first occurrence of old with v.
func (q *Queue[T]) Replace(old, v T) error {
	c, err := q.Find(old)
	if err != nil {
		return err
	}
	if !c.Found() {
		return linear.NewNotFoundError(containerName, old)
	}
	c.node.Value = v
	return nil
}

// ReplaceAt overwrites the value c references.
func (q *Queue[T]) ReplaceAt(c QueueCursor[T], v T) error {
	if err := q.checkNonEmpty(); err != nil {
		return err
	}
	if err := q.checkCursor(c); err != nil {
		return err
	}
	return c.Set(v)
}

// ReplaceAll overwrites every occurrence of old with v.
func (q *Queue[T]) ReplaceAll(old, v T) error {
	found, err := q.FindAll(old)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return linear.NewNotFoundError(containerName, old)
	}
	for _, c := range found {
		c.node.Value = v
	}
	return nil
}

// ReplaceIf overwrites every value satisfying pred with v.
func (q *Queue[T]) ReplaceIf(pred func(T) bool, v T) error {
	found, err := q.FindIf(pred)
	if err != nil {
		return err
	}
	for _, c := range found {
		c.node.Value = v
	}
	return nil
}

// ReplaceRange overwrites the values from the node at from through the node
// at to, both inclusive, with v.
func (q *Queue[T]) ReplaceRange(from, to QueueCursor[T], v T) error {
	if err := q.checkNonEmpty(); err != nil {
		return err
	}
	if from.node == nil || to.node == nil {
		return linear.NewInvalidArgumentErrorf("range bounds must reference nodes")
	}
	i, err := q.Index(from.node)
	if err != nil {
		return err
	}
	j, err := q.Index(to.node)
	if err != nil {
		return err
	}
	if err := linear.CheckOrdered(i, j); err != nil {
		return err
	}
	for n := from.node; ; n = n.next {
		n.Value = v
		if n == to.node {
			return nil
		}
	}
}

// Count returns the number of occurrences of v.
func (q *Queue[T]) Count(v T) int {
	return q.CountIf(func(e T) bool { return e == v })
}

// CountIf returns the number of values satisfying pred.
func (q *Queue[T]) CountIf(pred func(T) bool) int {
	c := 0
	for n := q.head; n != nil; n = n.next {
		if pred(n.Value) {
			c++
		}
	}
	return c
}

// Filter returns a new queue of the values satisfying pred, which may be
// empty.
func (q *Queue[T]) Filter(pred func(T) bool) *Queue[T] {
	out := New[T]()
	for n := q.head; n != nil; n = n.next {
		if pred(n.Value) {
			out.Enqueue(n.Value)
		}
	}
	return out
}

// Reverse reverses the queue in place.
func (q *Queue[T]) Reverse() error {
	if err := q.checkNonEmpty(); err != nil {
		return err
	}
	var prev *Node[T]
	for n := q.head; n != nil; {
		next := n.next
		n.next = prev
		prev, n = n, next
	}
	q.head, q.tail = q.tail, q.head
	return nil
}

// Reversed returns a reversed copy.
func (q *Queue[T]) Reversed() (*Queue[T], error) {
	if err := q.checkNonEmpty(); err != nil {
		return nil, err
	}
	out := q.Clone()
	_ = out.Reverse()
	return out, nil
}

// RemoveDuplicates drops repeated values, keeping first occurrences.
func (q *Queue[T]) RemoveDuplicates() error {
	if err := q.checkNonEmpty(); err != nil {
		return err
	}
	seen := make(map[T]struct{}, q.len)
	var prev *Node[T]
	for n := q.head; n != nil; {
		next := n.next
		if _, ok := seen[n.Value]; ok {
			q.unlink(prev, n)
		} else {
			seen[n.Value] = struct{}{}
			prev = n
		}
		n = next
	}
	return nil
}

// Max returns the largest value, the one nearest the front on ties.
func Max[T cmp.Ordered](q *Queue[T]) (T, error) {
	return q.extreme(nil, func(cand, best T) bool { return cand > best })
}

// Min returns the smallest value, the one nearest the front on ties.
func Min[T cmp.Ordered](q *Queue[T]) (T, error) {
	return q.extreme(nil, func(cand, best T) bool { return cand < best })
}

// MaxBy returns the value with the largest key.
func (q *Queue[T]) MaxBy(key func(T) int) (T, error) {
	return q.extreme(nil, func(cand, best T) bool { return key(cand) > key(best) })
}

// MinBy returns the value with the smallest key.
func (q *Queue[T]) MinBy(key func(T) int) (T, error) {
	return q.extreme(nil, func(cand, best T) bool { return key(cand) < key(best) })
}

// MaxIf returns the largest value satisfying pred.
func MaxIf[T cmp.Ordered](q *Queue[T], pred func(T) bool) (T, error) {
	return q.extreme(pred, func(cand, best T) bool { return cand > best })
}

// MinIf returns the smallest value satisfying pred.
func MinIf[T cmp.Ordered](q *Queue[T], pred func(T) bool) (T, error) {
	return q.extreme(pred, func(cand, best T) bool { return cand < best })
}

// extreme scans the values accepted by pred, or every value when pred is
// nil, for the one no later value beats.
func (q *Queue[T]) extreme(pred func(T) bool, beats func(cand, best T) bool) (T, error) {
	var best T
	if err := q.checkNonEmpty(); err != nil {
		return best, err
	}
	found := false
	for n := q.head; n != nil; n = n.next {
		if pred != nil && !pred(n.Value) {
			continue
		}
		if !found || beats(n.Value, best) {
			best, found = n.Value, true
		}
	}
	if !found {
		return best, linear.NewNotFoundError(containerName, "a value satisfying the predicate")
	}
	return best, nil
}

// Equal reports whether both queues hold the same values in the same order.
func (q *Queue[T]) Equal(o *Queue[T]) bool {
	return linear.EqualSlices(q.ToSlice(), o.ToSlice())
}

// Greater reports whether a dominates b; see linear.Greater.
func Greater[T cmp.Ordered](a, b *Queue[T]) bool {
	return linear.Greater(a.ToSlice(), b.ToSlice())
}

// Less reports whether a is dominated by b; see linear.Less.
func Less[T cmp.Ordered](a, b *Queue[T]) bool {
	return linear.Less(a.ToSlice(), b.ToSlice())
}
