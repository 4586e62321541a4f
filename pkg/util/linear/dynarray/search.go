// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import "github.com/cockroachdb/linear/pkg/util/linear"

// Find returns a cursor at the first occurrence of v, flagged as found. When
// v is absent it returns End, which is not flagged, so a miss never compares
// equal to a hit.
func (a *Array[T]) Find(v T) (linear.Cursor[T], error) {
	if err := a.checkNonEmpty(); err != nil {
		return linear.Cursor[T]{}, err
	}
	for i, e := range a.values() {
		if e == v {
			return a.cursor(i).Marked(), nil
		}
	}
	return a.End(), nil
}

// FindAll returns cursors at every occurrence of v, in order.
func (a *Array[T]) FindAll(v T) ([]linear.Cursor[T], error) {
	return a.FindIf(func(e T) bool { return e == v })
}

// FindIf returns cursors at every element satisfying pred, in order.
func (a *Array[T]) FindIf(pred func(T) bool) ([]linear.Cursor[T], error) {
	if err := a.checkNonEmpty(); err != nil {
		return nil, err
	}
	var found []linear.Cursor[T]
	for i, e := range a.values() {
		if pred(e) {
			found = append(found, a.cursor(i))
		}
	}
	return found, nil
}

// Count returns the number of occurrences of v.
func (a *Array[T]) Count(v T) int {
	return a.CountIf(func(e T) bool { return e == v })
}

// CountIf returns the number of elements satisfying pred.
func (a *Array[T]) CountIf(pred func(T) bool) int {
	n := 0
	for _, e := range a.values() {
		if pred(e) {
			n++
		}
	}
	return n
}
