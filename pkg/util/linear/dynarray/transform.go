// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"github.com/cockroachdb/linear/pkg/util/linear"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types with a natural additive fold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Filter returns a new array, with the receiver's capacity, holding the
// elements that satisfy pred. When nothing matches the result is a copy of
// the receiver; the receiver itself is never returned.
func (a *Array[T]) Filter(pred func(T) bool) (*Array[T], error) {
	if err := a.checkNonEmpty(); err != nil {
		return nil, err
	}
	out := &Array[T]{buf: make([]T, len(a.buf))}
	for _, e := range a.values() {
		if pred(e) {
			out.buf[out.size] = e
			out.size++
		}
	}
	if out.size == 0 {
		return a.Clone(), nil
	}
	return out, nil
}

// Map calls fn on every element in order. The array is not modified.
func (a *Array[T]) Map(fn func(T)) error {
	if err := a.checkNonEmpty(); err != nil {
		return err
	}
	for _, e := range a.values() {
		fn(e)
	}
	return nil
}

// Apply returns a new array, with the receiver's capacity, holding fn of
// every element.
func (a *Array[T]) Apply(fn func(T) T) (*Array[T], error) {
	if err := a.checkNonEmpty(); err != nil {
		return nil, err
	}
	out := &Array[T]{buf: make([]T, len(a.buf)), size: a.size}
	for i, e := range a.values() {
		out.buf[i] = fn(e)
	}
	return out, nil
}

// Reduce left-folds the elements into init with fn.
func (a *Array[T]) Reduce(init T, fn func(acc, e T) T) (T, error) {
	if err := a.checkNonEmpty(); err != nil {
		return init, err
	}
	for _, e := range a.values() {
		init = fn(init, e)
	}
	return init, nil
}

// Sum folds the elements of a into init by addition.
func Sum[T Number](a *Array[T], init T) (T, error) {
	return a.Reduce(init, func(acc, e T) T { return acc + e })
}

// Reverse reverses the elements in place.
func (a *Array[T]) Reverse() error {
	if err := a.checkNonEmpty(); err != nil {
		return err
	}
	reverse(a.values())
	return nil
}

// Reversed returns a reversed copy.
func (a *Array[T]) Reversed() (*Array[T], error) {
	if err := a.checkNonEmpty(); err != nil {
		return nil, err
	}
	out := a.Clone()
	reverse(out.values())
	return out, nil
}

// ReversePartial reverses, in place, the elements between from and to, both
// inclusive.
func (a *Array[T]) ReversePartial(from, to linear.Cursor[T]) error {
	if err := a.checkNonEmpty(); err != nil {
		return err
	}
	lo, hi, err := a.checkRange(from, to)
	if err != nil {
		return err
	}
	reverse(a.buf[lo : hi+1])
	return nil
}

// ReversedPartial returns a copy with the elements between from and to, both
// inclusive, reversed.
func (a *Array[T]) ReversedPartial(from, to linear.Cursor[T]) (*Array[T], error) {
	if err := a.checkNonEmpty(); err != nil {
		return nil, err
	}
	lo, hi, err := a.checkRange(from, to)
	if err != nil {
		return nil, err
	}
	out := a.Clone()
	reverse(out.buf[lo : hi+1])
	return out, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
