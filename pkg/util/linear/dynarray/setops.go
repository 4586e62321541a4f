// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/linear/pkg/util/linear"
)

func checkOperands[T comparable](a, b *Array[T]) error {
	if a.Empty() || b.Empty() {
		return errors.Wrap(linear.NewEmptyError(containerName), "set operation operand")
	}
	return nil
}

// Union returns the distinct values of a followed by the distinct values of b
// not already present, each in first-occurrence order. The result's capacity
// is the sum of both capacities.
func (a *Array[T]) Union(b *Array[T]) (*Array[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	out := &Array[T]{buf: make([]T, len(a.buf)+len(b.buf))}
	seen := make(map[T]struct{}, a.size+b.size)
	for _, s := range [][]T{a.values(), b.values()} {
		for _, e := range s {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out.buf[out.size] = e
			out.size++
		}
	}
	return out, nil
}

// Intersect returns the distinct values present in both arrays, in the order
// they first occur in b.
func (a *Array[T]) Intersect(b *Array[T]) (*Array[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	in := make(map[T]struct{}, a.size)
	for _, e := range a.values() {
		in[e] = struct{}{}
	}
	out := &Array[T]{buf: make([]T, a.size)}
	for _, e := range b.values() {
		if _, ok := in[e]; !ok {
			continue
		}
		delete(in, e)
		out.buf[out.size] = e
		out.size++
	}
	return out, nil
}

// Concat returns the elements of a followed by those of b. The result is a
// copy of a grown to hold both when needed.
func (a *Array[T]) Concat(b *Array[T]) (*Array[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	out.Resize(a.size + b.size)
	copy(out.buf[out.size:], b.values())
	out.size += b.size
	return out, nil
}

// Greater reports whether a dominates b; see linear.Greater.
func Greater[T cmp.Ordered](a, b *Array[T]) bool {
	return linear.Greater(a.values(), b.values())
}

// Less reports whether a is dominated by b; see linear.Less.
func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return linear.Less(a.values(), b.values())
}
