// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"cmp"

	"github.com/cockroachdb/linear/pkg/util/linear"
)

// Ascending returns the natural less-than comparison.
func Ascending[T cmp.Ordered]() func(a, b T) bool {
	return func(a, b T) bool { return a < b }
}

// Descending returns the reverse of the natural less-than comparison.
func Descending[T cmp.Ordered]() func(a, b T) bool {
	return func(a, b T) bool { return a > b }
}

func (a *Array[T]) checkSortable(less func(a, b T) bool) error {
	if err := a.checkNonEmpty(); err != nil {
		return err
	}
	if less == nil {
		return linear.NewInvalidArgumentErrorf("a comparison function is required")
	}
	return nil
}

// BubbleSort sorts the array in place so that less never holds for a later
// element against an earlier one. It is stable.
func (a *Array[T]) BubbleSort(less func(a, b T) bool) error {
	if err := a.checkSortable(less); err != nil {
		return err
	}
	s := a.values()
	for i := 0; i < len(s)-1; i++ {
		swapped := false
		for j := 0; j < len(s)-i-1; j++ {
			if less(s[j+1], s[j]) {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return nil
}

// SelectionSort sorts the array in place. It is not stable.
func (a *Array[T]) SelectionSort(less func(a, b T) bool) error {
	if err := a.checkSortable(less); err != nil {
		return err
	}
	s := a.values()
	for i := 0; i < len(s)-1; i++ {
		m := i
		for j := i + 1; j < len(s); j++ {
			if less(s[j], s[m]) {
				m = j
			}
		}
		s[i], s[m] = s[m], s[i]
	}
	return nil
}

// MergeSort sorts the array in place with a top-down merge sort. It is
// stable: elements that compare equal keep their relative order.
func (a *Array[T]) MergeSort(less func(a, b T) bool) error {
	if err := a.checkSortable(less); err != nil {
		return err
	}
	mergeSort(a.values(), less)
	return nil
}

func mergeSort[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], less)
	mergeSort(s[mid:], less)
	merge(s, mid, less)
}

// merge combines the sorted halves s[:mid] and s[mid:]. An element from the
// right half is taken only when strictly less than the left candidate.
func merge[T any](s []T, mid int, less func(a, b T) bool) {
	left := append([]T(nil), s[:mid]...)
	right := append([]T(nil), s[mid:]...)
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			s[k] = right[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		k++
	}
	k += copy(s[k:], left[i:])
	copy(s[k:], right[j:])
}
