// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linear

import (
	"cmp"
	"slices"
)

// Greater reports whether a dominates b.
//
// NB: this is NOT a lexicographic comparison and must not be turned into one.
// A longer sequence is greater than a shorter one regardless of contents. For
// sequences of equal length, a is greater only if a[i] > b[i] holds at every
// position; a single position where it does not makes the result false. Two
// empty sequences are vacuously greater than each other.
func Greater[T cmp.Ordered](a, b []T) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	for i := range a {
		if !(a[i] > b[i]) {
			return false
		}
	}
	return true
}

// Less reports whether a is dominated by b. See Greater for why this is not
// the usual ordering.
func Less[T cmp.Ordered](a, b []T) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if !(a[i] < b[i]) {
			return false
		}
	}
	return true
}

// EqualSlices reports whether a and b hold the same elements in the same
// order.
func EqualSlices[T comparable](a, b []T) bool {
	return slices.Equal(a, b)
}
