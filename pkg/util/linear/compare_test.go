// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linear

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestDominance(t *testing.T) {
	for _, tc := range []struct {
		a, b          []int
		greater, less bool
	}{
		{a: []int{1, 2, 3}, b: []int{1, 2}, greater: true, less: false},
		{a: []int{1}, b: []int{5, 6}, greater: false, less: true},
		{a: []int{2, 3}, b: []int{1, 2}, greater: true, less: false},
		{a: []int{1, 2}, b: []int{2, 3}, greater: false, less: true},
		// Lexicographically greater but not dominant.
		{a: []int{2, 0}, b: []int{1, 5}, greater: false, less: false},
		{a: []int{1, 2}, b: []int{1, 2}, greater: false, less: false},
		{a: nil, b: nil, greater: true, less: true},
	} {
		require.Equal(t, tc.greater, Greater(tc.a, tc.b), "%v > %v", tc.a, tc.b)
		require.Equal(t, tc.less, Less(tc.a, tc.b), "%v < %v", tc.a, tc.b)
	}
}

func TestEqualSlices(t *testing.T) {
	require.True(t, EqualSlices([]string{"a"}, []string{"a"}))
	require.False(t, EqualSlices([]string{"a"}, []string{"b"}))
	require.False(t, EqualSlices([]string{"a"}, []string{"a", "a"}))
	require.True(t, EqualSlices[int](nil, []int{}))
}

func TestJoin(t *testing.T) {
	require.Equal(t, "a, b, c.", Join([]string{"a", "b", "c"}, ", ", "."))
	require.Equal(t, "1 -> 2", Join([]int{1, 2}, " -> ", ""))
	require.Equal(t, ".", Join[int](nil, ", ", "."))
}

type formatted []string

func (f formatted) SafeFormat(w redact.SafePrinter, _ rune) {
	FormatValues(w, "array", []string(f))
}

func TestFormatValues(t *testing.T) {
	s := redact.Sprint(formatted{"a", "b"})
	require.EqualValues(t, "array[‹a› ‹b›]", s)
	require.Equal(t, "array[‹×› ‹×›]", string(s.Redact()))
}

func TestErrorMarks(t *testing.T) {
	err := NewCapacityExceededError("stack", 3)
	require.True(t, errors.Is(err, ErrCapacityExceeded))
	require.True(t, errors.Is(err, ErrInvalidArgument))
	require.False(t, errors.Is(err, ErrOutOfRange))
	require.Equal(t, "stack is full (capacity 3)", err.Error())

	err = NewNotFoundError("array", 42)
	require.True(t, errors.Is(err, ErrNotFound))
	require.True(t, errors.Is(err, ErrInvalidArgument))
	require.Equal(t, "42 was not found in array", err.Error())

	err = NewEmptyError("queue")
	require.True(t, errors.Is(err, ErrEmpty))
	require.Equal(t, "queue is empty", err.Error())

	require.NoError(t, CheckIndex(0, 1))
	require.True(t, errors.Is(CheckIndex(1, 1), ErrOutOfRange))
	require.True(t, errors.Is(CheckIndex(-1, 1), ErrOutOfRange))
	require.NoError(t, CheckOrdered(2, 2))
	require.True(t, errors.Is(CheckOrdered(3, 2), ErrInvalidArgument))

	require.Equal(t, 4, ClampRangeEnd(5, 5))
	require.Equal(t, 3, ClampRangeEnd(3, 5))
	require.Equal(t, 0, ClampRangeEnd(0, 0))
}
