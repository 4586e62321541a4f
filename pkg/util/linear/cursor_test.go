// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linear

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestNewCursor(t *testing.T) {
	buf := []int{1, 2, 3, 0, 0}
	for _, tc := range []struct {
		size, pos int
		ok        bool
	}{
		{size: 3, pos: 0, ok: true},
		{size: 3, pos: 3, ok: true},
		{size: 3, pos: 4, ok: false},
		{size: 3, pos: -1, ok: false},
		{size: 5, pos: 5, ok: true},
		{size: 6, pos: 0, ok: false},
		{size: 0, pos: 0, ok: true},
	} {
		_, err := NewCursor(buf, tc.size, tc.pos)
		if tc.ok {
			require.NoError(t, err, "size=%d pos=%d", tc.size, tc.pos)
		} else {
			require.True(t, errors.Is(err, ErrOutOfRange), "size=%d pos=%d: %v", tc.size, tc.pos, err)
		}
	}
}

func TestCursorDeref(t *testing.T) {
	buf := []string{"a", "b", "c"}
	c, err := NewCursor(buf, 3, 1)
	require.NoError(t, err)

	v, err := c.Get()
	require.NoError(t, err)
	require.Equal(t, "b", v)

	require.NoError(t, c.Set("z"))
	require.Equal(t, []string{"a", "z", "c"}, buf)

	end, err := NewCursor(buf, 3, 3)
	require.NoError(t, err)
	require.False(t, end.Valid())
	_, err = end.Get()
	require.True(t, errors.Is(err, ErrOutOfRange))
	require.True(t, errors.Is(end.Set("x"), ErrOutOfRange))
}

func TestCursorArithmetic(t *testing.T) {
	buf := make([]int, 4)
	c, err := NewCursor(buf, 4, 2)
	require.NoError(t, err)

	n, err := c.Add(2)
	require.NoError(t, err)
	require.Equal(t, 4, n.Pos())

	_, err = c.Add(3)
	require.True(t, errors.Is(err, ErrOutOfRange))

	p, err := c.Sub(2)
	require.NoError(t, err)
	require.Equal(t, 0, p.Pos())

	_, err = c.Sub(3)
	require.True(t, errors.Is(err, ErrOutOfRange))

	// Arithmetic drops the search flag.
	m, err := c.Marked().Add(0)
	require.NoError(t, err)
	require.False(t, m.Found())
}

func TestCursorStep(t *testing.T) {
	buf := []int{7, 8}
	c, err := NewCursor(buf, 2, 0)
	require.NoError(t, err)

	var seen []int
	for ; c.Valid(); c.Next() {
		v, err := c.Get()
		require.NoError(t, err)
		seen = append(seen, v)
	}
	require.Equal(t, []int{7, 8}, seen)
	require.Equal(t, 2, c.Pos())
	require.False(t, c.Next())
	require.Equal(t, 2, c.Pos())

	require.True(t, c.Prev())
	require.True(t, c.Prev())
	require.False(t, c.Prev())
	require.Equal(t, 0, c.Pos())
}

func TestCursorEquality(t *testing.T) {
	buf := []int{1, 2, 3}
	other := []int{1, 2, 3}

	a, _ := NewCursor(buf, 3, 1)
	b, _ := NewCursor(buf, 3, 1)
	c, _ := NewCursor(other, 3, 1)
	d, _ := NewCursor(buf, 3, 2)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c), "different buffers")
	require.False(t, a.Equal(d), "different positions")
	require.False(t, a.Equal(b.Marked()), "different search flags")
	require.True(t, a.Marked().Equal(b.Marked()))
	require.True(t, a.Marked().Unmarked().Equal(b))

	// Ordering ignores everything but position.
	require.Equal(t, 0, a.Compare(c))
	require.Equal(t, 0, a.Compare(b.Marked()))
	require.True(t, a.Less(d))
	require.True(t, d.Greater(a))
	require.True(t, a.LessEq(c))
	require.True(t, a.GreaterEq(c))
	require.False(t, d.LessEq(a))
	require.Equal(t, -1, a.Compare(d))
	require.Equal(t, 1, d.Compare(a))
}

func TestCursorString(t *testing.T) {
	buf := []int{1, 2, 3}
	c, _ := NewCursor(buf, 3, 1)
	require.Equal(t, "cursor(1/3)", c.String())
	require.Equal(t, "cursor(1/3, found)", c.Marked().String())
}
