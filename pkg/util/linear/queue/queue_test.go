// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package queue

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/linear/pkg/util/linear"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// checkInvariants verifies the length, the tail pointer and node ownership.
func checkInvariants[T comparable](t *testing.T, q *Queue[T]) {
	t.Helper()
	n := 0
	var last *Node[T]
	for e := q.Head(); e != nil; e = e.Next() {
		require.Same(t, q, e.queue)
		last = e
		n++
	}
	require.Equal(t, q.Len(), n)
	require.Equal(t, last, q.Tail())
	require.Equal(t, n == 0, q.Empty())
}

func TestFIFO(t *testing.T) {
	q := New[int]()
	for i := 1; i <= 3; i++ {
		q.Enqueue(i)
	}
	checkInvariants(t, q)
	f, err := q.Front()
	require.NoError(t, err)
	require.Equal(t, 1, f)
	b, err := q.Back()
	require.NoError(t, err)
	require.Equal(t, 3, b)

	for i := 1; i <= 3; i++ {
		v, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, i, v)
		checkInvariants(t, q)
	}
	_, err = q.Dequeue()
	require.True(t, errors.Is(err, linear.ErrEmpty))
	_, err = q.Front()
	require.True(t, errors.Is(err, linear.ErrEmpty))
	_, err = q.Back()
	require.True(t, errors.Is(err, linear.ErrEmpty))

	// The tail is reset once drained, so enqueueing works again.
	q.Enqueue(4)
	checkInvariants(t, q)
	require.Equal(t, []int{4}, q.ToSlice())
}

func TestRandomizedAgainstSlice(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	q := New[int]()
	var model []int
	for i := 0; i < 1000; i++ {
		if rng.Intn(3) == 0 && len(model) > 0 {
			v, err := q.Dequeue()
			require.NoError(t, err)
			require.Equal(t, model[0], v)
			model = model[1:]
		} else {
			q.Enqueue(i)
			model = append(model, i)
		}
	}
	require.Equal(t, model, q.ToSlice())
	checkInvariants(t, q)
}

func TestIndexing(t *testing.T) {
	q := FromSlice([]string{"a", "b", "c", "b"})
	n, err := q.At(2)
	require.NoError(t, err)
	require.Equal(t, "c", n.Value)
	_, err = q.At(4)
	require.True(t, errors.Is(err, linear.ErrOutOfRange))

	i, err := q.Index(n)
	require.NoError(t, err)
	require.Equal(t, 2, i)
	_, err = q.Index(FromSlice([]string{"c"}).Head())
	require.True(t, errors.Is(err, linear.ErrNotFound))

	i, err = q.IndexOf("b")
	require.NoError(t, err)
	require.Equal(t, 1, i)
	_, err = q.IndexOf("z")
	require.True(t, errors.Is(err, linear.ErrNotFound))

	require.True(t, q.Contains("c"))
	require.False(t, q.Contains("z"))

	_, err = New[string]().At(0)
	require.True(t, errors.Is(err, linear.ErrEmpty))
	_, err = New[string]().IndexOf("a")
	require.True(t, errors.Is(err, linear.ErrEmpty))
}

func TestInsert(t *testing.T) {
	q := FromSlice([]int{1, 4})
	c, err := q.Begin().Add(1)
	require.NoError(t, err)
	require.NoError(t, q.Insert(c, 3))
	require.NoError(t, q.Insert(q.Begin(), 0))
	require.NoError(t, q.Insert(q.End(), 5))
	require.Equal(t, []int{0, 1, 3, 4, 5}, q.ToSlice())
	checkInvariants(t, q)

	first := q.Begin()
	require.NoError(t, q.InsertSlice(first, []int{-2, -1}))
	require.NoError(t, q.InsertSlice(q.End(), []int{6, 7}))
	require.Equal(t, []int{-2, -1, 0, 1, 3, 4, 5, 6, 7}, q.ToSlice())
	checkInvariants(t, q)

	require.True(t, errors.Is(q.InsertSlice(first, nil), linear.ErrInvalidArgument))
	foreign := FromSlice([]int{1}).Begin()
	require.True(t, errors.Is(q.Insert(foreign, 1), linear.ErrInvalidArgument))

	empty := New[int]()
	require.NoError(t, empty.InsertSlice(empty.End(), []int{1, 2}))
	require.Equal(t, []int{1, 2}, empty.ToSlice())
	checkInvariants(t, empty)
}

func TestErase(t *testing.T) {
	q := FromSlice([]int{1, 2, 3, 2, 4, 2})
	require.NoError(t, q.Erase(2))
	require.Equal(t, []int{1, 3, 2, 4, 2}, q.ToSlice())
	require.True(t, errors.Is(q.Erase(9), linear.ErrNotFound))

	require.NoError(t, q.EraseAll(2))
	require.Equal(t, []int{1, 3, 4}, q.ToSlice())
	checkInvariants(t, q)
	require.True(t, errors.Is(q.EraseAll(2), linear.ErrNotFound))

	last, err := q.Begin().Add(2)
	require.NoError(t, err)
	require.NoError(t, q.EraseAt(last))
	require.Equal(t, []int{1, 3}, q.ToSlice())
	checkInvariants(t, q)
	require.True(t, errors.Is(q.EraseAt(q.End()), linear.ErrInvalidArgument))
	require.True(t, errors.Is(q.EraseAt(last), linear.ErrInvalidArgument), "erased node is foreign")

	q.Clear()
	checkInvariants(t, q)
	require.True(t, errors.Is(q.Erase(1), linear.ErrEmpty))
	require.True(t, errors.Is(q.EraseAll(1), linear.ErrEmpty))
	require.True(t, errors.Is(q.EraseAt(q.Begin()), linear.ErrEmpty))
}

func TestFindAndReplace(t *testing.T) {
	q := FromSlice([]int{5, 6, 5, 7})
	c, err := q.Find(5)
	require.NoError(t, err)
	require.True(t, c.Found())
	require.Same(t, q.Head(), c.Node())
	require.False(t, c.Equal(q.Begin()))
	require.True(t, c.Equal(q.Begin().Marked()))

	miss, err := q.Find(9)
	require.NoError(t, err)
	require.True(t, miss.Equal(q.End()))

	all, err := q.FindAll(5)
	require.NoError(t, err)
	require.Len(t, all, 2)
	odd, err := q.FindIf(func(v int) bool { return v%2 == 1 })
	require.NoError(t, err)
	require.Len(t, odd, 3)

	require.NoError(t, q.Replace(5, 1))
	require.Equal(t, []int{1, 6, 5, 7}, q.ToSlice())
	require.True(t, errors.Is(q.Replace(9, 1), linear.ErrNotFound))
	require.NoError(t, q.ReplaceAll(5, 2))
	require.True(t, errors.Is(q.ReplaceAll(5, 2), linear.ErrNotFound))
	require.NoError(t, q.ReplaceIf(func(v int) bool { return v > 5 }, 0))
	require.Equal(t, []int{1, 0, 2, 0}, q.ToSlice())
	require.NoError(t, q.ReplaceAt(q.Begin(), 8))
	require.True(t, errors.Is(q.ReplaceAt(q.End(), 8), linear.ErrOutOfRange))

	from, _ := q.Begin().Add(1)
	to, _ := q.Begin().Add(2)
	require.NoError(t, q.ReplaceRange(from, to, 3))
	require.Equal(t, []int{8, 3, 3, 0}, q.ToSlice())
	require.True(t, errors.Is(q.ReplaceRange(to, from, 4), linear.ErrInvalidArgument))
	require.NoError(t, q.ReplaceRange(to, to, 4))
	require.Equal(t, []int{8, 3, 4, 0}, q.ToSlice())

	require.Equal(t, 1, q.Count(4))
	require.Equal(t, 2, q.CountIf(func(v int) bool { return v < 4 }))

	_, err = New[int]().Find(1)
	require.True(t, errors.Is(err, linear.ErrEmpty))
}

func TestCursor(t *testing.T) {
	q := FromSlice([]int{1, 2, 3})
	var got []int
	for c := q.Begin(); c.Valid(); c.Next() {
		v, err := c.Get()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3}, got)

	c, err := q.Begin().Add(10)
	require.NoError(t, err)
	require.Same(t, q.Tail(), c.Node())
	_, err = c.Add(-1)
	require.True(t, errors.Is(err, linear.ErrInvalidArgument))
	require.NoError(t, c.Set(30))
	require.Equal(t, []int{1, 2, 30}, q.ToSlice())
	require.False(t, c.Next())
	_, err = c.Get()
	require.True(t, errors.Is(err, linear.ErrOutOfRange))
}

func TestTransform(t *testing.T) {
	q := FromSlice([]int{3, 1, 3, 2, 1})
	even := q.Filter(func(v int) bool { return v%2 == 0 })
	require.Equal(t, []int{2}, even.ToSlice())
	require.True(t, q.Filter(func(v int) bool { return v > 10 }).Empty())

	r, err := q.Reversed()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 1, 3}, r.ToSlice())
	checkInvariants(t, r)

	require.NoError(t, q.Reverse())
	require.Equal(t, []int{1, 2, 3, 1, 3}, q.ToSlice())
	checkInvariants(t, q)
	// The tail must follow the reversal.
	q.Enqueue(9)
	require.Equal(t, []int{1, 2, 3, 1, 3, 9}, q.ToSlice())

	require.NoError(t, q.RemoveDuplicates())
	require.Equal(t, []int{1, 2, 3, 9}, q.ToSlice())
	checkInvariants(t, q)

	s, err := q.ToString()
	require.NoError(t, err)
	require.Equal(t, "1 -> 2 -> 3 -> 9", s)
	require.Equal(t, "queue[1 2 3 9]", q.String())

	empty := New[int]()
	_, err = empty.ToString()
	require.True(t, errors.Is(err, linear.ErrEmpty))
	require.True(t, errors.Is(empty.Reverse(), linear.ErrEmpty))
	require.True(t, errors.Is(empty.RemoveDuplicates(), linear.ErrEmpty))
}

func TestSwapAndClone(t *testing.T) {
	a := FromSlice([]int{1, 2})
	b := FromSlice([]int{3})
	Swap(a, b)
	require.Equal(t, []int{3}, a.ToSlice())
	require.Equal(t, []int{1, 2}, b.ToSlice())
	checkInvariants(t, a)
	checkInvariants(t, b)
	require.NoError(t, b.EraseAt(b.Begin()))

	c := b.Clone()
	require.True(t, c.Equal(b))
	c.Enqueue(5)
	require.False(t, c.Equal(b))

	src := FromSlice([]int{1, 2, 3, 4})
	from, _ := src.Begin().Add(1)
	r, err := FromRange(from, src.End())
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, r.ToSlice())
	_, err = FromRange(src.End(), from)
	require.True(t, errors.Is(err, linear.ErrInvalidArgument))
}

func TestMinMax(t *testing.T) {
	q := FromSlice([]int{4, 9, 2, 9, 7})
	mx, err := Max(q)
	require.NoError(t, err)
	require.Equal(t, 9, mx)
	mn, err := Min(q)
	require.NoError(t, err)
	require.Equal(t, 2, mn)

	even := func(v int) bool { return v%2 == 0 }
	v, err := MaxIf(q, even)
	require.NoError(t, err)
	require.Equal(t, 4, v)
	v, err = MinIf(q, func(v int) bool { return v > 4 })
	require.NoError(t, err)
	require.Equal(t, 7, v)
	_, err = MaxIf(q, func(v int) bool { return v > 100 })
	require.True(t, errors.Is(err, linear.ErrNotFound))
	_, err = MinIf(q, func(v int) bool { return v > 100 })
	require.True(t, errors.Is(err, linear.ErrNotFound))

	words := FromSlice([]string{"aa", "b", "cc"})
	w, err := words.MaxBy(func(s string) int { return len(s) })
	require.NoError(t, err)
	require.Equal(t, "aa", w)
	w, err = words.MinBy(func(s string) int { return len(s) })
	require.NoError(t, err)
	require.Equal(t, "b", w)

	_, err = Max(New[int]())
	require.True(t, errors.Is(err, linear.ErrEmpty))
	_, err = MaxIf(New[int](), even)
	require.True(t, errors.Is(err, linear.ErrEmpty))
}

func TestRelational(t *testing.T) {
	require.True(t, Greater(FromSlice([]int{3, 4}), FromSlice([]int{1, 2})))
	require.False(t, Greater(FromSlice([]int{3, 1}), FromSlice([]int{1, 2})))
	require.True(t, Less(FromSlice([]int{7}), FromSlice([]int{1, 2})))
	require.True(t, FromSlice([]int{1}).Equal(FromSlice([]int{1})))
}
