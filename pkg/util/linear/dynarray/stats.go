// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"cmp"
	"container/heap"

	"github.com/cockroachdb/linear/pkg/util/linear"
	"github.com/cockroachdb/redact"
	"github.com/google/btree"
)

// RemoveDuplicates drops every repeated element, keeping first occurrences in
// their original order.
func (a *Array[T]) RemoveDuplicates() error {
	if err := a.checkNonEmpty(); err != nil {
		return err
	}
	seen := make(map[T]struct{}, a.size)
	n := 0
	for _, e := range a.values() {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		a.buf[n] = e
		n++
	}
	a.clear(n, a.size)
	a.size = n
	return nil
}

// Frequency is a value and the number of times it occurs.
type Frequency[T any] struct {
	Value T
	Count int
}

// Frequencies is an ordered value to count mapping.
type Frequencies[T cmp.Ordered] struct {
	tree *btree.BTreeG[Frequency[T]]
}

// degree of the btree backing Frequencies.
const frequenciesDegree = 8

func newFrequencies[T cmp.Ordered]() *Frequencies[T] {
	return &Frequencies[T]{
		tree: btree.NewG[Frequency[T]](frequenciesDegree, func(a, b Frequency[T]) bool {
			return cmp.Less(a.Value, b.Value)
		}),
	}
}

func (f *Frequencies[T]) add(v T) {
	e, _ := f.tree.Get(Frequency[T]{Value: v})
	e.Value = v
	e.Count++
	f.tree.ReplaceOrInsert(e)
}

// Get returns the count for v, zero when v does not occur.
func (f *Frequencies[T]) Get(v T) int {
	e, _ := f.tree.Get(Frequency[T]{Value: v})
	return e.Count
}

// Len returns the number of distinct values.
func (f *Frequencies[T]) Len() int { return f.tree.Len() }

// Ascend calls fn for every entry in ascending value order until fn returns
// false.
func (f *Frequencies[T]) Ascend(fn func(Frequency[T]) bool) {
	f.tree.Ascend(fn)
}

// Entries returns every entry in ascending value order.
func (f *Frequencies[T]) Entries() []Frequency[T] {
	out := make([]Frequency[T], 0, f.tree.Len())
	f.Ascend(func(e Frequency[T]) bool {
		out = append(out, e)
		return true
	})
	return out
}

// FrequencyMap counts the occurrences of every value in a.
func FrequencyMap[T cmp.Ordered](a *Array[T]) (*Frequencies[T], error) {
	if err := a.checkNonEmpty(); err != nil {
		return nil, err
	}
	f := newFrequencies[T]()
	for _, e := range a.values() {
		f.add(e)
	}
	return f, nil
}

// counts returns the number of occurrences of each element.
func (a *Array[T]) counts() map[T]int {
	m := make(map[T]int, a.size)
	for _, e := range a.values() {
		m[e]++
	}
	return m
}

// Distinct returns a found cursor at the first element that occurs exactly
// once, or End when there is none.
func (a *Array[T]) Distinct() (linear.Cursor[T], error) {
	return a.KthDistinct(1)
}

// DistinctAll returns cursors at every element that occurs exactly once, in
// order.
func (a *Array[T]) DistinctAll() ([]linear.Cursor[T], error) {
	if err := a.checkNonEmpty(); err != nil {
		return nil, err
	}
	m := a.counts()
	return a.FindIf(func(e T) bool { return m[e] == 1 })
}

// KthDistinct returns a found cursor at the k-th (1-based) element that
// occurs exactly once, or End when fewer than k such elements exist.
func (a *Array[T]) KthDistinct(k int) (linear.Cursor[T], error) {
	if err := a.checkNonEmpty(); err != nil {
		return linear.Cursor[T]{}, err
	}
	if k <= 0 {
		return linear.Cursor[T]{}, linear.NewInvalidArgumentErrorf(
			"k must be positive, got %d", redact.Safe(k))
	}
	m := a.counts()
	for i, e := range a.values() {
		if m[e] != 1 {
			continue
		}
		if k--; k == 0 {
			return a.cursor(i).Marked(), nil
		}
	}
	return a.End(), nil
}

// TopKFrequent returns the k most frequent values, most frequent first.
// Values with equal counts are ordered by their first occurrence.
func (a *Array[T]) TopKFrequent(k int) ([]T, error) {
	if err := a.checkNonEmpty(); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, linear.NewInvalidArgumentErrorf("k must be positive, got %d", redact.Safe(k))
	}
	index := make(map[T]int, a.size)
	var h frequencyHeap[T]
	for i, e := range a.values() {
		j, ok := index[e]
		if !ok {
			j = len(h)
			index[e] = j
			h = append(h, rankedFrequency[T]{Frequency: Frequency[T]{Value: e}, first: i})
		}
		h[j].Count++
	}
	if k > len(h) {
		return nil, linear.NewOutOfRangeErrorf(
			"k = %d exceeds the number of distinct values %d", redact.Safe(k), redact.Safe(len(h)))
	}
	heap.Init(&h)
	out := make([]T, k)
	for i := range out {
		out[i] = heap.Pop(&h).(rankedFrequency[T]).Value
	}
	return out, nil
}

type rankedFrequency[T any] struct {
	Frequency[T]
	// first is the index of the value's first occurrence.
	first int
}

// frequencyHeap is a max-heap by count.
type frequencyHeap[T any] []rankedFrequency[T]

var _ heap.Interface = (*frequencyHeap[int])(nil)

func (h *frequencyHeap[T]) Len() int {
	return len(*h)
}

func (h *frequencyHeap[T]) Less(i, j int) bool {
	a, b := (*h)[i], (*h)[j]
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.first < b.first
}

func (h *frequencyHeap[T]) Swap(i, j int) {
	(*h)[i], (*h)[j] = (*h)[j], (*h)[i]
}

func (h *frequencyHeap[T]) Push(x interface{}) {
	*h = append(*h, x.(rankedFrequency[T]))
}

func (h *frequencyHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// Max returns the largest element. Ties resolve to the earliest occurrence.
func Max[T cmp.Ordered](a *Array[T]) (T, error) {
	return a.extreme(func(cand, best T) bool { return cand > best })
}

// Min returns the smallest element. Ties resolve to the earliest occurrence.
func Min[T cmp.Ordered](a *Array[T]) (T, error) {
	return a.extreme(func(cand, best T) bool { return cand < best })
}

// MaxBy returns the element with the largest key. Ties resolve to the
// earliest occurrence.
func (a *Array[T]) MaxBy(key func(T) int) (T, error) {
	return a.extreme(func(cand, best T) bool { return key(cand) > key(best) })
}

// MinBy returns the element with the smallest key. Ties resolve to the
// earliest occurrence.
func (a *Array[T]) MinBy(key func(T) int) (T, error) {
	return a.extreme(func(cand, best T) bool { return key(cand) < key(best) })
}

// extreme scans for the element no later element beats. beats must be
// strict so that the first of several equal candidates is kept.
func (a *Array[T]) extreme(beats func(cand, best T) bool) (T, error) {
	var best T
	if err := a.checkNonEmpty(); err != nil {
		return best, err
	}
	best = a.buf[0]
	for _, e := range a.values()[1:] {
		if beats(e, best) {
			best = e
		}
	}
	return best, nil
}
