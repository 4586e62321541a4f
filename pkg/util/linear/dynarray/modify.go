// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"github.com/cockroachdb/linear/pkg/util/linear"
)

func (a *Array[T]) checkNotFull() error {
	if a.Full() {
		return linear.NewCapacityExceededError(containerName, len(a.buf))
	}
	return nil
}

// PushBack appends v. It fails when the array is full.
func (a *Array[T]) PushBack(v T) error {
	if err := a.checkNotFull(); err != nil {
		return err
	}
	a.buf[a.size] = v
	a.size++
	return nil
}

// PushFront prepends v, shifting every element one slot to the right. It
// fails when the array is full.
func (a *Array[T]) PushFront(v T) error {
	if err := a.checkNotFull(); err != nil {
		return err
	}
	copy(a.buf[1:a.size+1], a.buf[:a.size])
	a.buf[0] = v
	a.size++
	return nil
}

// Insert places v before the element at index i, which must reference an
// existing element.
func (a *Array[T]) Insert(i int, v T) error {
	if err := a.checkNotFull(); err != nil {
		return err
	}
	if err := linear.CheckIndex(i, a.size); err != nil {
		return err
	}
	copy(a.buf[i+1:a.size+1], a.buf[i:a.size])
	a.buf[i] = v
	a.size++
	return nil
}

// InsertSlice places vs before the element at index i. Unlike Insert it grows
// the array when needed, to exactly the resulting size.
func (a *Array[T]) InsertSlice(i int, vs []T) error {
	if err := linear.CheckIndex(i, a.size); err != nil {
		return err
	}
	n := len(vs)
	a.Resize(a.size + n)
	copy(a.buf[i+n:a.size+n], a.buf[i:a.size])
	copy(a.buf[i:], vs)
	a.size += n
	return nil
}

// EraseBack removes the last element.
func (a *Array[T]) EraseBack() error {
	if err := a.checkNonEmpty(); err != nil {
		return err
	}
	a.size--
	a.clear(a.size, a.size+1)
	return nil
}

// EraseFront removes the first element, shifting the rest to the left.
func (a *Array[T]) EraseFront() error {
	if err := a.checkNonEmpty(); err != nil {
		return err
	}
	a.eraseAt(0, 1)
	return nil
}

// Erase removes the element c references.
func (a *Array[T]) Erase(c linear.Cursor[T]) error {
	if err := a.checkNonEmpty(); err != nil {
		return err
	}
	if err := a.checkCursor(c); err != nil {
		return err
	}
	a.eraseAt(c.Pos(), 1)
	return nil
}

// EraseRange removes the elements between from and to, both inclusive. A
// range ending at End runs through the last element, so EraseRange(Begin(),
// End()) empties the array.
func (a *Array[T]) EraseRange(from, to linear.Cursor[T]) error {
	if err := a.checkNonEmpty(); err != nil {
		return err
	}
	lo, hi, err := a.checkRange(from, to)
	if err != nil {
		return err
	}
	a.eraseAt(lo, hi-lo+1)
	return nil
}

// EraseAll removes every occurrence of v.
func (a *Array[T]) EraseAll(v T) error {
	return a.EraseIf(func(e T) bool { return e == v })
}

// EraseIf removes every element satisfying pred.
func (a *Array[T]) EraseIf(pred func(T) bool) error {
	found, err := a.FindIf(pred)
	if err != nil {
		return err
	}
	// Erase back to front so earlier positions stay put.
	for i := len(found) - 1; i >= 0; i-- {
		a.eraseAt(found[i].Pos(), 1)
	}
	return nil
}

// eraseAt removes n elements starting at i.
func (a *Array[T]) eraseAt(i, n int) {
	copy(a.buf[i:], a.buf[i+n:a.size])
	a.clear(a.size-n, a.size)
	a.size -= n
}

// clear zeroes the slots in [from, to) so that they do not retain
// references.
func (a *Array[T]) clear(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		a.buf[i] = zero
	}
}

// Replace overwrites the first occurrence of old with v.
func (a *Array[T]) Replace(old, v T) error {
	c, err := a.Find(old)
	if err != nil {
		return err
	}
	if !c.Found() {
		return linear.NewNotFoundError(containerName, old)
	}
	a.buf[c.Pos()] = v
	return nil
}

// ReplaceAt overwrites the element c references.
func (a *Array[T]) ReplaceAt(c linear.Cursor[T], v T) error {
	if err := a.checkNonEmpty(); err != nil {
		return err
	}
	if err := a.checkCursor(c); err != nil {
		return err
	}
	a.buf[c.Pos()] = v
	return nil
}

// ReplaceAll overwrites every occurrence of old with v.
func (a *Array[T]) ReplaceAll(old, v T) error {
	found, err := a.FindAll(old)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return linear.NewNotFoundError(containerName, old)
	}
	for _, c := range found {
		a.buf[c.Pos()] = v
	}
	return nil
}

// ReplaceIf overwrites every element satisfying pred with v.
func (a *Array[T]) ReplaceIf(pred func(T) bool, v T) error {
	found, err := a.FindIf(pred)
	if err != nil {
		return err
	}
	for _, c := range found {
		a.buf[c.Pos()] = v
	}
	return nil
}

// ReplaceRange overwrites the elements between from and to, both inclusive,
// with v.
func (a *Array[T]) ReplaceRange(from, to linear.Cursor[T], v T) error {
	if err := a.checkNonEmpty(); err != nil {
		return err
	}
	lo, hi, err := a.checkRange(from, to)
	if err != nil {
		return err
	}
	for i := lo; i <= hi; i++ {
		a.buf[i] = v
	}
	return nil
}
