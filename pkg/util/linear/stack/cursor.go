// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package stack

import "github.com/cockroachdb/linear/pkg/util/linear"

// Begin returns a cursor at the bottom element.
func (s *Stack[T]) Begin() linear.Cursor[T] { return s.cursor(0) }

// End returns the one-past-top sentinel cursor.
func (s *Stack[T]) End() linear.Cursor[T] { return s.cursor(s.size) }

// Last returns a cursor at the top element, or Begin on an empty stack.
func (s *Stack[T]) Last() linear.Cursor[T] {
	if s.size == 0 {
		return s.Begin()
	}
	return s.cursor(s.size - 1)
}

func (s *Stack[T]) cursor(pos int) linear.Cursor[T] {
	c, err := linear.NewCursor(s.buf, s.size, pos)
	if err != nil {
		panic(err)
	}
	return c
}

func (s *Stack[T]) checkCursor(c linear.Cursor[T]) error {
	if !c.SameBuffer(s.buf) {
		return linear.NewInvalidArgumentErrorf("%s does not reference this %s", c, containerName)
	}
	return linear.CheckIndex(c.Pos(), s.size)
}

// Erase removes the element c references.
func (s *Stack[T]) Erase(c linear.Cursor[T]) error {
	if err := s.checkNonEmpty(); err != nil {
		return err
	}
	if err := s.checkCursor(c); err != nil {
		return err
	}
	s.eraseAt(c.Pos(), 1)
	return nil
}

// EraseRange removes the elements between from and to, both inclusive. A
// range ending at End runs through the top element.
func (s *Stack[T]) EraseRange(from, to linear.Cursor[T]) error {
	if err := s.checkNonEmpty(); err != nil {
		return err
	}
	lo, hi := from.Pos(), linear.ClampRangeEnd(to.Pos(), s.size)
	if err := linear.CheckOrdered(lo, hi); err != nil {
		return err
	}
	if err := s.checkCursor(from); err != nil {
		return err
	}
	if !to.SameBuffer(s.buf) {
		return linear.NewInvalidArgumentErrorf("%s does not reference this %s", to, containerName)
	}
	if err := linear.CheckIndex(hi, s.size); err != nil {
		return err
	}
	s.eraseAt(lo, hi-lo+1)
	return nil
}

func (s *Stack[T]) eraseAt(i, n int) {
	var zero T
	copy(s.buf[i:], s.buf[i+n:s.size])
	for j := s.size - n; j < s.size; j++ {
		s.buf[j] = zero
	}
	s.size -= n
}

// Find returns a found cursor at the lowest occurrence of v, or End.
func (s *Stack[T]) Find(v T) (linear.Cursor[T], error) {
	if err := s.checkNonEmpty(); err != nil {
		return linear.Cursor[T]{}, err
	}
	for i, e := range s.values() {
		if e == v {
			return s.cursor(i).Marked(), nil
		}
	}
	return s.End(), nil
}

// FindAll returns cursors at every occurrence of v, bottom first.
func (s *Stack[T]) FindAll(v T) ([]linear.Cursor[T], error) {
	return s.FindIf(func(e T) bool { return e == v })
}

// FindIf returns cursors at every element satisfying pred, bottom first.
func (s *Stack[T]) FindIf(pred func(T) bool) ([]linear.Cursor[T], error) {
	if err := s.checkNonEmpty(); err != nil {
		return nil, err
	}
	var found []linear.Cursor[T]
	for i, e := range s.values() {
		if pred(e) {
			found = append(found, s.cursor(i))
		}
	}
	return found, nil
}

// Replace overwrites the lowest occurrence of old with v.
func (s *Stack[T]) Replace(old, v T) error {
	c, err := s.Find(old)
	if err != nil {
		return err
	}
	if !c.Found() {
		return linear.NewNotFoundError(containerName, old)
	}
	s.buf[c.Pos()] = v
	return nil
}

// ReplaceAt overwrites the element c references.
func (s *Stack[T]) ReplaceAt(c linear.Cursor[T], v T) error {
	if err := s.checkNonEmpty(); err != nil {
		return err
	}
	if err := s.checkCursor(c); err != nil {
		return err
	}
	s.buf[c.Pos()] = v
	return nil
}

// ReplaceAll overwrites every occurrence of old with v.
func (s *Stack[T]) ReplaceAll(old, v T) error {
	found, err := s.FindAll(old)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return linear.NewNotFoundError(containerName, old)
	}
	for _, c := range found {
		s.buf[c.Pos()] = v
	}
	return nil
}

// ReplaceIf overwrites every element satisfying pred with v.
func (s *Stack[T]) ReplaceIf(pred func(T) bool, v T) error {
	found, err := s.FindIf(pred)
	if err != nil {
		return err
	}
	for _, c := range found {
		s.buf[c.Pos()] = v
	}
	return nil
}
