// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linear

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// The error kinds shared by every container in this package tree. Errors
// returned by the containers carry one or more of these as marks, so callers
// should test for them with errors.Is rather than by equality.
var (
	// ErrEmpty is reported when an operation requires at least one element.
	ErrEmpty = errors.New("container is empty")
	// ErrOutOfRange is reported when an index, cursor position or offset
	// falls outside the valid bounds.
	ErrOutOfRange = errors.New("position out of range")
	// ErrInvalidArgument is reported when a precondition on a value or cursor
	// argument is violated.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCapacityExceeded is reported when an element is inserted into a full
	// fixed-capacity buffer. Errors carrying this mark also carry
	// ErrInvalidArgument.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrNotFound is reported when an element that must exist is absent.
	// Errors carrying this mark also carry ErrInvalidArgument.
	ErrNotFound = errors.New("element not found")
)

// NewEmptyError returns an error marked with ErrEmpty for the named
// container.
func NewEmptyError(container redact.SafeString) error {
	return errors.Mark(errors.Newf("%s is empty", container), ErrEmpty)
}

// NewOutOfRangeErrorf returns an error marked with ErrOutOfRange.
func NewOutOfRangeErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrOutOfRange)
}

// NewInvalidArgumentErrorf returns an error marked with ErrInvalidArgument.
func NewInvalidArgumentErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrInvalidArgument)
}

// NewCapacityExceededError returns an error marked with both
// ErrCapacityExceeded and ErrInvalidArgument.
func NewCapacityExceededError(container redact.SafeString, capacity int) error {
	err := errors.Newf("%s is full (capacity %d)", container, redact.Safe(capacity))
	return errors.Mark(errors.Mark(err, ErrCapacityExceeded), ErrInvalidArgument)
}

// NewNotFoundError returns an error marked with both ErrNotFound and
// ErrInvalidArgument. The element value is treated as unsafe for reporting.
func NewNotFoundError(container redact.SafeString, value interface{}) error {
	err := errors.Newf("%v was not found in %s", value, container)
	return errors.Mark(errors.Mark(err, ErrNotFound), ErrInvalidArgument)
}

// CheckIndex returns an ErrOutOfRange error unless 0 <= i < n.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return NewOutOfRangeErrorf("index %d is out of range [0, %d)", redact.Safe(i), redact.Safe(n))
	}
	return nil
}

// CheckOrdered returns an ErrInvalidArgument error when the range start lies
// after its end.
func CheckOrdered(from, to int) error {
	if from > to {
		return NewInvalidArgumentErrorf(
			"range start %d must not be positioned after range end %d", redact.Safe(from), redact.Safe(to))
	}
	return nil
}

// ClampRangeEnd maps an inclusive range end at the one-past-end sentinel
// position n onto the last element, so that a (Begin, End) pair spans the
// whole container. Other positions are returned unchanged.
func ClampRangeEnd(to, n int) int {
	if n > 0 && to == n {
		return n - 1
	}
	return to
}
