// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package clierror attaches process exit codes and log severities to the
// errors returned by CLI commands.
package clierror

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/linear/pkg/cli/exit"
	"github.com/cockroachdb/linear/pkg/util/linear"
	"github.com/cockroachdb/linear/pkg/util/log"
)

// Error wraps another error with an exit code and the severity at which
// it should be reported.
type Error struct {
	exitCode exit.Code
	severity log.Severity
	cause    error
}

var _ error = (*Error)(nil)
var _ fmt.Formatter = (*Error)(nil)
var _ errors.Formatter = (*Error)(nil)

// NewError wraps err with the given exit code. The error is reported at
// the ERROR severity.
func NewError(cause error, exitCode exit.Code) error {
	return NewErrorWithSeverity(cause, exitCode, log.SeverityError)
}

// NewErrorWithSeverity wraps err with the given exit code and reporting
// severity.
func NewErrorWithSeverity(cause error, exitCode exit.Code, severity log.Severity) error {
	return &Error{exitCode: exitCode, severity: severity, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string { return e.cause.Error() }

// Cause implements causer.
func (e *Error) Cause() error { return e.cause }

// Unwrap implements the Go 1.13 wrapper interface.
func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// FormatError implements errors.Formatter.
func (e *Error) FormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("exit code: %s", e.exitCode)
	}
	return e.cause
}

// GetExitCode returns the exit code attached to err. Errors carrying one of
// the container error kinds map to exit.InvalidInput; other errors map to
// exit.UnspecifiedError.
func GetExitCode(err error) exit.Code {
	if err == nil {
		return exit.Success()
	}
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.exitCode
	}
	if IsInvalidInput(err) {
		return exit.InvalidInput()
	}
	return exit.UnspecifiedError()
}

// IsInvalidInput reports whether err stems from a container precondition.
func IsInvalidInput(err error) bool {
	return errors.IsAny(err,
		linear.ErrEmpty, linear.ErrOutOfRange, linear.ErrInvalidArgument)
}

// LoggerFn is the type of a logging function such as log.Errorf with the
// severity made explicit.
type LoggerFn = func(ctx context.Context, sev log.Severity, msg string, args ...interface{})

// CheckAndMaybeLog reports the error, if non-nil, to the given logger at
// the severity carried by the outermost *Error, or ERROR when there is
// none. Only one layer of *Error is unwrapped. The error is returned
// unchanged.
func CheckAndMaybeLog(err error, logger LoggerFn) error {
	if err == nil {
		return nil
	}
	sev := log.SeverityError
	cause := err
	var cliErr *Error
	if errors.As(err, &cliErr) {
		sev = cliErr.severity
		cause = cliErr.cause
	}
	logger(context.Background(), sev, "%v", cause)
	return err
}
