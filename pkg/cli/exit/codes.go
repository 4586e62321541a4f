// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package exit

// Success (0) represents a normal process termination.
func Success() Code { return Code{0} }

// UnspecifiedError (1) indicates the process has terminated with an
// error condition. The specific cause of the error can be found in
// the logging output.
func UnspecifiedError() Code { return Code{1} }

// UnspecifiedGoPanic (2) indicates the process has terminated due to
// an uncaught Go panic, or a call to log.Fatalf.
func UnspecifiedGoPanic() Code { return Code{2} }

// CommandLineFlagError (4) indicates there was an error in the
// command-line parameters or the configuration file.
func CommandLineFlagError() Code { return Code{4} }

// InvalidInput (5) indicates that the input values did not satisfy the
// preconditions of the requested container operation, for example popping
// from an empty stack or asking for more distinct values than exist.
func InvalidInput() Code { return Code{5} }
