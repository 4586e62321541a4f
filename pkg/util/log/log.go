// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log is a small leveled logger for the linear command-line tools.
// It follows the conventions of the CockroachDB log package: context-first
// calls, context tags rendered in brackets, redactable messages and a
// one-line entry header of the form
//
//	I260115 10:04:05.123456 file.go:42  [tag=val] message
package log

import (
	"context"
	"io"
	"os"
	"sync"
	"time"
)

// Severity identifies the importance of a log entry.
type Severity int

// The severities, in increasing order of importance.
const (
	SeverityInfo Severity = iota + 1
	SeverityWarning
	SeverityError
	SeverityFatal
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// char returns the single-letter prefix of an entry header.
func (s Severity) char() byte {
	switch s {
	case SeverityInfo:
		return 'I'
	case SeverityWarning:
		return 'W'
	case SeverityError:
		return 'E'
	case SeverityFatal:
		return 'F'
	default:
		return '?'
	}
}

// Config controls where and how entries are written.
type Config struct {
	// Verbosity is the threshold for V and VEventf.
	Verbosity int
	// NoColor disables terminal colors even when the output is a terminal.
	NoColor bool
	// Redactable keeps redaction markers around unsafe values in the output.
	Redactable bool
	// Output receives the entries. Nil means stderr.
	Output io.Writer
}

var logging struct {
	mu       sync.Mutex
	config   Config
	output   io.Writer
	colors   *colorProfile
	exitFunc func(int)
	now      func() time.Time
}

func init() {
	ApplyConfig(Config{})
}

// ApplyConfig installs cfg as the active configuration. The returned
// function restores the configuration that was active before the call.
func ApplyConfig(cfg Config) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()

	prev := logging.config
	logging.config = cfg
	logging.output = cfg.Output
	if logging.output == nil {
		logging.output = os.Stderr
	}
	logging.colors = nil
	if !cfg.NoColor {
		logging.colors = colorProfileFor(logging.output)
	}
	if logging.now == nil {
		logging.now = time.Now
	}
	return func() { ApplyConfig(prev) }
}

// V reports whether verbose logging at the given level is enabled.
func V(level int) bool {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	return level <= logging.config.Verbosity
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityInfo, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityWarning, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityError, format, args)
}

// Fatalf logs to the FATAL severity and then exits the process with status
// code 2, or calls the function installed by SetExitFunc.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityFatal, format, args)
	logging.mu.Lock()
	f := logging.exitFunc
	logging.mu.Unlock()
	if f == nil {
		f = os.Exit
	}
	f(2)
}

// VEventf logs to the INFO severity when verbosity is at least level.
func VEventf(ctx context.Context, level int, format string, args ...interface{}) {
	if V(level) {
		logDepth(ctx, 1, SeverityInfo, format, args)
	}
}

// Logf logs at the given severity. Unlike Fatalf, logging at SeverityFatal
// through Logf does not exit.
func Logf(ctx context.Context, sev Severity, format string, args ...interface{}) {
	logDepth(ctx, 1, sev, format, args)
}

// InfofDepth logs to the INFO severity, attributing the entry to the caller
// depth frames above the immediate caller.
func InfofDepth(ctx context.Context, depth int, format string, args ...interface{}) {
	logDepth(ctx, depth+1, SeverityInfo, format, args)
}

// SetExitFunc installs the function Fatalf calls instead of os.Exit. Call
// with nil to undo.
func SetExitFunc(f func(int)) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.exitFunc = f
}

// ResetExitFunc undoes any prior call to SetExitFunc.
func ResetExitFunc() {
	SetExitFunc(nil)
}

func logDepth(ctx context.Context, depth int, sev Severity, format string, args []interface{}) {
	logging.mu.Lock()
	defer logging.mu.Unlock()

	e := makeEntry(ctx, sev, depth+1, logging.now(), format, args)
	buf := e.format(logging.config.Redactable, logging.colors)
	// Write errors have nowhere else to go.
	_, _ = logging.output.Write(buf)
}
