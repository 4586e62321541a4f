// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// entry is a single log event before it is rendered.
type entry struct {
	sev  Severity
	time time.Time
	file string
	line int
	tags redact.RedactableString
	msg  redact.RedactableString
}

func makeEntry(
	ctx context.Context, sev Severity, depth int, now time.Time, format string, args []interface{},
) entry {
	e := entry{sev: sev, time: now, file: "???", line: 1}
	if _, file, line, ok := runtime.Caller(depth + 1); ok {
		e.file, e.line = filepath.Base(file), line
	}
	var tb redact.StringBuilder
	formatTags(ctx, false /* brackets */, &tb)
	e.tags = tb.RedactableString()
	if len(args) == 0 {
		// A bare message is taken verbatim, including any '%'.
		e.msg = redact.Sprint(redact.SafeString(format))
	} else {
		e.msg = redact.Sprintf(format, args...)
	}
	return e
}

// timeFormat renders the header timestamp as yymmdd hh:mm:ss.uuuuuu.
const timeFormat = "060102 15:04:05.000000"

// format renders the entry as one line terminated by a newline. Redaction
// markers are kept only when redactable is set.
func (e entry) format(redactable bool, cp *colorProfile) []byte {
	var buf bytes.Buffer
	if cp != nil {
		buf.Write(cp.prefix(e.sev))
	}
	buf.WriteByte(e.sev.char())
	if cp != nil {
		buf.Write(colorReset)
		buf.Write(cp.timePrefix)
	}
	buf.WriteString(e.time.Format(timeFormat))
	if cp != nil {
		buf.Write(colorReset)
	}
	buf.WriteByte(' ')
	buf.WriteString(e.file)
	buf.WriteByte(':')
	buf.WriteString(strconv.Itoa(e.line))
	buf.WriteString("  ")

	render := func(s redact.RedactableString) string {
		if redactable {
			return string(s)
		}
		return s.StripMarkers()
	}
	if e.tags != "" {
		buf.WriteByte('[')
		buf.WriteString(render(e.tags))
		buf.WriteString("] ")
	}
	buf.WriteString(render(e.msg))
	if b := buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// FormatWithContextTags formats the string and prepends the context
// tags.
//
// Redaction markers are *not* inserted. The resulting
// string is generally unsafe for reporting.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	var tb redact.StringBuilder
	formatTags(ctx, true /* brackets */, &tb)
	if tb.RedactableString() != "" {
		tb.SafeRune(' ')
	}
	tb.Printf(format, args...)
	return tb.RedactableString().StripMarkers()
}

// formatTags appends the tags in ctx to w. Single-letter keys are glued to
// their value ("n1"), longer keys use key=value, and tags without a value
// print the key alone. Values are considered unsafe.
func formatTags(ctx context.Context, brackets bool, w *redact.StringBuilder) {
	tags := logtags.FromContext(ctx)
	if tags == nil || len(tags.Get()) == 0 {
		return
	}
	if brackets {
		w.SafeRune('[')
	}
	for i, t := range tags.Get() {
		if i > 0 {
			w.SafeRune(',')
		}
		w.SafeString(redact.SafeString(t.Key()))
		v := t.Value()
		if v == nil {
			continue
		}
		if len(t.Key()) > 1 {
			w.SafeRune('=')
		}
		w.Print(v)
	}
	if brackets {
		w.SafeRune(']')
	}
}
