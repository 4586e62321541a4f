// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linear

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/redact"
)

// Join renders values with %v, separated by sep and followed by terminator.
func Join[T any](values []T, sep, terminator string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString(terminator)
	return b.String()
}

// FormatValues prints values as a bracketed, space separated list. The
// values themselves are considered unsafe and get redaction markers.
func FormatValues[T any](w redact.SafePrinter, name redact.SafeString, values []T) {
	w.Printf("%s[", name)
	for i, v := range values {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Print(v)
	}
	w.SafeRune(']')
}
