// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package humanizeutil renders counts for people to read.
package humanizeutil

import "github.com/dustin/go-humanize"

// Count renders n with thousands separators, e.g. 1,234,567.
func Count(n int64) string {
	return humanize.Comma(n)
}

// Rows renders a row count the way result footers show it, e.g. "1 row" or
// "1,024 rows".
func Rows(n int64) string {
	return Count(n) + " row" + Pluralize(n)
}

// Pluralize returns a single character 's' unless n == 1.
func Pluralize(n int64) string {
	if n == 1 {
		return ""
	}
	return "s"
}
