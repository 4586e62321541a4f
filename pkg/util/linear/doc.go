// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package linear holds the pieces shared by the linear containers in its
// subpackages: the error kinds they report, the Cursor used by the
// array-backed containers, and the dominance comparison used by their
// relational operations.
//
// None of the containers is safe for concurrent use.
package linear
