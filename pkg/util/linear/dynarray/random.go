// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"github.com/cockroachdb/linear/pkg/util/linear"
	"github.com/cockroachdb/redact"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// NewRandom returns a full array of size values drawn uniformly from
// [min, max] using rng.
func NewRandom[T constraints.Integer](rng *rand.Rand, size int, min, max T) (*Array[T], error) {
	if min > max {
		return nil, linear.NewInvalidArgumentErrorf(
			"min %d must not exceed max %d", redact.Safe(min), redact.Safe(max))
	}
	a, err := New[T](size)
	if err != nil {
		return nil, err
	}
	span := uint64(max) - uint64(min) + 1
	for i := range a.buf {
		var off uint64
		if span == 0 {
			// The range covers every 64-bit value.
			off = rng.Uint64()
		} else {
			off = rng.Uint64n(span)
		}
		a.buf[i] = min + T(off)
	}
	a.size = size
	return a, nil
}

// FromString returns a full array holding the runes of s.
func FromString(s string) *Array[rune] {
	return FromSlice([]rune(s))
}
