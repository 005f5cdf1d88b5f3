// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prec provides the fixed-precision number formatting
// used for all canonical SVG attribute text.
package prec

import (
	"math"
	"strconv"
)

// Append appends f with exactly two decimal digits to dst.
// A result that would read "-0.00" is written as "0.00", so that
// values which differ only past the second decimal render identically.
// NaN and infinities are written as zero.
func Append(dst []byte, f float64) []byte {
	return appendFixed(dst, f, 2)
}

// String returns f with exactly two decimal digits; see [Append].
func String(f float64) string {
	var buf [24]byte
	return string(Append(buf[:0], f))
}

// Append4 appends f with exactly four decimal digits to dst,
// normalizing negative zero like [Append].
func Append4(dst []byte, f float64) []byte {
	return appendFixed(dst, f, 4)
}

// String4 returns f with exactly four decimal digits; see [Append4].
func String4(f float64) string {
	var buf [24]byte
	return string(Append4(buf[:0], f))
}

// Round returns the float whose two-decimal rendering equals [String] of f.
func Round(f float64) float64 {
	r, _ := strconv.ParseFloat(String(f), 64)
	return r
}

func appendFixed(dst []byte, f float64, digits int) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'f', digits, 64)
	if dst[start] == '-' && isZero(dst[start+1:]) {
		copy(dst[start:], dst[start+1:])
		dst = dst[:len(dst)-1]
	}
	return dst
}

// isZero returns whether b is a formatted zero such as "0.00".
func isZero(b []byte) bool {
	for _, c := range b {
		if c != '0' && c != '.' {
			return false
		}
	}
	return true
}
