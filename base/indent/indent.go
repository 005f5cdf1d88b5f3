// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent returns the whitespace for one nesting level of
// formatted output.
package indent

import "strings"

// Character is the type of indentation character to use.
type Character int32

const (
	// Tab indicates to use tabs for indentation.
	Tab Character = iota

	// Space indicates to use spaces for indentation.
	Space
)

// String returns n tabs or n*width spaces depending on the indent character.
// A non-positive width with [Space] is treated as one.
func String(ich Character, n, width int) string {
	if ich == Tab {
		return strings.Repeat("\t", n)
	}
	return strings.Repeat(" ", n*max(width, 1))
}

// Len returns the length of the indent string for the given indent
// character and level.
func Len(ich Character, n, width int) int {
	if ich == Tab {
		return n
	}
	return n * max(width, 1)
}
