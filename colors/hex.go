// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
)

const hexDigits = "0123456789abcdef"

// Hex is an opaque color written in hex notation. It always
// renders in the long lowercase form #rrggbb.
type Hex struct {
	R, G, B uint8
}

// NewHex parses a #rgb or #rrggbb string, in either case.
// The short form expands each digit, so #f80 is #ff8800.
// Any other input fails with [ErrInvalidFormat].
func NewHex(s string) (Hex, error) {
	if len(s) != 4 && len(s) != 7 || s[0] != '#' {
		return Hex{}, fmt.Errorf("%w: hex color %q", ErrInvalidFormat, s)
	}
	var ch [6]byte
	for i := 1; i < len(s); i++ {
		v, ok := hexValue(s[i])
		if !ok {
			return Hex{}, fmt.Errorf("%w: hex color %q", ErrInvalidFormat, s)
		}
		ch[i-1] = v
	}
	if len(s) == 4 {
		return Hex{R: ch[0]<<4 | ch[0], G: ch[1]<<4 | ch[1], B: ch[2]<<4 | ch[2]}, nil
	}
	return Hex{R: ch[0]<<4 | ch[1], G: ch[2]<<4 | ch[3], B: ch[4]<<4 | ch[5]}, nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func (c Hex) isColor() {}

func (c Hex) AppendText(dst []byte) []byte {
	dst = append(dst, '#')
	for _, v := range [3]uint8{c.R, c.G, c.B} {
		dst = append(dst, hexDigits[v>>4], hexDigits[v&0x0f])
	}
	return dst
}

func (c Hex) String() string { return string(c.AppendText(nil)) }

// RGBA implements [color.Color].
func (c Hex) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}
