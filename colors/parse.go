// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	gcolors "goki.dev/colors"
)

// Parse returns the color for the given CSS color string. It accepts
// the forms produced by the String methods of the variants, the CSS
// named colors (as [RGB]) and "transparent" (as [RGBA] with zero alpha).
// Hsl saturation and lightness may carry a % suffix. It returns an
// error wrapping [ErrInvalidFormat] for anything else.
func Parse(s string) (Color, error) {
	str := strings.TrimSpace(s)
	lstr := strings.ToLower(str)
	switch {
	case lstr == "":
		return nil, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	case lstr[0] == '#':
		return NewHex(str)
	case strings.HasPrefix(lstr, "rgba("):
		args, err := funcArgs(lstr, "rgba(", 4)
		if err != nil {
			return nil, err
		}
		r, g, b, err := parseRGB(args)
		if err != nil {
			return nil, err
		}
		a, err := parseAlpha(args[3])
		if err != nil {
			return nil, err
		}
		return RGBA{R: r, G: g, B: b, A: a}, nil
	case strings.HasPrefix(lstr, "rgb("):
		args, err := funcArgs(lstr, "rgb(", 3)
		if err != nil {
			return nil, err
		}
		r, g, b, err := parseRGB(args)
		if err != nil {
			return nil, err
		}
		return RGB{R: r, G: g, B: b}, nil
	case strings.HasPrefix(lstr, "hsla("):
		args, err := funcArgs(lstr, "hsla(", 4)
		if err != nil {
			return nil, err
		}
		h, sat, l, err := parseHSL(args)
		if err != nil {
			return nil, err
		}
		a, err := parseAlpha(args[3])
		if err != nil {
			return nil, err
		}
		return HSLA{H: h, S: sat, L: l, A: a}, nil
	case strings.HasPrefix(lstr, "hsl("):
		args, err := funcArgs(lstr, "hsl(", 3)
		if err != nil {
			return nil, err
		}
		h, sat, l, err := parseHSL(args)
		if err != nil {
			return nil, err
		}
		return HSL{H: h, S: sat, L: l}, nil
	case lstr == "transparent":
		return RGBA{}, nil
	}
	c, err := gcolors.FromName(lstr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

// FromImage converts any [color.Color] to a [Color]. A [Color] is
// returned as is. Other colors become [RGB] when opaque and [RGBA]
// otherwise.
func FromImage(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return RGB{R: n.R, G: n.G, B: n.B}
	}
	return RGBA{R: n.R, G: n.G, B: n.B, A: NewRatio(float64(n.A) / 255)}
}

// funcArgs returns the n comma separated arguments of a functional
// notation such as rgb(1, 2, 3).
func funcArgs(s, prefix string, n int) ([]string, error) {
	if !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("%w: missing ) in %q", ErrInvalidFormat, s)
	}
	args := strings.Split(s[len(prefix):len(s)-1], ",")
	if len(args) != n {
		return nil, fmt.Errorf("%w: %s needs %d arguments, got %d", ErrInvalidFormat, strings.TrimSuffix(prefix, "("), n, len(args))
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, nil
}

func parseRGB(args []string) (r, g, b uint8, err error) {
	var ch [3]uint8
	for i := range ch {
		v, perr := strconv.ParseUint(args[i], 10, 8)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w: channel %q: %w", ErrInvalidFormat, args[i], perr)
		}
		ch[i] = uint8(v)
	}
	return ch[0], ch[1], ch[2], nil
}

func parseHSL(args []string) (h, s, l uint16, err error) {
	var ch [3]uint16
	for i := range ch {
		a := args[i]
		if i > 0 {
			a = strings.TrimSuffix(a, "%")
		}
		v, perr := strconv.ParseUint(a, 10, 16)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w: channel %q: %w", ErrInvalidFormat, args[i], perr)
		}
		ch[i] = clamp(uint16(v))
	}
	return ch[0], ch[1], ch[2], nil
}

func parseAlpha(s string) (Ratio, error) {
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		scale = 100
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: alpha %q: %w", ErrInvalidFormat, s, err)
	}
	return NewRatio(f / scale), nil
}
