// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the SVG color values: rgb, rgba, hsl, hsla
// and hex, each rendering to its CSS functional notation.
package colors

import (
	"errors"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat is returned when a string is not a valid color.
var ErrInvalidFormat = errors.New("colors: invalid color format")

// MaxChannel is the largest value an hsl channel can hold.
// Larger values are clamped to it.
const MaxChannel = 360

// Color is an SVG color value. The set of implementations is closed:
// [RGB], [RGBA], [HSL], [HSLA] and [Hex]. Every Color is a comparable
// value type and also implements [color.Color].
type Color interface {
	color.Color

	// String returns the CSS rendering of the color.
	String() string

	// AppendText appends the CSS rendering of the color to dst.
	AppendText(dst []byte) []byte

	isColor()
}

// Equal returns whether a and b are the same variant with the same channels.
func Equal(a, b Color) bool {
	return a == b
}

// RGB is an opaque rgb(r,g,b) color.
type RGB struct {
	R, G, B uint8
}

// NewRGB returns a new [RGB] color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

func (c RGB) isColor() {}

func (c RGB) AppendText(dst []byte) []byte {
	dst = append(dst, "rgb("...)
	dst = appendChannels(dst, uint16(c.R), uint16(c.G), uint16(c.B))
	return append(dst, ')')
}

func (c RGB) String() string { return string(c.AppendText(nil)) }

// RGBA implements [color.Color].
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

// RGBA is an rgba(r,g,b,a) color with an alpha [Ratio].
type RGBA struct {
	R, G, B uint8
	A       Ratio
}

// NewRGBA returns a new [RGBA] color with alpha a in [0, 1].
func NewRGBA(r, g, b uint8, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: NewRatio(a)}
}

func (c RGBA) isColor() {}

func (c RGBA) AppendText(dst []byte) []byte {
	dst = append(dst, "rgba("...)
	dst = appendChannels(dst, uint16(c.R), uint16(c.G), uint16(c.B))
	dst = append(dst, ',')
	dst = c.A.AppendText(dst)
	return append(dst, ')')
}

func (c RGBA) String() string { return string(c.AppendText(nil)) }

// RGBA implements [color.Color].
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{c.R, c.G, c.B, c.A.Uint8()}.RGBA()
}

// HSL is an opaque hsl(h,s,l) color. The channels are clamped
// to [MaxChannel] by the constructor.
type HSL struct {
	H, S, L uint16
}

// NewHSL returns a new [HSL] color, clamping each channel to [MaxChannel].
func NewHSL(h, s, l uint16) HSL {
	return HSL{H: clamp(h), S: clamp(s), L: clamp(l)}
}

func (c HSL) isColor() {}

func (c HSL) AppendText(dst []byte) []byte {
	dst = append(dst, "hsl("...)
	dst = appendChannels(dst, c.H, c.S, c.L)
	return append(dst, ')')
}

func (c HSL) String() string { return string(c.AppendText(nil)) }

// RGBA implements [color.Color]. Saturation and lightness
// are read as percentages.
func (c HSL) RGBA() (r, g, b, a uint32) {
	cr, cg, cb := hslToRGB(c.H, c.S, c.L)
	return color.RGBA{cr, cg, cb, 0xff}.RGBA()
}

// HSLA is an hsla(h,s,l,a) color.
type HSLA struct {
	H, S, L uint16
	A       Ratio
}

// NewHSLA returns a new [HSLA] color, clamping each channel to [MaxChannel].
func NewHSLA(h, s, l uint16, a float64) HSLA {
	return HSLA{H: clamp(h), S: clamp(s), L: clamp(l), A: NewRatio(a)}
}

func (c HSLA) isColor() {}

func (c HSLA) AppendText(dst []byte) []byte {
	dst = append(dst, "hsla("...)
	dst = appendChannels(dst, c.H, c.S, c.L)
	dst = append(dst, ',')
	dst = c.A.AppendText(dst)
	return append(dst, ')')
}

func (c HSLA) String() string { return string(c.AppendText(nil)) }

// RGBA implements [color.Color].
func (c HSLA) RGBA() (r, g, b, a uint32) {
	cr, cg, cb := hslToRGB(c.H, c.S, c.L)
	return color.NRGBA{cr, cg, cb, c.A.Uint8()}.RGBA()
}

func clamp(v uint16) uint16 {
	return min(v, MaxChannel)
}

func appendChannels(dst []byte, a, b, c uint16) []byte {
	dst = strconv.AppendUint(dst, uint64(a), 10)
	dst = append(dst, ',')
	dst = strconv.AppendUint(dst, uint64(b), 10)
	dst = append(dst, ',')
	return strconv.AppendUint(dst, uint64(c), 10)
}

func hslToRGB(h, s, l uint16) (r, g, b uint8) {
	fs := float64(min(s, 100)) / 100
	fl := float64(min(l, 100)) / 100
	return colorful.Hsl(float64(h%360), fs, fl).Clamped().RGB255()
}
