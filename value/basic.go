// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strconv"

	"github.com/coastalwhite/svg-definitions/base/hashx"
	"github.com/coastalwhite/svg-definitions/base/prec"
	"github.com/coastalwhite/svg-definitions/colors"
	"github.com/coastalwhite/svg-definitions/pathdata"
	"github.com/coastalwhite/svg-definitions/units"
)

// ViewBox is the viewBox attribute: min-x, min-y, width and height.
type ViewBox struct {
	X, Y, Width, Height int32
}

// NewViewBox returns a new [ViewBox].
func NewViewBox(x, y, width, height int32) ViewBox {
	return ViewBox{X: x, Y: y, Width: width, Height: height}
}

func (vb ViewBox) isValue()                   {}
func (vb ViewBox) Kind() Kinds                { return KindViewBox }
func (vb ViewBox) String() string             { return string(vb.AppendText(nil)) }
func (vb ViewBox) WriteHash(b *hashx.Builder) { writeText(b, vb) }
func (vb ViewBox) Clone() Value               { return vb }

// AppendText appends "x y width height".
func (vb ViewBox) AppendText(dst []byte) []byte {
	for i, v := range [4]int32{vb.X, vb.Y, vb.Width, vb.Height} {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = strconv.AppendInt(dst, int64(v), 10)
	}
	return dst
}

// Integer is a whole number, rendered in decimal.
type Integer int32

// NewInteger returns a new [Integer].
func NewInteger(v int32) Integer {
	return Integer(v)
}

func (i Integer) isValue()                     {}
func (i Integer) Kind() Kinds                  { return KindInteger }
func (i Integer) String() string               { return strconv.FormatInt(int64(i), 10) }
func (i Integer) AppendText(dst []byte) []byte { return strconv.AppendInt(dst, int64(i), 10) }
func (i Integer) WriteHash(b *hashx.Builder)   { writeText(b, i) }
func (i Integer) Clone() Value                 { return i }

// Float is a number rendered with two decimals.
type Float float64

// NewFloat returns a new [Float].
func NewFloat(v float64) Float {
	return Float(v)
}

func (f Float) isValue()                     {}
func (f Float) Kind() Kinds                  { return KindFloat }
func (f Float) String() string               { return prec.String(float64(f)) }
func (f Float) AppendText(dst []byte) []byte { return prec.Append(dst, float64(f)) }
func (f Float) WriteHash(b *hashx.Builder)   { writeText(b, f) }
func (f Float) Clone() Value                 { return f }

// Percentage is a number rendered with two decimals and a % sign.
type Percentage float64

// NewPercentage returns a new [Percentage].
func NewPercentage(v float64) Percentage {
	return Percentage(v)
}

func (p Percentage) isValue()                   {}
func (p Percentage) Kind() Kinds                { return KindPercentage }
func (p Percentage) String() string             { return string(p.AppendText(nil)) }
func (p Percentage) WriteHash(b *hashx.Builder) { writeText(b, p) }
func (p Percentage) Clone() Value               { return p }

func (p Percentage) AppendText(dst []byte) []byte {
	return append(prec.Append(dst, float64(p)), '%')
}

// Color is a color value.
type Color struct {
	colors.Color
}

// NewColor returns a new [Color].
func NewColor(c colors.Color) Color {
	return Color{Color: c}
}

// NewRGB returns a new [Color] holding [colors.RGB].
func NewRGB(r, g, b uint8) Color {
	return Color{Color: colors.NewRGB(r, g, b)}
}

func (c Color) isValue()                   {}
func (c Color) Kind() Kinds                { return KindColor }
func (c Color) String() string             { return string(c.AppendText(nil)) }
func (c Color) WriteHash(b *hashx.Builder) { writeText(b, c) }
func (c Color) Clone() Value               { return c }

// AppendText appends the CSS rendering of the color. A zero
// Color renders as nothing.
func (c Color) AppendText(dst []byte) []byte {
	if c.Color == nil {
		return dst
	}
	return c.Color.AppendText(dst)
}

// Length is a length with a unit.
type Length struct {
	units.Length
}

// NewLength returns a new [Length].
func NewLength(unit units.Units, v float32) Length {
	return Length{Length: units.New(unit, v)}
}

func (l Length) isValue()                     {}
func (l Length) Kind() Kinds                  { return KindLength }
func (l Length) String() string               { return l.Length.String() }
func (l Length) AppendText(dst []byte) []byte { return l.Length.AppendText(dst) }
func (l Length) WriteHash(b *hashx.Builder)   { writeText(b, l) }
func (l Length) Clone() Value                 { return l }

// Path is path data for the d attribute.
type Path struct {
	pathdata.Data
}

// NewPathDefinition returns a new [Path].
func NewPathDefinition(d pathdata.Data) Path {
	return Path{Data: d}
}

func (p Path) isValue()                     {}
func (p Path) Kind() Kinds                  { return KindPath }
func (p Path) String() string               { return p.Data.String() }
func (p Path) AppendText(dst []byte) []byte { return p.Data.AppendText(dst) }
func (p Path) WriteHash(b *hashx.Builder)   { writeText(b, p) }
func (p Path) Clone() Value                 { return p }

// Keyword is one of the fixed words an attribute accepts,
// such as evenodd or round.
type Keyword string

// NewKeyword returns a new [Keyword].
func NewKeyword(s string) Keyword {
	return Keyword(s)
}

func (k Keyword) isValue()                     {}
func (k Keyword) Kind() Kinds                  { return KindKeyword }
func (k Keyword) String() string               { return string(k) }
func (k Keyword) AppendText(dst []byte) []byte { return append(dst, k...) }
func (k Keyword) WriteHash(b *hashx.Builder)   { writeText(b, k) }
func (k Keyword) Clone() Value                 { return k }

// Text is raw attribute text with no further structure.
type Text string

// NewText returns a new [Text].
func NewText(s string) Text {
	return Text(s)
}

func (t Text) isValue()                     {}
func (t Text) Kind() Kinds                  { return KindText }
func (t Text) String() string               { return string(t) }
func (t Text) AppendText(dst []byte) []byte { return append(dst, t...) }
func (t Text) WriteHash(b *hashx.Builder)   { writeText(b, t) }
func (t Text) Clone() Value                 { return t }

// Numbers is a list of numbers, as used by points and
// stroke-dasharray.
type Numbers struct {
	vs []float64
}

// NewNumbers returns a new [Numbers] holding a copy of vs.
func NewNumbers(vs ...float64) Numbers {
	return Numbers{vs: append([]float64(nil), vs...)}
}

// Values returns a copy of the numbers.
func (n Numbers) Values() []float64 {
	return append([]float64(nil), n.vs...)
}

// Len returns the number of numbers.
func (n Numbers) Len() int {
	return len(n.vs)
}

func (n Numbers) isValue()                   {}
func (n Numbers) Kind() Kinds                { return KindNumbers }
func (n Numbers) String() string             { return string(n.AppendText(nil)) }
func (n Numbers) WriteHash(b *hashx.Builder) { writeText(b, n) }
func (n Numbers) Clone() Value               { return NewNumbers(n.vs...) }

// AppendText appends the numbers separated by spaces.
func (n Numbers) AppendText(dst []byte) []byte {
	for i, v := range n.vs {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = prec.Append(dst, v)
	}
	return dst
}
