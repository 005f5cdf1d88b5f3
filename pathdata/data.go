// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathdata builds the text of the SVG path "d" attribute.
//
// A [Data] is an append-only accumulator of drawing commands. Every
// method returns an updated copy, so chains never share state:
//
//	d := pathdata.New().
//		MoveTo(mat32.Vec2{X: 0, Y: 0}).
//		LineTo(mat32.Vec2{X: 10, Y: 0}).
//		LineTo(mat32.Vec2{X: 0, Y: 10}).
//		ClosePath()
//	d.String() // "M 0.00 0.00 L 10.00 0.00 L 0.00 10.00 Z"
//
// Every operand renders with exactly two decimals. No geometric or
// grammatical validation is done on the commands.
package pathdata

import (
	"strings"

	"github.com/coastalwhite/svg-definitions/base/hashx"
	"github.com/coastalwhite/svg-definitions/base/prec"
	"goki.dev/mat32/v2"
)

// Data is path data under construction. The zero value is empty.
type Data struct {
	// s holds the commands, each with a leading space.
	s string
}

// New returns empty path data.
func New() Data {
	return Data{}
}

// add appends a command followed by its operands. Operands are grouped
// into comma separated points, with scalars written before them.
func (d Data) add(cmd Cmds, scalars []float32, pts ...mat32.Vec2) Data {
	b := make([]byte, 0, len(d.s)+4+10*len(scalars)+22*len(pts))
	b = append(b, d.s...)
	b = append(b, ' ', cmd.Letter())
	for _, v := range scalars {
		b = append(b, ' ')
		b = prec.Append(b, float64(v))
	}
	for i, p := range pts {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, ' ')
		b = prec.Append(b, float64(p.X))
		b = append(b, ' ')
		b = prec.Append(b, float64(p.Y))
	}
	d.s = string(b)
	return d
}

// MoveTo moves the pen to the absolute point p.
func (d Data) MoveTo(p mat32.Vec2) Data {
	return d.add(PcM, nil, p)
}

// RMoveTo moves the pen by the offset dp.
func (d Data) RMoveTo(dp mat32.Vec2) Data {
	return d.add(Pcm, nil, dp)
}

// LineTo draws a line to the absolute point p.
func (d Data) LineTo(p mat32.Vec2) Data {
	return d.add(PcL, nil, p)
}

// RLineTo draws a line by the offset dp.
func (d Data) RLineTo(dp mat32.Vec2) Data {
	return d.add(Pcl, nil, dp)
}

// HorizontalLineTo draws a horizontal line to the absolute x.
func (d Data) HorizontalLineTo(x float32) Data {
	return d.add(PcH, []float32{x})
}

// RHorizontalLineTo draws a horizontal line by dx.
func (d Data) RHorizontalLineTo(dx float32) Data {
	return d.add(Pch, []float32{dx})
}

// VerticalLineTo draws a vertical line to the absolute y.
func (d Data) VerticalLineTo(y float32) Data {
	return d.add(PcV, []float32{y})
}

// RVerticalLineTo draws a vertical line by dy.
func (d Data) RVerticalLineTo(dy float32) Data {
	return d.add(Pcv, []float32{dy})
}

// CurveTo draws a cubic Bezier curve to end, using control points c1 and c2.
// It renders as "C c1x c1y, c2x c2y, x y".
func (d Data) CurveTo(end, c1, c2 mat32.Vec2) Data {
	return d.add(PcC, nil, c1, c2, end)
}

// RCurveTo is [Data.CurveTo] with all points relative to the current point.
func (d Data) RCurveTo(end, c1, c2 mat32.Vec2) Data {
	return d.add(Pcc, nil, c1, c2, end)
}

// SmoothCurveTo draws a cubic Bezier curve to end that continues the
// previous curve, using the second control point c2.
func (d Data) SmoothCurveTo(end, c2 mat32.Vec2) Data {
	return d.add(PcS, nil, c2, end)
}

// RSmoothCurveTo is [Data.SmoothCurveTo] with relative points.
func (d Data) RSmoothCurveTo(end, c2 mat32.Vec2) Data {
	return d.add(Pcs, nil, c2, end)
}

// QuadCurveTo draws a quadratic Bezier curve to end with control point c1.
func (d Data) QuadCurveTo(end, c1 mat32.Vec2) Data {
	return d.add(PcQ, nil, c1, end)
}

// RQuadCurveTo is [Data.QuadCurveTo] with relative points.
func (d Data) RQuadCurveTo(end, c1 mat32.Vec2) Data {
	return d.add(Pcq, nil, c1, end)
}

// QuadStringTo draws a smooth quadratic Bezier curve to end,
// reflecting the previous control point.
func (d Data) QuadStringTo(end mat32.Vec2) Data {
	return d.add(PcT, nil, end)
}

// RQuadStringTo is [Data.QuadStringTo] with a relative end point.
func (d Data) RQuadStringTo(end mat32.Vec2) Data {
	return d.add(Pct, nil, end)
}

// ArcTo draws an elliptical arc to end with the given radii, x-axis
// rotation in degrees and flags. It renders as
// "A rx ry rot large sweep x y", with the flags written as 1 or 0.
func (d Data) ArcTo(end, radii mat32.Vec2, rotation float32, largeArc, sweep bool) Data {
	return d.arc(PcA, end, radii, rotation, largeArc, sweep)
}

// RArcTo is [Data.ArcTo] with a relative end point.
func (d Data) RArcTo(end, radii mat32.Vec2, rotation float32, largeArc, sweep bool) Data {
	return d.arc(Pca, end, radii, rotation, largeArc, sweep)
}

func (d Data) arc(cmd Cmds, end, radii mat32.Vec2, rotation float32, largeArc, sweep bool) Data {
	b := make([]byte, 0, len(d.s)+48)
	b = append(b, d.s...)
	b = append(b, ' ', cmd.Letter())
	for _, v := range [3]float32{radii.X, radii.Y, rotation} {
		b = append(b, ' ')
		b = prec.Append(b, float64(v))
	}
	b = append(b, ' ', flag(largeArc), ' ', flag(sweep))
	for _, v := range [2]float32{end.X, end.Y} {
		b = append(b, ' ')
		b = prec.Append(b, float64(v))
	}
	d.s = string(b)
	return d
}

func flag(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// ClosePath closes the current subpath.
func (d Data) ClosePath() Data {
	d.s += " Z"
	return d
}

// String returns the path data with its single leading space trimmed.
func (d Data) String() string {
	return strings.TrimPrefix(d.s, " ")
}

// AppendText appends [Data.String] to dst.
func (d Data) AppendText(dst []byte) []byte {
	return append(dst, d.String()...)
}

// IsStr returns whether the rendering equals s.
func (d Data) IsStr(s string) bool {
	return d.String() == s
}

// Len returns the length of the rendering in bytes.
func (d Data) Len() int {
	return len(d.String())
}

// IsEmpty returns whether no commands have been added.
func (d Data) IsEmpty() bool {
	return d.s == ""
}

// WriteHash writes the rendering to the hash builder.
func (d Data) WriteHash(b *hashx.Builder) {
	b.String(d.String())
}
