// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"

	"goki.dev/mat32/v2"
)

// Matrix is a 2D affine transform. A point maps to
// (XX*x + XY*y + X0, YX*x + YY*y + Y0), so the fields in order are
// the a..f operands of the SVG matrix() function.
type Matrix struct {
	XX, YX, XY, YY, X0, Y0 float64
}

func Identity2D() Matrix {
	return Matrix{
		1, 0,
		0, 1,
		0, 0,
	}
}

func Translate2D(x, y float64) Matrix {
	return Matrix{
		1, 0,
		0, 1,
		x, y,
	}
}

func Scale2D(x, y float64) Matrix {
	return Matrix{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a rotation by angle radians.
func Rotate2D(angle float64) Matrix {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Matrix{
		c, s,
		-s, c,
		0, 0,
	}
}

func Shear2D(x, y float64) Matrix {
	return Matrix{
		1, y,
		x, 1,
		0, 0,
	}
}

// Multiply returns the transform that applies a and then b.
func (a Matrix) Multiply(b Matrix) Matrix {
	return Matrix{
		a.XX*b.XX + a.YX*b.XY,
		a.XX*b.YX + a.YX*b.YY,
		a.XY*b.XX + a.YY*b.XY,
		a.XY*b.YX + a.YY*b.YY,
		a.X0*b.XX + a.Y0*b.XY + b.X0,
		a.X0*b.YX + a.Y0*b.YY + b.Y0,
	}
}

// TransformPoint applies the transform to p.
func (a Matrix) TransformPoint(p mat32.Vec2) mat32.Vec2 {
	x, y := float64(p.X), float64(p.Y)
	return mat32.Vec2{
		X: float32(a.XX*x + a.XY*y + a.X0),
		Y: float32(a.YX*x + a.YY*y + a.Y0),
	}
}

// TransformVector applies the transform to v, ignoring translation.
func (a Matrix) TransformVector(v mat32.Vec2) mat32.Vec2 {
	x, y := float64(v.X), float64(v.Y)
	return mat32.Vec2{
		X: float32(a.XX*x + a.XY*y),
		Y: float32(a.YX*x + a.YY*y),
	}
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
