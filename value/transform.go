// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/coastalwhite/svg-definitions/base/hashx"
	"github.com/coastalwhite/svg-definitions/base/prec"
)

// ErrInvalidTransform is returned when text is not a valid transform list.
var ErrInvalidTransform = errors.New("value: invalid transform")

// TransformFuncs are the functions of a transform list.
type TransformFuncs int32

const (
	TransformMatrix TransformFuncs = iota
	TransformTranslate
	TransformScale
	TransformRotate
	TransformSkewX
	TransformSkewY

	// TransformFuncsN is the number of valid TransformFuncs values.
	TransformFuncsN
)

var transformNames = [...]string{
	TransformMatrix:    "matrix",
	TransformTranslate: "translate",
	TransformScale:     "scale",
	TransformRotate:    "rotate",
	TransformSkewX:     "skewX",
	TransformSkewY:     "skewY",
}

func (f TransformFuncs) String() string {
	if f >= 0 && f < TransformFuncsN {
		return transformNames[f]
	}
	return "TransformFuncs(" + strconv.Itoa(int(f)) + ")"
}

// validArgs returns whether n operands are allowed for f.
func (f TransformFuncs) validArgs(n int) bool {
	switch f {
	case TransformMatrix:
		return n == 6
	case TransformTranslate, TransformScale:
		return n == 1 || n == 2
	case TransformRotate:
		return n == 1 || n == 3
	}
	return n == 1
}

// TransformFunc is one function of a transform list, such as
// translate(10,20). Angles are in degrees.
type TransformFunc struct {
	Func TransformFuncs
	args [6]float64
	n    int
}

func newFunc(f TransformFuncs, args ...float64) TransformFunc {
	tf := TransformFunc{Func: f, n: len(args)}
	copy(tf.args[:], args)
	return tf
}

func Translate(x, y float64) TransformFunc           { return newFunc(TransformTranslate, x, y) }
func Scale(x, y float64) TransformFunc               { return newFunc(TransformScale, x, y) }
func Rotate(deg float64) TransformFunc               { return newFunc(TransformRotate, deg) }
func RotateAround(deg, cx, cy float64) TransformFunc { return newFunc(TransformRotate, deg, cx, cy) }
func SkewX(deg float64) TransformFunc                { return newFunc(TransformSkewX, deg) }
func SkewY(deg float64) TransformFunc                { return newFunc(TransformSkewY, deg) }

// MatrixFunc returns matrix(a,b,c,d,e,f).
func MatrixFunc(a, b, c, d, e, f float64) TransformFunc {
	return newFunc(TransformMatrix, a, b, c, d, e, f)
}

// Args returns a copy of the operands as written.
func (tf TransformFunc) Args() []float64 {
	return append([]float64(nil), tf.args[:tf.n]...)
}

// Matrix returns the affine transform of the function.
func (tf TransformFunc) Matrix() Matrix {
	a := tf.args
	switch tf.Func {
	case TransformMatrix:
		return Matrix{a[0], a[1], a[2], a[3], a[4], a[5]}
	case TransformTranslate:
		return Translate2D(a[0], a[1])
	case TransformScale:
		if tf.n == 1 {
			return Scale2D(a[0], a[0])
		}
		return Scale2D(a[0], a[1])
	case TransformRotate:
		r := Rotate2D(Radians(a[0]))
		if tf.n == 3 {
			return Translate2D(-a[1], -a[2]).Multiply(r).Multiply(Translate2D(a[1], a[2]))
		}
		return r
	case TransformSkewX:
		return Shear2D(math.Tan(Radians(a[0])), 0)
	case TransformSkewY:
		return Shear2D(0, math.Tan(Radians(a[0])))
	}
	return Identity2D()
}

// AppendText appends name(arg,arg...) with two-decimal operands.
func (tf TransformFunc) AppendText(dst []byte) []byte {
	dst = append(dst, tf.Func.String()...)
	dst = append(dst, '(')
	for i := 0; i < tf.n; i++ {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = prec.Append(dst, tf.args[i])
	}
	return append(dst, ')')
}

func (tf TransformFunc) String() string {
	return string(tf.AppendText(nil))
}

// Transform is a transform list, applied right to left to points
// as in SVG.
type Transform struct {
	fns []TransformFunc
}

// NewTransform returns a new [Transform] of the given functions.
func NewTransform(fns ...TransformFunc) Transform {
	return Transform{fns: append([]TransformFunc(nil), fns...)}
}

// Then returns a copy of the list with fns appended.
func (t Transform) Then(fns ...TransformFunc) Transform {
	out := make([]TransformFunc, 0, len(t.fns)+len(fns))
	return Transform{fns: append(append(out, t.fns...), fns...)}
}

// Funcs returns a copy of the functions in order.
func (t Transform) Funcs() []TransformFunc {
	return append([]TransformFunc(nil), t.fns...)
}

// Len returns the number of functions.
func (t Transform) Len() int {
	return len(t.fns)
}

// Matrix returns the combined affine transform of the list.
func (t Transform) Matrix() Matrix {
	m := Identity2D()
	for _, f := range t.fns {
		m = f.Matrix().Multiply(m)
	}
	return m
}

func (t Transform) isValue()                   {}
func (t Transform) Kind() Kinds                { return KindTransform }
func (t Transform) String() string             { return string(t.AppendText(nil)) }
func (t Transform) WriteHash(b *hashx.Builder) { writeText(b, t) }
func (t Transform) Clone() Value               { return NewTransform(t.fns...) }

// AppendText appends the functions separated by spaces.
func (t Transform) AppendText(dst []byte) []byte {
	for i, f := range t.fns {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = f.AppendText(dst)
	}
	return dst
}

// ParseTransform parses a transform list such as
// "translate(10 20), rotate(45)".
func ParseTransform(s string) (Transform, error) {
	var t Transform
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open < 0 || end < open {
			return Transform{}, fmt.Errorf("%w: %q", ErrInvalidTransform, s)
		}
		name := strings.TrimSpace(rest[:open])
		f := TransformFuncs(-1)
		for i, n := range transformNames {
			if n == name {
				f = TransformFuncs(i)
			}
		}
		if f < 0 {
			return Transform{}, fmt.Errorf("%w: unknown function %q", ErrInvalidTransform, name)
		}
		args, err := parseFloats(rest[open+1 : end])
		if err != nil {
			return Transform{}, fmt.Errorf("%w: %s: %w", ErrInvalidTransform, name, err)
		}
		if !f.validArgs(len(args)) {
			return Transform{}, fmt.Errorf("%w: %s takes a different number of operands than %d", ErrInvalidTransform, name, len(args))
		}
		t.fns = append(t.fns, newFunc(f, args...))
		rest = strings.TrimLeft(rest[end+1:], " \t\n\r,")
	}
	return t, nil
}

// parseFloats parses numbers separated by commas or whitespace.
func parseFloats(s string) ([]float64, error) {
	fs := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(fs))
	for _, f := range fs {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}
