// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"testing"

	"github.com/coastalwhite/svg-definitions/base/hashx"
	"github.com/stretchr/testify/assert"
	"goki.dev/mat32/v2"
)

func v2(x, y float32) mat32.Vec2 {
	return mat32.Vec2{X: x, Y: y}
}

func TestCurves(t *testing.T) {
	start := New().MoveTo(v2(5, 5))
	end, c1, c2 := v2(10.1, 10.9), v2(30.5, 15.2), v2(20.7, 5.8)

	tests := []struct {
		d    Data
		want string
	}{
		{start.CurveTo(end, c1, c2), "M 5.00 5.00 C 30.50 15.20, 20.70 5.80, 10.10 10.90 Z"},
		{start.RCurveTo(end, c1, c2), "M 5.00 5.00 c 30.50 15.20, 20.70 5.80, 10.10 10.90 Z"},
		{start.SmoothCurveTo(end, c2), "M 5.00 5.00 S 20.70 5.80, 10.10 10.90 Z"},
		{start.RSmoothCurveTo(end, c2), "M 5.00 5.00 s 20.70 5.80, 10.10 10.90 Z"},
		{start.QuadCurveTo(end, c2), "M 5.00 5.00 Q 20.70 5.80, 10.10 10.90 Z"},
		{start.RQuadCurveTo(end, c2), "M 5.00 5.00 q 20.70 5.80, 10.10 10.90 Z"},
		{start.QuadStringTo(end), "M 5.00 5.00 T 10.10 10.90 Z"},
		{start.RQuadStringTo(end), "M 5.00 5.00 t 10.10 10.90 Z"},
	}
	for _, test := range tests {
		d := test.d.ClosePath()
		assert.True(t, d.IsStr(test.want), d.String())
	}
}

func TestLines(t *testing.T) {
	start := New().MoveTo(v2(5, 5))
	tests := []struct {
		d    Data
		want string
	}{
		{start.LineTo(v2(10, 10)), "M 5.00 5.00 L 10.00 10.00 Z"},
		{start.RLineTo(v2(5, 5)), "M 5.00 5.00 l 5.00 5.00 Z"},
		{start.HorizontalLineTo(10), "M 5.00 5.00 H 10.00 Z"},
		{start.RHorizontalLineTo(5), "M 5.00 5.00 h 5.00 Z"},
		{start.VerticalLineTo(10), "M 5.00 5.00 V 10.00 Z"},
		{start.RVerticalLineTo(5), "M 5.00 5.00 v 5.00 Z"},
		{start.RMoveTo(v2(-1, 2)), "M 5.00 5.00 m -1.00 2.00 Z"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.d.ClosePath().String())
	}
}

func TestArc(t *testing.T) {
	d := New().MoveTo(v2(5, 5)).ArcTo(v2(10, 10), v2(4.5, 8), 3.14, true, false).ClosePath()
	assert.Equal(t, "M 5.00 5.00 A 4.50 8.00 3.14 1 0 10.00 10.00 Z", d.String())

	d = New().MoveTo(v2(5, 5)).RArcTo(v2(10, 10), v2(4.5, 8), 3.14, false, true).ClosePath()
	assert.Equal(t, "M 5.00 5.00 a 4.50 8.00 3.14 0 1 10.00 10.00 Z", d.String())
}

func TestTriangle(t *testing.T) {
	d := New().MoveTo(v2(0, 0)).LineTo(v2(10, 0)).LineTo(v2(0, 10)).LineTo(v2(0, 0)).ClosePath()
	assert.Equal(t, "M 0.00 0.00 L 10.00 0.00 L 0.00 10.00 L 0.00 0.00 Z", d.String())
}

func TestNoAliasing(t *testing.T) {
	base := New().MoveTo(v2(1, 1))
	a := base.LineTo(v2(2, 2))
	b := base.LineTo(v2(3, 3))
	assert.Equal(t, "M 1.00 1.00", base.String())
	assert.Equal(t, "M 1.00 1.00 L 2.00 2.00", a.String())
	assert.Equal(t, "M 1.00 1.00 L 3.00 3.00", b.String())
}

func TestEmpty(t *testing.T) {
	var d Data
	assert.True(t, d.IsEmpty())
	assert.Equal(t, "", d.String())
	assert.Equal(t, 0, d.Len())
	d = d.ClosePath()
	assert.False(t, d.IsEmpty())
	assert.Equal(t, "Z", d.String())
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, "<Z", string(d.AppendText([]byte("<"))))
}

func TestNegativeZero(t *testing.T) {
	d := New().MoveTo(v2(-0.001, 0.004))
	assert.Equal(t, "M 0.00 0.00", d.String())
}

func TestHash(t *testing.T) {
	h := func(d Data) uint64 {
		b := hashx.New()
		d.WriteHash(b)
		return b.Sum64()
	}
	a := New().MoveTo(v2(1.001, 2))
	b := New().MoveTo(v2(1.002, 2))
	assert.Equal(t, h(a), h(b))
	assert.NotEqual(t, h(a), h(a.ClosePath()))
}

func TestCmds(t *testing.T) {
	for _, r := range cmdRunes {
		c := DecodeCmd(r)
		assert.NotEqual(t, PcErr, c)
		assert.Equal(t, byte(r), c.Letter())
		assert.Equal(t, r >= 'a', c.IsRelative(), string(r))
	}
	assert.Equal(t, PcErr, DecodeCmd('x'))
	assert.Equal(t, byte('?'), PcErr.Letter())
	assert.Equal(t, 7, PcA.NumArgs())
	assert.Equal(t, 0, Pcz.NumArgs())
	assert.Equal(t, "C", PcC.String())
}
