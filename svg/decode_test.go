// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/coastalwhite/svg-definitions/attr"
	. "github.com/coastalwhite/svg-definitions/svg"
	"github.com/coastalwhite/svg-definitions/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTriangle(t *testing.T) {
	e, err := OpenFS(os.DirFS("testdata"), "triangle.svg")
	require.NoError(t, err)
	assert.Equal(t, SVG, e.Tag())
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="100.00px" height="100.00px">`+
		`<path d="M 0.00 0.00 L 10.00 0.00 L 0.00 10.00 Z" fill="rgb(255,0,0)" stroke="none"/></svg>`, e.String())

	vb, ok := e.Attr(attr.ViewBox)
	require.True(t, ok)
	assert.Equal(t, value.KindViewBox, vb.Kind())
	p := e.Child(0)
	assert.Same(t, e, p.Parent())
	fill, _ := p.Attr(attr.Fill)
	assert.Equal(t, value.KindPaint, fill.Kind())
	_, ok = p.Inner()
	assert.False(t, ok)
}

func TestDecodeGradient(t *testing.T) {
	e, err := Open("testdata/gradient.svg")
	require.NoError(t, err)

	grad := e.FindByID("fade")
	require.NotNil(t, grad)
	assert.Equal(t, LinearGradient, grad.Tag())
	assert.Equal(t, Defs, grad.Parent().Tag())
	require.Equal(t, 2, grad.NumChildren())
	op, _ := grad.Child(1).Attr(attr.StopOpacity)
	assert.Equal(t, value.KindPercentage, op.Kind())
	sc, _ := grad.Child(1).Attr(attr.StopColor)
	assert.Equal(t, "rgb(0,0,255)", sc.String())

	box := e.FindByID("box")
	require.NotNil(t, box)
	fill, _ := box.Attr(attr.Fill)
	require.Equal(t, value.KindPaint, fill.Kind())
	assert.Equal(t, "url(#fade) rgb(0,0,255)", fill.String())
	assert.Same(t, grad, e.Resolve(fill.(value.Paint).URL))

	g := box.Parent()
	tr, _ := g.Attr(attr.Transform)
	assert.Equal(t, "translate(10.00,10.00) rotate(5.00)", tr.String())
	st, _ := g.Attr(attr.Style)
	assert.Equal(t, "opacity:0.9", st.String())

	use := g.Child(1)
	href, ok := use.Attr(attr.XlinkHref)
	require.True(t, ok)
	require.Equal(t, value.KindReference, href.Kind())
	assert.Same(t, box, e.Resolve(href.(value.Reference)))

	text := g.Child(2)
	in, ok := text.Inner()
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", in)
	fs, _ := text.Attr(attr.FontSize)
	assert.Equal(t, "12.00px", fs.String())

	// written output reads back to an equal tree
	var b bytes.Buffer
	require.NoError(t, e.WriteXML(&b, true))
	back, err := Parse(&b)
	require.NoError(t, err)
	assert.True(t, Equal(e, back))
	assert.Equal(t, e.Hash(), back.Hash())
	assert.Equal(t, e.String(), back.String())
}

func TestDecodeUnknown(t *testing.T) {
	f, err := os.Open("testdata/inkscape.svg")
	require.NoError(t, err)
	defer f.Close()
	_, err = Parse(f)
	assert.ErrorIs(t, err, ErrAttrNotFound)
	var ae *AttrNotFoundError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "xmlns:sodipodi", ae.Name)

	_, err = f.Seek(0, 0)
	require.NoError(t, err)
	d := NewDecoder()
	d.SkipUnknown = true
	e, err := d.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 1, e.NumChildren())
	c := e.Child(0)
	assert.Equal(t, Circle, c.Tag())
	r, ok := c.Attr(attr.R)
	require.True(t, ok)
	assert.Equal(t, value.KindText, r.Kind())
	assert.Equal(t, "oops", r.String())
	fr, _ := c.Attr(attr.FillRule)
	assert.Equal(t, value.KindKeyword, fr.Kind())

	_, err = f.Seek(0, 0)
	require.NoError(t, err)
	d.Lenient = false
	_, err = d.Decode(f)
	assert.ErrorIs(t, err, value.ErrInvalidValue)
}

func TestDecodeErrors(t *testing.T) {
	_, err := ParseString("")
	assert.ErrorIs(t, err, ErrNoElement)
	_, err = ParseString("  just text ")
	assert.ErrorIs(t, err, ErrNoElement)

	_, err = ParseString(`<foo/>`)
	assert.ErrorIs(t, err, ErrTagNotFound)
	var te *TagNotFoundError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "foo", te.Name)

	d := NewDecoder()
	d.Lenient = false
	_, err = d.Decode(bytes.NewBufferString(`<svg><text>1 % 2</text></svg>`))
	assert.ErrorIs(t, err, ErrInvalidInnerText)

	d = NewDecoder()
	d.Strict = true
	_, err = d.Decode(bytes.NewBufferString(`<svg><g></svg>`))
	assert.Error(t, err)
}

func TestDecodeTrailing(t *testing.T) {
	e, err := ParseString(`<svg><text>a &amp; b</text></svg><g/>`)
	require.NoError(t, err)
	in, _ := e.Child(0).Inner()
	assert.Equal(t, "a & b", in)
	assert.Equal(t, 1, e.NumChildren())
}

func TestDecodeDropsInvalidInner(t *testing.T) {
	e, err := ParseString(`<svg><style>#a{fill:red}</style><text x="1">50%</text><desc>ok</desc></svg>`)
	require.NoError(t, err)
	require.Equal(t, 3, e.NumChildren())
	for i, tag := range []Tags{Style, Text} {
		c := e.Child(i)
		assert.Equal(t, tag, c.Tag())
		_, ok := c.Inner()
		assert.False(t, ok)
	}
	x, ok := e.Child(1).Attr(attr.X)
	require.True(t, ok)
	assert.Equal(t, "1.00px", x.String())
	in, ok := e.Child(2).Inner()
	require.True(t, ok)
	assert.Equal(t, "ok", in)
	assert.Equal(t, `<svg><style/><text x="1.00px"/><desc>ok</desc></svg>`, e.String())
}
