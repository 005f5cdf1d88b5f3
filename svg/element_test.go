// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg_test

import (
	"testing"

	"github.com/coastalwhite/svg-definitions/attr"
	"github.com/coastalwhite/svg-definitions/pathdata"
	. "github.com/coastalwhite/svg-definitions/svg"
	"github.com/coastalwhite/svg-definitions/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goki.dev/grr"
	"goki.dev/mat32/v2"
)

func triangle() *Element {
	d := pathdata.New().
		MoveTo(mat32.Vec2{X: 0, Y: 0}).
		LineTo(mat32.Vec2{X: 10, Y: 0}).
		LineTo(mat32.Vec2{X: 0, Y: 10}).
		LineTo(mat32.Vec2{X: 0, Y: 0}).
		ClosePath()
	return New(Path).Set(attr.D, value.NewPathDefinition(d))
}

func TestTriangle(t *testing.T) {
	assert.Equal(t, `<path d="M 0.00 0.00 L 10.00 0.00 L 0.00 10.00 L 0.00 0.00 Z"/>`, triangle().String())
}

func TestTags(t *testing.T) {
	assert.Equal(t, "linearGradient", LinearGradient.String())
	tag, err := TagsString("linearGradient")
	require.NoError(t, err)
	assert.Equal(t, LinearGradient, tag)
	tag, err = TagsString("LINEARGRADIENT")
	require.NoError(t, err)
	assert.Equal(t, LinearGradient, tag)
	_, err = TagsString("blink")
	assert.Error(t, err)
	assert.Len(t, TagsValues(), int(TagsN))
	assert.False(t, TagsN.IsValid())

	var tg Tags
	require.NoError(t, tg.UnmarshalText([]byte("feGaussianBlur")))
	assert.Equal(t, FeGaussianBlur, tg)
	b, err := tg.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "feGaussianBlur", string(b))
}

func TestSet(t *testing.T) {
	e := New(Rect).
		Set(attr.Width, value.Px(10)).
		Set(attr.Height, value.Px(5)).
		Set(attr.Width, value.Px(20))
	assert.Equal(t, 2, e.NumAttrs())
	v, ok := e.Attr(attr.Width)
	require.True(t, ok)
	assert.Equal(t, "20.00px", v.String())
	assert.Equal(t, `<rect width="20.00px" height="5.00px"/>`, e.String())

	e.Set(attr.Width, nil)
	_, ok = e.Attr(attr.Width)
	assert.False(t, ok)
	assert.Equal(t, `<rect height="5.00px"/>`, e.String())
	e.Set(attr.Fill, nil)
	assert.Equal(t, 1, e.NumAttrs())

	attrs := e.Attrs()
	require.Len(t, attrs, 1)
	assert.Equal(t, attr.Height, attrs[0].Key)

	_, err := e.SetAny(attr.Opacity, 0.5)
	require.NoError(t, err)
	v, _ = e.Attr(attr.Opacity)
	assert.Equal(t, "0.50", v.String())
	_, err = e.SetAny(attr.Opacity, struct{}{})
	assert.ErrorIs(t, err, value.ErrInvalidValue)
}

func TestSetIdempotent(t *testing.T) {
	a := New(Circle).Set(attr.R, value.Px(3))
	b := New(Circle).Set(attr.R, value.Px(3)).Set(attr.R, value.Px(3))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, Equal(a, b))
}

func TestHashInsertionOrder(t *testing.T) {
	a := New(Rect).Set(attr.X, value.Px(1)).Set(attr.Y, value.Px(2)).Set(attr.Fill, value.NewPaintNone())
	b := New(Rect).Set(attr.Fill, value.NewPaintNone()).Set(attr.Y, value.Px(2)).Set(attr.X, value.Px(1))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, Equal(a, b))
	assert.NotEqual(t, a.String(), b.String())

	c := New(Rect).Set(attr.X, value.Px(1)).Set(attr.Y, value.Px(3)).Set(attr.Fill, value.NewPaintNone())
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.False(t, Equal(a, c))

	assert.NotEqual(t, New(G).Hash(), New(Rect).Hash())
	assert.NotEqual(t, New(G).Append(New(Rect)).Hash(), New(G).Hash())
}

func TestAppend(t *testing.T) {
	root := New(SVG)
	g := New(G)
	r := New(Rect)
	root.Append(g.Append(r))
	assert.Equal(t, 1, root.NumChildren())
	assert.Same(t, g, root.Child(0))
	assert.Same(t, root, g.Parent())
	assert.Same(t, g, r.Parent())
	assert.Nil(t, root.Parent())

	// r already has a parent, so the second root gets a copy
	other := New(SVG).Append(r)
	assert.NotSame(t, r, other.Child(0))
	assert.Same(t, g, r.Parent())
	assert.Same(t, other, other.Child(0).Parent())

	r.Set(attr.Width, value.Px(9))
	_, ok := other.Child(0).Attr(attr.Width)
	assert.False(t, ok)

	// appending an ancestor copies it instead of making a cycle
	r.Append(root)
	require.Equal(t, 1, r.NumChildren())
	assert.NotSame(t, root, r.Child(0))
	n := 0
	root.Walk(func(*Element) bool { n++; return n < 100 })
	assert.Equal(t, 6, n)

	self := New(G)
	self.Append(self, nil)
	require.Equal(t, 1, self.NumChildren())
	assert.NotSame(t, self, self.Child(0))

	twice := New(G)
	child := New(Rect)
	twice.Append(child, child)
	require.Equal(t, 2, twice.NumChildren())
	assert.NotSame(t, twice.Child(0), twice.Child(1))
	assert.True(t, Equal(twice.Child(0), twice.Child(1)))

	kids := twice.Children()
	kids[0] = nil
	assert.NotNil(t, twice.Child(0))
}

func TestClone(t *testing.T) {
	root := New(SVG).Set(attr.ViewBox, value.NewViewBox(0, 0, 10, 10))
	root.Append(New(G).Append(triangle()))
	grr.Test(t, root.Child(0).SetInner("hello"))

	c := root.Clone()
	assert.True(t, Equal(root, c))
	assert.Equal(t, root.Hash(), c.Hash())
	assert.Equal(t, root.String(), c.String())
	assert.Nil(t, c.Parent())
	assert.NotSame(t, root.Child(0), c.Child(0))
	assert.Same(t, c, c.Child(0).Parent())

	c.Child(0).Child(0).Set(attr.Fill, value.NewPaintNone())
	assert.False(t, Equal(root, c))
	assert.NotEqual(t, root.Hash(), c.Hash())
	_, ok := root.Child(0).Child(0).Attr(attr.Fill)
	assert.False(t, ok)
}

func TestSetInner(t *testing.T) {
	e := New(Text)
	require.NoError(t, e.SetInner("  Hello, (world) & [friends]!  "))
	in, ok := e.Inner()
	assert.True(t, ok)
	assert.Equal(t, "Hello, (world) & [friends]!", in)

	err := e.SetInner("1 < 2")
	assert.ErrorIs(t, err, ErrInvalidInnerText)
	in, _ = e.Inner()
	assert.Equal(t, "Hello, (world) & [friends]!", in)

	assert.ErrorIs(t, New(Desc).SetInner("50%"), ErrInvalidInnerText)
	_, ok = New(Desc).Inner()
	assert.False(t, ok)

	// blank text reads the same as no text
	require.NoError(t, e.SetInner(" \n\t "))
	_, ok = e.Inner()
	assert.False(t, ok)
	assert.Equal(t, "<text/>", e.String())
	assert.Equal(t, New(Text).Hash(), e.Hash())
	assert.True(t, Equal(New(Text), e))
}

func TestZeroElement(t *testing.T) {
	var e Element
	assert.Equal(t, A, e.Tag())
	assert.Equal(t, 0, e.NumAttrs())
	_, ok := e.Attr(attr.Href)
	assert.False(t, ok)
	assert.Empty(t, e.Attrs())
	assert.Equal(t, "<a/>", e.String())
	assert.True(t, Equal(New(A), &e))
	assert.Equal(t, New(A).Hash(), e.Hash())
	assert.True(t, Equal(New(A), e.Clone()))

	e.Set(attr.Href, nil)
	e.Set(attr.Href, value.NewText("https://example.com"))
	assert.Equal(t, `<a href="https://example.com"/>`, e.String())
}

func TestFindByID(t *testing.T) {
	grad := New(LinearGradient).Set(attr.ID, grr.Must1(value.NewID("fade")))
	root := New(SVG).Append(
		New(Defs).Append(grad),
		New(Rect).Set(attr.Fill, value.NewPaintURL(grr.Must1(value.NewReference("fade")))),
	)
	found := root.FindByID("fade")
	require.NotNil(t, found)
	assert.Equal(t, LinearGradient, found.Tag())
	assert.Nil(t, root.FindByID("missing"))

	fill, ok := root.Child(1).Attr(attr.Fill)
	require.True(t, ok)
	assert.Same(t, found, root.Resolve(fill.(value.Paint).URL))
}
