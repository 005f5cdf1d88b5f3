// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"github.com/coastalwhite/svg-definitions/attr"
	"github.com/coastalwhite/svg-definitions/pathdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		key  attr.Keys
		in   string
		kind Kinds
		want string
	}{
		{attr.ViewBox, "0 0 100 50", KindViewBox, "0 0 100 50"},
		{attr.ViewBox, "0,0,10,10", KindViewBox, "0 0 10 10"},
		{attr.ID, "main", KindIdentifier, "main"},
		{attr.Href, "#grad", KindReference, "#grad"},
		{attr.XlinkHref, "https://example.com/a.png", KindText, "https://example.com/a.png"},
		{attr.Fill, "none", KindPaint, "none"},
		{attr.Stroke, "url(#g)", KindPaint, "url(#g)"},
		{attr.StopColor, "hsl(120, 50%, 50%)", KindColor, "hsl(120,50,50)"},
		{attr.Color, "currentColor", KindKeyword, "currentColor"},
		{attr.Width, "10", KindLength, "10.00px"},
		{attr.R, " 50% ", KindLength, "50.00%"},
		{attr.StrokeWidth, "1.5em", KindLength, "1.50em"},
		{attr.Opacity, "0.5", KindFloat, "0.50"},
		{attr.FillOpacity, "50%", KindPercentage, "50.00%"},
		{attr.D, "M0 0L10 0", KindPath, "M 0.00 0.00 L 10.00 0.00"},
		{attr.Transform, "rotate(45)", KindTransform, "rotate(45.00)"},
		{attr.Style, "fill:red", KindStyle, "fill:red"},
		{attr.Points, "0,0 10,10", KindNumbers, "0.00 0.00 10.00 10.00"},
		{attr.StrokeDasharray, "none", KindKeyword, "none"},
		{attr.StrokeDasharray, "4 2", KindNumbers, "4.00 2.00"},
		{attr.PreserveAspectRatio, "xMidYMid slice", KindAspectRatio, "xMidYMid slice"},
		{attr.FillRule, "evenodd", KindKeyword, "evenodd"},
		{attr.StrokeLinecap, "round", KindKeyword, "round"},
		{attr.NumOctaves, "3", KindInteger, "3"},
		{attr.Version, "1.1", KindText, "1.1"},
		{attr.Class, "a b", KindText, "a b"},
	}
	for _, test := range tests {
		v, err := Parse(test.key, test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.kind, v.Kind(), test.in)
		assert.Equal(t, test.want, v.String(), test.in)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		key   attr.Keys
		in    string
		cause error
	}{
		{attr.ID, "a@b", ErrInvalidCharacter},
		{attr.Href, "#a@b", ErrInvalidCharacter},
		{attr.Fill, "nocolor", ErrInvalidPaint},
		{attr.D, "M 0 0 Q 1", pathdata.ErrParamMismatch},
		{attr.Transform, "spin(1)", ErrInvalidTransform},
		{attr.PreserveAspectRatio, "center", ErrInvalidAspectRatio},
		{attr.ViewBox, "0 0 10", nil},
		{attr.ViewBox, "0 0 10.5 10", nil},
		{attr.Width, "wide", nil},
		{attr.FillRule, "odd", nil},
		{attr.NumOctaves, "2.5", nil},
		{attr.Opacity, "half", nil},
	}
	for _, test := range tests {
		_, err := Parse(test.key, test.in)
		assert.ErrorIs(t, err, ErrInvalidValue, test.in)
		if test.cause != nil {
			assert.ErrorIs(t, err, test.cause, test.in)
		}
		lv := ParseLenient(test.key, test.in)
		assert.Equal(t, KindText, lv.Kind(), test.in)
		assert.Equal(t, test.in, lv.String())
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindPaint, KindOf(attr.Fill))
	assert.Equal(t, KindLength, KindOf(attr.Cx))
	assert.Equal(t, KindKeyword, KindOf(attr.TextAnchor))
	assert.Equal(t, KindViewBox, KindOf(attr.ViewBox))
	assert.Equal(t, KindText, KindOf(attr.Lang))

	// keys without a parser take Text
	for _, k := range attr.KeysValues() {
		if _, ok := parsers[k]; !ok {
			assert.Equal(t, KindText, KindOf(k), k.String())
		}
	}
}
