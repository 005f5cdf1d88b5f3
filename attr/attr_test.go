// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysString(t *testing.T) {
	tests := map[string]Keys{
		"stroke-width":   StrokeWidth,
		"viewBox":        ViewBox,
		"viewbox":        ViewBox,
		"d":              D,
		"id":             ID,
		"xlink:href":     XlinkHref,
		"xmlns":          Xmlns,
		"xmlns:xlink":    XmlnsXlink,
		"accent-height":  AccentHeight,
		"zoomAndPan":     ZoomAndPan,
		"STROKE-OPACITY": StrokeOpacity,
	}
	for s, want := range tests {
		got, err := KeysString(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	_, err := KeysString("not-an-attribute")
	assert.Error(t, err)
}

func TestKeysRoundTrip(t *testing.T) {
	vals := KeysValues()
	assert.Len(t, vals, int(KeysN))
	for _, k := range vals {
		assert.True(t, k.IsValid())
		back, ok := Lookup(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, back)
	}
	assert.False(t, KeysN.IsValid())
}

func TestKeysText(t *testing.T) {
	b, err := FillOpacity.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fill-opacity", string(b))

	var k Keys
	require.NoError(t, k.UnmarshalText([]byte("preserveAspectRatio")))
	assert.Equal(t, PreserveAspectRatio, k)
	assert.Error(t, k.SetString("bogus"))
	assert.Equal(t, PreserveAspectRatio, k)
}

func TestKeysValuesIsCopy(t *testing.T) {
	vals := KeysValues()
	vals[0] = KeysN
	assert.Equal(t, AccentHeight, KeysValues()[0])
}
