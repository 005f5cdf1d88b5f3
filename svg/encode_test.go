// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg_test

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/coastalwhite/svg-definitions/attr"
	"github.com/coastalwhite/svg-definitions/base/indent"
	. "github.com/coastalwhite/svg-definitions/svg"
	"github.com/coastalwhite/svg-definitions/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goki.dev/grr"
)

func nested() *Element {
	txt := New(Text)
	grr.Must(txt.SetInner("a & b"))
	return New(SVG).Append(New(G).Append(New(Rect)), txt)
}

func TestEncodeEscape(t *testing.T) {
	e := New(Desc).Set(attr.Class, value.NewText(`say "hi" & <bye>`))
	assert.Equal(t, `<desc class="say &#34;hi&#34; &amp; &lt;bye&gt;"/>`, e.String())
	assert.Equal(t, `<svg><g><rect/></g><text>a &amp; b</text></svg>`, nested().String())
}

func TestEncodeIndent(t *testing.T) {
	want := "<svg>\n  <g>\n    <rect/>\n  </g>\n  <text>a &amp; b</text>\n</svg>\n"

	var b bytes.Buffer
	require.NoError(t, nested().WriteXML(&b, true))
	assert.Equal(t, want, b.String())

	b.Reset()
	enc := NewEncoder(&b)
	enc.IndentWith(indent.Space, 2)
	require.NoError(t, enc.Encode(nested()))
	assert.Equal(t, want, b.String())

	b.Reset()
	enc = NewEncoder(&b)
	enc.IndentWith(indent.Tab, 0)
	require.NoError(t, enc.Encode(nested()))
	assert.Equal(t, "<svg>\n\t<g>\n\t\t<rect/>\n\t</g>\n\t<text>a &amp; b</text>\n</svg>\n", b.String())

	b.Reset()
	require.NoError(t, nested().WriteXML(&b, false))
	assert.Equal(t, nested().String(), b.String())
}

func TestEncodeHeader(t *testing.T) {
	var b bytes.Buffer
	enc := NewEncoder(&b)
	enc.Header = true
	require.NoError(t, enc.Encode(New(SVG)))
	assert.Equal(t, xml.Header+"<svg/>", b.String())
}

func TestSaveXML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "nested.svg")
	require.NoError(t, nested().SaveXML(fn))
	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte(xml.Header)))

	back, err := Open(fn)
	require.NoError(t, err)
	assert.True(t, Equal(nested(), back))

	_, err = Open(t.TempDir())
	assert.Error(t, err)
}
