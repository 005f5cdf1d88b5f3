// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/coastalwhite/svg-definitions/base/indent"
	"goki.dev/grr"
)

// Encoder writes element trees as XML.
type Encoder struct {
	// Header writes an xml declaration before the root element.
	Header bool

	w      *bufio.Writer
	prefix string
	indent string
	buf    []byte
}

// NewEncoder returns a new encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Indent sets the encoder to start every line with prefix followed by
// one copy of indent per nesting level. With both empty, the output
// has no line breaks.
func (enc *Encoder) Indent(prefix, indent string) {
	enc.prefix = prefix
	enc.indent = indent
}

// IndentWith sets the encoder to indent with one tab or width spaces
// per level.
func (enc *Encoder) IndentWith(ch indent.Character, width int) {
	enc.Indent("", indent.String(ch, 1, width))
}

// Encode writes e and its descendants, and flushes the output.
func (enc *Encoder) Encode(e *Element) error {
	if enc.Header {
		enc.w.WriteString(xml.Header)
	}
	enc.element(e, 0)
	if err := enc.w.Flush(); err != nil {
		return grr.Errorf("svg: encode: %w", err)
	}
	return nil
}

func (enc *Encoder) pretty() bool {
	return enc.prefix != "" || enc.indent != ""
}

func (enc *Encoder) newline(depth int) {
	if !enc.pretty() {
		return
	}
	enc.w.WriteString(enc.prefix)
	enc.w.WriteString(strings.Repeat(enc.indent, depth))
}

// element writes <tag k="v"/> when e has no content, and
// <tag k="v">inner children</tag> otherwise.
func (enc *Encoder) element(e *Element, depth int) {
	enc.newline(depth)
	enc.w.WriteByte('<')
	enc.w.WriteString(e.tag.String())
	for _, kv := range e.Attrs() {
		enc.w.WriteByte(' ')
		enc.w.WriteString(kv.Key.String())
		enc.w.WriteString(`="`)
		enc.buf = kv.Value.AppendText(enc.buf[:0])
		xml.EscapeText(enc.w, enc.buf)
		enc.w.WriteByte('"')
	}
	inner := e.hasInner && e.inner != ""
	if !inner && len(e.children) == 0 {
		enc.w.WriteString("/>")
		enc.endLine()
		return
	}
	enc.w.WriteByte('>')
	if inner {
		xml.EscapeText(enc.w, []byte(e.inner))
	}
	if len(e.children) > 0 {
		enc.endLine()
		for _, c := range e.children {
			enc.element(c, depth+1)
		}
		enc.newline(depth)
	}
	enc.w.WriteString("</")
	enc.w.WriteString(e.tag.String())
	enc.w.WriteByte('>')
	enc.endLine()
}

func (enc *Encoder) endLine() {
	if enc.pretty() {
		enc.w.WriteByte('\n')
	}
}

// String returns the XML of the tree rooted at e, without indentation.
func (e *Element) String() string {
	var sb strings.Builder
	grr.Log(NewEncoder(&sb).Encode(e))
	return sb.String()
}

// WriteXML writes the XML of the tree rooted at e to w, indented by
// two spaces per level if indent is set.
func (e *Element) WriteXML(w io.Writer, indent bool) error {
	enc := NewEncoder(w)
	if indent {
		enc.Indent("", "  ")
	}
	return enc.Encode(e)
}

// SaveXML writes the XML of the tree rooted at e to the named file,
// with an xml declaration and indentation.
func (e *Element) SaveXML(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return grr.Log(err)
	}
	defer fp.Close()
	enc := NewEncoder(fp)
	enc.Header = true
	enc.Indent("", "  ")
	return grr.Log(enc.Encode(e))
}
