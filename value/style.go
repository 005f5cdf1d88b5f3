// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/coastalwhite/svg-definitions/base/hashx"
)

// Declaration is one property: value pair of an inline style.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Style is an inline CSS style: an ordered list of declarations.
// It renders as "prop:value;prop:value".
type Style struct {
	decls []Declaration
}

// NewStyle returns a new [Style] holding a copy of decls.
func NewStyle(decls ...Declaration) Style {
	return Style{decls: append([]Declaration(nil), decls...)}
}

// ParseStyle parses the text of a style attribute.
func ParseStyle(text string) (Style, error) {
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		// the last declaration is only closed by a semicolon
		text += ";"
	}
	cds, err := parser.ParseDeclarations(text)
	if err != nil {
		return Style{}, err
	}
	return fromCSS(cds), nil
}

func fromCSS(cds []*css.Declaration) Style {
	s := Style{decls: make([]Declaration, 0, len(cds))}
	for _, cd := range cds {
		s.decls = append(s.decls, Declaration{
			Property:  strings.TrimSpace(cd.Property),
			Value:     strings.TrimSpace(cd.Value),
			Important: cd.Important,
		})
	}
	return s
}

// Declarations returns a copy of the declarations in order.
func (s Style) Declarations() []Declaration {
	return append([]Declaration(nil), s.decls...)
}

// Get returns the value of the last declaration of prop.
func (s Style) Get(prop string) (string, bool) {
	for i := len(s.decls) - 1; i >= 0; i-- {
		if s.decls[i].Property == prop {
			return s.decls[i].Value, true
		}
	}
	return "", false
}

// With returns a copy of the style with prop set to val. An existing
// declaration of prop is replaced in place; otherwise one is appended.
func (s Style) With(prop, val string) Style {
	out := NewStyle(s.decls...)
	for i := range out.decls {
		if out.decls[i].Property == prop {
			out.decls[i].Value = val
			return out
		}
	}
	out.decls = append(out.decls, Declaration{Property: prop, Value: val})
	return out
}

// Len returns the number of declarations.
func (s Style) Len() int {
	return len(s.decls)
}

func (s Style) isValue()                   {}
func (s Style) Kind() Kinds                { return KindStyle }
func (s Style) String() string             { return string(s.AppendText(nil)) }
func (s Style) WriteHash(b *hashx.Builder) { writeText(b, s) }
func (s Style) Clone() Value               { return NewStyle(s.decls...) }

func (s Style) AppendText(dst []byte) []byte {
	for i, d := range s.decls {
		if i > 0 {
			dst = append(dst, ';')
		}
		dst = append(dst, d.Property...)
		dst = append(dst, ':')
		dst = append(dst, d.Value...)
		if d.Important {
			dst = append(dst, " !important"...)
		}
	}
	return dst
}
