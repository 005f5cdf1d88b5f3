// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coastalwhite/svg-definitions/base/hashx"
	"github.com/coastalwhite/svg-definitions/colors"
)

// ErrInvalidPaint is returned when text is not a valid paint.
var ErrInvalidPaint = errors.New("value: invalid paint")

// PaintTypes are the forms a [Paint] can take.
type PaintTypes int32

const (
	// PaintNone is the none keyword.
	PaintNone PaintTypes = iota

	// PaintCurrentColor is the currentColor keyword.
	PaintCurrentColor

	// PaintColor is a plain color.
	PaintColor

	// PaintURL references a paint server such as a gradient,
	// with an optional fallback color.
	PaintURL
)

// Paint is the value of fill and stroke.
type Paint struct {
	Type PaintTypes

	// Color is set for PaintColor.
	Color colors.Color

	// URL is set for PaintURL.
	URL Reference

	// Fallback is the optional color used by PaintURL when the
	// reference cannot be resolved.
	Fallback colors.Color
}

func NewPaintNone() Paint                { return Paint{Type: PaintNone} }
func NewPaintCurrentColor() Paint        { return Paint{Type: PaintCurrentColor} }
func NewPaintColor(c colors.Color) Paint { return Paint{Type: PaintColor, Color: c} }
func NewPaintURL(ref Reference) Paint    { return Paint{Type: PaintURL, URL: ref} }

// WithFallback returns a copy of a url paint with the fallback color c.
func (p Paint) WithFallback(c colors.Color) Paint {
	p.Fallback = c
	return p
}

// ParsePaint parses none, currentColor, a color, or url(#id) with an
// optional fallback color.
func ParsePaint(s string) (Paint, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "none":
		return NewPaintNone(), nil
	case "currentColor", "currentcolor":
		return NewPaintCurrentColor(), nil
	}
	if strings.HasPrefix(s, "url(") {
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return Paint{}, fmt.Errorf("%w: unterminated url in %q", ErrInvalidPaint, s)
		}
		inner := strings.Trim(strings.TrimSpace(s[len("url("):end]), `"'`)
		if !strings.HasPrefix(inner, "#") {
			return Paint{}, fmt.Errorf("%w: only fragment urls are supported, got %q", ErrInvalidPaint, inner)
		}
		ref, err := NewReference(inner)
		if err != nil {
			return Paint{}, fmt.Errorf("%w: %w", ErrInvalidPaint, err)
		}
		p := NewPaintURL(ref)
		if rest := strings.TrimSpace(s[end+1:]); rest != "" {
			fb, err := colors.Parse(rest)
			if err != nil {
				return Paint{}, fmt.Errorf("%w: fallback: %w", ErrInvalidPaint, err)
			}
			p.Fallback = fb
		}
		return p, nil
	}
	c, err := colors.Parse(s)
	if err != nil {
		return Paint{}, fmt.Errorf("%w: %w", ErrInvalidPaint, err)
	}
	return NewPaintColor(c), nil
}

func (p Paint) isValue()                   {}
func (p Paint) Kind() Kinds                { return KindPaint }
func (p Paint) String() string             { return string(p.AppendText(nil)) }
func (p Paint) WriteHash(b *hashx.Builder) { writeText(b, p) }
func (p Paint) Clone() Value               { return p }

// AppendText appends none, currentColor, the color, or url(#id)
// followed by the fallback color.
func (p Paint) AppendText(dst []byte) []byte {
	switch p.Type {
	case PaintNone:
		return append(dst, "none"...)
	case PaintCurrentColor:
		return append(dst, "currentColor"...)
	case PaintColor:
		if p.Color == nil {
			return append(dst, "none"...)
		}
		return p.Color.AppendText(dst)
	}
	dst = append(dst, "url("...)
	dst = p.URL.AppendText(dst)
	dst = append(dst, ')')
	if p.Fallback != nil {
		dst = append(dst, ' ')
		dst = p.Fallback.AppendText(dst)
	}
	return dst
}
