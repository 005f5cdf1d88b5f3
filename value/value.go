// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package value provides the typed SVG attribute values.

A [Value] is one of a closed set of kinds (view boxes, identifiers, colors,
lengths, numbers, paints, path data, styles, transforms and so on). Every
kind renders to a canonical text and hashes that text, so two values with
the same rendering always have the same [Hash], even across kinds:

	value.Px(3).String()              // "3.00px"
	value.NewFloat(1.004).String()    // "1.00"
	value.Hash(value.NewFloat(1.004)) == value.Hash(value.NewFloat(1.001))

Values are immutable once constructed.
*/
package value

import (
	"github.com/coastalwhite/svg-definitions/base/hashx"
)

// Value is an SVG attribute value. The set of implementations is
// closed; see [Kinds] for the list.
type Value interface {
	// String returns the canonical rendering of the value.
	String() string

	// AppendText appends the canonical rendering to dst.
	AppendText(dst []byte) []byte

	// WriteHash writes the value to the hash builder.
	// It is consistent with the rendering.
	WriteHash(b *hashx.Builder)

	// Clone returns an independent deep copy.
	Clone() Value

	// Kind returns the kind of the value.
	Kind() Kinds

	isValue()
}

// Kinds are the kinds of [Value].
type Kinds int32

const (
	KindViewBox Kinds = iota
	KindIdentifier
	KindReference
	KindColor
	KindLength
	KindInteger
	KindFloat
	KindPercentage
	KindPaint
	KindPath
	KindStyle
	KindKeyword
	KindAspectRatio
	KindTransform
	KindNumbers
	KindText

	// KindsN is the number of valid Kinds values.
	KindsN
)

var kindNames = [...]string{
	KindViewBox:     "ViewBox",
	KindIdentifier:  "Identifier",
	KindReference:   "Reference",
	KindColor:       "Color",
	KindLength:      "Length",
	KindInteger:     "Integer",
	KindFloat:       "Float",
	KindPercentage:  "Percentage",
	KindPaint:       "Paint",
	KindPath:        "Path",
	KindStyle:       "Style",
	KindKeyword:     "Keyword",
	KindAspectRatio: "AspectRatio",
	KindTransform:   "Transform",
	KindNumbers:     "Numbers",
	KindText:        "Text",
}

func (k Kinds) String() string {
	if k >= 0 && k < KindsN {
		return kindNames[k]
	}
	return "Kinds(?)"
}

// writeText hashes the canonical rendering of v.
func writeText(b *hashx.Builder, v Value) {
	b.Scratch = v.AppendText(b.Scratch[:0])
	b.Bytes(b.Scratch)
}

// Hash returns the structural hash of v. Values with equal renderings
// have equal hashes. A nil value hashes like an empty rendering.
func Hash(v Value) uint64 {
	b := hashx.New()
	if v == nil {
		b.Bytes(nil)
	} else {
		v.WriteHash(b)
	}
	return b.Sum64()
}

// Equal returns whether a and b render identically. Two nil values
// are equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}
