// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package svg provides an in-memory SVG document tree.

An [Element] has a tag, typed attribute values from package value, ordered
children and optional inner text. Trees are built with chained calls that
mutate the receiver and return it:

	tri := svg.New(svg.Path).Set(attr.D, value.NewPathDefinition(
		pathdata.New().
			MoveTo(mat32.Vec2{}).
			LineTo(mat32.Vec2{X: 10}).
			LineTo(mat32.Vec2{Y: 10}).
			LineTo(mat32.Vec2{}).
			ClosePath()))
	tri.String() // <path d="M 0.00 0.00 L 10.00 0.00 L 0.00 10.00 L 0.00 0.00 Z"/>

Trees are written as XML with an [Encoder] and read back with a [Decoder].
*/
package svg

import "github.com/coastalwhite/svg-definitions/base/enumtab"

var tags = enumtab.New[Tags]("Tags", tagNames[:])

// String returns the SVG spelling of the tag, such as "linearGradient".
func (i Tags) String() string {
	return tags.String(i)
}

// SetString sets the tag from its SVG spelling, and returns an
// error if the string is not a known element name.
func (i *Tags) SetString(s string) error {
	v, err := tags.Parse(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// IsValid returns whether the value is a valid tag.
func (i Tags) IsValid() bool {
	return tags.Valid(i)
}

// MarshalText implements [encoding.TextMarshaler].
func (i Tags) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *Tags) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}

// TagsString returns the tag with the given SVG spelling.
// Matching is exact first and case-insensitive second.
func TagsString(s string) (Tags, error) {
	return tags.Parse(s)
}

// TagsValues returns all tags in enum order.
func TagsValues() []Tags {
	vs := tags.Values()
	out := make([]Tags, len(vs))
	copy(out, vs)
	return out
}
