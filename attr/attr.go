// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attr provides the enumeration of SVG attribute names.
package attr

import "github.com/coastalwhite/svg-definitions/base/enumtab"

var keys = enumtab.New[Keys]("Keys", keyNames[:])

// String returns the SVG spelling of the key, such as "stroke-width".
func (i Keys) String() string {
	return keys.String(i)
}

// SetString sets the key from its SVG spelling, and returns an
// error if the string is not a known attribute name.
func (i *Keys) SetString(s string) error {
	v, err := keys.Parse(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// IsValid returns whether the value is a valid attribute key.
func (i Keys) IsValid() bool {
	return keys.Valid(i)
}

// MarshalText implements [encoding.TextMarshaler].
func (i Keys) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *Keys) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}

// KeysString returns the key with the given SVG spelling.
func KeysString(s string) (Keys, error) {
	return keys.Parse(s)
}

// Lookup is like [KeysString] but reports a miss with a bool.
func Lookup(s string) (Keys, bool) {
	return keys.Lookup(s)
}

// KeysValues returns all attribute keys in enum order.
func KeysValues() []Keys {
	vs := keys.Values()
	out := make([]Keys, len(vs))
	copy(out, vs)
	return out
}
