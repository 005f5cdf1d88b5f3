// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coastalwhite/svg-definitions/base/hashx"
)

// ErrInvalidCharacter is matched by every [InvalidCharacterError].
var ErrInvalidCharacter = errors.New("value: invalid character")

// InvalidCharacterError reports the first byte of an identifier
// outside the allowed set.
type InvalidCharacterError struct {
	// Index is the byte offset of the disallowed character.
	Index int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("value: invalid character at index %d", e.Index)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// Identifier is a name restricted to ASCII letters, digits,
// '-', '_' and space.
type Identifier struct {
	s string
}

// NewIdentifier returns the identifier for s, or an
// [*InvalidCharacterError] at the first disallowed byte.
func NewIdentifier(s string) (Identifier, error) {
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return Identifier{}, &InvalidCharacterError{Index: i}
		}
	}
	return Identifier{s: s}, nil
}

// NewID is [NewIdentifier] returning a [Value].
func NewID(s string) (Value, error) {
	id, err := NewIdentifier(s)
	if err != nil {
		return nil, err
	}
	return id, nil
}

func isIdentByte(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c == '-' || c == '_' || c == ' '
}

func (id Identifier) isValue()                     {}
func (id Identifier) Kind() Kinds                  { return KindIdentifier }
func (id Identifier) String() string               { return id.s }
func (id Identifier) AppendText(dst []byte) []byte { return append(dst, id.s...) }
func (id Identifier) WriteHash(b *hashx.Builder)   { writeText(b, id) }
func (id Identifier) Clone() Value                 { return id }

// Reference is a fragment reference to the element with the given
// id. It renders as #id. The relation is by name only.
type Reference struct {
	ID Identifier
}

// NewReference returns a reference to id, or an [*InvalidCharacterError]
// if id is not a valid [Identifier]. A leading '#' is accepted.
func NewReference(id string) (Reference, error) {
	ident, err := NewIdentifier(strings.TrimPrefix(id, "#"))
	if err != nil {
		var ice *InvalidCharacterError
		if errors.As(err, &ice) && strings.HasPrefix(id, "#") {
			ice.Index++
		}
		return Reference{}, err
	}
	return Reference{ID: ident}, nil
}

func (r Reference) isValue()    {}
func (r Reference) Kind() Kinds { return KindReference }

func (r Reference) String() string {
	return string(r.AppendText(nil))
}

func (r Reference) AppendText(dst []byte) []byte {
	return append(append(dst, '#'), r.ID.s...)
}

func (r Reference) WriteHash(b *hashx.Builder) { writeText(b, r) }
func (r Reference) Clone() Value               { return r }
