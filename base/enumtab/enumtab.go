// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enumtab implements the name lookup tables shared by
// the static string enums of the attribute keys and element tags.
package enumtab

import (
	"fmt"
	"strconv"
	"strings"
)

// Table maps the values of an int32 enum to their names and back.
// Lookups by name try the exact spelling first and the lower-cased
// spelling second.
type Table[T ~int32] struct {
	typ    string
	names  []string
	values []T
	byName map[string]T
}

// New returns a [Table] for the given type name and names,
// where names[i] is the name of value i.
func New[T ~int32](typ string, names []string) *Table[T] {
	t := &Table[T]{typ: typ, names: names, byName: make(map[string]T, 2*len(names))}
	t.values = make([]T, len(names))
	for i, nm := range names {
		t.values[i] = T(i)
		t.byName[nm] = T(i)
	}
	for i, nm := range names {
		lc := strings.ToLower(nm)
		if _, has := t.byName[lc]; !has {
			t.byName[lc] = T(i)
		}
	}
	return t
}

// String returns the name of v, or its integer value if v is out of range.
func (t *Table[T]) String(v T) string {
	if t.Valid(v) {
		return t.names[v]
	}
	return strconv.FormatInt(int64(v), 10)
}

// Lookup returns the value with the given name.
func (t *Table[T]) Lookup(s string) (T, bool) {
	if v, ok := t.byName[s]; ok {
		return v, true
	}
	v, ok := t.byName[strings.ToLower(s)]
	return v, ok
}

// Parse is [Table.Lookup] with an error for unknown names.
func (t *Table[T]) Parse(s string) (T, error) {
	if v, ok := t.Lookup(s); ok {
		return v, nil
	}
	return 0, fmt.Errorf("%s does not belong to %s values", s, t.typ)
}

// Values returns all values in order. The slice is shared and must
// not be modified.
func (t *Table[T]) Values() []T {
	return t.values
}

// Valid returns whether v is in range.
func (t *Table[T]) Valid(v T) bool {
	return v >= 0 && int(v) < len(t.names)
}
