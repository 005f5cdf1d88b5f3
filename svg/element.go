// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/coastalwhite/svg-definitions/attr"
	"github.com/coastalwhite/svg-definitions/base/hashx"
	"github.com/coastalwhite/svg-definitions/value"
	"goki.dev/ordmap"
)

// ErrInvalidInnerText is returned by [Element.SetInner] for text with
// characters outside the allowed set.
var ErrInvalidInnerText = errors.New("svg: invalid inner text")

// Attr is one attribute of an [Element].
type Attr struct {
	Key   attr.Keys
	Value value.Value
}

// Element is a node of an SVG document tree. The zero value is an
// empty element with tag [A]. Elements form a strict tree: every element has at most one parent and a tree never shares
// subtrees. Methods that change an element mutate it in place and
// return it for chaining.
type Element struct {
	tag      Tags
	attrs    *ordmap.Map[attr.Keys, value.Value]
	children []*Element
	inner    string
	hasInner bool
	parent   *Element
}

// New returns a new element with no attributes, children or inner text.
func New(tag Tags) *Element {
	return &Element{tag: tag, attrs: ordmap.New[attr.Keys, value.Value]()}
}

// Set sets the attribute key to v, replacing any previous value. A
// replaced attribute keeps its original position. A nil v removes
// the attribute.
func (e *Element) Set(key attr.Keys, v value.Value) *Element {
	if v == nil {
		if e.attrs == nil {
			return e
		}
		if _, has := e.attrs.IdxByKeyTry(key); has {
			e.attrs.DeleteKey(key)
		}
		return e
	}
	if e.attrs == nil {
		e.attrs = ordmap.New[attr.Keys, value.Value]()
	}
	e.attrs.Add(key, v)
	return e
}

// SetAny is [Element.Set] with the value converted by [value.From].
func (e *Element) SetAny(key attr.Keys, v any) (*Element, error) {
	val, err := value.From(v)
	if err != nil {
		return e, fmt.Errorf("svg: set %s: %w", key, err)
	}
	return e.Set(key, val), nil
}

// Append adds children to the end of the child list, in order. A child
// that already has a parent, or that is e or one of its ancestors, is
// deep-cloned first, so the tree never shares subtrees. Nil children
// are ignored.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil || e.isSelfOrAncestor(c) {
			c = c.Clone()
		}
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

func (e *Element) isSelfOrAncestor(c *Element) bool {
	for p := e; p != nil; p = p.parent {
		if p == c {
			return true
		}
	}
	return false
}

// SetInner sets the inner text, trimmed of surrounding whitespace. Text
// is limited to ASCII letters, digits, whitespace and the punctuation
// '"-_/\.!?:;(){}[]`~&, and anything else fails with
// [ErrInvalidInnerText], leaving the element unchanged. Text that is
// empty after trimming clears the inner text.
func (e *Element) SetInner(text string) error {
	for i := 0; i < len(text); i++ {
		if !isInnerByte(text[i]) {
			return fmt.Errorf("%w: %q at index %d", ErrInvalidInnerText, text[i], i)
		}
	}
	e.inner = strings.TrimSpace(text)
	e.hasInner = e.inner != ""
	return nil
}

func isInnerByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("'\" \t\n\r-_/\\.!?:;(){}[]`~&,", c) >= 0
}

// Tag returns the tag of the element.
func (e *Element) Tag() Tags {
	return e.tag
}

// Attr returns the value of the attribute key.
func (e *Element) Attr(key attr.Keys) (value.Value, bool) {
	if e.attrs == nil {
		return nil, false
	}
	idx, has := e.attrs.IdxByKeyTry(key)
	if !has {
		return nil, false
	}
	return e.attrs.ValByIdx(idx), true
}

// Attrs returns a copy of the attributes in the order they were first set.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, e.NumAttrs())
	for i := range out {
		kv := e.attrs.Order[i]
		out[i] = Attr{Key: kv.Key, Value: kv.Val}
	}
	return out
}

// NumAttrs returns the number of attributes.
func (e *Element) NumAttrs() int {
	if e.attrs == nil {
		return 0
	}
	return e.attrs.Len()
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// Child returns the child at index i.
func (e *Element) Child(i int) *Element {
	return e.children[i]
}

// Inner returns the inner text and whether it is set.
func (e *Element) Inner() (string, bool) {
	return e.inner, e.hasInner
}

// Parent returns the parent of the element, or nil for a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Clone returns a deep copy of the element and all its descendants.
// The copy has no parent.
func (e *Element) Clone() *Element {
	c := New(e.tag)
	for _, a := range e.Attrs() {
		c.attrs.Add(a.Key, a.Value.Clone())
	}
	c.inner, c.hasInner = e.inner, e.hasInner
	c.children = make([]*Element, len(e.children))
	for i, ch := range e.children {
		cc := ch.Clone()
		cc.parent = c
		c.children[i] = cc
	}
	return c
}

// Hash returns the structural hash of the tree rooted at e. It does
// not depend on the order in which attributes were set.
func (e *Element) Hash() uint64 {
	b := hashx.New()
	e.WriteHash(b)
	return b.Sum64()
}

// WriteHash writes the tag, the attributes sorted by key, the inner
// text and the child hashes in order.
func (e *Element) WriteHash(b *hashx.Builder) {
	b.U32(uint32(e.tag))
	idx := make([]int, e.NumAttrs())
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(x, y int) int {
		return int(e.attrs.Order[x].Key) - int(e.attrs.Order[y].Key)
	})
	b.Uvarint(uint64(len(idx)))
	for _, i := range idx {
		kv := e.attrs.Order[i]
		b.U32(uint32(kv.Key))
		kv.Val.WriteHash(b)
	}
	if e.hasInner {
		b.U8(1)
		b.String(e.inner)
	} else {
		b.U8(0)
	}
	b.Uvarint(uint64(len(e.children)))
	for _, c := range e.children {
		b.U64(c.Hash())
	}
}

// Equal returns whether a and b are structurally equal: same tag,
// same attribute renderings regardless of order, same inner text and
// equal children in order.
func Equal(a, b *Element) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.tag != b.tag || a.NumAttrs() != b.NumAttrs() ||
		a.hasInner != b.hasInner || a.inner != b.inner ||
		len(a.children) != len(b.children) {
		return false
	}
	for _, kv := range a.Attrs() {
		bv, ok := b.Attr(kv.Key)
		if !ok || !value.Equal(kv.Value, bv) {
			return false
		}
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// Walk calls fn on e and its descendants in depth-first pre-order.
// Returning false from fn skips the children of that element.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// FindByID returns the first element in the tree whose id attribute
// renders as id, or nil.
func (e *Element) FindByID(id string) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if found != nil {
			return false
		}
		if v, ok := el.Attr(attr.ID); ok && v.String() == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// Resolve returns the element a [value.Reference] names, looked up by
// id in the tree rooted at e.
func (e *Element) Resolve(ref value.Reference) *Element {
	return e.FindByID(ref.ID.String())
}
