// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/coastalwhite/svg-definitions/attr"
	"github.com/coastalwhite/svg-definitions/value"
	"goki.dev/grr"
	"golang.org/x/net/html/charset"
)

const (
	svgNS   = "http://www.w3.org/2000/svg"
	xlinkNS = "http://www.w3.org/1999/xlink"
	xmlNS   = "http://www.w3.org/XML/1998/namespace"
)

var (
	// ErrTagNotFound is matched by every [TagNotFoundError].
	ErrTagNotFound = errors.New("svg: unknown tag")

	// ErrAttrNotFound is matched by every [AttrNotFoundError].
	ErrAttrNotFound = errors.New("svg: unknown attribute")

	// ErrNoElement is returned when the input has no root element.
	ErrNoElement = errors.New("svg: no element found")
)

// TagNotFoundError reports an element name that is not an SVG tag.
type TagNotFoundError struct {
	Name string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("svg: unknown tag %q", e.Name)
}

func (e *TagNotFoundError) Unwrap() error { return ErrTagNotFound }

// AttrNotFoundError reports an attribute name that is not an SVG attribute.
type AttrNotFoundError struct {
	Name string
}

func (e *AttrNotFoundError) Error() string {
	return fmt.Sprintf("svg: unknown attribute %q", e.Name)
}

func (e *AttrNotFoundError) Unwrap() error { return ErrAttrNotFound }

// Decoder reads element trees from XML.
type Decoder struct {
	// Strict makes the xml tokenizer reject malformed input instead of
	// accepting html-style entities and unclosed elements.
	Strict bool

	// SkipUnknown skips unknown elements, with their content, and
	// unknown attributes, instead of failing.
	SkipUnknown bool

	// Lenient keeps attribute text that does not parse as the kind of
	// its key as [value.Text], and drops inner text with characters
	// outside the allowed set, instead of failing.
	Lenient bool
}

// NewDecoder returns a new decoder with Lenient set.
func NewDecoder() *Decoder {
	return &Decoder{Lenient: true}
}

// frame is an open element and the text read inside it so far.
type frame struct {
	el   *Element
	text strings.Builder
}

// Decode reads the first root element of r and its descendants.
// Content after the root element is ignored.
func (d *Decoder) Decode(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = d.Strict
	if !d.Strict {
		decoder.AutoClose = xml.HTMLAutoClose
		decoder.Entity = xml.HTMLEntity
	}
	decoder.CharsetReader = charset.NewReaderLabel

	var stack []*frame
	skip := 0
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				// unclosed elements in non-strict mode
				for i := len(stack) - 1; i >= 0; i-- {
					if err := d.finish(stack[i]); err != nil {
						return nil, err
					}
				}
				return stack[0].el, nil
			}
			return nil, ErrNoElement
		}
		if err != nil {
			return nil, grr.Errorf("svg: parse: %w", err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			if skip > 0 {
				skip++
				continue
			}
			el, err := d.element(se)
			if errors.Is(err, ErrTagNotFound) && d.SkipUnknown {
				slog.Warn("svg: skipping unknown element", "tag", se.Name.Local)
				skip = 1
				continue
			}
			if err != nil {
				return nil, err
			}
			if len(stack) > 0 {
				stack[len(stack)-1].el.Append(el)
			}
			stack = append(stack, &frame{el: el})
		case xml.EndElement:
			if skip > 0 {
				skip--
				continue
			}
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if err := d.finish(top); err != nil {
				return nil, err
			}
			if len(stack) == 0 {
				return top.el, nil
			}
		case xml.CharData:
			if skip == 0 && len(stack) > 0 {
				stack[len(stack)-1].text.Write(se)
			}
		}
	}
}

// element returns the element for se with its attributes set.
func (d *Decoder) element(se xml.StartElement) (*Element, error) {
	name := se.Name.Local
	if se.Name.Space != "" && se.Name.Space != svgNS {
		name = se.Name.Space + ":" + name
	}
	tag, err := TagsString(name)
	if err != nil {
		return nil, &TagNotFoundError{Name: name}
	}
	el := New(tag)
	for _, a := range se.Attr {
		name := attrName(a.Name)
		key, ok := attr.Lookup(name)
		if !ok {
			if d.SkipUnknown {
				slog.Debug("svg: skipping unknown attribute", "tag", tag, "attr", name)
				continue
			}
			return nil, &AttrNotFoundError{Name: name}
		}
		v, err := value.Parse(key, a.Value)
		if err != nil {
			if !d.Lenient {
				return nil, grr.Errorf("svg: <%s>: %w", tag, err)
			}
			slog.Debug("svg: keeping attribute as text", "tag", tag, "attr", name, "err", err)
			v = value.NewText(a.Value)
		}
		el.Set(key, v)
	}
	return el, nil
}

// attrName returns the prefixed attribute name, such as xlink:href.
func attrName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case xlinkNS:
		return "xlink:" + n.Local
	case xmlNS:
		return "xml:" + n.Local
	}
	return n.Space + ":" + n.Local
}

// finish sets the inner text collected for f, if any.
func (d *Decoder) finish(f *frame) error {
	text := f.text.String()
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if err := f.el.SetInner(text); err != nil {
		if !d.Lenient {
			return grr.Errorf("svg: <%s>: %w", f.el.tag, err)
		}
		slog.Debug("svg: dropping inner text", "tag", f.el.tag, "err", err)
	}
	return nil
}

// Parse reads an element tree from r with a [NewDecoder] decoder.
func Parse(r io.Reader) (*Element, error) {
	return NewDecoder().Decode(r)
}

// ParseString reads an element tree from s.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// OpenFS reads an element tree from the named file in fsys.
func OpenFS(fsys fs.FS, name string) (*Element, error) {
	fp, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Parse(bufio.NewReader(fp))
}

// Open reads an element tree from the named file.
func Open(name string) (*Element, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, grr.Errorf("svg.Open: file is a directory: %v", name)
	}
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Parse(bufio.NewReader(fp))
}
