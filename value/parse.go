// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/coastalwhite/svg-definitions/attr"
	"github.com/coastalwhite/svg-definitions/colors"
	"github.com/coastalwhite/svg-definitions/pathdata"
	"github.com/coastalwhite/svg-definitions/units"
)

// ErrInvalidValue is returned when attribute text does not parse as
// the kind its key takes.
var ErrInvalidValue = errors.New("value: invalid attribute value")

type parseFunc func(s string) (Value, error)

// parsers maps keys to the kind of value they take. Keys not listed
// take [Text].
var parsers = map[attr.Keys]parseFunc{
	attr.ViewBox:             parseViewBox,
	attr.ID:                  parseID,
	attr.Href:                parseHref,
	attr.XlinkHref:           parseHref,
	attr.Fill:                parsePaint,
	attr.Stroke:              parsePaint,
	attr.Color:               parseColor,
	attr.StopColor:           parseColor,
	attr.FloodColor:          parseColor,
	attr.LightingColor:       parseColor,
	attr.D:                   parsePath,
	attr.Transform:           parseTransform,
	attr.GradientTransform:   parseTransform,
	attr.PatternTransform:    parseTransform,
	attr.Style:               parseStyle,
	attr.Points:              parseNumbers,
	attr.StrokeDasharray:     parseDasharray,
	attr.PreserveAspectRatio: parseAspectRatio,
	attr.Opacity:             parseOpacity,
	attr.FillOpacity:         parseOpacity,
	attr.StrokeOpacity:       parseOpacity,
	attr.StopOpacity:         parseOpacity,
	attr.FloodOpacity:        parseOpacity,
	attr.StrokeMiterlimit:    parseFloat,
	attr.PathLength:          parseFloat,
	attr.NumOctaves:          parseInteger,
	attr.TabIndex:            parseInteger,
}

var lengthKeys = []attr.Keys{
	attr.X, attr.Y, attr.Width, attr.Height, attr.Cx, attr.Cy, attr.R,
	attr.Rx, attr.Ry, attr.X1, attr.Y1, attr.X2, attr.Y2, attr.Dx, attr.Dy,
	attr.Fx, attr.Fy, attr.Fr, attr.StrokeWidth, attr.StrokeDashoffset,
	attr.FontSize, attr.RefX, attr.RefY, attr.MarkerWidth, attr.MarkerHeight,
	attr.TextLength, attr.StartOffset, attr.LetterSpacing, attr.WordSpacing,
}

// keywords are the allowed words of keyword attributes.
var keywords = map[attr.Keys][]string{
	attr.FillRule:            {"nonzero", "evenodd", "inherit"},
	attr.ClipRule:            {"nonzero", "evenodd", "inherit"},
	attr.StrokeLinecap:       {"butt", "round", "square", "inherit"},
	attr.StrokeLinejoin:      {"miter", "miter-clip", "round", "bevel", "arcs", "inherit"},
	attr.Visibility:          {"visible", "hidden", "collapse", "inherit"},
	attr.TextAnchor:          {"start", "middle", "end", "inherit"},
	attr.SpreadMethod:        {"pad", "reflect", "repeat"},
	attr.GradientUnits:       {"userSpaceOnUse", "objectBoundingBox"},
	attr.PatternUnits:        {"userSpaceOnUse", "objectBoundingBox"},
	attr.PatternContentUnits: {"userSpaceOnUse", "objectBoundingBox"},
	attr.ClipPathUnits:       {"userSpaceOnUse", "objectBoundingBox"},
	attr.MaskUnits:           {"userSpaceOnUse", "objectBoundingBox"},
	attr.MaskContentUnits:    {"userSpaceOnUse", "objectBoundingBox"},
	attr.FilterUnits:         {"userSpaceOnUse", "objectBoundingBox"},
	attr.PrimitiveUnits:      {"userSpaceOnUse", "objectBoundingBox"},
	attr.MarkerUnits:         {"strokeWidth", "userSpaceOnUse"},
	attr.Overflow:            {"visible", "hidden", "scroll", "auto", "inherit"},
	attr.VectorEffect:        {"none", "non-scaling-stroke", "non-scaling-size", "non-rotation", "fixed-position"},
	attr.FontStyle:           {"normal", "italic", "oblique", "inherit"},
	attr.LengthAdjust:        {"spacing", "spacingAndGlyphs"},
	attr.EdgeMode:            {"duplicate", "wrap", "none"},
	attr.XMLSpace:            {"default", "preserve"},
}

func init() {
	for _, k := range lengthKeys {
		parsers[k] = parseLength
	}
	for k := range keywords {
		parsers[k] = keywordParser(k)
	}
}

// KindOf returns the main kind of value key takes. Some keys also
// accept a keyword, such as none for stroke-dasharray, or plain text,
// such as an external url for href.
func KindOf(key attr.Keys) Kinds {
	if _, ok := keywords[key]; ok {
		return KindKeyword
	}
	if slices.Contains(lengthKeys, key) {
		return KindLength
	}
	switch key {
	case attr.ViewBox:
		return KindViewBox
	case attr.ID:
		return KindIdentifier
	case attr.Href, attr.XlinkHref:
		return KindReference
	case attr.Fill, attr.Stroke:
		return KindPaint
	case attr.Color, attr.StopColor, attr.FloodColor, attr.LightingColor:
		return KindColor
	case attr.D:
		return KindPath
	case attr.Transform, attr.GradientTransform, attr.PatternTransform:
		return KindTransform
	case attr.Style:
		return KindStyle
	case attr.Points, attr.StrokeDasharray:
		return KindNumbers
	case attr.PreserveAspectRatio:
		return KindAspectRatio
	case attr.Opacity, attr.FillOpacity, attr.StrokeOpacity, attr.StopOpacity,
		attr.FloodOpacity, attr.StrokeMiterlimit, attr.PathLength:
		return KindFloat
	case attr.NumOctaves, attr.TabIndex:
		return KindInteger
	}
	return KindText
}

// Parse parses the text of the attribute key into the kind of value the
// key takes. Failures wrap [ErrInvalidValue] and the kind-specific cause.
func Parse(key attr.Keys, text string) (Value, error) {
	p, ok := parsers[key]
	if !ok {
		return NewText(text), nil
	}
	v, err := p(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, key, text, err)
	}
	return v, nil
}

// ParseLenient is like [Parse], but returns the text as [Text] when
// it does not parse.
func ParseLenient(key attr.Keys, text string) Value {
	v, err := Parse(key, text)
	if err != nil {
		return NewText(text)
	}
	return v
}

func parseViewBox(s string) (Value, error) {
	fs, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	if len(fs) != 4 {
		return nil, fmt.Errorf("viewBox needs 4 numbers, got %d", len(fs))
	}
	var vb [4]int32
	for i, f := range fs {
		if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
			return nil, fmt.Errorf("viewBox number %v is not an integer", f)
		}
		vb[i] = int32(f)
	}
	return NewViewBox(vb[0], vb[1], vb[2], vb[3]), nil
}

func parseID(s string) (Value, error) {
	return NewID(s)
}

// parseHref takes fragment references as [Reference] and other
// urls as [Text].
func parseHref(s string) (Value, error) {
	if !strings.HasPrefix(s, "#") {
		return NewText(s), nil
	}
	return NewReference(s)
}

func parsePaint(s string) (Value, error) {
	return ParsePaint(s)
}

func parseColor(s string) (Value, error) {
	if s == "currentColor" || s == "inherit" {
		return NewKeyword(s), nil
	}
	c, err := colors.Parse(s)
	if err != nil {
		return nil, err
	}
	return NewColor(c), nil
}

func parsePath(s string) (Value, error) {
	d, err := pathdata.Parse(s)
	if err != nil {
		return nil, err
	}
	return NewPathDefinition(d), nil
}

func parseTransform(s string) (Value, error) {
	return ParseTransform(s)
}

func parseStyle(s string) (Value, error) {
	return ParseStyle(s)
}

func parseNumbers(s string) (Value, error) {
	fs, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	return Numbers{vs: fs}, nil
}

func parseDasharray(s string) (Value, error) {
	if s == "none" {
		return NewKeyword(s), nil
	}
	return parseNumbers(s)
}

func parseAspectRatio(s string) (Value, error) {
	return ParseAspectRatio(s)
}

// parseOpacity takes a number or a percentage.
func parseOpacity(s string) (Value, error) {
	if num, ok := strings.CutSuffix(s, "%"); ok {
		f, err := parseFloat(num)
		if err != nil {
			return nil, err
		}
		return Percentage(f.(Float)), nil
	}
	return parseFloat(s)
}

func parseFloat(s string) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return Float(f), nil
}

func parseInteger(s string) (Value, error) {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, err
	}
	return Integer(i), nil
}

func parseLength(s string) (Value, error) {
	l, err := units.Parse(s)
	if err != nil {
		return nil, err
	}
	return Length{Length: l}, nil
}

func keywordParser(key attr.Keys) parseFunc {
	allowed := keywords[key]
	return func(s string) (Value, error) {
		if !slices.Contains(allowed, s) {
			return nil, fmt.Errorf("%q is not one of %s", s, strings.Join(allowed, ", "))
		}
		return NewKeyword(s), nil
	}
}
