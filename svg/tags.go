// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Tags enumerates the SVG element names.
type Tags int32

const (
	// A is the <a> element.
	A Tags = iota

	// Animate is the <animate> element.
	Animate

	// AnimateMotion is the <animateMotion> element.
	AnimateMotion

	// AnimateTransform is the <animateTransform> element.
	AnimateTransform

	// Circle is the <circle> element.
	Circle

	// ClipPath is the <clipPath> element.
	ClipPath

	// ColorProfile is the <color-profile> element.
	ColorProfile

	// Defs is the <defs> element.
	Defs

	// Desc is the <desc> element.
	Desc

	// Discard is the <discard> element.
	Discard

	// Ellipse is the <ellipse> element.
	Ellipse

	// FeBlend is the <feBlend> element.
	FeBlend

	// FeColorMatrix is the <feColorMatrix> element.
	FeColorMatrix

	// FeComponentTransfer is the <feComponentTransfer> element.
	FeComponentTransfer

	// FeComposite is the <feComposite> element.
	FeComposite

	// FeConvolveMatrix is the <feConvolveMatrix> element.
	FeConvolveMatrix

	// FeDiffuseLighting is the <feDiffuseLighting> element.
	FeDiffuseLighting

	// FeDisplacementMap is the <feDisplacementMap> element.
	FeDisplacementMap

	// FeDistantLight is the <feDistantLight> element.
	FeDistantLight

	// FeDropShadow is the <feDropShadow> element.
	FeDropShadow

	// FeFlood is the <feFlood> element.
	FeFlood

	// FeFuncA is the <feFuncA> element.
	FeFuncA

	// FeFuncB is the <feFuncB> element.
	FeFuncB

	// FeFuncG is the <feFuncG> element.
	FeFuncG

	// FeFuncR is the <feFuncR> element.
	FeFuncR

	// FeGaussianBlur is the <feGaussianBlur> element.
	FeGaussianBlur

	// FeImage is the <feImage> element.
	FeImage

	// FeMerge is the <feMerge> element.
	FeMerge

	// FeMergeNode is the <feMergeNode> element.
	FeMergeNode

	// FeMorphology is the <feMorphology> element.
	FeMorphology

	// FeOffset is the <feOffset> element.
	FeOffset

	// FePointLight is the <fePointLight> element.
	FePointLight

	// FeSpecularLighting is the <feSpecularLighting> element.
	FeSpecularLighting

	// FeSpotLight is the <feSpotLight> element.
	FeSpotLight

	// FeTile is the <feTile> element.
	FeTile

	// FeTurbulence is the <feTurbulence> element.
	FeTurbulence

	// Filter is the <filter> element.
	Filter

	// ForeignObject is the <foreignObject> element.
	ForeignObject

	// G is the <g> element.
	G

	// Hatch is the <hatch> element.
	Hatch

	// Hatchpath is the <hatchpath> element.
	Hatchpath

	// Image is the <image> element.
	Image

	// Line is the <line> element.
	Line

	// LinearGradient is the <linearGradient> element.
	LinearGradient

	// Marker is the <marker> element.
	Marker

	// Mask is the <mask> element.
	Mask

	// Mesh is the <mesh> element.
	Mesh

	// Meshgradient is the <meshgradient> element.
	Meshgradient

	// Meshpatch is the <meshpatch> element.
	Meshpatch

	// Meshrow is the <meshrow> element.
	Meshrow

	// Metadata is the <metadata> element.
	Metadata

	// Mpath is the <mpath> element.
	Mpath

	// Path is the <path> element.
	Path

	// Pattern is the <pattern> element.
	Pattern

	// Polygon is the <polygon> element.
	Polygon

	// Polyline is the <polyline> element.
	Polyline

	// RadialGradient is the <radialGradient> element.
	RadialGradient

	// Rect is the <rect> element.
	Rect

	// Script is the <script> element.
	Script

	// Set is the <set> element.
	Set

	// Solidcolor is the <solidcolor> element.
	Solidcolor

	// Stop is the <stop> element.
	Stop

	// Style is the <style> element.
	Style

	// SVG is the <svg> element.
	SVG

	// Switch is the <switch> element.
	Switch

	// Symbol is the <symbol> element.
	Symbol

	// Text is the <text> element.
	Text

	// TextPath is the <textPath> element.
	TextPath

	// Title is the <title> element.
	Title

	// Tspan is the <tspan> element.
	Tspan

	// Unknown is the <unknown> element.
	Unknown

	// Use is the <use> element.
	Use

	// View is the <view> element.
	View

	// TagsN is the number of valid Tags values.
	TagsN
)

// tagNames holds the canonical SVG spelling of each value.
var tagNames = [...]string{
	A:                   "a",
	Animate:             "animate",
	AnimateMotion:       "animateMotion",
	AnimateTransform:    "animateTransform",
	Circle:              "circle",
	ClipPath:            "clipPath",
	ColorProfile:        "color-profile",
	Defs:                "defs",
	Desc:                "desc",
	Discard:             "discard",
	Ellipse:             "ellipse",
	FeBlend:             "feBlend",
	FeColorMatrix:       "feColorMatrix",
	FeComponentTransfer: "feComponentTransfer",
	FeComposite:         "feComposite",
	FeConvolveMatrix:    "feConvolveMatrix",
	FeDiffuseLighting:   "feDiffuseLighting",
	FeDisplacementMap:   "feDisplacementMap",
	FeDistantLight:      "feDistantLight",
	FeDropShadow:        "feDropShadow",
	FeFlood:             "feFlood",
	FeFuncA:             "feFuncA",
	FeFuncB:             "feFuncB",
	FeFuncG:             "feFuncG",
	FeFuncR:             "feFuncR",
	FeGaussianBlur:      "feGaussianBlur",
	FeImage:             "feImage",
	FeMerge:             "feMerge",
	FeMergeNode:         "feMergeNode",
	FeMorphology:        "feMorphology",
	FeOffset:            "feOffset",
	FePointLight:        "fePointLight",
	FeSpecularLighting:  "feSpecularLighting",
	FeSpotLight:         "feSpotLight",
	FeTile:              "feTile",
	FeTurbulence:        "feTurbulence",
	Filter:              "filter",
	ForeignObject:       "foreignObject",
	G:                   "g",
	Hatch:               "hatch",
	Hatchpath:           "hatchpath",
	Image:               "image",
	Line:                "line",
	LinearGradient:      "linearGradient",
	Marker:              "marker",
	Mask:                "mask",
	Mesh:                "mesh",
	Meshgradient:        "meshgradient",
	Meshpatch:           "meshpatch",
	Meshrow:             "meshrow",
	Metadata:            "metadata",
	Mpath:               "mpath",
	Path:                "path",
	Pattern:             "pattern",
	Polygon:             "polygon",
	Polyline:            "polyline",
	RadialGradient:      "radialGradient",
	Rect:                "rect",
	Script:              "script",
	Set:                 "set",
	Solidcolor:          "solidcolor",
	Stop:                "stop",
	Style:               "style",
	SVG:                 "svg",
	Switch:              "switch",
	Symbol:              "symbol",
	Text:                "text",
	TextPath:            "textPath",
	Title:               "title",
	Tspan:               "tspan",
	Unknown:             "unknown",
	Use:                 "use",
	View:                "view",
}
