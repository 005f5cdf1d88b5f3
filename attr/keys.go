// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

// Keys enumerates the SVG attribute names an element can carry.
type Keys int32

const (
	// AccentHeight is the "accent-height" attribute.
	AccentHeight Keys = iota

	// Accumulate is the "accumulate" attribute.
	Accumulate

	// Additive is the "additive" attribute.
	Additive

	// AlignmentBaseline is the "alignment-baseline" attribute.
	AlignmentBaseline

	// AllowReorder is the "allowReorder" attribute.
	AllowReorder

	// Alphabetic is the "alphabetic" attribute.
	Alphabetic

	// Amplitude is the "amplitude" attribute.
	Amplitude

	// ArabicForm is the "arabic-form" attribute.
	ArabicForm

	// Ascent is the "ascent" attribute.
	Ascent

	// AttributeName is the "attributeName" attribute.
	AttributeName

	// AttributeType is the "attributeType" attribute.
	AttributeType

	// AutoReverse is the "autoReverse" attribute.
	AutoReverse

	// Azimuth is the "azimuth" attribute.
	Azimuth

	// BaseFrequency is the "baseFrequency" attribute.
	BaseFrequency

	// BaselineShift is the "baseline-shift" attribute.
	BaselineShift

	// BaseProfile is the "baseProfile" attribute.
	BaseProfile

	// BBox is the "bbox" attribute.
	BBox

	// Begin is the "begin" attribute.
	Begin

	// Bias is the "bias" attribute.
	Bias

	// By is the "by" attribute.
	By

	// CalcMode is the "calcMode" attribute.
	CalcMode

	// CapHeight is the "cap-height" attribute.
	CapHeight

	// Class is the "class" attribute.
	Class

	// Clip is the "clip" attribute.
	Clip

	// ClipPathUnits is the "clipPathUnits" attribute.
	ClipPathUnits

	// ClipPath is the "clip-path" attribute.
	ClipPath

	// ClipRule is the "clip-rule" attribute.
	ClipRule

	// Color is the "color" attribute.
	Color

	// ColorInterpolation is the "color-interpolation" attribute.
	ColorInterpolation

	// ColorInterpolationFilters is the "color-interpolation-filters" attribute.
	ColorInterpolationFilters

	// ColorProfile is the "color-profile" attribute.
	ColorProfile

	// ColorRendering is the "color-rendering" attribute.
	ColorRendering

	// ContentScriptType is the "contentScriptType" attribute.
	ContentScriptType

	// ContentStyleType is the "contentStyleType" attribute.
	ContentStyleType

	// Cursor is the "cursor" attribute.
	Cursor

	// Cx is the "cx" attribute.
	Cx

	// Cy is the "cy" attribute.
	Cy

	// D is the "d" attribute.
	D

	// Decelerate is the "decelerate" attribute.
	Decelerate

	// Descent is the "descent" attribute.
	Descent

	// DiffuseConstant is the "diffuseConstant" attribute.
	DiffuseConstant

	// Direction is the "direction" attribute.
	Direction

	// Display is the "display" attribute.
	Display

	// Divisor is the "divisor" attribute.
	Divisor

	// DominantBaseline is the "dominant-baseline" attribute.
	DominantBaseline

	// Dur is the "dur" attribute.
	Dur

	// Dx is the "dx" attribute.
	Dx

	// Dy is the "dy" attribute.
	Dy

	// EdgeMode is the "edgeMode" attribute.
	EdgeMode

	// Elevation is the "elevation" attribute.
	Elevation

	// EnableBackground is the "enable-background" attribute.
	EnableBackground

	// End is the "end" attribute.
	End

	// Exponent is the "exponent" attribute.
	Exponent

	// ExternalResourcesRequired is the "externalResourcesRequired" attribute.
	ExternalResourcesRequired

	// Fill is the "fill" attribute.
	Fill

	// FillOpacity is the "fill-opacity" attribute.
	FillOpacity

	// FillRule is the "fill-rule" attribute.
	FillRule

	// Filter is the "filter" attribute.
	Filter

	// FilterRes is the "filterRes" attribute.
	FilterRes

	// FilterUnits is the "filterUnits" attribute.
	FilterUnits

	// FloodColor is the "flood-color" attribute.
	FloodColor

	// FloodOpacity is the "flood-opacity" attribute.
	FloodOpacity

	// FontFamily is the "font-family" attribute.
	FontFamily

	// FontSize is the "font-size" attribute.
	FontSize

	// FontSizeAdjust is the "font-size-adjust" attribute.
	FontSizeAdjust

	// FontStretch is the "font-stretch" attribute.
	FontStretch

	// FontStyle is the "font-style" attribute.
	FontStyle

	// FontVariant is the "font-variant" attribute.
	FontVariant

	// FontWeight is the "font-weight" attribute.
	FontWeight

	// Format is the "format" attribute.
	Format

	// From is the "from" attribute.
	From

	// Fr is the "fr" attribute.
	Fr

	// Fx is the "fx" attribute.
	Fx

	// Fy is the "fy" attribute.
	Fy

	// G1 is the "g1" attribute.
	G1

	// G2 is the "g2" attribute.
	G2

	// GlyphName is the "glyph-name" attribute.
	GlyphName

	// GlyphOrientationHorizontal is the "glyph-orientation-horizontal" attribute.
	GlyphOrientationHorizontal

	// GlyphOrientationVertical is the "glyph-orientation-vertical" attribute.
	GlyphOrientationVertical

	// GlyphRef is the "glyphRef" attribute.
	GlyphRef

	// GradientTransform is the "gradientTransform" attribute.
	GradientTransform

	// GradientUnits is the "gradientUnits" attribute.
	GradientUnits

	// Hanging is the "hanging" attribute.
	Hanging

	// Height is the "height" attribute.
	Height

	// Href is the "href" attribute.
	Href

	// HrefLang is the "hreflang" attribute.
	HrefLang

	// HorizAdvX is the "horiz-adv-x" attribute.
	HorizAdvX

	// HorizOriginX is the "horiz-origin-x" attribute.
	HorizOriginX

	// ID is the "id" attribute.
	ID

	// Ideographic is the "ideographic" attribute.
	Ideographic

	// ImageRendering is the "image-rendering" attribute.
	ImageRendering

	// In is the "in" attribute.
	In

	// In2 is the "in2" attribute.
	In2

	// Intercept is the "intercept" attribute.
	Intercept

	// K is the "k" attribute.
	K

	// K1 is the "k1" attribute.
	K1

	// K2 is the "k2" attribute.
	K2

	// K3 is the "k3" attribute.
	K3

	// K4 is the "k4" attribute.
	K4

	// KernelMatrix is the "kernelMatrix" attribute.
	KernelMatrix

	// KernelUnitLength is the "kernelUnitLength" attribute.
	KernelUnitLength

	// Kerning is the "kerning" attribute.
	Kerning

	// KeyPoints is the "keyPoints" attribute.
	KeyPoints

	// KeySplines is the "keySplines" attribute.
	KeySplines

	// KeyTimes is the "keyTimes" attribute.
	KeyTimes

	// Lang is the "lang" attribute.
	Lang

	// LengthAdjust is the "lengthAdjust" attribute.
	LengthAdjust

	// LetterSpacing is the "letter-spacing" attribute.
	LetterSpacing

	// LightingColor is the "lighting-color" attribute.
	LightingColor

	// LimitingConeAngle is the "limitingConeAngle" attribute.
	LimitingConeAngle

	// Local is the "local" attribute.
	Local

	// MarkerEnd is the "marker-end" attribute.
	MarkerEnd

	// MarkerMid is the "marker-mid" attribute.
	MarkerMid

	// MarkerStart is the "marker-start" attribute.
	MarkerStart

	// MarkerHeight is the "markerHeight" attribute.
	MarkerHeight

	// MarkerUnits is the "markerUnits" attribute.
	MarkerUnits

	// MarkerWidth is the "markerWidth" attribute.
	MarkerWidth

	// Mask is the "mask" attribute.
	Mask

	// MaskContentUnits is the "maskContentUnits" attribute.
	MaskContentUnits

	// MaskUnits is the "maskUnits" attribute.
	MaskUnits

	// Mathematical is the "mathematical" attribute.
	Mathematical

	// Max is the "max" attribute.
	Max

	// Media is the "media" attribute.
	Media

	// Method is the "method" attribute.
	Method

	// Min is the "min" attribute.
	Min

	// Mode is the "mode" attribute.
	Mode

	// Name is the "name" attribute.
	Name

	// NumOctaves is the "numOctaves" attribute.
	NumOctaves

	// Offset is the "offset" attribute.
	Offset

	// Opacity is the "opacity" attribute.
	Opacity

	// Operator is the "operator" attribute.
	Operator

	// Order is the "order" attribute.
	Order

	// Orient is the "orient" attribute.
	Orient

	// Orientation is the "orientation" attribute.
	Orientation

	// Origin is the "origin" attribute.
	Origin

	// Overflow is the "overflow" attribute.
	Overflow

	// OverlinePosition is the "overline-position" attribute.
	OverlinePosition

	// OverlineThickness is the "overline-thickness" attribute.
	OverlineThickness

	// Panose1 is the "panose-1" attribute.
	Panose1

	// PaintOrder is the "paint-order" attribute.
	PaintOrder

	// Path is the "path" attribute.
	Path

	// PathLength is the "pathLength" attribute.
	PathLength

	// PatternContentUnits is the "patternContentUnits" attribute.
	PatternContentUnits

	// PatternTransform is the "patternTransform" attribute.
	PatternTransform

	// PatternUnits is the "patternUnits" attribute.
	PatternUnits

	// Ping is the "ping" attribute.
	Ping

	// PointerEvents is the "pointer-events" attribute.
	PointerEvents

	// Points is the "points" attribute.
	Points

	// PointsAtX is the "pointsAtX" attribute.
	PointsAtX

	// PointsAtY is the "pointsAtY" attribute.
	PointsAtY

	// PointsAtZ is the "pointsAtZ" attribute.
	PointsAtZ

	// PreserveAlpha is the "preserveAlpha" attribute.
	PreserveAlpha

	// PreserveAspectRatio is the "preserveAspectRatio" attribute.
	PreserveAspectRatio

	// PrimitiveUnits is the "primitiveUnits" attribute.
	PrimitiveUnits

	// R is the "r" attribute.
	R

	// Radius is the "radius" attribute.
	Radius

	// ReferrerPolicy is the "referrerPolicy" attribute.
	ReferrerPolicy

	// RefX is the "refX" attribute.
	RefX

	// RefY is the "refY" attribute.
	RefY

	// Rel is the "rel" attribute.
	Rel

	// RenderingIntent is the "rendering-intent" attribute.
	RenderingIntent

	// RepeatCount is the "repeatCount" attribute.
	RepeatCount

	// RepeatDur is the "repeatDur" attribute.
	RepeatDur

	// RequiredExtensions is the "requiredExtensions" attribute.
	RequiredExtensions

	// RequiredFeatures is the "requiredFeatures" attribute.
	RequiredFeatures

	// Restart is the "restart" attribute.
	Restart

	// Result is the "result" attribute.
	Result

	// Rotate is the "rotate" attribute.
	Rotate

	// Rx is the "rx" attribute.
	Rx

	// Ry is the "ry" attribute.
	Ry

	// Slope is the "slope" attribute.
	Slope

	// Spacing is the "spacing" attribute.
	Spacing

	// SpecularConstant is the "specularConstant" attribute.
	SpecularConstant

	// SpecularExponent is the "specularExponent" attribute.
	SpecularExponent

	// Speed is the "speed" attribute.
	Speed

	// SpreadMethod is the "spreadMethod" attribute.
	SpreadMethod

	// StartOffset is the "startOffset" attribute.
	StartOffset

	// StdDeviation is the "stdDeviation" attribute.
	StdDeviation

	// StemH is the "stemh" attribute.
	StemH

	// StemV is the "stemv" attribute.
	StemV

	// StitchTiles is the "stitchTiles" attribute.
	StitchTiles

	// StopColor is the "stop-color" attribute.
	StopColor

	// StopOpacity is the "stop-opacity" attribute.
	StopOpacity

	// StrikethroughPosition is the "strikethrough-position" attribute.
	StrikethroughPosition

	// StrikethroughThickness is the "strikethrough-thickness" attribute.
	StrikethroughThickness

	// String is the "string" attribute.
	String

	// Stroke is the "stroke" attribute.
	Stroke

	// StrokeDasharray is the "stroke-dasharray" attribute.
	StrokeDasharray

	// StrokeDashoffset is the "stroke-dashoffset" attribute.
	StrokeDashoffset

	// StrokeLinecap is the "stroke-linecap" attribute.
	StrokeLinecap

	// StrokeLinejoin is the "stroke-linejoin" attribute.
	StrokeLinejoin

	// StrokeMiterlimit is the "stroke-miterlimit" attribute.
	StrokeMiterlimit

	// StrokeOpacity is the "stroke-opacity" attribute.
	StrokeOpacity

	// StrokeWidth is the "stroke-width" attribute.
	StrokeWidth

	// Style is the "style" attribute.
	Style

	// SurfaceScale is the "surfaceScale" attribute.
	SurfaceScale

	// SystemLanguage is the "systemLanguage" attribute.
	SystemLanguage

	// TabIndex is the "tabindex" attribute.
	TabIndex

	// TableValues is the "tableValues" attribute.
	TableValues

	// Target is the "target" attribute.
	Target

	// TargetX is the "targetX" attribute.
	TargetX

	// TargetY is the "targetY" attribute.
	TargetY

	// TextAnchor is the "text-anchor" attribute.
	TextAnchor

	// TextDecoration is the "text-decoration" attribute.
	TextDecoration

	// TextRendering is the "text-rendering" attribute.
	TextRendering

	// TextLength is the "textLength" attribute.
	TextLength

	// To is the "to" attribute.
	To

	// Transform is the "transform" attribute.
	Transform

	// Type is the "type" attribute.
	Type

	// U1 is the "u1" attribute.
	U1

	// U2 is the "u2" attribute.
	U2

	// UnderlinePosition is the "underline-position" attribute.
	UnderlinePosition

	// UnderlineThickness is the "underline-thickness" attribute.
	UnderlineThickness

	// Unicode is the "unicode" attribute.
	Unicode

	// UnicodeBidi is the "unicode-bidi" attribute.
	UnicodeBidi

	// UnicodeRange is the "unicode-range" attribute.
	UnicodeRange

	// UnitsPerEm is the "units-per-em" attribute.
	UnitsPerEm

	// VAlphabetic is the "v-alphabetic" attribute.
	VAlphabetic

	// VHanging is the "v-hanging" attribute.
	VHanging

	// VIdeographic is the "v-ideographic" attribute.
	VIdeographic

	// VMathematical is the "v-mathematical" attribute.
	VMathematical

	// Values is the "values" attribute.
	Values

	// VectorEffect is the "vector-effect" attribute.
	VectorEffect

	// Version is the "version" attribute.
	Version

	// VertAdvY is the "vert-adv-y" attribute.
	VertAdvY

	// VertOriginX is the "vert-origin-x" attribute.
	VertOriginX

	// VertOriginY is the "vert-origin-y" attribute.
	VertOriginY

	// ViewBox is the "viewBox" attribute.
	ViewBox

	// ViewTarget is the "viewTarget" attribute.
	ViewTarget

	// Visibility is the "visibility" attribute.
	Visibility

	// Width is the "width" attribute.
	Width

	// Widths is the "widths" attribute.
	Widths

	// WordSpacing is the "word-spacing" attribute.
	WordSpacing

	// WritingMode is the "writing-mode" attribute.
	WritingMode

	// X is the "x" attribute.
	X

	// XHeight is the "x-height" attribute.
	XHeight

	// X1 is the "x1" attribute.
	X1

	// X2 is the "x2" attribute.
	X2

	// XChannelSelector is the "xChannelSelector" attribute.
	XChannelSelector

	// XlinkActuate is the "xlink:actuate" attribute.
	XlinkActuate

	// XlinkArcrole is the "xlink:arcrole" attribute.
	XlinkArcrole

	// XlinkHref is the "xlink:href" attribute.
	XlinkHref

	// XlinkRole is the "xlink:role" attribute.
	XlinkRole

	// XlinkShow is the "xlink:show" attribute.
	XlinkShow

	// XlinkTitle is the "xlink:title" attribute.
	XlinkTitle

	// XlinkType is the "xlink:type" attribute.
	XlinkType

	// XMLBase is the "xml:base" attribute.
	XMLBase

	// XMLLang is the "xml:lang" attribute.
	XMLLang

	// XMLSpace is the "xml:space" attribute.
	XMLSpace

	// Xmlns is the "xmlns" attribute.
	Xmlns

	// XmlnsXlink is the "xmlns:xlink" attribute.
	XmlnsXlink

	// Y is the "y" attribute.
	Y

	// Y1 is the "y1" attribute.
	Y1

	// Y2 is the "y2" attribute.
	Y2

	// YChannelSelector is the "yChannelSelector" attribute.
	YChannelSelector

	// Z is the "z" attribute.
	Z

	// ZoomAndPan is the "zoomAndPan" attribute.
	ZoomAndPan

	// KeysN is the number of valid Keys values.
	KeysN
)

// keyNames holds the canonical SVG spelling of each key.
var keyNames = [...]string{
	AccentHeight:               "accent-height",
	Accumulate:                 "accumulate",
	Additive:                   "additive",
	AlignmentBaseline:          "alignment-baseline",
	AllowReorder:               "allowReorder",
	Alphabetic:                 "alphabetic",
	Amplitude:                  "amplitude",
	ArabicForm:                 "arabic-form",
	Ascent:                     "ascent",
	AttributeName:              "attributeName",
	AttributeType:              "attributeType",
	AutoReverse:                "autoReverse",
	Azimuth:                    "azimuth",
	BaseFrequency:              "baseFrequency",
	BaselineShift:              "baseline-shift",
	BaseProfile:                "baseProfile",
	BBox:                       "bbox",
	Begin:                      "begin",
	Bias:                       "bias",
	By:                         "by",
	CalcMode:                   "calcMode",
	CapHeight:                  "cap-height",
	Class:                      "class",
	Clip:                       "clip",
	ClipPathUnits:              "clipPathUnits",
	ClipPath:                   "clip-path",
	ClipRule:                   "clip-rule",
	Color:                      "color",
	ColorInterpolation:         "color-interpolation",
	ColorInterpolationFilters:  "color-interpolation-filters",
	ColorProfile:               "color-profile",
	ColorRendering:             "color-rendering",
	ContentScriptType:          "contentScriptType",
	ContentStyleType:           "contentStyleType",
	Cursor:                     "cursor",
	Cx:                         "cx",
	Cy:                         "cy",
	D:                          "d",
	Decelerate:                 "decelerate",
	Descent:                    "descent",
	DiffuseConstant:            "diffuseConstant",
	Direction:                  "direction",
	Display:                    "display",
	Divisor:                    "divisor",
	DominantBaseline:           "dominant-baseline",
	Dur:                        "dur",
	Dx:                         "dx",
	Dy:                         "dy",
	EdgeMode:                   "edgeMode",
	Elevation:                  "elevation",
	EnableBackground:           "enable-background",
	End:                        "end",
	Exponent:                   "exponent",
	ExternalResourcesRequired:  "externalResourcesRequired",
	Fill:                       "fill",
	FillOpacity:                "fill-opacity",
	FillRule:                   "fill-rule",
	Filter:                     "filter",
	FilterRes:                  "filterRes",
	FilterUnits:                "filterUnits",
	FloodColor:                 "flood-color",
	FloodOpacity:               "flood-opacity",
	FontFamily:                 "font-family",
	FontSize:                   "font-size",
	FontSizeAdjust:             "font-size-adjust",
	FontStretch:                "font-stretch",
	FontStyle:                  "font-style",
	FontVariant:                "font-variant",
	FontWeight:                 "font-weight",
	Format:                     "format",
	From:                       "from",
	Fr:                         "fr",
	Fx:                         "fx",
	Fy:                         "fy",
	G1:                         "g1",
	G2:                         "g2",
	GlyphName:                  "glyph-name",
	GlyphOrientationHorizontal: "glyph-orientation-horizontal",
	GlyphOrientationVertical:   "glyph-orientation-vertical",
	GlyphRef:                   "glyphRef",
	GradientTransform:          "gradientTransform",
	GradientUnits:              "gradientUnits",
	Hanging:                    "hanging",
	Height:                     "height",
	Href:                       "href",
	HrefLang:                   "hreflang",
	HorizAdvX:                  "horiz-adv-x",
	HorizOriginX:               "horiz-origin-x",
	ID:                         "id",
	Ideographic:                "ideographic",
	ImageRendering:             "image-rendering",
	In:                         "in",
	In2:                        "in2",
	Intercept:                  "intercept",
	K:                          "k",
	K1:                         "k1",
	K2:                         "k2",
	K3:                         "k3",
	K4:                         "k4",
	KernelMatrix:               "kernelMatrix",
	KernelUnitLength:           "kernelUnitLength",
	Kerning:                    "kerning",
	KeyPoints:                  "keyPoints",
	KeySplines:                 "keySplines",
	KeyTimes:                   "keyTimes",
	Lang:                       "lang",
	LengthAdjust:               "lengthAdjust",
	LetterSpacing:              "letter-spacing",
	LightingColor:              "lighting-color",
	LimitingConeAngle:          "limitingConeAngle",
	Local:                      "local",
	MarkerEnd:                  "marker-end",
	MarkerMid:                  "marker-mid",
	MarkerStart:                "marker-start",
	MarkerHeight:               "markerHeight",
	MarkerUnits:                "markerUnits",
	MarkerWidth:                "markerWidth",
	Mask:                       "mask",
	MaskContentUnits:           "maskContentUnits",
	MaskUnits:                  "maskUnits",
	Mathematical:               "mathematical",
	Max:                        "max",
	Media:                      "media",
	Method:                     "method",
	Min:                        "min",
	Mode:                       "mode",
	Name:                       "name",
	NumOctaves:                 "numOctaves",
	Offset:                     "offset",
	Opacity:                    "opacity",
	Operator:                   "operator",
	Order:                      "order",
	Orient:                     "orient",
	Orientation:                "orientation",
	Origin:                     "origin",
	Overflow:                   "overflow",
	OverlinePosition:           "overline-position",
	OverlineThickness:          "overline-thickness",
	Panose1:                    "panose-1",
	PaintOrder:                 "paint-order",
	Path:                       "path",
	PathLength:                 "pathLength",
	PatternContentUnits:        "patternContentUnits",
	PatternTransform:           "patternTransform",
	PatternUnits:               "patternUnits",
	Ping:                       "ping",
	PointerEvents:              "pointer-events",
	Points:                     "points",
	PointsAtX:                  "pointsAtX",
	PointsAtY:                  "pointsAtY",
	PointsAtZ:                  "pointsAtZ",
	PreserveAlpha:              "preserveAlpha",
	PreserveAspectRatio:        "preserveAspectRatio",
	PrimitiveUnits:             "primitiveUnits",
	R:                          "r",
	Radius:                     "radius",
	ReferrerPolicy:             "referrerPolicy",
	RefX:                       "refX",
	RefY:                       "refY",
	Rel:                        "rel",
	RenderingIntent:            "rendering-intent",
	RepeatCount:                "repeatCount",
	RepeatDur:                  "repeatDur",
	RequiredExtensions:         "requiredExtensions",
	RequiredFeatures:           "requiredFeatures",
	Restart:                    "restart",
	Result:                     "result",
	Rotate:                     "rotate",
	Rx:                         "rx",
	Ry:                         "ry",
	Slope:                      "slope",
	Spacing:                    "spacing",
	SpecularConstant:           "specularConstant",
	SpecularExponent:           "specularExponent",
	Speed:                      "speed",
	SpreadMethod:               "spreadMethod",
	StartOffset:                "startOffset",
	StdDeviation:               "stdDeviation",
	StemH:                      "stemh",
	StemV:                      "stemv",
	StitchTiles:                "stitchTiles",
	StopColor:                  "stop-color",
	StopOpacity:                "stop-opacity",
	StrikethroughPosition:      "strikethrough-position",
	StrikethroughThickness:     "strikethrough-thickness",
	String:                     "string",
	Stroke:                     "stroke",
	StrokeDasharray:            "stroke-dasharray",
	StrokeDashoffset:           "stroke-dashoffset",
	StrokeLinecap:              "stroke-linecap",
	StrokeLinejoin:             "stroke-linejoin",
	StrokeMiterlimit:           "stroke-miterlimit",
	StrokeOpacity:              "stroke-opacity",
	StrokeWidth:                "stroke-width",
	Style:                      "style",
	SurfaceScale:               "surfaceScale",
	SystemLanguage:             "systemLanguage",
	TabIndex:                   "tabindex",
	TableValues:                "tableValues",
	Target:                     "target",
	TargetX:                    "targetX",
	TargetY:                    "targetY",
	TextAnchor:                 "text-anchor",
	TextDecoration:             "text-decoration",
	TextRendering:              "text-rendering",
	TextLength:                 "textLength",
	To:                         "to",
	Transform:                  "transform",
	Type:                       "type",
	U1:                         "u1",
	U2:                         "u2",
	UnderlinePosition:          "underline-position",
	UnderlineThickness:         "underline-thickness",
	Unicode:                    "unicode",
	UnicodeBidi:                "unicode-bidi",
	UnicodeRange:               "unicode-range",
	UnitsPerEm:                 "units-per-em",
	VAlphabetic:                "v-alphabetic",
	VHanging:                   "v-hanging",
	VIdeographic:               "v-ideographic",
	VMathematical:              "v-mathematical",
	Values:                     "values",
	VectorEffect:               "vector-effect",
	Version:                    "version",
	VertAdvY:                   "vert-adv-y",
	VertOriginX:                "vert-origin-x",
	VertOriginY:                "vert-origin-y",
	ViewBox:                    "viewBox",
	ViewTarget:                 "viewTarget",
	Visibility:                 "visibility",
	Width:                      "width",
	Widths:                     "widths",
	WordSpacing:                "word-spacing",
	WritingMode:                "writing-mode",
	X:                          "x",
	XHeight:                    "x-height",
	X1:                         "x1",
	X2:                         "x2",
	XChannelSelector:           "xChannelSelector",
	XlinkActuate:               "xlink:actuate",
	XlinkArcrole:               "xlink:arcrole",
	XlinkHref:                  "xlink:href",
	XlinkRole:                  "xlink:role",
	XlinkShow:                  "xlink:show",
	XlinkTitle:                 "xlink:title",
	XlinkType:                  "xlink:type",
	XMLBase:                    "xml:base",
	XMLLang:                    "xml:lang",
	XMLSpace:                   "xml:space",
	Xmlns:                      "xmlns",
	XmlnsXlink:                 "xmlns:xlink",
	Y:                          "y",
	Y1:                         "y1",
	Y2:                         "y2",
	YChannelSelector:           "yChannelSelector",
	Z:                          "z",
	ZoomAndPan:                 "zoomAndPan",
}
