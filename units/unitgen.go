// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

// Px returns a new px length:
// UnitPx = pixels -- 1px = 1/96th of 1in
func Px(val float32) Length {
	return Length{Unit: UnitPx, Value: val}
}

// Em returns a new em length:
// UnitEm = font size of the element
func Em(val float32) Length {
	return Length{Unit: UnitEm, Value: val}
}

// Ex returns a new ex length:
// UnitEx = x-height of the element's font
func Ex(val float32) Length {
	return Length{Unit: UnitEx, Value: val}
}

// In returns a new in length:
// UnitIn = inches -- 1in = 2.54cm = 96px
func In(val float32) Length {
	return Length{Unit: UnitIn, Value: val}
}

// Cm returns a new cm length:
// UnitCm = centimeters -- 1cm = 96px/2.54
func Cm(val float32) Length {
	return Length{Unit: UnitCm, Value: val}
}

// Mm returns a new mm length:
// UnitMm = millimeters -- 1mm = 1/10th of cm
func Mm(val float32) Length {
	return Length{Unit: UnitMm, Value: val}
}

// Pt returns a new pt length:
// UnitPt = points -- 1pt = 1/72th of 1in
func Pt(val float32) Length {
	return Length{Unit: UnitPt, Value: val}
}

// Pc returns a new pc length:
// UnitPc = picas -- 1pc = 1/6th of 1in
func Pc(val float32) Length {
	return Length{Unit: UnitPc, Value: val}
}

// Pct returns a new % length:
// UnitPct = percentage of the reference length
func Pct(val float32) Length {
	return Length{Unit: UnitPct, Value: val}
}

// FromInt returns the px length for an integer, the conversion
// applied to plain integers in attribute positions.
func FromInt(val int) Length {
	return Px(float32(val))
}

// FromFloat returns the % length for a float, the conversion
// applied to plain floats in attribute positions.
func FromFloat(val float32) Length {
	return Pct(val)
}
