// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package units supports the CSS length units that SVG attributes accept
(px, em, in, %, etc).

A [Length] stores a unit along with a value. Its canonical text has the
value rounded to exactly two decimals followed by the unit suffix, as in
"3.00px" or "50.00%". Hashing and equality use that rounded text, so
lengths that only differ past the second decimal are the same length.
*/
package units

import "github.com/coastalwhite/svg-definitions/base/enumtab"

// standard conversion factors for the absolute units, with
// Px = DPI-independent pixel
const (
	PxPerInch = 96.0
	MmPerInch = 25.4
	CmPerInch = 2.54
	PtPerInch = 72.0
	PcPerInch = 6.0
)

// Units is an enum that represents a unit (px, em, etc)
type Units int32

const (
	// UnitPx = pixels -- 1px = 1/96th of 1in
	UnitPx Units = iota

	// UnitEm = font size of the element
	UnitEm

	// UnitEx = x-height of the element's font
	UnitEx

	// UnitIn = inches -- 1in = 2.54cm = 96px
	UnitIn

	// UnitCm = centimeters -- 1cm = 96px/2.54
	UnitCm

	// UnitMm = millimeters -- 1mm = 1/10th of cm
	UnitMm

	// UnitPt = points -- 1pt = 1/72th of 1in
	UnitPt

	// UnitPc = picas -- 1pc = 1/6th of 1in
	UnitPc

	// UnitPct = percentage of the reference length
	UnitPct

	// UnitsN is the number of valid Units values.
	UnitsN
)

// UnitNames are the canonical suffixes of the units.
var UnitNames = [...]string{
	UnitPx:  "px",
	UnitEm:  "em",
	UnitEx:  "ex",
	UnitIn:  "in",
	UnitCm:  "cm",
	UnitMm:  "mm",
	UnitPt:  "pt",
	UnitPc:  "pc",
	UnitPct: "%",
}

var units = enumtab.New[Units]("Units", UnitNames[:])

// String returns the canonical suffix of the unit.
func (u Units) String() string {
	return units.String(u)
}

// SetString sets the unit from its suffix, and returns an
// error if the string is not a known unit.
func (u *Units) SetString(s string) error {
	v, err := units.Parse(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// IsValid returns whether the value is a valid unit.
func (u Units) IsValid() bool {
	return units.Valid(u)
}

// IsAbsolute returns whether the unit has a fixed size in pixels.
func (u Units) IsAbsolute() bool {
	switch u {
	case UnitPx, UnitIn, UnitCm, UnitMm, UnitPt, UnitPc:
		return true
	}
	return false
}

// UnitsString returns the unit with the given suffix.
func UnitsString(s string) (Units, error) {
	return units.Parse(s)
}

// UnitsValues returns all units in enum order.
func UnitsValues() []Units {
	vs := units.Values()
	out := make([]Units, len(vs))
	copy(out, vs)
	return out
}

// pxPer returns the number of px in one u, for absolute units.
func pxPer(u Units) float32 {
	switch u {
	case UnitPx:
		return 1
	case UnitIn:
		return PxPerInch
	case UnitCm:
		return PxPerInch / CmPerInch
	case UnitMm:
		return PxPerInch / MmPerInch
	case UnitPt:
		return PxPerInch / PtPerInch
	case UnitPc:
		return PxPerInch / PcPerInch
	}
	return 0
}
