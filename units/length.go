// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/coastalwhite/svg-definitions/base/hashx"
	"github.com/coastalwhite/svg-definitions/base/prec"
)

// ErrInvalidLength is returned when a string is not a valid length.
var ErrInvalidLength = errors.New("units: invalid length")

// Length is a value with a unit, such as 3px or 50%.
type Length struct {
	// Unit is the unit of the value.
	Unit Units

	// Value is the numeric value, in Unit.
	Value float32
}

// New returns a new [Length].
func New(unit Units, value float32) Length {
	return Length{Unit: unit, Value: value}
}

// Rounded returns the value rounded to the two decimals it renders with.
func (l Length) Rounded() float32 {
	return float32(prec.Round(float64(l.Value)))
}

// AppendText appends the canonical rendering, such as 3.00px, to dst.
func (l Length) AppendText(dst []byte) []byte {
	dst = prec.Append(dst, float64(l.Value))
	return append(dst, l.Unit.String()...)
}

func (l Length) String() string {
	return string(l.AppendText(nil))
}

// WriteHash writes the canonical rendering to the hash builder,
// so only the rounded value contributes.
func (l Length) WriteHash(b *hashx.Builder) {
	b.Scratch = l.AppendText(b.Scratch[:0])
	b.Bytes(b.Scratch)
}

// Equal returns whether l and o have the same unit and rounded value.
func (l Length) Equal(o Length) bool {
	return l.Unit == o.Unit && prec.String(float64(l.Value)) == prec.String(float64(o.Value))
}

// Convert returns the length expressed in the given unit.
// Only conversions between absolute units are possible; for
// any other pair it returns false.
func (l Length) Convert(to Units) (Length, bool) {
	if l.Unit == to {
		return l, true
	}
	if !l.Unit.IsAbsolute() || !to.IsAbsolute() {
		return l, false
	}
	return Length{Unit: to, Value: l.Value * pxPer(l.Unit) / pxPer(to)}, true
}

// Parse parses a number followed by an optional unit suffix,
// such as "3", "3.5px" or "50%". A bare number is in px.
func Parse(s string) (Length, error) {
	str := strings.TrimSpace(s)
	unit := UnitPx
	num := str
	for u, nm := range UnitNames {
		if len(str) > len(nm) && strings.EqualFold(str[len(str)-len(nm):], nm) {
			unit = Units(u)
			num = strings.TrimSpace(str[:len(str)-len(nm)])
			break
		}
	}
	f, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	v := float32(f)
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return Length{}, fmt.Errorf("%w: %q is not finite", ErrInvalidLength, s)
	}
	return Length{Unit: unit, Value: v}, nil
}
