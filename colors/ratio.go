// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"
	"strconv"
)

// ratioScale is the number of steps in a [Ratio].
const ratioScale = 10000

// Ratio is an alpha value in [0, 1], stored in ten-thousandths
// so that it renders with exactly 4 decimals.
type Ratio uint16

// NewRatio returns the [Ratio] closest to f, clamped to [0, 1].
// NaN is treated as 0.
func NewRatio(f float64) Ratio {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= 1:
		return ratioScale
	}
	return Ratio(math.Round(f * ratioScale))
}

// Float returns the ratio as a float in [0, 1].
func (r Ratio) Float() float64 {
	return float64(min(r, ratioScale)) / ratioScale
}

// Uint8 returns the ratio scaled to [0, 255].
func (r Ratio) Uint8() uint8 {
	return uint8(math.Round(r.Float() * 255))
}

// AppendText appends the 4-decimal rendering, such as 0.1000.
func (r Ratio) AppendText(dst []byte) []byte {
	r = min(r, ratioScale)
	dst = strconv.AppendUint(dst, uint64(r/ratioScale), 10)
	dst = append(dst, '.')
	frac := uint64(r % ratioScale)
	for div := uint64(ratioScale / 10); div > 0; div /= 10 {
		dst = append(dst, byte('0'+frac/div%10))
	}
	return dst
}

func (r Ratio) String() string {
	return string(r.AppendText(nil))
}
