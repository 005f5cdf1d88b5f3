// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"image/color"
	"math"

	"github.com/coastalwhite/svg-definitions/colors"
	"github.com/coastalwhite/svg-definitions/pathdata"
	"github.com/coastalwhite/svg-definitions/units"
)

// Int returns an [Integer], clamped to the int32 range.
func Int(v int) Integer {
	return Integer(min(max(int64(v), math.MinInt32), math.MaxInt32))
}

// Px returns a px [Length].
func Px(v int) Length {
	return Length{Length: units.FromInt(v)}
}

// Pct returns a % [Length].
func Pct(v float32) Length {
	return Length{Length: units.FromFloat(v)}
}

// From converts common Go values to a [Value]:
// integers become [Integer], floats become [Float], [4]int32 becomes
// [ViewBox], colors become [Color], [pathdata.Data] becomes [Path],
// [units.Length] becomes [Length] and strings become [Text].
// A Value is returned as is.
func From(v any) (Value, error) {
	switch v := v.(type) {
	case Value:
		return v, nil
	case int:
		return fromInt64(int64(v))
	case int8:
		return Integer(v), nil
	case int16:
		return Integer(v), nil
	case int32:
		return Integer(v), nil
	case int64:
		return fromInt64(v)
	case uint8:
		return Integer(v), nil
	case uint16:
		return Integer(v), nil
	case uint32:
		return fromInt64(int64(v))
	case uint:
		if v > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d overflows an integer", ErrInvalidValue, v)
		}
		return Integer(v), nil
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case [4]int32:
		return NewViewBox(v[0], v[1], v[2], v[3]), nil
	case colors.Color:
		return NewColor(v), nil
	case color.Color:
		return NewColor(colors.FromImage(v)), nil
	case pathdata.Data:
		return NewPathDefinition(v), nil
	case units.Length:
		return Length{Length: v}, nil
	case string:
		return NewText(v), nil
	}
	return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
}

func fromInt64(v int64) (Value, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d overflows an integer", ErrInvalidValue, v)
	}
	return Integer(v), nil
}
