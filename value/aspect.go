// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coastalwhite/svg-definitions/base/hashx"
)

// ErrInvalidAspectRatio is returned when text is not a valid
// preserveAspectRatio value.
var ErrInvalidAspectRatio = errors.New("value: invalid preserveAspectRatio")

// Aligns are the bit flags of the preserveAspectRatio alignment.
// A valid alignment is NoAlign, or exactly one X flag and one Y flag.
type Aligns int32

const (
	NoAlign Aligns = 0                  // do not preserve uniform scaling
	XMin    Aligns = 1 << (iota - 1)    // align min-x with the smallest x of the viewport
	XMid                                // align the x midpoints
	XMax                                // align min-x+width with the largest x of the viewport
	YMin                                // align min-y with the smallest y of the viewport
	YMid                                // align the y midpoints
	YMax                                // align min-y+height with the largest y of the viewport
	XMask   Aligns = XMin | XMid | XMax // mask for X values
	YMask   Aligns = YMin | YMid | YMax // mask for Y values
)

var (
	xAlignNames = map[Aligns]string{XMin: "xMin", XMid: "xMid", XMax: "xMax"}
	yAlignNames = map[Aligns]string{YMin: "YMin", YMid: "YMid", YMax: "YMax"}
)

// MeetOrSlice is how the view box is scaled relative to the viewport.
type MeetOrSlice int32

const (
	// Meet means the entire view box is visible within the viewport,
	// scaled up as much as possible.
	Meet MeetOrSlice = iota

	// Slice means the view box covers the entire viewport,
	// scaled down as much as possible.
	Slice
)

// AspectRatio is the value of preserveAspectRatio.
// The zero value is none.
type AspectRatio struct {
	Align       Aligns
	MeetOrSlice MeetOrSlice
}

// NewAspectRatio returns a new [AspectRatio].
func NewAspectRatio(align Aligns, ms MeetOrSlice) AspectRatio {
	return AspectRatio{Align: align, MeetOrSlice: ms}
}

// IsValid returns whether the alignment is none or one X and one Y flag.
func (ar AspectRatio) IsValid() bool {
	if ar.Align == NoAlign {
		return true
	}
	x, y := ar.Align&XMask, ar.Align&YMask
	return ar.Align == x|y && xAlignNames[x] != "" && yAlignNames[y] != ""
}

// ParseAspectRatio parses values such as "xMidYMid", "xMaxYMax slice"
// and "none".
func ParseAspectRatio(s string) (AspectRatio, error) {
	fs := strings.Fields(s)
	if len(fs) == 0 || len(fs) > 2 {
		return AspectRatio{}, fmt.Errorf("%w: %q", ErrInvalidAspectRatio, s)
	}
	var ar AspectRatio
	if fs[0] != "none" {
		if len(fs[0]) != 8 {
			return AspectRatio{}, fmt.Errorf("%w: bad alignment %q", ErrInvalidAspectRatio, fs[0])
		}
		for a, n := range xAlignNames {
			if n == fs[0][:4] {
				ar.Align |= a
			}
		}
		for a, n := range yAlignNames {
			if n == fs[0][4:] {
				ar.Align |= a
			}
		}
		if ar.Align&XMask == 0 || ar.Align&YMask == 0 {
			return AspectRatio{}, fmt.Errorf("%w: bad alignment %q", ErrInvalidAspectRatio, fs[0])
		}
	}
	if len(fs) == 2 {
		switch fs[1] {
		case "meet":
		case "slice":
			ar.MeetOrSlice = Slice
		default:
			return AspectRatio{}, fmt.Errorf("%w: bad meetOrSlice %q", ErrInvalidAspectRatio, fs[1])
		}
	}
	return ar, nil
}

func (ar AspectRatio) isValue()                   {}
func (ar AspectRatio) Kind() Kinds                { return KindAspectRatio }
func (ar AspectRatio) String() string             { return string(ar.AppendText(nil)) }
func (ar AspectRatio) WriteHash(b *hashx.Builder) { writeText(b, ar) }
func (ar AspectRatio) Clone() Value               { return ar }

// AppendText appends the alignment, followed by " slice" when set.
// Meet is the default and is not written.
func (ar AspectRatio) AppendText(dst []byte) []byte {
	if ar.Align == NoAlign {
		dst = append(dst, "none"...)
	} else {
		dst = append(dst, xAlignNames[ar.Align&XMask]...)
		dst = append(dst, yAlignNames[ar.Align&YMask]...)
	}
	if ar.MeetOrSlice == Slice {
		dst = append(dst, " slice"...)
	}
	return dst
}
