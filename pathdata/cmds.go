// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

// Cmds are the commands within the path data.
type Cmds byte

const (
	// move pen, abs coords
	PcM Cmds = iota
	// move pen, rel coords
	Pcm
	// lineto, abs
	PcL
	// lineto, rel
	Pcl
	// horizontal lineto, abs
	PcH
	// horizontal lineto, rel
	Pch
	// vertical lineto, abs
	PcV
	// vertical lineto, rel
	Pcv
	// Bezier curveto, abs
	PcC
	// Bezier curveto, rel
	Pcc
	// smooth Bezier curveto, abs
	PcS
	// smooth Bezier curveto, rel
	Pcs
	// quadratic Bezier curveto, abs
	PcQ
	// quadratic Bezier curveto, rel
	Pcq
	// smooth quadratic Bezier curveto, abs
	PcT
	// smooth quadratic Bezier curveto, rel
	Pct
	// elliptical arc, abs
	PcA
	// elliptical arc, rel
	Pca
	// close path
	PcZ
	// close path
	Pcz
	// error -- invalid command
	PcErr
)

const cmdRunes = "MmLlHhVvCcSsQqTtAaZz"

// numArgs is the number of operands each command takes.
var numArgs = [...]int{
	PcM: 2, Pcm: 2,
	PcL: 2, Pcl: 2,
	PcH: 1, Pch: 1,
	PcV: 1, Pcv: 1,
	PcC: 6, Pcc: 6,
	PcS: 4, Pcs: 4,
	PcQ: 4, Pcq: 4,
	PcT: 2, Pct: 2,
	PcA: 7, Pca: 7,
	PcZ: 0, Pcz: 0,
}

// DecodeCmd decodes a rune into the corresponding command,
// or [PcErr] if it is not a path command.
func DecodeCmd(r rune) Cmds {
	for i, c := range cmdRunes {
		if c == r {
			return Cmds(i)
		}
	}
	return PcErr
}

// Letter returns the letter of the command, or '?' for [PcErr].
func (c Cmds) Letter() byte {
	if c >= PcErr {
		return '?'
	}
	return cmdRunes[c]
}

// NumArgs returns the number of operands the command takes.
func (c Cmds) NumArgs() int {
	if c >= PcErr {
		return 0
	}
	return numArgs[c]
}

// IsRelative returns whether the command uses relative coordinates.
func (c Cmds) IsRelative() bool {
	return c < PcErr && c%2 == 1
}

func (c Cmds) String() string {
	return string(rune(c.Letter()))
}
