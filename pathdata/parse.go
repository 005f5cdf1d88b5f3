// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"errors"
	"fmt"
	"strconv"

	"goki.dev/mat32/v2"
)

var (
	// ErrUnknownCommand is returned for a letter that is not a path command,
	// or for operands that appear before the first command.
	ErrUnknownCommand = errors.New("pathdata: unknown command")

	// ErrParamMismatch is returned when a command has the wrong number
	// of operands.
	ErrParamMismatch = errors.New("pathdata: wrong number of parameters")

	// ErrSyntax is matched by every [SyntaxError].
	ErrSyntax = errors.New("pathdata: syntax error")
)

// SyntaxError reports a malformed number or flag.
type SyntaxError struct {
	// Offset is the byte offset of the bad token.
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pathdata: %s at offset %d", e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parse parses SVG path data and replays it through the builder, so the
// result is in canonical form. It handles repeated operands after a
// command (extra pairs after a move are lines), packed numbers such as
// "1.5.5" or "1-2", and compact arc flags.
func Parse(d string) (Data, error) {
	p := &scanner{s: d}
	out := New()
	var args [7]float32
	for {
		p.skipSep()
		if p.eof() {
			return out, nil
		}
		start := p.pos
		c := p.s[p.pos]
		if !isAlpha(c) {
			return Data{}, fmt.Errorf("%w: operand before any command at offset %d", ErrUnknownCommand, start)
		}
		cmd := DecodeCmd(rune(c))
		if cmd == PcErr {
			return Data{}, fmt.Errorf("%w %q at offset %d", ErrUnknownCommand, c, start)
		}
		p.pos++
		if cmd == PcZ || cmd == Pcz {
			out = out.ClosePath()
			p.skipSep()
			if !p.eof() && !isAlpha(p.s[p.pos]) {
				return Data{}, fmt.Errorf("%w: %c takes no operands, at offset %d", ErrParamMismatch, c, p.pos)
			}
			continue
		}
		for first := true; first || p.atNumber(); first = false {
			n := cmd.NumArgs()
			for i := 0; i < n; i++ {
				p.skipSep()
				if p.eof() || !p.atNumber() {
					return Data{}, fmt.Errorf("%w: %c needs %d operands, got %d at offset %d", ErrParamMismatch, cmd.Letter(), n, i, p.pos)
				}
				var err error
				if (cmd == PcA || cmd == Pca) && (i == 3 || i == 4) {
					args[i], err = p.flag()
				} else {
					args[i], err = p.number()
				}
				if err != nil {
					return Data{}, err
				}
			}
			out = out.apply(cmd, args[:n])
			switch cmd {
			case PcM:
				cmd = PcL
			case Pcm:
				cmd = Pcl
			}
			p.skipSep()
		}
	}
}

// apply adds the command with operands in SVG order.
func (d Data) apply(cmd Cmds, a []float32) Data {
	v := func(i int) mat32.Vec2 { return mat32.Vec2{X: a[i], Y: a[i+1]} }
	switch cmd {
	case PcM:
		return d.MoveTo(v(0))
	case Pcm:
		return d.RMoveTo(v(0))
	case PcL:
		return d.LineTo(v(0))
	case Pcl:
		return d.RLineTo(v(0))
	case PcH:
		return d.HorizontalLineTo(a[0])
	case Pch:
		return d.RHorizontalLineTo(a[0])
	case PcV:
		return d.VerticalLineTo(a[0])
	case Pcv:
		return d.RVerticalLineTo(a[0])
	case PcC:
		return d.CurveTo(v(4), v(0), v(2))
	case Pcc:
		return d.RCurveTo(v(4), v(0), v(2))
	case PcS:
		return d.SmoothCurveTo(v(2), v(0))
	case Pcs:
		return d.RSmoothCurveTo(v(2), v(0))
	case PcQ:
		return d.QuadCurveTo(v(2), v(0))
	case Pcq:
		return d.RQuadCurveTo(v(2), v(0))
	case PcT:
		return d.QuadStringTo(v(0))
	case Pct:
		return d.RQuadStringTo(v(0))
	case PcA:
		return d.ArcTo(v(5), v(0), a[2], a[3] != 0, a[4] != 0)
	case Pca:
		return d.RArcTo(v(5), v(0), a[2], a[3] != 0, a[4] != 0)
	}
	return d.ClosePath()
}

// scanner reads the tokens of path data.
type scanner struct {
	s   string
	pos int
}

func (p *scanner) eof() bool { return p.pos >= len(p.s) }

// skipSep skips whitespace and at most one comma.
func (p *scanner) skipSep() {
	comma := false
	for !p.eof() {
		switch c := p.s[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
		case c == ',' && !comma:
			comma = true
		default:
			return
		}
		p.pos++
	}
}

// atNumber returns whether the next byte can start a number.
func (p *scanner) atNumber() bool {
	if p.eof() {
		return false
	}
	c := p.s[p.pos]
	return isDigit(c) || c == '.' || c == '-' || c == '+'
}

// number reads one number. A second decimal point ends the number,
// so "1.5.5" is two numbers.
func (p *scanner) number() (float32, error) {
	start := p.pos
	if c := p.s[p.pos]; c == '-' || c == '+' {
		p.pos++
	}
	digits := p.digits()
	if !p.eof() && p.s[p.pos] == '.' {
		p.pos++
		digits += p.digits()
	}
	if digits == 0 {
		return 0, &SyntaxError{Offset: start, Msg: "malformed number"}
	}
	if !p.eof() && (p.s[p.pos] == 'e' || p.s[p.pos] == 'E') {
		p.pos++
		if !p.eof() && (p.s[p.pos] == '-' || p.s[p.pos] == '+') {
			p.pos++
		}
		if p.digits() == 0 {
			return 0, &SyntaxError{Offset: start, Msg: "malformed exponent"}
		}
	}
	f, err := strconv.ParseFloat(p.s[start:p.pos], 32)
	if err != nil {
		return 0, &SyntaxError{Offset: start, Msg: "number out of range"}
	}
	return float32(f), nil
}

func (p *scanner) digits() int {
	n := 0
	for !p.eof() && isDigit(p.s[p.pos]) {
		p.pos++
		n++
	}
	return n
}

// flag reads a single 0 or 1 arc flag, which need not be followed
// by a separator.
func (p *scanner) flag() (float32, error) {
	switch p.s[p.pos] {
	case '0':
		p.pos++
		return 0, nil
	case '1':
		p.pos++
		return 1, nil
	}
	return 0, &SyntaxError{Offset: p.pos, Msg: "invalid arc flag"}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
