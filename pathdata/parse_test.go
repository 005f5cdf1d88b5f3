// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]string{
		"":                                  "",
		"M0,0 L10,0 L0,10 Z":                "M 0.00 0.00 L 10.00 0.00 L 0.00 10.00 Z",
		"M 0 0 10 0 0 10 z":                 "M 0.00 0.00 L 10.00 0.00 L 0.00 10.00 Z",
		"m1 2 3 4":                          "m 1.00 2.00 l 3.00 4.00",
		"M1.5.5":                            "M 1.50 0.50",
		"M1-2":                              "M 1.00 -2.00",
		"M1e1,2E-1":                         "M 10.00 0.20",
		"M0 0H5V5h-1v-1":                    "M 0.00 0.00 H 5.00 V 5.00 h -1.00 v -1.00",
		"M5 5C30.5 15.2 20.7 5.8 10.1 10.9": "M 5.00 5.00 C 30.50 15.20, 20.70 5.80, 10.10 10.90",
		"M5 5S20.7 5.8 10.1 10.9":           "M 5.00 5.00 S 20.70 5.80, 10.10 10.90",
		"M5 5q1 2 3 4t5 6":                  "M 5.00 5.00 q 1.00 2.00, 3.00 4.00 t 5.00 6.00",
		"M5 5A4.5 8 3.14 1 0 10 10":         "M 5.00 5.00 A 4.50 8.00 3.14 1 0 10.00 10.00",
		"M5 5a4.5 8 3.14 1010 10":           "M 5.00 5.00 a 4.50 8.00 3.14 1 0 10.00 10.00",
		"M1 1L2 2 3 3":                      "M 1.00 1.00 L 2.00 2.00 L 3.00 3.00",
		"  M +1 , 2\n\tL 3 4  ":             "M 1.00 2.00 L 3.00 4.00",
		"M0 0ZM1 1z":                        "M 0.00 0.00 Z M 1.00 1.00 Z",
	}
	for in, want := range tests {
		d, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, d.String(), in)
	}
}

func TestParseCanonical(t *testing.T) {
	d := New().MoveTo(v2(5, 5)).ArcTo(v2(10, 10), v2(4.5, 8), 3.14, true, false).
		CurveTo(v2(1, 2), v2(3, 4), v2(5, 6)).RQuadStringTo(v2(-1, -1)).ClosePath()
	back, err := Parse(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("X 1 2")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = Parse("1 2")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = Parse("M 1")
	assert.ErrorIs(t, err, ErrParamMismatch)

	_, err = Parse("M 1 2 L")
	assert.ErrorIs(t, err, ErrParamMismatch)

	_, err = Parse("M 1 2 Z 3")
	assert.ErrorIs(t, err, ErrParamMismatch)

	_, err = Parse("M 1 2 A 1 1 0 2 0 3 3")
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 14, se.Offset)
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Parse("M 1e 2")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Offset)

	_, err = Parse("M - 2")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Offset)
}
