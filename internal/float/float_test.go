// seehuhn.de/go/pdfobj - basic PDF objects and their serialization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package float

import (
	"math"
	"strconv"
	"testing"
)

func TestFormat32(t *testing.T) {
	cases := []struct {
		in  float32
		out string
	}{
		{0, "0."},
		{float32(math.Copysign(0, -1)), "0."},
		{1, "1."},
		{-25, "-25."},
		{5, "5."},
		{0.5, ".5"},
		{-0.25, "-.25"},
		{3.125, "3.125"},
		{0.1, ".1"},
		{1e-7, ".0000001"},
		{123456789, "123456790."},
		{1.5e10, "15000000000."},
	}
	for _, test := range cases {
		out := Format32(test.in)
		if out != test.out {
			t.Errorf("Format32(%g) = %q, expected %q", test.in, out, test.out)
		}
	}
}

func TestFormat32RoundTrip(t *testing.T) {
	cases := []float32{
		1.0 / 3.0,
		math.Pi,
		-math.E,
		math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		72.27,
	}
	for _, x := range cases {
		s := Format32(x)
		y, err := strconv.ParseFloat(s, 32)
		if err != nil {
			t.Errorf("%g: cannot parse %q: %v", x, s, err)
			continue
		}
		if float32(y) != x {
			t.Errorf("%g: %q reads back as %g", x, s, y)
		}
	}
}
