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

// Package float formats floating point numbers for use in PDF files.
package float

import (
	"strconv"
	"strings"
)

// Format32 returns the shortest decimal representation of x which reads back
// as the same float32.  Exponents are never used, a leading zero before the
// decimal point is omitted, and integral values end in a decimal point so
// that the result is always recognised as a real number.
//
// The caller must ensure that x is finite.
func Format32(x float32) string {
	if x == 0 {
		return "0."
	}
	out := strconv.FormatFloat(float64(x), 'f', -1, 32)
	if !strings.Contains(out, ".") {
		return out + "."
	}
	if strings.HasPrefix(out, "0.") {
		out = out[1:]
	} else if strings.HasPrefix(out, "-0.") {
		out = "-" + out[2:]
	}
	return out
}
