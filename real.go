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

package pdfobj

import (
	"io"
	"math"

	"seehuhn.de/go/pdfobj/internal/float"
)

// Real represents a real number in a PDF file.
// Use [NewReal] to create values; the zero value represents 0.
type Real struct {
	val float32
}

// NewReal returns a PDF real number with value x.
// NaN and infinite values cannot be represented in PDF and
// cause a [*ConstructionError] wrapping [ErrNonFinite].
func NewReal(x float32) (Real, error) {
	if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
		return Real{}, &ConstructionError{Object: "real", Err: ErrNonFinite}
	}
	if x == 0 {
		x = 0 // turn -0 into +0
	}
	return Real{val: x}, nil
}

// MustReal is like [NewReal] but panics if x is not finite.
func MustReal(x float32) Real {
	r, err := NewReal(x)
	if err != nil {
		panic(err)
	}
	return r
}

// Value returns the stored value.
func (x Real) Value() float32 {
	return x.val
}

// Float implements the [Number] interface.
func (x Real) Float() float64 {
	return float64(x.val)
}

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	_, err := w.Write([]byte(float.Format32(x.val)))
	return err
}
