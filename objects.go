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
	"bytes"
	"io"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Object represents an object in a PDF file.  The basic types of PDF
// objects, which implement this interface, are [Array], [Bool], [Dict],
// [HexString], [Integer], [LiteralString], [Name], [Null], [Real],
// [*Stream] and, for references to indirect objects, [Reference] and
// [*Indirect].
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Number is implemented by the numeric objects [Integer] and [Real].
type Number interface {
	Object
	Float() float64
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := w.Write([]byte(s))
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int32

// Int converts any Go integer to an [Integer].  Values which do not fit into
// 32 bits cause an error.
func Int[T constraints.Integer](x T) (Integer, error) {
	if x < 0 && int64(x) < math.MinInt32 || x > 0 && uint64(x) > math.MaxInt32 {
		return 0, &ConstructionError{Object: "integer", Err: errOutOfRange}
	}
	return Integer(x), nil
}

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	s := strconv.FormatInt(int64(x), 10)
	_, err := w.Write([]byte(s))
	return err
}

// Float implements the [Number] interface.
func (x Integer) Float() float64 {
	return float64(x)
}

// Null represents the PDF null object.
type Null struct{}

// PDF implements the [Object] interface.
func (Null) PDF(w io.Writer) error {
	_, err := w.Write([]byte("null"))
	return err
}

// writeObject writes obj to w, using "null" for nil objects.
func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		return Null{}.PDF(w)
	}
	return obj.PDF(w)
}

// Format returns the direct text of obj, exactly as
// it is written to a PDF file.  A nil object is formatted as "null".
func Format(obj Object) string {
	buf := &bytes.Buffer{}
	err := writeObject(buf, obj)
	if err != nil {
		panic(err)
	}
	return buf.String()
}
