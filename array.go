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
	"iter"
	"strconv"
	"strings"
)

// Array represent an array of objects in a PDF file.
// Elements which are nil are written as "null".
type Array []Object

// NewArray returns an array holding the given objects, in order.
func NewArray(objs ...Object) Array {
	res := make(Array, len(objs))
	copy(res, objs)
	return res
}

// ArrayFromSeq collects the objects produced by seq into an array.
func ArrayFromSeq(seq iter.Seq[Object]) Array {
	var res Array
	for obj := range seq {
		res = append(res, obj)
	}
	return res
}

// Push appends obj to the array.
func (x *Array) Push(obj Object) {
	*x = append(*x, obj)
}

func (x Array) String() string {
	res := []string{}
	res = append(res, "Array")
	res = append(res, strconv.FormatInt(int64(len(x)), 10)+" elements")
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := w.Write([]byte("["))
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err := w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		err = writeObject(w, val)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("]"))
	return err
}
