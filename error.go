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
	"errors"
	"strconv"
)

var (
	// ErrNotHex indicates a character which is not a hexadecimal digit.
	ErrNotHex = errors.New("not a hexadecimal digit")

	// ErrLengthMismatch indicates that the /Length entry of a stream
	// dictionary disagrees with the size of the stream data.
	ErrLengthMismatch = errors.New("/Length does not match stream data")

	// ErrNonFinite indicates an attempt to store NaN or an infinity
	// in a PDF real number.
	ErrNonFinite = errors.New("non-finite real number")

	// ErrReservedNumber indicates an attempt to use object number 0,
	// which is reserved for the head of the free list.
	ErrReservedNumber = errors.New("object number 0 is reserved")

	// ErrDuplicate indicates that an indirect object was written twice.
	ErrDuplicate = errors.New("duplicate indirect object")

	errOutOfRange = errors.New("value out of range")
)

// ValidationError indicates that the data supplied for a PDF object
// violates the rules for this kind of object.
type ValidationError struct {
	Object string // the kind of object, e.g. "hex string"
	Pos    int    // byte offset of the problem, or -1 if not applicable
	Err    error
}

func (err *ValidationError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos >= 0 {
		tail = " (at byte " + strconv.Itoa(err.Pos) + ")"
	}
	return "invalid PDF " + err.Object + middle + tail
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

// ConstructionError indicates that a PDF object could not be created from
// the given Go value.
type ConstructionError struct {
	Object string
	Err    error
}

func (err *ConstructionError) Error() string {
	msg := "cannot construct PDF " + err.Object
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ConstructionError) Unwrap() error {
	return err.Err
}
