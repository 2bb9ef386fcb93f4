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
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reference identifies an indirect object in a PDF file.
// The lower 32 bits represent the object number, the next 16 bits the
// generation number.
type Reference uint64

// NewReference combines an object number and a generation number.
func NewReference(number uint32, generation uint16) Reference {
	return Reference(uint64(number) | uint64(generation)<<32)
}

// Number returns the object number.
func (x Reference) Number() uint32 {
	return uint32(x)
}

// Generation returns the generation number.
func (x Reference) Generation() uint16 {
	return uint16(x >> 32)
}

func (x Reference) String() string {
	res := []string{
		"obj_",
		strconv.FormatUint(uint64(x.Number()), 10),
	}
	gen := x.Generation()
	if gen > 0 {
		res = append(res, "@", strconv.FormatUint(uint64(gen), 10))
	}
	return strings.Join(res, "")
}

// PDF writes the reference in the form "12 0 R".
// This implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	if x>>48 != 0 {
		return &ValidationError{
			Object: "reference",
			Pos:    -1,
			Err:    fmt.Errorf("invalid reference 0x%016x", uint64(x)),
		}
	}
	if x.Number() == 0 {
		return &ValidationError{Object: "reference", Pos: -1, Err: ErrReservedNumber}
	}

	_, err := fmt.Fprintf(w, "%d %d R", x.Number(), x.Generation())
	return err
}

// IndirectObject is implemented by objects which carry an object number and
// a generation number, and which can thus be referenced from elsewhere in the
// file.
type IndirectObject interface {
	Object

	// Ref returns the object and generation number.
	Ref() Reference

	// WriteDefinition writes the complete "obj ... endobj" block.
	WriteDefinition(w io.Writer) error
}

// Indirect attaches an object and generation number to an object.
//
// When an Indirect is used as an element of an [Array] or as a value in a
// [Dict], only the reference "n g R" is written.  The object itself
// is written by [Indirect.WriteDefinition].
type Indirect struct {
	ref Reference
	obj Object
}

var _ IndirectObject = (*Indirect)(nil)

// NewIndirect attaches the reference ref to obj.
// Object number 0 is reserved and cannot be used.
func NewIndirect(ref Reference, obj Object) (*Indirect, error) {
	if ref.Number() == 0 {
		return nil, &ConstructionError{Object: "indirect object", Err: ErrReservedNumber}
	}
	return &Indirect{ref: ref, obj: obj}, nil
}

// Ref returns the object and generation number of x.
func (x *Indirect) Ref() Reference {
	return x.ref
}

// Object returns the wrapped object.
func (x *Indirect) Object() Object {
	return x.obj
}

// PDF writes the reference to x.
// This implements the [Object] interface.
func (x *Indirect) PDF(w io.Writer) error {
	return x.ref.PDF(w)
}

// WriteDefinition writes the indirect object definition
// "n g obj\n...\nendobj".
func (x *Indirect) WriteDefinition(w io.Writer) error {
	err := x.ref.PDF(io.Discard)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d %d obj\n", x.ref.Number(), x.ref.Generation())
	if err != nil {
		return err
	}
	err = writeObject(w, x.obj)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nendobj"))
	return err
}

// Reference returns the short form "n g R".
func (x *Indirect) Reference() string {
	return Format(x)
}

// Definition returns the full form "n g obj\n...\nendobj".
func (x *Indirect) Definition() string {
	buf := &bytes.Buffer{}
	err := x.WriteDefinition(buf)
	if err != nil {
		panic(err)
	}
	return buf.String()
}
