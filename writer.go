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
	"fmt"
	"io"
)

// Writer writes indirect object definitions to an io.Writer, and records the
// byte offset of every object.  The offsets are what a cross-reference table
// needs.  Writer does not write a file header, cross-reference table or
// trailer.
type Writer struct {
	w       *posWriter
	offsets map[Reference]int64
}

// NewWriter returns a Writer which writes to w.  Offsets are counted from the
// current position of w, which is taken to be 0.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:       &posWriter{w: w},
		offsets: make(map[Reference]int64),
	}
}

// Put writes the definition of obj, followed by a newline.
// Each reference can only be written once.
func (pdf *Writer) Put(obj IndirectObject) error {
	ref := obj.Ref()
	if _, seen := pdf.offsets[ref]; seen {
		return fmt.Errorf("%s: %w", ref, ErrDuplicate)
	}

	pos := pdf.w.pos
	err := obj.WriteDefinition(pdf.w)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\n"))
	if err != nil {
		return err
	}
	pdf.offsets[ref] = pos
	return nil
}

// Pos returns the number of bytes written so far.
func (pdf *Writer) Pos() int64 {
	return pdf.w.pos
}

// Offsets returns the byte offsets of all objects written so far.
func (pdf *Writer) Offsets() map[Reference]int64 {
	res := make(map[Reference]int64, len(pdf.offsets))
	for ref, pos := range pdf.offsets {
		res[ref] = pos
	}
	return res
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
