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

// Package pdfobj implements the basic object types of PDF files, and
// their serialization.
//
// The following types implement the native PDF object types.
// All of these implement the [Object] interface:
//
//	Array
//	Bool
//	Dict
//	HexString
//	Integer
//	LiteralString
//	Name
//	Null
//	Real
//	*Stream
//
// Objects which must be referenced from elsewhere in a file are wrapped into
// an [*Indirect], which attaches an object number and a generation number.
// Object numbers are handed out by a [NumberSource], of which there must be
// exactly one per PDF file:
//
//	numbers := pdfobj.NewNumberSource()
//	pages := numbers.Alloc(pdfobj.Dict{
//	    "Type":  pdfobj.Name("Pages"),
//	    "Kids":  pdfobj.Array{},
//	    "Count": pdfobj.Integer(0),
//	})
//	catalog := numbers.Alloc(pdfobj.Dict{
//	    "Type":  pdfobj.Name("Catalog"),
//	    "Pages": pages,
//	})
//	fmt.Println(catalog.Definition())
//
// Placing an indirect object into an [Array] or [Dict] writes a reference
// like "1 0 R".  The object itself is written by [Indirect.WriteDefinition],
// or by a [Writer] which also records the byte offset of every object.
//
// All validation happens when objects are created: constructors like
// [NewHexString], [NewReal] and [NewStreamFromData] return an error instead
// of an invalid object.
package pdfobj
