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
	"strings"
)

// Name represents a name object in a PDF file.  The value is the name as a
// sequence of bytes, without the leading slash and without any "#"
// escapes.
type Name string

// Sanitized returns the name in the form used inside a PDF file, but without
// the leading slash.  White-space, delimiters, the number sign and all bytes
// outside the printable ASCII range are replaced by "#" followed by two
// upper-case hexadecimal digits.
func (x Name) Sanitized() string {
	s := string(x)

	var funny int
	for i := 0; i < len(s); i++ {
		if needsEscape(s[i]) {
			funny++
		}
	}
	if funny == 0 {
		return s
	}

	b := &strings.Builder{}
	b.Grow(len(s) + 2*funny)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if needsEscape(c) {
			b.WriteByte('#')
			b.WriteByte(hexDigitsUpper[c>>4])
			b.WriteByte(hexDigitsUpper[c&15])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "/"+x.Sanitized())
	return err
}

func needsEscape(c byte) bool {
	return isSpace[c] || isDelimiter[c] || c < 0x21 || c > 0x7e || c == '#'
}

const hexDigitsUpper = "0123456789ABCDEF"

var (
	isSpace = map[byte]bool{
		0:  true,
		9:  true,
		10: true,
		12: true,
		13: true,
		32: true,
	}
	isDelimiter = map[byte]bool{
		'(': true,
		')': true,
		'<': true,
		'>': true,
		'[': true,
		']': true,
		'{': true,
		'}': true,
		'/': true,
		'%': true,
	}
)
