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
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// StringObject is implemented by the two forms of PDF strings,
// [LiteralString] and [HexString].
type StringObject interface {
	Object

	// Bytes returns the string data, with all encoding removed.
	Bytes() []byte
}

// LiteralString represents a PDF string written in the literal form
// "(...)".  The string is escaped when it is created, and can be written
// to a PDF file without further processing.
type LiteralString struct {
	escaped string
}

// NewLiteralString creates a literal string holding the bytes of s.
//
// Backslashes are escaped.  Parentheses are kept as they are if they occur in
// matching pairs, and are escaped otherwise.  Bytes outside the printable
// ASCII range are written as three-digit octal escapes.
func NewLiteralString(s string) LiteralString {
	unmatched := unmatchedParens(s)

	var funny int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c > 0x7e || c == '\\' || unmatched[i] {
			funny++
		}
	}
	if funny == 0 {
		return LiteralString{escaped: s}
	}

	b := &strings.Builder{}
	b.Grow(len(s) + 3*funny)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case unmatched[i]:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(b, `\%03o`, c)
		default:
			b.WriteByte(c)
		}
	}
	return LiteralString{escaped: b.String()}
}

// unmatchedParens returns the positions of all parentheses in s which do
// not belong to a matching pair.
func unmatchedParens(s string) map[int]bool {
	var res map[int]bool
	var open []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			open = append(open, i)
		case ')':
			if len(open) > 0 {
				open = open[:len(open)-1]
				continue
			}
			if res == nil {
				res = make(map[int]bool)
			}
			res[i] = true
		}
	}
	if len(open) > 0 && res == nil {
		res = make(map[int]bool, len(open))
	}
	for _, i := range open {
		res[i] = true
	}
	return res
}

// Escaped returns the string contents as written between the parentheses.
func (x LiteralString) Escaped() string {
	return x.escaped
}

// Bytes undoes the escaping and returns the original string data.
// This implements the [StringObject] interface.
func (x LiteralString) Bytes() []byte {
	s := x.escaped
	res := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			res = append(res, c)
			continue
		}
		i++
		c = s[i]
		switch c {
		case 'n':
			res = append(res, '\n')
		case 'r':
			res = append(res, '\r')
		case 't':
			res = append(res, '\t')
		case 'b':
			res = append(res, '\b')
		case 'f':
			res = append(res, '\f')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			val := c - '0'
			for k := 0; k < 2 && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7'; k++ {
				i++
				val = val<<3 | (s[i] - '0')
			}
			res = append(res, val)
		default:
			res = append(res, c)
		}
	}
	return res
}

// PDF implements the [Object] interface.
func (x LiteralString) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "("+x.escaped+")")
	return err
}

// TextString creates a string object using the PDF "text string" encoding.
// Strings which consist only of printable ASCII characters, tabs and line
// breaks are stored as they are.  All other strings are NFC-normalised and
// stored in UTF-16BE encoding, with a byte order mark.
func TextString(s string) LiteralString {
	if isPlainASCII(s) {
		return NewLiteralString(s)
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	u, err := enc.String(norm.NFC.String(s))
	if err != nil {
		return NewLiteralString(s)
	}
	return NewLiteralString(u)
}

// Text interprets x as a PDF text string and returns the corresponding
// UTF-8 encoded Go string.
func (x LiteralString) Text() string {
	b := x.Bytes()
	if !bytes.HasPrefix(b, utf16BOM) {
		return string(b)
	}
	dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	s, err := dec.Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

var utf16BOM = []byte{0xFE, 0xFF}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// Date creates a PDF date string, in the format "D:YYYYMMDDHHmmSS+HH'mm".
func Date(t time.Time) LiteralString {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return NewLiteralString(s)
}

// Lang creates a text string holding a BCP 47 language tag, as used for
// the /Lang entry of the document catalog.
func Lang(tag language.Tag) LiteralString {
	return TextString(tag.String())
}
