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
	"encoding/hex"
	"io"
	"strings"
)

// HexString represents a PDF string written in the hexadecimal form
// "<...>".  The digits are stored in upper case, and always come in pairs.
type HexString struct {
	digits string
}

// NewHexString creates a hexadecimal string from the digits in s.
// All characters must be hexadecimal digits, otherwise a [*ValidationError]
// wrapping [ErrNotHex] is returned.  If the number of digits is odd, a final
// "0" is appended.
func NewHexString(s string) (HexString, error) {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return HexString{}, &ValidationError{Object: "hex string", Pos: i, Err: ErrNotHex}
		}
	}
	digits := strings.ToUpper(s)
	if len(digits)%2 != 0 {
		digits += "0"
	}
	return HexString{digits: digits}, nil
}

// NewHexStringFromDigits is like [NewHexString], but takes the digits as a
// byte slice.
func NewHexStringFromDigits(digits []byte) (HexString, error) {
	return NewHexString(string(digits))
}

// HexEncode creates a hexadecimal string which represents data.
func HexEncode(data []byte) HexString {
	return HexString{digits: strings.ToUpper(hex.EncodeToString(data))}
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// Digits returns the normalised hexadecimal digits.
func (x HexString) Digits() string {
	return x.digits
}

// Bytes returns the decoded string data.
// This implements the [StringObject] interface.
func (x HexString) Bytes() []byte {
	res, err := hex.DecodeString(x.digits)
	if err != nil {
		// x.digits was validated on construction
		panic(err)
	}
	return res
}

// PDF implements the [Object] interface.
func (x HexString) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "<"+x.digits+">")
	return err
}
