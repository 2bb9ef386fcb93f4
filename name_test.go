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

import "testing"

func TestName(t *testing.T) {
	cases := []struct {
		in        Name
		sanitized string
	}{
		{"Name1", "Name1"},
		{"ASomewhatLongerName", "ASomewhatLongerName"},
		{"@pattern", "@pattern"},
		{"A;Name_With-Various***Characters?", "A;Name_With-Various***Characters?"},
		{"1.2", "1.2"},
		{"My Name", "My#20Name"},
		{"Lime Green", "Lime#20Green"},
		{"paired()parentheses", "paired#28#29parentheses"},
		{"The_Key_of_F#_Minor", "The_Key_of_F#23_Minor"},
		{"a/b", "a#2Fb"},
		{"<>[]{}%", "#3C#3E#5B#5D#7B#7D#25"},
		{"tab\there", "tab#09here"},
		{"Bär", "B#C3#A4r"},
		{"", ""},
	}
	for _, test := range cases {
		s := test.in.Sanitized()
		if s != test.sanitized {
			t.Errorf("%q: expected %q but got %q", test.in, test.sanitized, s)
		}
		out := Format(test.in)
		if out != "/"+test.sanitized {
			t.Errorf("%q: expected %q but got %q", test.in, "/"+test.sanitized, out)
		}
	}
}
