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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArray(t *testing.T) {
	a := NewArray(Integer(1), NewLiteralString("two"))
	a.Push(Array{Name("three"), Bool(false)})
	a.Push(nil)
	a.Push(Dict{"Four": MustReal(4.5)})

	want := "[1 (two) [/three false] null << /Four 4.5 >>]"
	if out := Format(a); out != want {
		t.Errorf("expected %q but got %q", want, out)
	}
}

func TestArrayFromSeq(t *testing.T) {
	objs := []Object{Integer(3), Name("x"), Integer(1)}
	a := ArrayFromSeq(slices.Values(objs))
	if diff := cmp.Diff(Array(objs), a); diff != "" {
		t.Errorf("wrong array (-want +got):\n%s", diff)
	}
	if out := Format(a); out != "[3 /x 1]" {
		t.Errorf("wrong array %q", out)
	}

	// NewArray must not share storage with its argument
	b := NewArray(objs...)
	objs[0] = Integer(0)
	if b[0] != Integer(3) {
		t.Error("NewArray shares storage with its argument")
	}
}

func TestArrayString(t *testing.T) {
	cases := []struct {
		in  Array
		out string
	}{
		{nil, "<Array, 0 elements>"},
		{Array{Integer(1), Null{}}, "<Array, 2 elements>"},
		{NewArray(Name("x"), Array{}, Dict{}), "<Array, 3 elements>"},
	}
	for _, test := range cases {
		if out := test.in.String(); out != test.out {
			t.Errorf("expected %q but got %q", test.out, out)
		}
	}
}
