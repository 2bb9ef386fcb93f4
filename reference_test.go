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
	"testing"
)

func TestReference(t *testing.T) {
	ref := NewReference(3, 0)
	if ref.Number() != 3 || ref.Generation() != 0 {
		t.Errorf("wrong reference %d %d", ref.Number(), ref.Generation())
	}
	if out := Format(ref); out != "3 0 R" {
		t.Errorf("wrong reference %q", out)
	}
	if s := ref.String(); s != "obj_3" {
		t.Errorf("wrong string %q", s)
	}

	ref = NewReference(12, 7)
	if out := Format(ref); out != "12 7 R" {
		t.Errorf("wrong reference %q", out)
	}
	if s := ref.String(); s != "obj_12@7" {
		t.Errorf("wrong string %q", s)
	}
}

func TestInvalidReference(t *testing.T) {
	for _, ref := range []Reference{0, NewReference(0, 5), Reference(1 << 50)} {
		err := ref.PDF(&discard{})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("0x%x: expected *ValidationError, got %v", uint64(ref), err)
		}
	}
}

func TestIndirect(t *testing.T) {
	obj, err := NewIndirect(NewReference(3, 0), Integer(42))
	if err != nil {
		t.Fatal(err)
	}
	if out := Format(obj.Object()); out != "42" {
		t.Errorf("wrong direct text %q", out)
	}
	if out := obj.Reference(); out != "3 0 R" {
		t.Errorf("wrong reference %q", out)
	}
	if out := obj.Definition(); out != "3 0 obj\n42\nendobj" {
		t.Errorf("wrong definition %q", out)
	}

	// inside containers, only the reference is written
	a := Array{obj, Dict{"Ref": obj}}
	if out := Format(a); out != "[3 0 R << /Ref 3 0 R >>]" {
		t.Errorf("wrong array %q", out)
	}
}

func TestIndirectReserved(t *testing.T) {
	_, err := NewIndirect(NewReference(0, 0), Null{})
	if !errors.Is(err, ErrReservedNumber) {
		t.Errorf("expected ErrReservedNumber, got %v", err)
	}
	var cErr *ConstructionError
	if !errors.As(err, &cErr) {
		t.Errorf("expected *ConstructionError, got %T", err)
	}
}

func TestIndirectStream(t *testing.T) {
	numbers := NewNumberSource()
	stream, err := NewStreamFromData([]byte("hello"), 5)
	if err != nil {
		t.Fatal(err)
	}
	obj := numbers.Alloc(stream)
	want := "1 0 obj\n<< /Length 5 >>stream\nhello\nendstream\nendobj"
	if out := obj.Definition(); out != want {
		t.Errorf("expected %q but got %q", want, out)
	}
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) {
	return len(p), nil
}
