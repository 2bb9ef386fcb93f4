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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriter(t *testing.T) {
	numbers := NewNumberSource()
	pages := numbers.Alloc(Dict{
		"Type":  Name("Pages"),
		"Kids":  Array{},
		"Count": Integer(0),
	})
	catalog := numbers.Alloc(Dict{
		"Type":  Name("Catalog"),
		"Pages": pages,
	})

	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	for _, obj := range []*Indirect{catalog, pages} {
		err := w.Put(obj)
		if err != nil {
			t.Fatal(err)
		}
	}

	def1 := "2 0 obj\n<< /Pages 1 0 R /Type /Catalog >>\nendobj\n"
	def2 := "1 0 obj\n<< /Count 0 /Kids [] /Type /Pages >>\nendobj\n"
	if out := buf.String(); out != def1+def2 {
		t.Errorf("wrong output:\n%s", out)
	}
	if w.Pos() != int64(len(def1+def2)) {
		t.Errorf("wrong position %d", w.Pos())
	}

	want := map[Reference]int64{
		catalog.Ref(): 0,
		pages.Ref():   int64(len(def1)),
	}
	if diff := cmp.Diff(want, w.Offsets()); diff != "" {
		t.Errorf("wrong offsets (-want +got):\n%s", diff)
	}

	err := w.Put(pages)
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}
