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

// Pdf-objects writes the indirect objects of a minimal one-page PDF
// document to standard output.  The output is the body of a PDF file:
// header, cross-reference table and trailer are not included.
//
// Usage:
//
//	pdf-objects [-title text] [-lang tag] [message]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/language"

	"seehuhn.de/go/pdfobj"
)

func main() {
	title := flag.String("title", "Hello", "document title")
	lang := flag.String("lang", "en-US", "document language")
	flag.Parse()

	msg := "Hello World!"
	if flag.NArg() > 0 {
		msg = strings.Join(flag.Args(), " ")
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("invalid language %q: %v", *lang, err)
	}

	objs, err := buildDocument(*title, msg, tag)
	if err != nil {
		log.Fatal(err)
	}

	w := pdfobj.NewWriter(os.Stdout)
	for _, obj := range objs {
		err := w.Put(obj)
		if err != nil {
			log.Fatal(err)
		}
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		offsets := w.Offsets()
		refs := make([]pdfobj.Reference, 0, len(offsets))
		for ref := range offsets {
			refs = append(refs, ref)
		}
		slices.Sort(refs)
		fmt.Println()
		for _, ref := range refs {
			fmt.Printf("%% %s at byte %d\n", ref, offsets[ref])
		}
	}
}

func buildDocument(title, msg string, tag language.Tag) ([]*pdfobj.Indirect, error) {
	for i := 0; i < len(msg); i++ {
		if c := msg[i]; c < 0x20 || c > 0x7e {
			return nil, fmt.Errorf("message byte 0x%02x cannot be shown with the standard Helvetica font", c)
		}
	}

	numbers := pdfobj.NewNumberSource()

	content := "BT /F1 24 Tf 72 712 Td " + pdfobj.Format(pdfobj.NewLiteralString(msg)) + " Tj ET"
	contentStream, err := pdfobj.NewStreamFromData([]byte(content), len(content))
	if err != nil {
		return nil, err
	}
	contents := numbers.Alloc(contentStream)

	font := numbers.Alloc(pdfobj.Dict{
		"Type":     pdfobj.Name("Font"),
		"Subtype":  pdfobj.Name("Type1"),
		"BaseFont": pdfobj.Name("Helvetica"),
	})

	pagesRef := numbers.Next()
	page := numbers.Alloc(pdfobj.Dict{
		"Type":     pdfobj.Name("Page"),
		"Parent":   pagesRef,
		"MediaBox": pdfobj.NewArray(pdfobj.Integer(0), pdfobj.Integer(0), pdfobj.Integer(612), pdfobj.Integer(792)),
		"Resources": pdfobj.Dict{
			"Font": pdfobj.Dict{"F1": font},
		},
		"Contents": contents,
	})

	var kids pdfobj.Array
	kids.Push(page)
	pages, err := pdfobj.NewIndirect(pagesRef, pdfobj.Dict{
		"Type":  pdfobj.Name("Pages"),
		"Kids":  kids,
		"Count": pdfobj.Integer(len(kids)),
	})
	if err != nil {
		return nil, err
	}

	catalog := numbers.Alloc(pdfobj.Dict{
		"Type":  pdfobj.Name("Catalog"),
		"Pages": pages,
		"Lang":  pdfobj.Lang(tag),
	})

	info := numbers.Alloc(pdfobj.Dict{
		"Title":        pdfobj.TextString(title),
		"CreationDate": pdfobj.Date(time.Now()),
		"Producer":     pdfobj.TextString("seehuhn.de/go/pdfobj"),
	})

	return []*pdfobj.Indirect{catalog, pages, page, contents, font, info}, nil
}
