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
	"math"
	"sync/atomic"
)

// NumberSource hands out object numbers for indirect objects.
//
// All indirect objects of one PDF file must draw their numbers from the same
// NumberSource.  Different files use different sources, so that their
// numbering is independent.  The zero value is ready to use, and a
// NumberSource is safe for concurrent use.
type NumberSource struct {
	last atomic.Uint64
}

// NewNumberSource returns a NumberSource which starts at object number 1.
func NewNumberSource() *NumberSource {
	return &NumberSource{}
}

// Next returns a fresh reference.  Object numbers start at 1 and increase by
// one with every call.  The generation number is always 0.
func (s *NumberSource) Next() Reference {
	n := s.last.Add(1)
	if n > math.MaxUint32 {
		panic("pdfobj: object numbers exhausted")
	}
	return NewReference(uint32(n), 0)
}

// Alloc assigns a fresh object number to obj.
func (s *NumberSource) Alloc(obj Object) *Indirect {
	return &Indirect{ref: s.Next(), obj: obj}
}

// Issued returns the number of references handed out so far.
func (s *NumberSource) Issued() uint32 {
	n := s.last.Load()
	if n > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}
