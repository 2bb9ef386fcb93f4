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
	"slices"
	"strconv"
	"strings"
)

// Dict represent a Dictionary object in a PDF file.
// Entries with a nil value are treated as absent.
type Dict map[Name]Object

// NewDict returns an empty dictionary.
func NewDict() Dict {
	return make(Dict)
}

// DictFromMap returns a dictionary holding a copy of the entries of m.
func DictFromMap(m map[Name]Object) Dict {
	res := make(Dict, len(m))
	for key, val := range m {
		res[key] = val
	}
	return res
}

// Insert stores val under key.  If the key was already present, the previous
// value is returned together with true.  A nil Dict is allocated on first use.
func (x *Dict) Insert(key Name, val Object) (Object, bool) {
	if *x == nil {
		*x = make(Dict)
	}
	prev, ok := (*x)[key]
	(*x)[key] = val
	return prev, ok
}

// Get returns the value stored under key.
// The second return value indicates whether the key was present.
func (x Dict) Get(key Name) (Object, bool) {
	val, ok := x[key]
	return val, ok
}

func (x Dict) String() string {
	res := []string{}
	tp, ok := x["Type"].(Name)
	if ok {
		res = append(res, string(tp)+" Dict")
	} else {
		res = append(res, "Dict")
	}
	if len(x) != 1 {
		res = append(res, strconv.FormatInt(int64(len(x)), 10)+" entries")
	} else {
		res = append(res, "1 entry")
	}
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the [Object] interface.
// Entries are written in order of increasing key.
func (x Dict) PDF(w io.Writer) error {
	keys := make([]Name, 0, len(x))
	for key, val := range x {
		if val == nil {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)

	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}

	for _, name := range keys {
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		err = name.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		err = x[name].PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte(" >>"))
	return err
}
