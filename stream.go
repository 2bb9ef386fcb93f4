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
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Stream represent a stream object in a PDF file.
//
// The /Length entry of the stream dictionary always agrees with the
// length of the stream data, once both are set.
type Stream struct {
	dict Dict
	data []byte
}

// NewStream returns a stream with an empty dictionary and no data.
func NewStream() *Stream {
	return &Stream{dict: NewDict()}
}

// NewStreamFromData returns a stream holding data, with /Length set to
// length.  If length differs from len(data), a [*ValidationError] wrapping
// [ErrLengthMismatch] is returned.
func NewStreamFromData(data []byte, length int) (*Stream, error) {
	if length != len(data) {
		return nil, &ValidationError{
			Object: "stream",
			Pos:    -1,
			Err:    fmt.Errorf("%w (%d != %d)", ErrLengthMismatch, length, len(data)),
		}
	}
	l, err := Int(length)
	if err != nil {
		return nil, err
	}
	return &Stream{
		dict: Dict{"Length": l},
		data: data,
	}, nil
}

// NewStreamFromDict returns a stream with the given dictionary and data.
// The stream keeps a copy of dict, with the /Length entry set to the length
// of data.
func NewStreamFromDict(dict Dict, data []byte) (*Stream, error) {
	l, err := Int(len(data))
	if err != nil {
		return nil, err
	}
	dict = DictFromMap(dict)
	dict["Length"] = l
	return &Stream{dict: dict, data: data}, nil
}

// Dict returns a copy of the stream dictionary.
func (x *Stream) Dict() Dict {
	return DictFromMap(x.dict)
}

// Get returns the value stored under key in the stream dictionary.
func (x *Stream) Get(key Name) (Object, bool) {
	return x.dict.Get(key)
}

// Insert stores val under key in the stream dictionary, and returns the
// previous value, if any.  Setting /Length to anything other than the length
// of the stream data fails with a [*ValidationError].
func (x *Stream) Insert(key Name, val Object) (Object, bool, error) {
	if key == "Length" {
		l, ok := val.(Integer)
		if !ok || int(l) != len(x.data) {
			return nil, false, &ValidationError{
				Object: "stream",
				Pos:    -1,
				Err:    fmt.Errorf("%w (%s != %d)", ErrLengthMismatch, Format(val), len(x.data)),
			}
		}
	}
	prev, ok := x.dict.Insert(key, val)
	return prev, ok, nil
}

// Data returns the stream data.
func (x *Stream) Data() []byte {
	return x.data
}

// SetData replaces the stream data and updates the /Length entry.
func (x *Stream) SetData(data []byte) error {
	l, err := Int(len(data))
	if err != nil {
		return err
	}
	if x.dict == nil {
		x.dict = NewDict()
	}
	x.data = data
	x.dict["Length"] = l
	return nil
}

func (x *Stream) String() string {
	res := []string{}
	tp, ok := x.dict["Type"].(Name)
	if ok {
		res = append(res, string(tp)+" Stream")
	} else {
		res = append(res, "Stream")
	}
	res = append(res, strconv.Itoa(len(x.data))+" bytes")
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the [Object] interface.
func (x *Stream) PDF(w io.Writer) error {
	err := x.dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("stream\n"))
	if err != nil {
		return err
	}
	_, err = w.Write(x.data)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nendstream"))
	return err
}
