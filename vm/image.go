// This file is part of intcode - https://github.com/willlunniss/intcode
//
// Copyright 2019 The intcode Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseError is returned by Parse and Load when a program listing contains
// something that is not a decimal integer.
type ParseError struct {
	Field int    // zero based index of the offending field
	Text  string // offending field, trimmed
	Err   error  // conversion error
}

func (e *ParseError) Error() string {
	return "malformed program: field " + strconv.Itoa(e.Field) + " " + strconv.Quote(e.Text) + ": " + e.Err.Error()
}

// Cause returns ErrMalformedProgram.
func (e *ParseError) Cause() error { return ErrMalformedProgram }

// Unwrap returns ErrMalformedProgram.
func (e *ParseError) Unwrap() error { return ErrMalformedProgram }

// Parse parses a program listing: comma separated, optionally negative decimal
// integers. Whitespace around the listing and around each field is ignored.
func Parse(text string) ([]Cell, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ParseError{0, "", errors.New("empty program")}
	}
	fields := strings.Split(text, ",")
	p := make([]Cell, len(fields))
	for k, f := range fields {
		f = strings.TrimSpace(f)
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok {
				err = ne.Err
			}
			return nil, &ParseError{k, f, err}
		}
		p[k] = Cell(n)
	}
	return p, nil
}

// Load reads a whole program listing from r and parses it.
func Load(r io.Reader) ([]Cell, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	return Parse(string(b))
}

// Format returns the program listing for the given cells. It is the reverse of
// Parse.
func Format(mem []Cell) string {
	b := make([]byte, 0, len(mem)*4)
	for k, v := range mem {
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return string(b)
}
