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

package ici

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
)

type limitWriter struct {
	n int
}

var errFull = errors.New("full")

func (l *limitWriter) Write(p []byte) (int, error) {
	if len(p) > l.n {
		n := l.n
		l.n = 0
		return n, errFull
	}
	l.n -= len(p)
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var buf bytes.Buffer
	ew := NewErrWriter(&buf)
	io.WriteString(ew, "hello ")
	io.WriteString(ew, "world")
	if ew.Err != nil {
		t.Fatalf("unexpected error %v", ew.Err)
	}
	if got := buf.String(); got != "hello world" {
		t.Errorf("got %q", got)
	}
	if NewErrWriter(ew) != ew {
		t.Error("NewErrWriter did not return the existing ErrWriter")
	}

	ew = NewErrWriter(&limitWriter{3})
	n, err := io.WriteString(ew, "abcd")
	if n != 3 || errors.Cause(err) != errFull {
		t.Errorf("got n=%d, err=%v", n, err)
	}
	n, err = io.WriteString(ew, "e")
	if n != 0 || errors.Cause(err) != errFull || errors.Cause(ew.Err) != errFull {
		t.Errorf("write after failure: n=%d, err=%v", n, err)
	}
}
