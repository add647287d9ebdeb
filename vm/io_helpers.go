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
	"strconv"
	"strings"
)

// PushString appends the code point of each character in s to the queue.
func (q *Queue) PushString(s string) {
	for _, r := range s {
		q.Push(Cell(r))
	}
}

// PushLine appends the code point of each character in s to the queue,
// followed by a newline.
func (q *Queue) PushLine(s string) {
	q.PushString(s)
	q.Push('\n')
}

// IsASCII returns true if v is a 7 bit ASCII code.
func IsASCII(v Cell) bool {
	return v >= 0 && v < 128
}

// ASCII renders the queue contents as text without consuming them. ASCII codes
// are written as characters, other values as decimal numbers. This is mostly
// useful to figure out what went wrong with programs that talk ASCII and report
// results as non-ASCII values.
func (q *Queue) ASCII() string {
	var b strings.Builder
	for _, v := range q.cells[q.head:] {
		if IsASCII(v) {
			b.WriteByte(byte(v))
		} else {
			b.WriteString(strconv.FormatInt(int64(v), 10))
		}
	}
	return b.String()
}
