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

// Queue is a FIFO queue of Cells, used for the VM input and output. The zero
// value is an empty queue ready to use.
//
// A Queue is not safe for concurrent use.
type Queue struct {
	cells []Cell
	head  int
}

// NewQueue returns a new queue holding the given values.
func NewQueue(v ...Cell) *Queue {
	q := new(Queue)
	q.Push(v...)
	return q
}

// Len returns the number of values in the queue.
func (q *Queue) Len() int {
	return len(q.cells) - q.head
}

// Push appends values to the back of the queue.
func (q *Queue) Push(v ...Cell) {
	if q.head > 0 && q.head >= len(q.cells)/2 {
		n := copy(q.cells, q.cells[q.head:])
		q.cells = q.cells[:n]
		q.head = 0
	}
	q.cells = append(q.cells, v...)
}

// Pop removes and returns the value at the front of the queue. The boolean is
// false if the queue is empty.
func (q *Queue) Pop() (Cell, bool) {
	if q.head >= len(q.cells) {
		return 0, false
	}
	v := q.cells[q.head]
	q.head++
	if q.head == len(q.cells) {
		q.Reset()
	}
	return v, true
}

// PopBack removes and returns the value at the back of the queue. The boolean
// is false if the queue is empty.
func (q *Queue) PopBack() (Cell, bool) {
	if q.head >= len(q.cells) {
		return 0, false
	}
	l := len(q.cells) - 1
	v := q.cells[l]
	q.cells = q.cells[:l]
	if q.head == l {
		q.Reset()
	}
	return v, true
}

// Peek returns the value at the front of the queue without removing it.
func (q *Queue) Peek() (Cell, bool) {
	if q.head >= len(q.cells) {
		return 0, false
	}
	return q.cells[q.head], true
}

// Last returns the value at the back of the queue without removing it.
func (q *Queue) Last() (Cell, bool) {
	if q.head >= len(q.cells) {
		return 0, false
	}
	return q.cells[len(q.cells)-1], true
}

// Values returns a copy of the queue contents, front first.
func (q *Queue) Values() []Cell {
	v := make([]Cell, q.Len())
	copy(v, q.cells[q.head:])
	return v
}

// Drain removes and returns all values in the queue, front first.
func (q *Queue) Drain() []Cell {
	v := q.Values()
	q.Reset()
	return v
}

// Reset empties the queue.
func (q *Queue) Reset() {
	q.cells = q.cells[:0]
	q.head = 0
}
