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

	"github.com/pkg/errors"
	"github.com/willlunniss/intcode/internal/ici"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Status is the execution state of an Instance.
type Status int

// Execution states.
const (
	Running Status = iota
	WaitingInput
	Halted
)

var statusNames = [...]string{"running", "waiting for input", "halted"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
	return statusNames[s]
}

// Instance represents an intcode VM instance.
type Instance struct {
	PC       int    // Program Counter
	RelBase  int    // Relative base
	Mem      []Cell // Memory
	Input    *Queue // Values consumed by input instructions
	Output   *Queue // Values produced by output instructions
	size     int
	maxSize  int
	modes    [3]Mode
	status   Status
	insCount int64
}

// Option interface
type Option func(*Instance) error

// Size sets the minimum memory size in cells. If larger than the program, the
// extra cells are zero filled. Memory will grow past this size if needed.
func Size(size int) Option {
	return func(i *Instance) error {
		if size < 0 {
			return errors.Errorf("invalid memory size %d", size)
		}
		i.size = size
		return nil
	}
}

// DefaultMaxSize is the default memory size limit, in cells.
const DefaultMaxSize = 1 << 24

// MaxSize sets the maximum memory size in cells. Writing at or past this limit
// faults with ErrAddressRange. The default is DefaultMaxSize.
func MaxSize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			return errors.Errorf("invalid maximum memory size %d", size)
		}
		i.maxSize = size
		return nil
	}
}

// Input sets the queue used by input instructions. The queue is shared, not
// copied.
func Input(q *Queue) Option {
	return func(i *Instance) error {
		if q == nil {
			return errors.New("nil input queue")
		}
		i.Input = q
		return nil
	}
}

// Output sets the queue used by output instructions. The queue is shared, not
// copied.
func Output(q *Queue) Option {
	return func(i *Instance) error {
		if q == nil {
			return errors.New("nil output queue")
		}
		i.Output = q
		return nil
	}
}

// InputValues appends the given values to the input queue. When combined with
// the Input option, it must come after it.
func InputValues(v ...Cell) Option {
	return func(i *Instance) error { i.Input.Push(v...); return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new intcode VM instance running the given program.
//
// The program is copied into the instance memory, so the same program slice
// can be used to create any number of instances.
//
// Options will be set by calling SetOptions.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		Input:   new(Queue),
		Output:  new(Queue),
		maxSize: DefaultMaxSize,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	sz := len(program)
	if i.size > sz {
		sz = i.size
	}
	if sz > i.maxSize {
		return nil, errors.Errorf("memory size %d exceeds limit %d", sz, i.maxSize)
	}
	i.Mem = make([]Cell, sz)
	copy(i.Mem, program)
	return i, nil
}

// NewFromString parses a program listing and creates a new VM instance
// running it.
func NewFromString(text string, opts ...Option) (*Instance, error) {
	p, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return New(p, opts...)
}

// Status returns the state the instance was left in by the last call to Run
// or Step.
func (i *Instance) Status() Status {
	return i.status
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the program counter, relative base, status and memory contents
// to w. Memory is written as a program listing.
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	io.WriteString(ew, "pc="+strconv.Itoa(i.PC))
	io.WriteString(ew, " rb="+strconv.Itoa(i.RelBase))
	io.WriteString(ew, " status="+i.status.String())
	ew.Write([]byte{'\n'})
	io.WriteString(ew, Format(i.Mem))
	ew.Write([]byte{'\n'})
	return ew.Err
}
