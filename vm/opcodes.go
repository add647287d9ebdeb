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

import "strconv"

// Opcode is the operation selector found in the two least significant
// decimal digits of an instruction.
type Opcode int

// intcode opcodes.
const (
	OpAdd        Opcode = 1
	OpMul        Opcode = 2
	OpIn         Opcode = 3
	OpOut        Opcode = 4
	OpJumpTrue   Opcode = 5
	OpJumpFalse  Opcode = 6
	OpLess       Opcode = 7
	OpEqual      Opcode = 8
	OpAdjustBase Opcode = 9
	OpHalt       Opcode = 99
)

// Mode is a parameter addressing mode.
type Mode int

// Parameter modes.
const (
	Position Mode = iota
	Immediate
	Relative
)

type opSpec struct {
	name   string
	params int
	write  int // index of the written parameter, -1 if none
}

var opcodes = [...]opSpec{
	OpAdd:        {"add", 3, 2},
	OpMul:        {"mul", 3, 2},
	OpIn:         {"in", 1, 0},
	OpOut:        {"out", 1, -1},
	OpJumpTrue:   {"jnz", 2, -1},
	OpJumpFalse:  {"jz", 2, -1},
	OpLess:       {"lt", 3, 2},
	OpEqual:      {"eq", 3, 2},
	OpAdjustBase: {"arb", 1, -1},
	OpHalt:       {"hlt", 0, -1},
}

// Valid returns true if op is part of the instruction set.
func (op Opcode) Valid() bool {
	return op > 0 && int(op) < len(opcodes) && opcodes[op].name != ""
}

// Params returns the number of parameters of op, or -1 if op is not valid.
func (op Opcode) Params() int {
	if !op.Valid() {
		return -1
	}
	return opcodes[op].params
}

// Writes returns the index of the parameter op writes to, or -1 if op does not
// write to memory or is not valid.
func (op Opcode) Writes() int {
	if !op.Valid() {
		return -1
	}
	return opcodes[op].write
}

func (op Opcode) String() string {
	if !op.Valid() {
		return "Opcode(" + strconv.Itoa(int(op)) + ")"
	}
	return opcodes[op].name
}

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Decode splits an instruction into its opcode and parameter modes. Missing
// mode digits decode as Position.
func Decode(instr Cell) (op Opcode, modes [3]Mode) {
	op = Opcode(instr % 100)
	m := instr / 100
	for k := range modes {
		modes[k] = Mode(m % 10)
		m /= 10
	}
	return op, modes
}
