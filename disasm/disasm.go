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

package disasm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/willlunniss/intcode/internal/ici"
	"github.com/willlunniss/intcode/vm"
)

func valid(mem []vm.Cell, pc int) bool {
	op, modes := vm.Decode(mem[pc])
	n := op.Params()
	if n < 0 || pc+n >= len(mem) {
		return false
	}
	for k := 0; k < n; k++ {
		switch modes[k] {
		case vm.Position, vm.Relative:
		case vm.Immediate:
			if k == op.Writes() {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func operand(w io.Writer, m vm.Mode, v vm.Cell) {
	s := strconv.FormatInt(int64(v), 10)
	switch m {
	case vm.Position:
		io.WriteString(w, "["+s+"]")
	case vm.Immediate:
		io.WriteString(w, s)
	case vm.Relative:
		if v >= 0 {
			s = "+" + s
		}
		io.WriteString(w, "[rb"+s+"]")
	}
}

// Disassemble writes a disassembly of the instruction at position pc in mem to
// the specified io.Writer and returns the position of the next instruction and
// any write error.
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	if pc < 0 || pc >= len(mem) {
		return pc, errors.Errorf("address %d out of range", pc)
	}
	ew := ici.NewErrWriter(w)
	if !valid(mem, pc) {
		io.WriteString(ew, ".data ")
		io.WriteString(ew, strconv.FormatInt(int64(mem[pc]), 10))
		return pc + 1, ew.Err
	}
	op, modes := vm.Decode(mem[pc])
	io.WriteString(ew, op.String())
	for k := 0; k < op.Params(); k++ {
		ew.Write([]byte{' '})
		operand(ew, modes[k], mem[pc+1+k])
	}
	return pc + 1 + op.Params(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
