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

// param returns the value of the n-th parameter (starting at 1) of the current
// instruction.
func (i *Instance) param(n int) Cell {
	raw := i.load(i.PC + n)
	switch i.modes[n-1] {
	case Position:
		return i.load(int(raw))
	case Immediate:
		return raw
	case Relative:
		return i.load(i.RelBase + int(raw))
	}
	panic(i.fault(0, ErrInvalidMode))
}

// addr returns the address designated by the n-th parameter of the current
// instruction, for writing.
func (i *Instance) addr(n int) int {
	raw := int(i.load(i.PC + n))
	var a int
	switch i.modes[n-1] {
	case Position:
		a = raw
	case Relative:
		a = i.RelBase + raw
	case Immediate:
		panic(i.fault(0, ErrImmediateWrite))
	default:
		panic(i.fault(0, ErrInvalidMode))
	}
	if a < 0 {
		panic(i.fault(a, ErrNegativeAddress))
	}
	return a
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// exec executes the instruction at PC. It returns Running if the instruction
// completed, WaitingInput if it is an input instruction and there is no input
// available, and Halted on a halt instruction. In the last two cases PC is left
// unchanged.
func (i *Instance) exec() Status {
	var op Opcode
	op, i.modes = Decode(i.load(i.PC))
	switch op {
	case OpAdd:
		a, b := i.param(1), i.param(2)
		i.store(i.addr(3), a+b)
		i.PC += 4
	case OpMul:
		a, b := i.param(1), i.param(2)
		i.store(i.addr(3), a*b)
		i.PC += 4
	case OpIn:
		if i.Input.Len() == 0 {
			return WaitingInput
		}
		dst := i.addr(1)
		v, _ := i.Input.Pop()
		i.store(dst, v)
		i.PC += 2
	case OpOut:
		i.Output.Push(i.param(1))
		i.PC += 2
	case OpJumpTrue:
		if i.param(1) != 0 {
			i.PC = int(i.param(2))
		} else {
			i.PC += 3
		}
	case OpJumpFalse:
		if i.param(1) == 0 {
			i.PC = int(i.param(2))
		} else {
			i.PC += 3
		}
	case OpLess:
		a, b := i.param(1), i.param(2)
		i.store(i.addr(3), bool2Cell(a < b))
		i.PC += 4
	case OpEqual:
		a, b := i.param(1), i.param(2)
		i.store(i.addr(3), bool2Cell(a == b))
		i.PC += 4
	case OpAdjustBase:
		i.RelBase += int(i.param(1))
		i.PC += 2
	case OpHalt:
		i.insCount++
		return Halted
	default:
		panic(i.fault(0, ErrUnknownOpcode))
	}
	i.insCount++
	return Running
}
