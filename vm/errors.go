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
	"fmt"

	"github.com/pkg/errors"
)

// Errors reported by the VM. Faults wrap one of these; use errors.Cause to
// retrieve it.
var (
	ErrMalformedProgram = errors.New("malformed program")
	ErrUnknownOpcode    = errors.New("unknown opcode")
	ErrInvalidMode      = errors.New("invalid parameter mode")
	ErrImmediateWrite   = errors.New("write to immediate parameter")
	ErrNegativeAddress  = errors.New("negative address")
	ErrAddressRange     = errors.New("address out of range")
	ErrHalted           = errors.New("machine halted")
)

// Fault describes a fatal error that occurred while executing an instruction.
// The instruction at PC did not complete: memory is unchanged and PC still
// points to it.
type Fault struct {
	PC    int  // address of the faulting instruction
	Instr Cell // instruction value
	Addr  int  // offending address, for ErrNegativeAddress and ErrAddressRange
	Err   error
}

func (f *Fault) Error() string {
	if c := errors.Cause(f.Err); c == ErrNegativeAddress || c == ErrAddressRange {
		return fmt.Sprintf("%v %d @pc=%d (%d)", f.Err, f.Addr, f.PC, f.Instr)
	}
	return fmt.Sprintf("%v @pc=%d (%d)", f.Err, f.PC, f.Instr)
}

// Cause returns the underlying error.
func (f *Fault) Cause() error { return f.Err }

// Unwrap returns the underlying error.
func (f *Fault) Unwrap() error { return f.Err }

func (i *Instance) fault(addr int, err error) *Fault {
	f := &Fault{PC: i.PC, Addr: addr, Err: err}
	if i.PC >= 0 && i.PC < len(i.Mem) {
		f.Instr = i.Mem[i.PC]
	}
	return f
}

// recoverFault turns a *Fault panic into an error. Any other panic is
// propagated.
func recoverFault(err *error) {
	if e := recover(); e != nil {
		f, ok := e.(*Fault)
		if !ok {
			panic(e)
		}
		*err = f
	}
}
