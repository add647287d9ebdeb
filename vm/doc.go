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

// Package vm implements the intcode virtual machine.
//
// An intcode program is a flat list of signed integers. The same list is the
// machine's memory: programs are free to rewrite their own instructions and to
// use any address past the end of the program as scratch space. Memory grows
// on demand up to a limit (see MaxSize) and new cells read as zero.
//
// Instructions are decoded from the cell at the program counter. The two least
// significant decimal digits select the opcode, the remaining digits select the
// addressing mode of each parameter, first parameter first:
//
//	0	position	the parameter is an address
//	1	immediate	the parameter is the value (never valid as a write target)
//	2	relative	the parameter is an offset from the relative base
//
// The machine talks to the outside world through two queues of Cells, Input and
// Output. Both belong to the caller. When the machine executes an input
// instruction while the Input queue is empty, Run returns WaitingInput with the
// program counter still on that instruction. Push more input and call Run again
// to resume. This is how several instances are chained together: an external
// driver moves values from one instance's Output to another's Input between
// calls to Run (see package github.com/willlunniss/intcode/pipeline).
//
// Faults (unknown opcodes, writes through immediate parameters, negative
// addresses, writes past the memory limit) are reported as *Fault errors. Use errors.Cause from
// github.com/pkg/errors to compare them against the Err* values of this
// package.
package vm
