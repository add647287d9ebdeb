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

// Package disasm provides a disassembler for intcode programs.
//
// Mnemonics:
//
//	opcode	mnemonic	params	description
//	------	--------	------	---------------------------------------------------
//	1	add		a b dst	dst = a + b
//	2	mul		a b dst	dst = a * b
//	3	in		dst	dst = next input value
//	4	out		a	append a to output
//	5	jnz		a addr	jump to addr if a != 0
//	6	jz		a addr	jump to addr if a == 0
//	7	lt		a b dst	dst = 1 if a < b, else 0
//	8	eq		a b dst	dst = 1 if a == b, else 0
//	9	arb		a	add a to the relative base
//	99	hlt			halt
//
// Operands are written according to their addressing mode:
//
//	[12]	position: memory cell 12
//	12	immediate: the value 12
//	[rb+12]	relative: memory cell at relative base + 12
//
// Cells that do not decode to a valid instruction (unknown opcode, unknown
// mode, write to an immediate parameter, or too few cells left for the
// parameters) are written as
//
//	.data n
//
// and disassembly resumes with the next cell. Since code and data share the
// same memory, a listing of a whole program will show data areas as
// instructions when their values happen to decode as such.
package disasm
