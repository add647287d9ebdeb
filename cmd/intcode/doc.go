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

// The intcode command line tool runs an intcode program.
//
// Usage:
//
//	intcode [flags] program
//
// The program file contains a comma separated list of integers. Use "-" to
// read it from standard input.
//
// Flags:
//
//	-ascii
//		  ASCII mode: read input lines as text, print output values as characters
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump machine state and memory upon exit
//	-in values
//		  queue comma separated input values before running (can be specified multiple times)
//	-keys map
//		  key mode: feed single key presses mapped to values, e.g. "a=-1,s=0,d=1"
//	-noraw
//		  disable raw terminal IO in key mode
//	-set addr=value
//		  store value at addr before running (can be specified multiple times)
//	-size int
//		  minimum memory size in cells
//	-trace
//		  disassemble each instruction to stderr before executing it
//
// Once the queued input values are consumed, input is read from standard input
// every time the program needs some: one line at a time, or one key at a time
// in key mode. In key mode, when standard input is a terminal, it is switched
// to raw mode so that keys are delivered as soon as they are pressed. Keys
// missing from the map are ignored and Ctrl-D ends input.
//
// -debug: will print a full stacktrace and the machine state should the
// program fault.
//
// -set: puzzles commonly patch a couple of memory cells before running a
// program. For example, the following runs prog.txt with cells 1 and 2 set to
// 12 and 2, then dumps memory to read the result in cell 0:
//
//	intcode -set 1=12 -set 2=2 -dump prog.txt
package main
