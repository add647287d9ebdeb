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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/willlunniss/intcode/console"
	"github.com/willlunniss/intcode/vm"
	"golang.org/x/term"
)

var (
	noRawIO bool
	debug   bool
	dump    bool
	trace   bool
	ascii   bool
)

func setupIO() (tearDown func()) {
	if noRawIO || !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		if debug {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		}
		return nil
	}
	return tearDown
}

func loadProgram(name string) ([]vm.Cell, error) {
	if name == "-" {
		return vm.Load(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := vm.Load(f)
	return p, errors.Wrap(err, name)
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		writeState(os.Stderr, i)
	}
	os.Exit(1)
}

// writeState writes the machine registers to w. PC may point anywhere,
// including negative addresses after a bad jump.
func writeState(w io.Writer, i *vm.Instance) {
	if i.PC >= 0 && i.PC < len(i.Mem) {
		fmt.Fprintf(w, "PC: %v (%v), RB: %v, Status: %v\n", i.PC, i.Mem[i.PC], i.RelBase, i.Status())
	} else {
		fmt.Fprintf(w, "PC: %v, RB: %v, Status: %v\n", i.PC, i.RelBase, i.Status())
	}
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if ferr := stdout.Flush(); err == nil {
			err = ferr
		}
		if i != nil && dump {
			if derr := i.Dump(os.Stdout); err == nil {
				err = derr
			}
		}
		atExit(i, err)
	}()

	var (
		in   cellList
		sets pokeList
		keys keyMap
	)

	var size = flag.Int("size", 0, "minimum memory size in cells")
	flag.Var(&in, "in", "queue comma separated input `values` before running (can be specified multiple times)")
	flag.Var(&sets, "set", "store value at address before running, as `addr=value` (can be specified multiple times)")
	flag.Var(&keys, "keys", "key mode: feed single key presses using the given `map` of keys to values, e.g. a=-1,s=0,d=1")
	flag.BoolVar(&ascii, "ascii", false, "ASCII mode: read input lines as text, print output values as characters")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO in key mode")
	flag.BoolVar(&trace, "trace", false, "disassemble each instruction to stderr before executing it")
	flag.BoolVar(&dump, "dump", false, "dump machine state and memory upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	flag.Parse()

	if flag.NArg() != 1 {
		err = errors.New("usage: intcode [flags] program")
		return
	}

	var prog []vm.Cell
	if prog, err = loadProgram(flag.Arg(0)); err != nil {
		return
	}
	i, err = vm.New(prog, vm.Size(*size), vm.InputValues(in...))
	if err != nil {
		return
	}
	for _, p := range sets {
		if err = i.Poke(p.addr, p.v); err != nil {
			return
		}
	}

	var opts []console.Option
	if ascii {
		opts = append(opts, console.ASCII(true))
	}
	if trace {
		opts = append(opts, console.Trace(os.Stderr))
	}
	if len(keys) > 0 {
		opts = append(opts, console.Keys(keys))
		if flag.Arg(0) != "-" {
			if tearDown := setupIO(); tearDown != nil {
				defer tearDown()
			}
		}
	}

	c := console.New(i, os.Stdin, stdout, opts...)
	if err = c.Run(); err == io.EOF {
		err = nil
	}
}
