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

// Package console runs an intcode VM interactively, connected to an io.Reader
// for input and an io.Writer for output.
//
// In line mode, every time the VM waits for input, one line is read. In ASCII
// mode the line is fed as character codes followed by a newline, otherwise it
// is parsed as a list of integers separated by commas or spaces.
//
// In key mode, every time the VM waits for input, a single character is read
// and translated into input values through a key map. Characters missing from
// the map are ignored, except for Ctrl-D which ends input. This is meant for
// readers that deliver key presses as they happen, like a terminal in raw
// mode.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/willlunniss/intcode/disasm"
	"github.com/willlunniss/intcode/internal/ici"
	"github.com/willlunniss/intcode/vm"
)

const ctrlD = 4

type flusher interface {
	Flush() error
}

// Option configures a Console.
type Option func(*Console)

// ASCII enables or disables ASCII mode. When enabled, output values that are
// ASCII codes are written as characters and input lines are fed as character
// codes. The default is false.
func ASCII(on bool) Option {
	return func(c *Console) { c.ascii = on }
}

// Keys enables key mode with the given key map.
func Keys(m map[rune][]vm.Cell) Option {
	return func(c *Console) { c.keys = m }
}

// Trace enables instruction tracing: each instruction is disassembled to w
// before being executed. The default is no tracing.
func Trace(w io.Writer) Option {
	return func(c *Console) { c.trace = w }
}

// Prompt sets a prompt to write before reading an input line. The default is
// no prompt.
func Prompt(p string) Option {
	return func(c *Console) { c.prompt = p }
}

// Console drives a VM instance.
type Console struct {
	i      *vm.Instance
	r      *bufio.Reader
	w      io.Writer
	ascii  bool
	keys   map[rune][]vm.Cell
	prompt string
	trace  io.Writer
	bol    bool // at beginning of an output line
}

// New returns a new Console running i.
func New(i *vm.Instance, r io.Reader, w io.Writer, opts ...Option) *Console {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	c := &Console{i: i, r: br, w: w, bol: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run runs the VM until it halts. Output is written after each run slice.
//
// It returns nil when the VM halts, io.EOF if input runs out while the VM is
// waiting for it, or any VM or I/O error.
func (c *Console) Run() error {
	for {
		st, err := c.run()
		if ferr := c.flush(); ferr != nil {
			return ferr
		}
		if err != nil {
			return err
		}
		if st == vm.Halted {
			return nil
		}
		if err = c.read(); err != nil {
			return err
		}
	}
}

func (c *Console) run() (vm.Status, error) {
	if c.trace == nil || c.i.Status() == vm.Halted {
		return c.i.Run()
	}
	ew := ici.NewErrWriter(c.trace)
	for {
		fmt.Fprintf(ew, "% 6d\trb=%d\t", c.i.PC, c.i.RelBase)
		if c.i.PC >= 0 && c.i.PC < len(c.i.Mem) {
			disasm.Disassemble(c.i.Mem, c.i.PC, ew)
		}
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return c.i.Status(), ew.Err
		}
		st, err := c.i.Step()
		if err != nil || st != vm.Running {
			return st, err
		}
	}
}

func (c *Console) flush() error {
	ew := ici.NewErrWriter(c.w)
	b := make([]byte, 0, 64)
	for _, v := range c.i.Output.Drain() {
		if c.ascii && vm.IsASCII(v) {
			b = append(b, byte(v))
			c.bol = v == '\n'
		} else {
			if c.ascii && !c.bol {
				b = append(b, '\n')
			}
			b = strconv.AppendInt(b, int64(v), 10)
			b = append(b, '\n')
			c.bol = true
		}
		if len(b) >= 60 {
			ew.Write(b)
			b = b[:0]
		}
	}
	ew.Write(b)
	if f, ok := c.w.(flusher); ok && ew.Err == nil {
		if err := f.Flush(); err != nil {
			return errors.Wrap(err, "flush failed")
		}
	}
	return ew.Err
}

func (c *Console) read() error {
	if c.keys != nil {
		return c.readKey()
	}
	for {
		if c.prompt != "" {
			if _, err := io.WriteString(c.w, c.prompt); err != nil {
				return errors.Wrap(err, "write failed")
			}
			if f, ok := c.w.(flusher); ok {
				f.Flush()
			}
		}
		line, err := c.r.ReadString('\n')
		if line == "" && err != nil {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if c.ascii {
			c.i.Input.PushLine(line)
			return nil
		}
		vals, perr := ParseValues(line)
		if perr != nil {
			if _, err := io.WriteString(c.w, perr.Error()+"\n"); err != nil {
				return errors.Wrap(err, "write failed")
			}
			continue
		}
		if len(vals) > 0 {
			c.i.Input.Push(vals...)
			return nil
		}
	}
}

func (c *Console) readKey() error {
	for {
		r, _, err := c.r.ReadRune()
		if err != nil {
			return err
		}
		if vals, ok := c.keys[r]; ok {
			c.i.Input.Push(vals...)
			return nil
		}
		if r == ctrlD {
			return io.EOF
		}
	}
}

func isSep(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}

// ParseValues parses a list of integers separated by commas and/or blanks.
func ParseValues(line string) ([]vm.Cell, error) {
	fields := strings.FieldsFunc(line, isSep)
	vals := make([]vm.Cell, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Errorf("invalid input value %q", f)
		}
		vals = append(vals, vm.Cell(n))
	}
	return vals, nil
}

// ParseKeys parses a key map description of the form "a=-1,d=1,s=0". Each
// key is a single character, read before its '=' sign, so ',' and '=' can be
// mapped too, as in ",=1,==2". Several values can be mapped to one key by
// separating them with spaces, as in "x=1 2 3".
func ParseKeys(s string) (map[rune][]vm.Cell, error) {
	m := make(map[rune][]vm.Cell)
	for {
		k, n := utf8.DecodeRuneInString(s)
		if n == 0 || k == utf8.RuneError && n == 1 {
			return nil, errors.Errorf("invalid key mapping %q", s)
		}
		s = s[n:]
		if !strings.HasPrefix(s, "=") {
			return nil, errors.Errorf("expected '=' after key %q", k)
		}
		s = s[1:]
		e := strings.IndexByte(s, ',')
		if e < 0 {
			e = len(s)
		}
		vals, err := ParseValues(s[:e])
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", k)
		}
		if len(vals) == 0 {
			return nil, errors.Errorf("no value for key %q", k)
		}
		m[k] = vals
		if e == len(s) {
			return m, nil
		}
		s = s[e+1:]
	}
}
