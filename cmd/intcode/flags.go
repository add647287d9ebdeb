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
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/willlunniss/intcode/console"
	"github.com/willlunniss/intcode/vm"
)

type cellList []vm.Cell

func (l *cellList) String() string   { return vm.Format(*l) }
func (l *cellList) Get() interface{} { return *l }
func (l *cellList) Set(s string) error {
	v, err := console.ParseValues(s)
	if err != nil {
		return err
	}
	*l = append(*l, v...)
	return nil
}

type poke struct {
	addr int
	v    vm.Cell
}

type pokeList []poke

func (l *pokeList) String() string   { return "" }
func (l *pokeList) Get() interface{} { return *l }
func (l *pokeList) Set(s string) error {
	kv := strings.SplitN(s, "=", 2)
	if len(kv) != 2 {
		return errors.Errorf("expected addr=value, got %q", s)
	}
	addr, err := strconv.Atoi(strings.TrimSpace(kv[0]))
	if err != nil || addr < 0 {
		return errors.Errorf("invalid address %q", kv[0])
	}
	v, err := strconv.ParseInt(strings.TrimSpace(kv[1]), 10, 64)
	if err != nil {
		return errors.Errorf("invalid value %q", kv[1])
	}
	*l = append(*l, poke{addr, vm.Cell(v)})
	return nil
}

type keyMap map[rune][]vm.Cell

func (m *keyMap) String() string   { return "" }
func (m *keyMap) Get() interface{} { return *m }
func (m *keyMap) Set(s string) error {
	km, err := console.ParseKeys(s)
	if err != nil {
		return err
	}
	*m = km
	return nil
}
