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

package pipeline

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/willlunniss/intcode/vm"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Errors returned by Sweep.
var (
	ErrStalled  = errors.New("pipeline stalled waiting for input")
	ErrNoOutput = errors.New("pipeline produced no output")
)

// Sweep runs one pipeline for each entry in settings and returns the last
// value output by each of them.
//
// Each pipeline has one stage per value in its settings entry, all running
// the same program. Each stage receives its setting as first input value, then
// seed is fed to the first stage. Pipelines are independent and run in
// parallel; the returned slice is in the same order as settings.
//
// A pipeline that does not halt fails with ErrStalled, one that halts without
// any output from its last stage fails with ErrNoOutput.
func Sweep(program []vm.Cell, settings [][]vm.Cell, seed vm.Cell, opts ...Option) ([]vm.Cell, error) {
	res := make([]vm.Cell, len(settings))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := range settings {
		k := k
		g.Go(func() error {
			v, err := sweepOne(program, settings[k], seed, opts)
			if err != nil {
				return errors.Wrapf(err, "settings %v", settings[k])
			}
			res[k] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func sweepOne(program []vm.Cell, setting []vm.Cell, seed vm.Cell, opts []Option) (vm.Cell, error) {
	stages := make([]*vm.Instance, len(setting))
	for k, s := range setting {
		i, err := vm.New(program, vm.InputValues(s))
		if err != nil {
			return 0, err
		}
		stages[k] = i
	}
	p, err := New(stages, opts...)
	if err != nil {
		return 0, err
	}
	p.Feed(seed)
	st, err := p.Run()
	if err != nil {
		return 0, err
	}
	if st != vm.Halted {
		return 0, ErrStalled
	}
	v, ok := p.Last()
	if !ok {
		return 0, ErrNoOutput
	}
	return v, nil
}

// Permutations returns all the permutations of vals. The returned slices do
// not share memory with vals or with each other.
func Permutations(vals []vm.Cell) [][]vm.Cell {
	a := slices.Clone(vals)
	var res [][]vm.Cell
	var permute func(n int)
	permute = func(n int) {
		if n <= 1 {
			res = append(res, slices.Clone(a))
			return
		}
		permute(n - 1)
		for k := 0; k < n-1; k++ {
			if n%2 == 0 {
				a[k], a[n-1] = a[n-1], a[k]
			} else {
				a[0], a[n-1] = a[n-1], a[0]
			}
			permute(n - 1)
		}
	}
	permute(len(a))
	return res
}
