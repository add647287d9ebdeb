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

package pipeline_test

import (
	"github.com/pkg/errors"
	"github.com/willlunniss/intcode/vm"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	. "github.com/willlunniss/intcode/pipeline"
)

// Each stage reads a setting and a value, and outputs value*10 + setting.
const concat = "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0"

// Each stage outputs 5 - setting as the next digit.
const reverse = "3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0"

// Each stage outputs the next digit from a lookup involving its setting.
const lookup = "3,31,3,32,1002,32,10,32,1001,31,-2,31,1007,31,0,33,1002,33,7,33,1,33,31,31,1,32,31,31,4,31,99,0,0,0"

// Each stage reads a setting then loops 5 times: read x, output 2x + setting-4.
const loop = "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5"

var _ = Describe("Pipeline", func() {

	build := func(code string, settings ...vm.Cell) []*vm.Instance {
		program, err := vm.Parse(code)
		Expect(err).ShouldNot(HaveOccurred())
		stages := make([]*vm.Instance, len(settings))
		for k, s := range settings {
			stages[k], err = vm.New(program, vm.InputValues(s))
			Expect(err).ShouldNot(HaveOccurred())
		}
		return stages
	}

	Context("when building a pipeline", func() {

		It("should refuse an empty pipeline", func() {
			_, err := New(nil)
			Expect(err).Should(Equal(ErrNoStages))
		})

		It("should refuse nil stages", func() {
			stages := build(concat, 1)
			_, err := New(append(stages, nil))
			Expect(err).Should(HaveOccurred())
		})
	})

	DescribeTable("running stages in series",
		func(code string, settings []vm.Cell, expected vm.Cell) {
			p, err := New(build(code, settings...))
			Expect(err).ShouldNot(HaveOccurred())
			p.Feed(0)
			st, err := p.Run()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(st).Should(Equal(vm.Halted))
			Expect(p.Tap()).Should(Equal([]vm.Cell{expected}))
		},
		Entry("concat", concat, []vm.Cell{4, 3, 2, 1, 0}, vm.Cell(43210)),
		Entry("reverse", reverse, []vm.Cell{0, 1, 2, 3, 4}, vm.Cell(54321)),
		Entry("lookup", lookup, []vm.Cell{1, 0, 4, 3, 2}, vm.Cell(65210)),
	)

	Context("when feedback is enabled", func() {

		It("should loop until all stages halt", func() {
			p, err := New(build(loop, 9, 8, 7, 6, 5), Feedback(true))
			Expect(err).ShouldNot(HaveOccurred())
			p.Feed(0)
			st, err := p.Run()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(st).Should(Equal(vm.Halted))
			Expect(p.Tap()).Should(Equal([]vm.Cell{129, 4257, 136353, 4363425, 139629729}))
			v, ok := p.Last()
			Expect(ok).Should(BeTrue())
			Expect(v).Should(Equal(vm.Cell(139629729)))
		})

		It("should feed a single stage its own output", func() {
			// reads x, outputs x+1 until x reaches 5
			i, err := vm.NewFromString("3,20,1001,20,1,20,4,20,1007,20,5,21,1005,21,0,99")
			Expect(err).ShouldNot(HaveOccurred())
			p, err := New([]*vm.Instance{i}, Feedback(true))
			Expect(err).ShouldNot(HaveOccurred())
			p.Feed(0)
			st, err := p.Run()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(st).Should(Equal(vm.Halted))
			Expect(p.Tap()).Should(Equal([]vm.Cell{1, 2, 3, 4, 5}))
		})
	})

	Context("when stages wait for input", func() {

		It("should return and resume once fed", func() {
			p, err := New(build(concat, 1, 2))
			Expect(err).ShouldNot(HaveOccurred())
			st, err := p.Run()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(st).Should(Equal(vm.WaitingInput))
			Expect(p.Tap()).Should(BeEmpty())
			_, ok := p.Last()
			Expect(ok).Should(BeFalse())

			for _, s := range p.Stages() {
				Expect(s.Status()).Should(Equal(vm.WaitingInput))
			}

			p.Feed(7)
			st, err = p.Run()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(st).Should(Equal(vm.Halted))
			Expect(p.Tap()).Should(Equal([]vm.Cell{712}))
		})
	})

	Context("when a stage faults", func() {

		It("should report the stage and the fault", func() {
			good, err := vm.NewFromString("104,1,99")
			Expect(err).ShouldNot(HaveOccurred())
			bad, err := vm.NewFromString("3,0,42")
			Expect(err).ShouldNot(HaveOccurred())
			p, err := New([]*vm.Instance{good, bad})
			Expect(err).ShouldNot(HaveOccurred())
			_, err = p.Run()
			Expect(err).Should(HaveOccurred())
			Expect(errors.Cause(err)).Should(Equal(vm.ErrUnknownOpcode))
			Expect(err.Error()).Should(ContainSubstring("stage 1"))
		})
	})
})

var _ = Describe("Sweep", func() {

	best := func(vals []vm.Cell) (vm.Cell, int) {
		top, idx := vals[0], 0
		for k, v := range vals {
			if v > top {
				top, idx = v, k
			}
		}
		return top, idx
	}

	It("should find the best settings in series", func() {
		program, err := vm.Parse(concat)
		Expect(err).ShouldNot(HaveOccurred())
		settings := Permutations([]vm.Cell{0, 1, 2, 3, 4})
		res, err := Sweep(program, settings, 0)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(res).Should(HaveLen(120))
		top, idx := best(res)
		Expect(top).Should(Equal(vm.Cell(43210)))
		Expect(settings[idx]).Should(Equal([]vm.Cell{4, 3, 2, 1, 0}))
	})

	It("should find the best settings with feedback", func() {
		program, err := vm.Parse(loop)
		Expect(err).ShouldNot(HaveOccurred())
		settings := Permutations([]vm.Cell{5, 6, 7, 8, 9})
		res, err := Sweep(program, settings, 0, Feedback(true))
		Expect(err).ShouldNot(HaveOccurred())
		top, idx := best(res)
		Expect(top).Should(Equal(vm.Cell(139629729)))
		Expect(settings[idx]).Should(Equal([]vm.Cell{9, 8, 7, 6, 5}))
	})

	It("should report stalled pipelines", func() {
		// needs three input values, gets two
		program, err := vm.Parse("3,0,3,0,3,0,4,0,99")
		Expect(err).ShouldNot(HaveOccurred())
		_, err = Sweep(program, [][]vm.Cell{{1}}, 0)
		Expect(errors.Cause(err)).Should(Equal(ErrStalled))
	})

	It("should report pipelines without output", func() {
		program, err := vm.Parse("3,0,99")
		Expect(err).ShouldNot(HaveOccurred())
		_, err = Sweep(program, [][]vm.Cell{{1}}, 0)
		Expect(errors.Cause(err)).Should(Equal(ErrNoOutput))
	})
})

var _ = Describe("Permutations", func() {

	It("should return every permutation once", func() {
		perms := Permutations([]vm.Cell{1, 2, 3, 4})
		Expect(perms).Should(HaveLen(24))
		seen := map[[4]vm.Cell]bool{}
		for _, p := range perms {
			Expect(p).Should(ConsistOf(vm.Cell(1), vm.Cell(2), vm.Cell(3), vm.Cell(4)))
			seen[[4]vm.Cell{p[0], p[1], p[2], p[3]}] = true
		}
		Expect(seen).Should(HaveLen(24))
	})

	It("should not modify its input", func() {
		vals := []vm.Cell{3, 2, 1}
		Permutations(vals)
		Expect(vals).Should(Equal([]vm.Cell{3, 2, 1}))
	})
})
