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

// Package pipeline chains intcode VM instances so that the output of each one
// is the input of the next.
//
// The instances are driven cooperatively by a single scheduler loop: each
// stage runs until it halts or waits for input, then its output values are
// moved to the next stage's input queue. With feedback enabled, the output of
// the last stage goes back to the first one. Instances never touch each other's
// state; values are only moved between queues by the scheduler.
package pipeline

import (
	"github.com/pkg/errors"
	"github.com/willlunniss/intcode/vm"
)

// ErrNoStages is returned by New when given no stages.
var ErrNoStages = errors.New("pipeline has no stages")

// Option configures a Pipeline.
type Option func(*Pipeline)

// Feedback enables or disables sending the output of the last stage back to the
// first one. The default is false.
func Feedback(on bool) Option {
	return func(p *Pipeline) { p.feedback = on }
}

// Pipeline is a chain of VM instances.
type Pipeline struct {
	stages   []*vm.Instance
	feedback bool
	tap      vm.Queue
}

// New returns a new pipeline running the given instances in order. The
// instances should not be run outside of the pipeline afterwards.
func New(stages []*vm.Instance, opts ...Option) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	for k, s := range stages {
		if s == nil {
			return nil, errors.Errorf("stage %d is nil", k)
		}
	}
	p := &Pipeline{stages: stages}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Stages returns the pipeline stages.
func (p *Pipeline) Stages() []*vm.Instance {
	return p.stages
}

// Feed appends values to the input of the first stage.
func (p *Pipeline) Feed(v ...vm.Cell) {
	p.stages[0].Input.Push(v...)
}

// Tap returns all the values output by the last stage so far, oldest first.
func (p *Pipeline) Tap() []vm.Cell {
	return p.tap.Values()
}

// Last returns the last value output by the last stage. The boolean is false if
// the last stage did not output anything yet.
func (p *Pipeline) Last() (vm.Cell, bool) {
	return p.tap.Last()
}

// forward moves the output of stage k to its destination.
func (p *Pipeline) forward(k int) {
	out := p.stages[k].Output.Drain()
	if len(out) == 0 {
		return
	}
	if k < len(p.stages)-1 {
		p.stages[k+1].Input.Push(out...)
		return
	}
	p.tap.Push(out...)
	if p.feedback {
		p.stages[0].Input.Push(out...)
	}
}

// Run runs the pipeline stages in turn until all of them have halted, or until
// a full round completes without any stage making progress.
//
// It returns vm.Halted when all stages have halted. vm.WaitingInput means
// that the running stages are all waiting for input that no other stage is
// going to produce: Feed the pipeline and call Run again to resume.
//
// If a stage faults, Run stops and returns the fault, annotated with the stage
// number.
func (p *Pipeline) Run() (vm.Status, error) {
	for {
		progress, running := false, 0
		for k, s := range p.stages {
			if s.Status() == vm.Halted {
				continue
			}
			n := s.InstructionCount()
			st, err := s.Run()
			if err != nil {
				return st, errors.Wrapf(err, "stage %d", k)
			}
			if s.InstructionCount() != n {
				progress = true
			}
			if st != vm.Halted {
				running++
			}
			p.forward(k)
		}
		if running == 0 {
			return vm.Halted, nil
		}
		if !progress {
			return vm.WaitingInput, nil
		}
	}
}
