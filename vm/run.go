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

// Run executes instructions until the machine halts or needs input that is not
// available.
//
// If the returned status is WaitingInput, PC points to the input instruction
// that could not complete. Push values to the input queue and call Run again to
// resume execution from there.
//
// If an error occurs, it will be a *Fault and the PC will point to the
// instruction that triggered it. The instance should not be run again.
//
// Calling Run on a halted instance is a no-op.
func (i *Instance) Run() (st Status, err error) {
	if i.status == Halted {
		return Halted, nil
	}
	defer recoverFault(&err)
	i.status = Running
	for {
		if st = i.exec(); st != Running {
			i.status = st
			return st, nil
		}
	}
}

// Step executes a single instruction and returns the resulting status.
// Running means that the instruction completed and that PC points to the next
// one. Step returns ErrHalted if the instance is already halted.
func (i *Instance) Step() (st Status, err error) {
	if i.status == Halted {
		return Halted, ErrHalted
	}
	defer recoverFault(&err)
	st = i.exec()
	i.status = st
	return st, nil
}
