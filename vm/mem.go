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

// Peek returns the value stored at addr. Addresses past the end of memory read
// as zero. Peek never modifies the instance.
func (i *Instance) Peek(addr int) (Cell, error) {
	if addr < 0 {
		return 0, i.fault(addr, ErrNegativeAddress)
	}
	if addr >= len(i.Mem) {
		return 0, nil
	}
	return i.Mem[addr], nil
}

// Poke stores v at addr, growing memory as needed. Memory does not grow past
// the limit set with MaxSize.
func (i *Instance) Poke(addr int, v Cell) error {
	if addr < 0 {
		return i.fault(addr, ErrNegativeAddress)
	}
	if addr >= i.maxSize {
		return i.fault(addr, ErrAddressRange)
	}
	i.grow(addr)
	i.Mem[addr] = v
	return nil
}

// grow extends memory so that addr is a valid index. New cells are zero. addr
// must be below maxSize.
func (i *Instance) grow(addr int) {
	if addr < len(i.Mem) {
		return
	}
	i.Mem = append(i.Mem, make([]Cell, addr+1-len(i.Mem))...)
}

// load and store panic with a *Fault on negative addresses, store also on
// addresses past maxSize. Run and Step recover it.

func (i *Instance) load(addr int) Cell {
	if addr < 0 {
		panic(i.fault(addr, ErrNegativeAddress))
	}
	if addr >= len(i.Mem) {
		return 0
	}
	return i.Mem[addr]
}

func (i *Instance) store(addr int, v Cell) {
	if addr < 0 {
		panic(i.fault(addr, ErrNegativeAddress))
	}
	if addr >= i.maxSize {
		panic(i.fault(addr, ErrAddressRange))
	}
	i.grow(addr)
	i.Mem[addr] = v
}
