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

package vm_test

import (
	"fmt"

	"github.com/willlunniss/intcode/vm"
)

// Shows how to load a program, seed memory and read the result.
func ExampleInstance_Poke() {
	i, err := vm.NewFromString("1,0,0,0,99")
	if err != nil {
		panic(err)
	}
	i.Poke(1, 4)
	i.Poke(2, 4)
	if _, err = i.Run(); err != nil {
		panic(err)
	}
	v, _ := i.Peek(0)
	fmt.Println(v)

	// Output:
	// 198
}

// Shows how a program suspends when it needs input and resumes when input is
// supplied.
func ExampleInstance_Run() {
	i, err := vm.NewFromString("3,9,8,9,10,9,4,9,99,-1,8")
	if err != nil {
		panic(err)
	}
	st, _ := i.Run()
	fmt.Println(st, i.PC)

	i.Input.Push(8)
	st, _ = i.Run()
	fmt.Println(st, i.Output.Values())

	// Output:
	// waiting for input 0
	// halted [1]
}

// Two instances chained by hand: the first one doubles its input, the second
// one adds 3 to its input.
func Example_chain() {
	double, _ := vm.NewFromString("3,9,102,2,9,9,4,9,99,0")
	add3, _ := vm.NewFromString("3,9,1001,9,3,9,4,9,99,0")

	double.Input.Push(20)
	stages := []*vm.Instance{double, add3}
	for k, i := range stages {
		if _, err := i.Run(); err != nil {
			panic(err)
		}
		if k+1 < len(stages) {
			stages[k+1].Input.Push(i.Output.Drain()...)
		}
	}
	fmt.Println(add3.Output.Values())

	// Output:
	// [43]
}

func ExampleQueue_ASCII() {
	i, _ := vm.NewFromString("104,79,104,75,104,10,104,-42,99")
	i.Run()
	fmt.Printf("%q\n", i.Output.ASCII())

	// Output:
	// "OK\n-42"
}
