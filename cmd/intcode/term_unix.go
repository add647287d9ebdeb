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

//go:build linux || darwin || freebsd

package main

import (
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// setRawIO switches stdin to raw IO for key mode and returns a function that
// restores the previous settings. This file builds on every platform where
// pkg/term/termios provides Tcgetattr and Tcsetattr over unix.Termios; see
// term_other.go for the rest.
func setRawIO() (func(), error) {
	var tios unix.Termios
	err := termios.Tcgetattr(0, &tios)
	if err != nil {
		return nil, err
	}
	a := tios
	a.Iflag &^= unix.BRKINT | unix.ISTRIP | unix.IXON | unix.IXOFF
	a.Iflag |= unix.IGNBRK | unix.IGNPAR
	a.Lflag &^= unix.ICANON | unix.ISIG | unix.IEXTEN | unix.ECHO
	a.Cc[unix.VMIN] = 1
	a.Cc[unix.VTIME] = 0
	err = termios.Tcsetattr(0, termios.TCSANOW, &a)
	if err != nil {
		// well, try to restore as it was if it errors
		termios.Tcsetattr(0, termios.TCSANOW, &tios)
		return nil, err
	}
	return func() {
		termios.Tcsetattr(0, termios.TCSANOW, &tios)
	}, nil
}
