// Copyright (c) 2025, The OpenThread Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

// Package runcli provides the interactive readline loop for the radio console.
package runcli

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// CliHandler executes a single console command and supplies the prompt.
type CliHandler interface {
	HandleCommand(cmd string, output io.Writer) error
	GetPrompt() string
}

// saveTerminalState captures the terminal state of fd so it can be restored
// after readline exits, if fd is a terminal at all.
func saveTerminalState(fd int) (func(), error) {
	if !readline.IsTerminal(fd) {
		return func() {}, nil
	}
	state, err := readline.GetState(fd)
	if err != nil {
		return nil, err
	}
	return func() {
		_ = readline.Restore(fd, state)
	}, nil
}

// RunCli reads commands from stdin and dispatches them to handler until
// EOF, interrupt, or a handler error.
func RunCli(handler CliHandler) error {
	restoreStdin, err := saveTerminalState(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer restoreStdin()

	restoreStdout, err := saveTerminalState(int(os.Stdout.Fd()))
	if err != nil {
		return err
	}
	defer restoreStdout()

	l, err := readline.NewEx(&readline.Config{
		Prompt:          handler.GetPrompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold: true,
		FuncFilterInputRune: func(r rune) (rune, bool) {
			// Ctrl-Z would suspend the process mid-readline; swallow it.
			return r, r != readline.CharCtrlZ
		},
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = l.Close()
	}()

	for {
		// the prompt tracks the virtual clock, so refresh it per line
		l.SetPrompt(handler.GetPrompt())

		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		cmd := strings.TrimSpace(line)
		if len(cmd) == 0 {
			continue
		}

		if err = handler.HandleCommand(cmd, l.Stdout()); err != nil {
			return err
		}

		_ = os.Stdout.Sync()
	}
}
