// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"

	"fillmore-labs.com/flagset/internal/decl"
)

// printer writes diagnostics like "file:line:col: message (fs:code)".
// It is safe for concurrent use.
type printer struct {
	mu   sync.Mutex
	w    io.Writer
	pos  *color.Color
	code *color.Color
}

func newPrinter(w io.Writer, mode string) (*printer, error) {
	p := &printer{
		w:    w,
		pos:  color.New(color.Bold),
		code: color.New(color.FgRed),
	}

	var enable bool

	switch mode {
	case "on":
		enable = true

	case "off":

	case "auto":
		f, ok := w.(*os.File)
		enable = ok && isTerminal(f)

	default:
		return nil, fmt.Errorf("invalid --color %q, want auto, on or off", mode)
	}

	for _, c := range []*color.Color{p.pos, p.code} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p, nil
}

// isTerminal checks whether the file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// report prints a rule violation at pos.
func (p *printer) report(pos string, e *decl.Error) {
	p.print(pos, e.Error(), e.Rule.Code())
}

// print prints a diagnostic, code may be empty.
func (p *printer) print(pos, message, code string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if code == "" {
		fmt.Fprintf(p.w, "%s: %s\n", p.pos.Sprint(pos), message)

		return
	}

	fmt.Fprintf(p.w, "%s: %s %s\n", p.pos.Sprint(pos), message, p.code.Sprint("("+code+")"))
}
