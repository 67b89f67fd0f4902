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

// Flaggen generates flag set bindings for flag types.
//
// Usage:
//
//	flaggen types [--type Option[,Other]] [--output file] [dir]
//	flaggen decl [--output-dir dir] [--package name] file.toml|file.yaml ...
//
// The types command binds flag types declared in Go source, the decl command
// declares flag types described by TOML or YAML declaration files.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fillmore-labs.com/flagset/internal/config"
)

// errInvalid is returned when declarations violate flag rules.
var errInvalid = errors.New("invalid flag declarations")

func main() {
	if err := newRootCmd(os.Args[1:]).ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, "flaggen:", err)
		}

		os.Exit(1)
	}
}

// rootOptions are shared by all subcommands.
type rootOptions struct {
	// command is recorded in the header of generated files.
	command string

	verbose      bool
	color        string
	noString     bool
	noOps        bool
	noAssertions bool

	logger *slog.Logger
	diag   *printer
}

func newRootCmd(args []string) *cobra.Command {
	o := &rootOptions{command: strings.Join(args, " ")}

	cmd := &cobra.Command{
		Use:           "flaggen",
		Short:         "Generate flag set bindings",
		Long:          `flaggen generates type-safe flag set bindings for flag types`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log progress")
	pf.StringVar(&o.color, "color", "auto", "colorize diagnostics (auto|on|off)")
	pf.BoolVar(&o.noString, "no-string", false, "omit the String method")
	pf.BoolVar(&o.noOps, "no-ops", false, "omit the operator methods")
	pf.BoolVar(&o.noAssertions, "no-assertions", false, "omit the compile-time value assertions")

	cmd.AddCommand(newTypesCmd(o), newDeclCmd(o))
	cmd.SetArgs(args)

	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelInfo
	}

	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	diag, err := newPrinter(cmd.ErrOrStderr(), o.color)
	if err != nil {
		return err
	}

	o.diag = diag

	return nil
}

// features returns the generator features selected on the command line.
func (o *rootOptions) features() config.Features {
	var f config.Features
	f.Set(config.StringMethod, !o.noString)
	f.Set(config.Operators, !o.noOps)
	f.Set(config.Assertions, !o.noAssertions)

	return f
}
