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
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/flagset/internal/decl"
	"fillmore-labs.com/flagset/internal/declfile"
	"fillmore-labs.com/flagset/internal/gen"
)

type declOptions struct {
	*rootOptions

	outputDir string
	pkg       string
}

func newDeclCmd(r *rootOptions) *cobra.Command {
	o := &declOptions{rootOptions: r}

	cmd := &cobra.Command{
		Use:   "decl [flags] file.toml|file.yaml ...",
		Short: "Declare flag types described by declaration files",
		Long: `Declare the flag types described by TOML or YAML declaration files.

Each file.toml is rendered to file_flags.go, declaring the types, their
constants and bindings. Flags without bit or value get the lowest unused bit.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context(), args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.outputDir, "output-dir", "d", "", "output directory; default the directory of each file")
	f.StringVarP(&o.pkg, "package", "p", "", "package name; default the package of each file")

	return cmd
}

func (o *declOptions) run(ctx context.Context, paths []string) error {
	var (
		mu      sync.Mutex
		outputs = make([]output, 0, len(paths))
		invalid bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, ok, err := o.declare(path)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()

			if !ok {
				invalid = true

				return nil
			}

			outputs = append(outputs, out)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if invalid {
		return errInvalid
	}

	return o.write(ctx, outputs)
}

// declare loads and validates the declaration file at path.
func (o *declOptions) declare(path string) (output, bool, error) {
	df, err := declfile.Load(path)
	if err != nil {
		return output{}, false, err
	}

	pkg := o.pkg
	if pkg == "" {
		pkg = df.Package
	}

	if pkg == "" {
		return output{}, false, fmt.Errorf("%s: no package name declared, use --package", path)
	}

	f := &gen.File{Command: o.command, Package: pkg, Features: o.features()}
	valid := true

	for _, t := range df.Types {
		d, err := t.Declaration()
		if err != nil {
			return output{}, false, fmt.Errorf("%s: %w", path, err)
		}

		b, errs := decl.Check(d)
		for _, e := range errs {
			o.diag.report(path, e)
		}

		if len(errs) > 0 {
			valid = false

			continue
		}

		gt := gen.Type{
			Name:    t.Name,
			Flags:   make([]gen.Flag, len(t.Flags)),
			Default: t.Default,
			Declare: true,
			Repr:    t.Repr,
			Doc:     t.Doc,
		}

		for i, fl := range t.Flags {
			gt.Flags[i] = gen.Flag{Name: fl.Name, Value: b.Values[i], Doc: fl.Doc}
		}

		f.Types = append(f.Types, gt)
	}

	dir := o.outputDir
	if dir == "" {
		dir = filepath.Dir(path)
	}

	base := filepath.Base(path)
	name := gen.FileName(strings.TrimSuffix(base, filepath.Ext(base)), false)

	return output{path: filepath.Join(dir, name), file: f}, valid, nil
}
