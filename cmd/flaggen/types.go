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
	"go/ast"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/flagset/internal/collect"
	"fillmore-labs.com/flagset/internal/decl"
	"fillmore-labs.com/flagset/internal/gen"
)

type typesOptions struct {
	*rootOptions

	types  []string
	output string
	tags   []string
}

func newTypesCmd(r *rootOptions) *cobra.Command {
	o := &typesOptions{rootOptions: r}

	cmd := &cobra.Command{
		Use:   "types [flags] [directory]",
		Short: "Generate bindings for flag types declared in Go source",
		Long: `Generate bindings for the flag types of the package in directory.

Without --type, all types marked with a //flagset:bits directive are bound.
Types declared in test files are written to a separate _test.go file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			return o.run(cmd.Context(), dir)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&o.types, "type", "t", nil, "comma-separated list of type names; default all marked types")
	f.StringVarP(&o.output, "output", "o", "", "output file name; default <dir>/<type>_flags.go")
	f.StringSliceVar(&o.tags, "tags", nil, "comma-separated list of build tags to apply")

	return cmd
}

// output is a generated file and its destination.
type output struct {
	path string
	file *gen.File
}

func (o *typesOptions) run(ctx context.Context, dir string) error {
	pkgs, err := o.load(ctx, dir)
	if err != nil {
		return err
	}

	sel := collect.Marked
	if len(o.types) > 0 {
		sel = collect.Named(o.types...)
	}

	var (
		outputs []output
		seen    = make(map[string]struct{})
		valid   = true
	)

	for _, pkg := range pkgs {
		if pkg.TypesInfo == nil || strings.HasSuffix(pkg.ID, ".test") {
			continue // test main
		}

		test := strings.Contains(pkg.ID, " [")

		found := collect.Types(syntax(pkg, test), pkg.TypesInfo, sel)
		if len(found) == 0 {
			continue
		}

		f := &gen.File{Command: o.command, Package: pkg.Name, Features: o.features()}

		for _, t := range found {
			seen[t.Name()] = struct{}{}

			gt, ok := o.check(pkg.Fset, t)
			if !ok {
				valid = false

				continue
			}

			f.Types = append(f.Types, gt)
		}

		outputs = append(outputs, output{path: filepath.Join(dir, gen.FileName(found[0].Name(), test)), file: f})
	}

	for _, name := range o.types {
		if _, ok := seen[name]; !ok {
			return fmt.Errorf("type %s not found in %s", name, dir)
		}
	}

	switch {
	case !valid:
		return errInvalid

	case len(outputs) == 0:
		return fmt.Errorf("%w in %s", gen.ErrNoTypes, dir)

	case o.output != "":
		if len(outputs) > 1 {
			return fmt.Errorf("--output can't be used for types in %d packages", len(outputs))
		}

		outputs[0].path = o.output
	}

	return o.write(ctx, outputs)
}

// load loads the package in dir together with its test variants.
func (o *typesOptions) load(ctx context.Context, dir string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Context:    ctx,
		Mode:       packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:        dir,
		Tests:      true,
		BuildFlags: []string{"-tags=" + strings.Join(o.tags, ",")},
		Logf: func(format string, args ...any) {
			o.logger.Debug(fmt.Sprintf(format, args...))
		},
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			o.logger.Warn("Package error", "package", pkg.ID, "error", e)
		}
	}

	return pkgs, nil
}

// syntax returns the files of pkg, restricted to test files for test variants.
func syntax(pkg *packages.Package, test bool) []*ast.File {
	if !test {
		return pkg.Syntax
	}

	return slices.DeleteFunc(slices.Clone(pkg.Syntax), func(f *ast.File) bool {
		return !strings.HasSuffix(pkg.Fset.File(f.FileStart).Name(), "_test.go")
	})
}

// check validates t and prints its violations.
func (o *rootOptions) check(fset *token.FileSet, t *collect.FlagType) (gen.Type, bool) {
	if t.DirectiveErr != nil {
		o.diag.print(fset.Position(t.Directive.Pos).String(), fmt.Sprintf("%s: %v", t.Name(), t.DirectiveErr), "")

		return gen.Type{}, false
	}

	d := t.Declaration()

	b, errs := decl.Check(d)
	for _, e := range errs {
		pos := t.Ident.Pos()

		switch {
		case len(e.Variants) > 0:
			pos = t.Flags[e.Variants[len(e.Variants)-1]].Ident.Pos()

		case e.Rule == decl.UnknownDefault:
			pos = t.Directive.Pos
		}

		o.diag.report(fset.Position(pos).String(), e)
	}

	if len(errs) > 0 {
		return gen.Type{}, false
	}

	gt := gen.Type{
		Name:    t.Name(),
		Flags:   make([]gen.Flag, len(t.Flags)),
		Default: d.Default,
	}

	for i, f := range t.Flags {
		gt.Flags[i] = gen.Flag{Name: f.Ident.Name, Value: b.Values[i]}
	}

	return gt, true
}

// write renders and writes the outputs concurrently.
func (o *rootOptions) write(ctx context.Context, outputs []output) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, out := range outputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := out.file.Source()
			if err != nil {
				return fmt.Errorf("%s: %w", out.path, err)
			}

			if err := os.WriteFile(out.path, src, 0o644); err != nil {
				return err
			}

			o.logger.Info("Generated", "file", out.path, "types", len(out.file.Types))

			return nil
		})
	}

	return g.Wait()
}
