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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"math/bits"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/flagset/internal/astutil"
	"fillmore-labs.com/flagset/internal/collect"
	"fillmore-labs.com/flagset/internal/config"
	"fillmore-labs.com/flagset/internal/decl"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the flagcheck analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("flagcheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "FlagCheck")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	c := checker{
		Pass:      p,
		generated: r.Behavior.Has(config.IncludeGenerated),
		masks:     make(map[*types.TypeName]uint64),
		specs:     make(map[*ast.ValueSpec]struct{}),
	}

	// Stage 1: Validate all marked flag types and export the masks of valid ones
	declarations := r.Checks.Has(config.DeclarationCheck)
	for _, t := range collect.Types(p.Files, p.TypesInfo, collect.Marked) {
		c.checkType(ctx, t, declarations)
	}

	// Stage 2: Check constant conversions against the masks
	if r.Checks.Has(config.ConversionCheck) {
		c.checkConversions(ctx, in)
	}

	return nil, nil
}

type checker struct {
	*analysis.Pass
	generated bool

	// masks holds the flags of valid flag types declared in this package.
	masks map[*types.TypeName]uint64

	// specs holds the specifications declaring flags.
	specs map[*ast.ValueSpec]struct{}
}

// currentFile returns the file containing pos.
func (c *checker) currentFile(pos token.Pos) astutil.CurrentFile {
	for _, f := range c.Files {
		if f.FileStart <= pos && pos <= f.FileEnd {
			return astutil.NewCurrentFile(c.Fset, f)
		}
	}

	return astutil.CurrentFile{}
}

// reportable checks whether diagnostics may be reported in the file.
func (c *checker) reportable(cf astutil.CurrentFile) bool {
	return cf.Valid() && (c.generated || !cf.Generated())
}

func (c *checker) checkType(ctx context.Context, t *collect.FlagType, report bool) {
	defer trace.StartRegion(ctx, "checkType").End()

	cf := c.currentFile(t.Ident.Pos())
	if !cf.Valid() {
		astutil.InternalError(c.Pass, t.Ident, "Type %s without file info", t.Name())

		return
	}

	report = report && c.reportable(cf) && !cf.Suppressed(t.Ident.Pos(), t.Doc)

	if t.DirectiveErr != nil {
		if report {
			c.Report(analysis.Diagnostic{
				Pos:      t.Directive.Pos,
				Category: "directive",
				Message:  fmt.Sprintf("%s: %v", t.Name(), t.DirectiveErr),
			})
		}

		return
	}

	for _, f := range t.Flags {
		c.specs[f.Spec] = struct{}{}
	}

	d := t.Declaration()

	b, errs := decl.Check(d)
	if len(errs) == 0 {
		c.masks[t.Obj] = b.All
		c.ExportObjectFact(t.Obj, &Mask{All: b.All})

		return
	}

	if !report {
		return
	}

	for _, e := range errs {
		c.reportError(t, d, b, e)
	}
}

func (c *checker) reportError(t *collect.FlagType, d decl.Declaration, b decl.Binding, e *decl.Error) {
	diag := analysis.Diagnostic{
		Category: e.Rule.String(),
		Message:  message(e),
	}

	switch {
	case len(e.Variants) > 0:
		f := t.Flags[e.Variants[len(e.Variants)-1]]

		if cf := c.currentFile(f.Ident.Pos()); !c.reportable(cf) || cf.Suppressed(f.Ident.Pos(), f.Spec.Doc) {
			return
		}

		diag.Pos, diag.End = f.Ident.Pos(), f.Ident.End()

		if e.Rule == decl.DuplicateBit {
			diag.SuggestedFixes = unusedBitFix(f, d.Repr, b.All)
		}

	case e.Rule == decl.UnknownDefault:
		diag.Pos = t.Directive.Pos

	default:
		diag.Pos, diag.End = t.Ident.Pos(), t.Ident.End()
	}

	c.Report(diag)
}

// unusedBitFix suggests moving a duplicate flag to the lowest unused bit.
func unusedBitFix(f collect.Flag, repr decl.Repr, used uint64) []analysis.SuggestedFix {
	spec := f.Spec
	if len(spec.Names) != 1 || len(spec.Values) != 1 {
		return nil
	}

	next := ^used & (used + 1)
	if next == 0 || bits.TrailingZeros64(next) >= repr.Width {
		return nil
	}

	bit := bits.TrailingZeros64(next)
	value := spec.Values[0]

	return []analysis.SuggestedFix{{
		Message: fmt.Sprintf("Use unused bit %d", bit),
		TextEdits: []analysis.TextEdit{{
			Pos:     value.Pos(),
			End:     value.End(),
			NewText: fmt.Appendf(nil, "1 << %d", bit),
		}},
	}}
}

func (c *checker) checkConversions(ctx context.Context, in *inspector.Inspector) {
	defer trace.StartRegion(ctx, "checkConversions").End()

	// Loop over all files
	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		cf := astutil.NewCurrentFile(c.Fset, file)
		if !c.reportable(cf) {
			continue
		}

		for cur := range f.Preorder((*ast.CallExpr)(nil)) {
			c.checkConversion(cf, cur)
		}
	}
}

func (c *checker) checkConversion(cf astutil.CurrentFile, cur inspector.Cursor) {
	call, ok := cur.Node().(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		return
	}

	fun, ok := c.TypesInfo.Types[call.Fun]
	if !ok || !fun.IsType() {
		return
	}

	named, ok := types.Unalias(fun.Type).(*types.Named)
	if !ok {
		return
	}

	all, ok := c.mask(named.Obj())
	if !ok {
		return
	}

	tv, ok := c.TypesInfo.Types[call]
	if !ok || tv.Value == nil {
		return // not a constant
	}

	value, ok := collect.Uint64(tv.Value)
	if !ok || value&^all == 0 {
		return
	}

	if c.inFlagSpec(cur) || cf.NoLintComment(call.Pos()) {
		return
	}

	e := &decl.Error{Type: named.Obj().Name(), Rule: decl.UndeclaredBits, Value: value}

	c.Report(analysis.Diagnostic{
		Pos:      call.Pos(),
		End:      call.End(),
		Category: e.Rule.String(),
		Message:  message(e),
	})
}

// mask returns the flags of a valid flag type, declared in this package or exported as a fact.
func (c *checker) mask(obj *types.TypeName) (uint64, bool) {
	if all, ok := c.masks[obj]; ok {
		return all, true
	}

	if obj.Pkg() == c.Pkg {
		return 0, false
	}

	var m Mask
	if !c.ImportObjectFact(obj, &m) {
		return 0, false
	}

	return m.All, true
}

// inFlagSpec checks whether the node is part of a flag declaration.
func (c *checker) inFlagSpec(cur inspector.Cursor) bool {
	for enc := range cur.Enclosing((*ast.ValueSpec)(nil)) {
		if _, ok := c.specs[enc.Node().(*ast.ValueSpec)]; ok {
			return true
		}
	}

	return false
}

func message(e *decl.Error) string {
	return e.Error() + " (" + e.Rule.Code() + ")"
}
