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

// Package collect finds flag types and their flags in type-checked Go sources.
package collect

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"fillmore-labs.com/flagset/internal/astutil"
	"fillmore-labs.com/flagset/internal/decl"
)

// Flag is a package-level constant of a flag type.
type Flag struct {
	// Ident is the declaring identifier.
	Ident *ast.Ident

	// Spec is the declaring value specification.
	Spec *ast.ValueSpec

	// Value is the constant value.
	Value constant.Value
}

// FlagType is a package-level named type with its flags in declaration order.
type FlagType struct {
	// Ident is the declaring identifier.
	Ident *ast.Ident

	// Obj is the type name object.
	Obj *types.TypeName

	// Doc is the documentation of the type specification.
	Doc *ast.CommentGroup

	// Marked reports whether the declaration carries a //flagset:bits directive.
	Marked bool

	// Directive is the parsed directive, valid when Marked is set.
	Directive astutil.Directive

	// DirectiveErr is the parse error of a malformed directive.
	DirectiveErr error

	// Flags are the constants of the type.
	Flags []Flag
}

// Name returns the type name.
func (t *FlagType) Name() string { return t.Ident.Name }

// Repr returns the representation of the type's underlying integer.
func (t *FlagType) Repr() decl.Repr {
	if b, ok := t.Obj.Type().Underlying().(*types.Basic); ok {
		return decl.ParseRepr(b.Name())
	}

	return decl.Repr{Name: t.Obj.Type().Underlying().String()}
}

// Declaration returns the [decl.Declaration] of t for [decl.Check].
func (t *FlagType) Declaration() decl.Declaration {
	d := decl.Declaration{
		Type:     t.Name(),
		Repr:     t.Repr(),
		Variants: make([]decl.Variant, len(t.Flags)),
		Default:  t.Directive.Default,
	}

	for i, f := range t.Flags {
		v := decl.Variant{Name: f.Ident.Name}
		v.Value, v.Resolved = Uint64(f.Value)

		d.Variants[i] = v
	}

	return d
}

// Uint64 returns the bit pattern of an integer constant. Negative values
// are returned in two's complement.
func Uint64(v constant.Value) (uint64, bool) {
	v = constant.ToInt(v)
	if v.Kind() != constant.Int {
		return 0, false
	}

	if u, exact := constant.Uint64Val(v); exact {
		return u, true
	}

	if i, exact := constant.Int64Val(v); exact {
		return uint64(i), true
	}

	return 0, false
}

// Selector decides whether a type declaration is collected.
type Selector func(name string, marked bool) bool

// Marked selects types with a //flagset:bits directive.
func Marked(_ string, marked bool) bool { return marked }

// Named selects the types with the given names.
func Named(names ...string) Selector {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	return func(name string, _ bool) bool {
		_, ok := set[name]

		return ok
	}
}

// Types returns the package-level types selected by sel together with their
// flags, in source order.
//
// Flags are collected from all package-level constant declarations whose
// defined object has exactly the flag type.
func Types(files []*ast.File, info *types.Info, sel Selector) []*FlagType {
	var (
		found []*FlagType
		byObj = make(map[types.Object]*FlagType)
	)

	for _, file := range files {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok {
				continue
			}

			for spec := range astutil.AllTypeSpecs(gd) {
				if spec.TypeParams != nil || spec.Assign.IsValid() {
					continue // generic types and aliases can't be flag types
				}

				obj, ok := info.Defs[spec.Name].(*types.TypeName)
				if !ok {
					continue
				}

				doc := astutil.TypeDoc(gd, spec)
				dir, marked, err := astutil.FindDirective(doc)

				if !sel(spec.Name.Name, marked) {
					continue
				}

				t := &FlagType{
					Ident:        spec.Name,
					Obj:          obj,
					Doc:          doc,
					Marked:       marked,
					Directive:    dir,
					DirectiveErr: err,
				}

				found = append(found, t)
				byObj[obj] = t
			}
		}
	}

	if len(found) == 0 {
		return nil
	}

	for _, file := range files {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}

			for vspec, id := range astutil.AllValueNames(gd) {
				c, ok := info.Defs[id].(*types.Const)
				if !ok {
					continue
				}

				named, ok := c.Type().(*types.Named)
				if !ok {
					continue
				}

				if t, ok := byObj[named.Obj()]; ok {
					t.Flags = append(t.Flags, Flag{Ident: id, Spec: vspec, Value: c.Val()})
				}
			}
		}
	}

	return found
}
