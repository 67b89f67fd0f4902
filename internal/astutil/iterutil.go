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

package astutil

import (
	"go/ast"
	"go/token"
	"iter"
)

// AllValueNames yields all non-blank names of a const or var declaration
// together with their specification.
func AllValueNames(decl *ast.GenDecl) iter.Seq2[*ast.ValueSpec, *ast.Ident] {
	if decl.Tok != token.CONST && decl.Tok != token.VAR {
		return func(func(*ast.ValueSpec, *ast.Ident) bool) {}
	}

	return func(yield func(*ast.ValueSpec, *ast.Ident) bool) {
		for _, spec := range decl.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			for _, id := range vspec.Names {
				if id.Name == "_" {
					continue // blank identifier
				}

				if !yield(vspec, id) {
					return
				}
			}
		}
	}
}

// AllTypeSpecs yields all type specifications of a type declaration.
func AllTypeSpecs(decl *ast.GenDecl) iter.Seq[*ast.TypeSpec] {
	if decl.Tok != token.TYPE {
		return func(func(*ast.TypeSpec) bool) {}
	}

	return func(yield func(*ast.TypeSpec) bool) {
		for _, spec := range decl.Specs {
			tspec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			if !yield(tspec) {
				return
			}
		}
	}
}

// TypeDoc returns the documentation of a type specification, falling back to
// the declaration's documentation for single, unparenthesized specifications.
func TypeDoc(decl *ast.GenDecl, spec *ast.TypeSpec) *ast.CommentGroup {
	if spec.Doc != nil {
		return spec.Doc
	}

	if !decl.Lparen.IsValid() {
		return decl.Doc
	}

	return nil
}
