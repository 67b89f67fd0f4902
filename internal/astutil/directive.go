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
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

// DirectivePrefix marks the declaration of a flag type.
const DirectivePrefix = "//flagset:bits"

// ErrMalformedDirective is returned for unparsable //flagset:bits comments.
var ErrMalformedDirective = errors.New("malformed directive")

// Directive is a parsed //flagset:bits comment.
//
// The comment has the form
//
//	//flagset:bits [default=A|B]
type Directive struct {
	// Pos is the position of the comment.
	Pos token.Pos

	// Default names the flags of the default value.
	Default []string
}

// FindDirective returns the //flagset:bits directive in doc.
// found is false when doc carries no directive.
func FindDirective(doc *ast.CommentGroup) (d Directive, found bool, err error) {
	if doc == nil {
		return Directive{}, false, nil
	}

	for _, c := range doc.List {
		args, ok := strings.CutPrefix(c.Text, DirectivePrefix)
		if !ok || args != "" && args[0] != ' ' && args[0] != '\t' {
			continue
		}

		d, err := ParseDirective(args)
		d.Pos = c.Slash

		return d, true, err
	}

	return Directive{}, false, nil
}

// ParseDirective parses the arguments of a //flagset:bits directive.
func ParseDirective(args string) (Directive, error) {
	var d Directive

	for arg := range strings.FieldsSeq(args) {
		key, value, _ := strings.Cut(arg, "=")

		switch key {
		case "default":
			if value == "" {
				continue
			}

			for name := range strings.SplitSeq(value, "|") {
				if name == "" {
					return d, fmt.Errorf("%w: empty flag name in %q", ErrMalformedDirective, arg)
				}

				d.Default = append(d.Default, name)
			}

		default:
			return d, fmt.Errorf("%w: unknown argument %q", ErrMalformedDirective, arg)
		}
	}

	return d, nil
}
