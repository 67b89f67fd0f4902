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

package decl

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrInvalidDeclaration is the error all declaration errors wrap.
var ErrInvalidDeclaration = errors.New("invalid flag declaration")

// Error is a single rule violation of a flag type declaration.
type Error struct {
	// Type is the name of the declared flag type.
	Type string

	// Rule is the violated rule.
	Rule Rule

	// Variants are the indices of the offending flags, empty for type-level violations.
	Variants []int

	// Names are the names of the offending flags.
	Names []string

	// Value is the offending value, if any.
	Value uint64

	// Repr is the declared representation.
	Repr Repr
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	if e.Type != "" {
		b.WriteString(e.Type)
		b.WriteString(": ")
	}

	b.WriteString(e.Message())

	return b.String()
}

// Unwrap returns [ErrInvalidDeclaration].
func (e *Error) Unwrap() error { return ErrInvalidDeclaration }

// Message returns the diagnostic message without the type name.
func (e *Error) Message() string {
	name := func(i int) string {
		if i < len(e.Names) {
			return e.Names[i]
		}

		return "<unknown>"
	}

	switch e.Rule {
	case StructuredVariant:
		return fmt.Sprintf("flag %s must be a bare constant without data", name(0))

	case MissingDiscriminant:
		return fmt.Sprintf("flag %s has no value, add an explicit bit", name(0))

	case NotSingleBit:
		if e.Value == 0 {
			return fmt.Sprintf("flag %s is zero, flags must have exactly one set bit", name(0))
		}

		return fmt.Sprintf("flag %s has value %#x, flags must have exactly one set bit", name(0), e.Value)

	case DuplicateBit:
		return fmt.Sprintf("flags %s and %s both use bit %d", name(0), name(1), bits.TrailingZeros64(e.Value))

	case DuplicateName:
		if len(e.Names) < 2 {
			return "flag with empty name"
		}

		return fmt.Sprintf("flag name %s is declared more than once", name(0))

	case MissingRepresentation:
		if e.Repr.Name != "" {
			return fmt.Sprintf("representation %s is not an explicit width, declare uint8, uint16, uint32 or uint64", e.Repr.Name)
		}

		return "missing representation, declare uint8, uint16, uint32 or uint64"

	case SignedRepresentation:
		return fmt.Sprintf("signed representation %s, flags need an unsigned integer", e.Repr.Name)

	case InsufficientWidth:
		switch {
		case len(e.Names) > 0 && e.Value != 0:
			return fmt.Sprintf("flag %s uses bit %d, which does not fit into %s", name(0), bits.TrailingZeros64(e.Value), e.Repr)

		case len(e.Names) > 0:
			return fmt.Sprintf("no unused bit left for flag %s", name(0))

		default:
			return fmt.Sprintf("%d flags do not fit into %s", e.Value, e.Repr)
		}

	case UnknownDefault:
		return fmt.Sprintf("default flag %s is not declared", name(0))

	case UndeclaredBits:
		return fmt.Sprintf("value %#x has bits not declared by any flag", e.Value)

	default:
		return "invalid flag declaration: " + e.Rule.String()
	}
}
