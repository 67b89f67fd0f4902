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

// Package decl validates flag type declarations.
//
// A declaration lists the flags of a type together with their values and the
// representation the flags are stored in. [Check] applies every rule and
// returns the resolved binding together with all violations, so callers
// (runtime registration, code generation and static analysis) report the
// same diagnostics.
package decl

import (
	"math/bits"
	"slices"
)

// MaxWidth is the widest supported representation in bits.
const MaxWidth = 64

// Variant is a single flag of a [Declaration].
type Variant struct {
	// Name is the flag name, unique within its declaration.
	Name string

	// Value is the flag's bit. Only meaningful when Resolved is set.
	Value uint64

	// Resolved reports whether Value is known.
	Resolved bool

	// Structured marks a flag that carries data besides its bit.
	Structured bool
}

// Declaration describes a flag type.
type Declaration struct {
	// Type is the name of the flag type, used in messages.
	Type string

	// Repr is the declared representation, see [ParseRepr].
	Repr Repr

	// Variants are the flags in declaration order.
	Variants []Variant

	// Default names the flags of the default value. Empty means no flags.
	Default []string

	// Infer assigns the lowest unused bit to unresolved flags, in declaration order.
	Infer bool
}

// Binding is the result of a successful [Check].
type Binding struct {
	// Values holds the resolved flag values in declaration order.
	Values []uint64

	// All is the union of all flag values.
	All uint64

	// Default is the union of the default flag values.
	Default uint64
}

// Check validates d and returns the resolved flag values.
//
// Violations are returned in rule order: variant shape, missing values, single
// bits and duplicates first, then the representation and finally the defaults.
// The returned [Binding] is only meaningful when no error is reported.
func Check(d Declaration) (Binding, []*Error) {
	c := checker{
		d:      &d,
		values: make([]uint64, len(d.Variants)),
		bitOf:  make(map[uint64]int, len(d.Variants)),
		nameOf: make(map[string]int, len(d.Variants)),
	}

	c.checkVariants()

	if d.Infer {
		c.inferValues()
	}

	c.checkRepr()

	all := c.used
	def := c.checkDefault()

	return Binding{Values: c.values, All: all, Default: def}, c.errs
}

type checker struct {
	d      *Declaration
	values []uint64
	used   uint64
	bitOf  map[uint64]int
	nameOf map[string]int
	errs   []*Error
}

func (c *checker) report(rule Rule, value uint64, variants ...int) {
	names := make([]string, 0, len(variants))
	for _, i := range variants {
		names = append(names, c.d.Variants[i].Name)
	}

	c.errs = append(c.errs, &Error{
		Type:     c.d.Type,
		Rule:     rule,
		Variants: variants,
		Names:    names,
		Value:    value,
		Repr:     c.d.Repr,
	})
}

func (c *checker) checkVariants() {
	for i, v := range c.d.Variants {
		if j, ok := c.nameOf[v.Name]; ok || v.Name == "" {
			if ok {
				c.report(DuplicateName, 0, j, i)
			} else {
				c.report(DuplicateName, 0, i)
			}
		} else {
			c.nameOf[v.Name] = i
		}

		switch {
		case v.Structured:
			c.report(StructuredVariant, 0, i)

		case !v.Resolved:
			if !c.d.Infer {
				c.report(MissingDiscriminant, 0, i)
			}

		case !SingleBit(v.Value):
			c.report(NotSingleBit, v.Value, i)

		default:
			if j, ok := c.bitOf[v.Value]; ok {
				c.report(DuplicateBit, v.Value, j, i)

				continue
			}

			c.bitOf[v.Value] = i
			c.values[i] = v.Value
			c.used |= v.Value
		}
	}
}

// inferValues assigns the lowest unused bit to every unresolved flag.
func (c *checker) inferValues() {
	for i, v := range c.d.Variants {
		if v.Resolved || v.Structured {
			continue
		}

		next := ^c.used & (c.used + 1) // lowest clear bit
		if next == 0 {
			c.report(InsufficientWidth, 0, i)

			continue
		}

		c.bitOf[next] = i
		c.values[i] = next
		c.used |= next
	}
}

func (c *checker) checkRepr() {
	r := c.d.Repr

	switch {
	case r.Signed:
		c.report(SignedRepresentation, 0)

		return

	case r.Width == 0:
		c.report(MissingRepresentation, 0)

		return
	}

	if len(c.d.Variants) > r.Width {
		c.report(InsufficientWidth, uint64(len(c.d.Variants)))
	}

	for i, v := range c.values {
		if v == 0 {
			continue
		}

		if bits.TrailingZeros64(v) >= r.Width {
			c.report(InsufficientWidth, v, i)
		}
	}
}

func (c *checker) checkDefault() uint64 {
	var def uint64

	for _, name := range c.d.Default {
		i, ok := c.nameOf[name]
		if !ok {
			c.errs = append(c.errs, &Error{
				Type:  c.d.Type,
				Rule:  UnknownDefault,
				Names: []string{name},
				Repr:  c.d.Repr,
			})

			continue
		}

		def |= c.values[i]
	}

	return def
}

// SingleBit reports whether v has exactly one bit set.
func SingleBit(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

// Lookup returns the index of the named flag, or -1.
func (d Declaration) Lookup(name string) int {
	return slices.IndexFunc(d.Variants, func(v Variant) bool { return v.Name == name })
}
