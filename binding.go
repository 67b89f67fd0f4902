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

package flagset

import (
	"errors"
	"fmt"
	"math/bits"
	"reflect"
	"slices"

	"fillmore-labs.com/flagset/internal/decl"
)

// Bits is the set of representation types a flag type can be declared with.
//
// Signed and platform-dependent integers are excluded by design of the constraint,
// so a flag type declared as `type Option int` does not compile as a flag set.
type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Flag is the constraint satisfied by flag types with a [Binding].
//
// The FlagBinding method is usually generated by flaggen and must return the same
// binding on every call.
type Flag[T any] interface {
	Bits
	FlagBinding() *Binding[T]
}

// Named pairs a flag value with its name.
type Named[T any] struct {
	Name  string
	Value T
}

// Binding is the validated, immutable description of a flag type: its flags in
// canonical order, the all-bits mask and the default value.
//
// Bindings are created once with [Bind] or [MustBind], usually during package
// initialization, and are safe for concurrent use.
type Binding[T any] struct {
	typeName string
	width    int
	flags    []T
	names    []string
	ordinal  [64]int8 // bit position -> index into flags, -1 when undeclared
	all      uint64
	def      uint64
}

// Bind validates the given flags and returns the [Binding] for T.
//
// Every flag must have exactly one bit set, no two flags may share a bit or a
// name and all default names must be declared. All violations are returned
// joined; each is a *[DeclError].
func Bind[T Bits](typeName string, flags []Named[T], opts ...Option) (*Binding[T], error) {
	o := makeOptions(opts)

	if o.typeName != "" {
		typeName = o.typeName
	}

	if typeName == "" {
		typeName = reflect.TypeFor[T]().Name()
	}

	width := bits.Len64(uint64(^T(0)))

	d := decl.Declaration{
		Type:     typeName,
		Repr:     decl.Repr{Name: fmt.Sprintf("uint%d", width), Width: width},
		Variants: make([]decl.Variant, len(flags)),
		Default:  o.defaults,
	}

	for i, f := range flags {
		d.Variants[i] = decl.Variant{Name: f.Name, Value: uint64(f.Value), Resolved: true}
	}

	resolved, errs := decl.Check(d)
	if len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, err := range errs {
			joined[i] = err
		}

		return nil, errors.Join(joined...)
	}

	b := &Binding[T]{
		typeName: typeName,
		width:    width,
		flags:    make([]T, len(flags)),
		names:    make([]string, len(flags)),
		all:      resolved.All,
		def:      resolved.Default,
	}

	for i := range b.ordinal {
		b.ordinal[i] = -1
	}

	for i, f := range flags {
		b.flags[i] = f.Value
		b.names[i] = f.Name
		b.ordinal[bits.TrailingZeros64(uint64(f.Value))] = int8(i)
	}

	return b, nil
}

// MustBind is like [Bind] but panics if the flags are invalid.
// It simplifies safe initialization of global variables holding bindings.
func MustBind[T Bits](typeName string, flags []Named[T], opts ...Option) *Binding[T] {
	b, err := Bind(typeName, flags, opts...)
	if err != nil {
		panic("flagset: " + err.Error())
	}

	return b
}

// TypeName returns the name of the flag type for diagnostic display.
func (b *Binding[T]) TypeName() string { return b.typeName }

// Width returns the number of bits of the representation.
func (b *Binding[T]) Width() int { return b.width }

// Size returns the number of bytes of the representation.
func (b *Binding[T]) Size() int { return b.width / 8 }

// Len returns the number of declared flags.
func (b *Binding[T]) Len() int { return len(b.flags) }

// Flags returns the declared flags in canonical (declaration) order.
func (b *Binding[T]) Flags() []T { return slices.Clone(b.flags) }

// Names returns the flag names in canonical (declaration) order.
func (b *Binding[T]) Names() []string { return slices.Clone(b.names) }

// AllBits returns the union of all flag values.
func (b *Binding[T]) AllBits() uint64 { return b.all }

// DefaultBits returns the bits of the default value.
func (b *Binding[T]) DefaultBits() uint64 { return b.def }

// Lookup returns the flag with the given name.
func (b *Binding[T]) Lookup(name string) (T, bool) {
	if i := slices.Index(b.names, name); i >= 0 {
		return b.flags[i], true
	}

	var zero T

	return zero, false
}

// NameOf returns the name of the flag with the given single-bit value.
func (b *Binding[T]) NameOf(value uint64) (string, bool) {
	i := b.index(value)
	if i < 0 {
		return "", false
	}

	return b.names[i], true
}

// index returns the index of the flag with the single-bit value, or -1.
func (b *Binding[T]) index(value uint64) int {
	if !decl.SingleBit(value) {
		return -1
	}

	return int(b.ordinal[bits.TrailingZeros64(value)])
}

// DeclError is a single violation reported by [Bind].
type DeclError = decl.Error

// Rule identifies the declaration rule a [DeclError] reports.
type Rule = decl.Rule

// Declaration rules.
const (
	StructuredVariant     = decl.StructuredVariant
	MissingDiscriminant   = decl.MissingDiscriminant
	NotSingleBit          = decl.NotSingleBit
	DuplicateBit          = decl.DuplicateBit
	DuplicateName         = decl.DuplicateName
	MissingRepresentation = decl.MissingRepresentation
	SignedRepresentation  = decl.SignedRepresentation
	InsufficientWidth     = decl.InsufficientWidth
	UnknownDefault        = decl.UnknownDefault
)

// ErrInvalidDeclaration is wrapped by every [DeclError].
var ErrInvalidDeclaration = decl.ErrInvalidDeclaration
