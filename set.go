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
	"iter"
	"math/bits"

	"fortio.org/safecast"
)

// Set is a set of flags of type T, stored in a single value of T.
//
// A Set never has bits set that do not belong to a declared flag of T, unless it
// was created by [FromBitsUnchecked] in violation of its contract. The zero value
// is the empty set. Sets are values: they can be copied, compared with == and
// used as map keys.
type Set[T Flag[T]] struct {
	bits T
}

// BindingOf returns the [Binding] of T.
func BindingOf[T Flag[T]]() *Binding[T] {
	var f T

	return f.FlagBinding()
}

func allBits[T Flag[T]]() T {
	return T(BindingOf[T]().all)
}

// Empty returns the set without flags.
func Empty[T Flag[T]]() Set[T] {
	return Set[T]{}
}

// All returns the set of all declared flags.
func All[T Flag[T]]() Set[T] {
	return Set[T]{bits: allBits[T]()}
}

// Default returns the default set of T, which is empty unless the binding declares one.
func Default[T Flag[T]]() Set[T] {
	return Set[T]{bits: T(BindingOf[T]().def)}
}

// Of returns the set of the given flags. Bits of the arguments that belong to
// no declared flag are discarded.
func Of[T Flag[T]](flags ...T) Set[T] {
	var b T
	for _, f := range flags {
		b |= f
	}

	return FromBitsTruncate(b)
}

// FromBits returns the set with the given bits.
//
// When bits has bits set that belong to no declared flag, the result is a
// *[FromBitsError] carrying the truncated set and the invalid bits.
func FromBits[T Flag[T]](bits T) (Set[T], error) {
	all := allBits[T]()
	if invalid := bits &^ all; invalid != 0 {
		return Set[T]{}, &FromBitsError[T]{flags: Set[T]{bits: bits & all}, invalid: invalid}
	}

	return Set[T]{bits: bits}, nil
}

// FromBitsTruncate returns the set with the given bits, discarding bits that
// belong to no declared flag.
func FromBitsTruncate[T Flag[T]](bits T) Set[T] {
	return Set[T]{bits: bits & allBits[T]()}
}

// FromBitsUnchecked returns the set with the given bits without validation.
//
// The caller must guarantee that bits has no bits set that belong to no declared
// flag, e.g. because the value was read from a source validated by [FromBits]
// before. Violating this breaks every other operation on the set.
func FromBitsUnchecked[T Flag[T]](bits T) Set[T] {
	return Set[T]{bits: bits}
}

// FromUint64 is like [FromBits] for an untyped raw value. Values that do not fit
// into T report the conversion error.
func FromUint64[T Flag[T]](u uint64) (Set[T], error) {
	b, err := safecast.Conv[T](u)
	if err != nil {
		return Set[T]{}, &FromBitsError[T]{
			flags:   Set[T]{bits: T(u) & allBits[T]()},
			invalid: T(u) &^ allBits[T](),
			wide:    u,
			err:     err,
		}
	}

	return FromBits(b)
}

// Collect returns the union of all flags yielded by seq.
func Collect[T Flag[T]](seq iter.Seq[T]) Set[T] {
	var s Set[T]
	for f := range seq {
		s.Insert(f)
	}

	return s
}

// UnionOf returns the union of the given sets.
func UnionOf[T Flag[T]](sets ...Set[T]) Set[T] {
	var s Set[T]
	for _, o := range sets {
		s.bits |= o.bits
	}

	return s
}

// Bits returns the raw representation of s.
func (s Set[T]) Bits() T { return s.bits }

// Uint64 returns the raw representation of s as an uint64.
func (s Set[T]) Uint64() uint64 { return uint64(s.bits) }

// IsEmpty reports whether s contains no flags.
func (s Set[T]) IsEmpty() bool { return s.bits == 0 }

// IsAll reports whether s contains all declared flags.
func (s Set[T]) IsAll() bool { return s.bits == allBits[T]() }

// Len returns the number of flags in s.
func (s Set[T]) Len() int { return bits.OnesCount64(uint64(s.bits)) }

// Contains reports whether every flag of o is in s.
func (s Set[T]) Contains(o Set[T]) bool { return s.bits&o.bits == o.bits }

// Intersects reports whether s and o have at least one flag in common.
func (s Set[T]) Intersects(o Set[T]) bool { return s.bits&o.bits != 0 }

// Has reports whether all bits of f are in s. It is false for empty or
// undeclared f.
func (s Set[T]) Has(f T) bool {
	return f != 0 && f&^allBits[T]() == 0 && s.bits&f == f
}

// ExactlyOne returns the single flag in s, if s contains exactly one flag.
func (s Set[T]) ExactlyOne() (T, bool) {
	if s.bits != 0 && s.bits&(s.bits-1) == 0 {
		return s.bits, true
	}

	var zero T

	return zero, false
}

// Union returns the set of flags in s or o.
func (s Set[T]) Union(o Set[T]) Set[T] { return Set[T]{bits: s.bits | o.bits} }

// Intersection returns the set of flags in both s and o.
func (s Set[T]) Intersection(o Set[T]) Set[T] { return Set[T]{bits: s.bits & o.bits} }

// SymmetricDifference returns the set of flags in exactly one of s and o.
func (s Set[T]) SymmetricDifference(o Set[T]) Set[T] { return Set[T]{bits: s.bits ^ o.bits} }

// Difference returns the set of flags in s but not in o.
func (s Set[T]) Difference(o Set[T]) Set[T] { return Set[T]{bits: s.bits &^ o.bits} }

// Complement returns the set of declared flags not in s.
func (s Set[T]) Complement() Set[T] { return Set[T]{bits: ^s.bits & allBits[T]()} }

// With returns s with the given flags added.
func (s Set[T]) With(flags ...T) Set[T] {
	s.Insert(flags...)

	return s
}

// Without returns s with the given flags removed.
func (s Set[T]) Without(flags ...T) Set[T] {
	s.Remove(flags...)

	return s
}

// UnionWith adds the flags of o to s.
func (s *Set[T]) UnionWith(o Set[T]) { s.bits |= o.bits }

// IntersectWith removes the flags not in o from s.
func (s *Set[T]) IntersectWith(o Set[T]) { s.bits &= o.bits }

// SymmetricDifferenceWith toggles the flags of o in s.
func (s *Set[T]) SymmetricDifferenceWith(o Set[T]) { s.bits ^= o.bits }

// Invert replaces s with its complement.
func (s *Set[T]) Invert() { s.bits = ^s.bits & allBits[T]() }

// Insert adds the given flags to s. Undeclared bits are ignored.
func (s *Set[T]) Insert(flags ...T) {
	s.bits |= Of(flags...).bits
}

// Remove removes the given flags from s.
func (s *Set[T]) Remove(flags ...T) {
	s.bits &^= Of(flags...).bits
}

// Toggle inverts the given flags in s. Undeclared bits are ignored.
func (s *Set[T]) Toggle(flags ...T) {
	s.bits ^= Of(flags...).bits
}

// Set inserts or removes the given flag, depending on value.
func (s *Set[T]) Set(f T, value bool) {
	if value {
		s.Insert(f)
	} else {
		s.Remove(f)
	}
}
