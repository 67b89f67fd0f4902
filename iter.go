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
)

// Iterator yields the flags of a [Set] in ascending bit order.
//
// Copying an Iterator yields an independent iterator at the same position.
type Iterator[T Flag[T]] struct {
	rest T
}

// Iter returns an [Iterator] over the flags of s.
func (s Set[T]) Iter() Iterator[T] {
	return Iterator[T]{rest: s.bits}
}

// Next returns the next flag, or false when the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.rest == 0 {
		var zero T

		return zero, false
	}

	low := it.rest & -it.rest // isolate the lowest set bit
	it.rest &= it.rest - 1

	return low, true
}

// Len returns the number of flags not yet returned.
func (it *Iterator[T]) Len() int {
	return bits.OnesCount64(uint64(it.rest))
}

// Values returns an iterator over the flags of s in ascending bit order.
func (s Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for f, ok := it.Next(); ok; f, ok = it.Next() {
			if !yield(f) {
				return
			}
		}
	}
}

// Names returns an iterator over the names of the flags in s in ascending bit order.
func (s Set[T]) Names() iter.Seq[string] {
	b := BindingOf[T]()

	return func(yield func(string) bool) {
		for f := range s.Values() {
			if !yield(b.nameOrBit(uint64(f))) {
				return
			}
		}
	}
}
