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
)

// ErrInvalidBits is wrapped by every [FromBitsError].
var ErrInvalidBits = errors.New("invalid bits")

// FromBitsError is returned by the checked conversions when the raw value has
// bits set that belong to no declared flag.
//
// It carries both the recoverable, truncated set and the offending bits.
type FromBitsError[T Flag[T]] struct {
	flags   Set[T]
	invalid T
	wide    uint64
	err     error
}

// Truncate returns the truncated result of the conversion.
func (e *FromBitsError[T]) Truncate() Set[T] { return e.flags }

// InvalidBits returns the bits that did not correspond to any flag.
//
// For values too wide for the representation, only the bits inside the
// representation are returned; see [FromBitsError.Uint64].
func (e *FromBitsError[T]) InvalidBits() T { return e.invalid }

// Uint64 returns the rejected raw value when it did not fit into the representation.
func (e *FromBitsError[T]) Uint64() (uint64, bool) { return e.wide, e.err != nil }

// Error implements the error interface.
func (e *FromBitsError[T]) Error() string {
	name := BindingOf[T]().typeName

	if e.err != nil {
		return fmt.Sprintf("invalid bits for %s: %#x does not fit into %d bits", name, e.wide, BindingOf[T]().width)
	}

	return fmt.Sprintf("invalid bits for %s: %#b", name, uint64(e.invalid))
}

// Unwrap returns [ErrInvalidBits] and the range error, if any.
func (e *FromBitsError[T]) Unwrap() []error {
	if e.err != nil {
		return []error{ErrInvalidBits, e.err}
	}

	return []error{ErrInvalidBits}
}
