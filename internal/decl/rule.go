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

// Rule identifies the declaration rule a flag type violates.
type Rule uint8

//go:generate go tool stringer -type Rule -linecomment
const (
	// StructuredVariant indicates a flag carrying data besides its name and bit.
	StructuredVariant Rule = iota // structured

	// MissingDiscriminant indicates a flag without a resolvable value.
	MissingDiscriminant // discriminant

	// NotSingleBit indicates a flag value that is zero or has more than one bit set.
	NotSingleBit // singlebit

	// DuplicateBit indicates two flags controlling the same bit.
	DuplicateBit // duplicate

	// DuplicateName indicates an empty flag name or two flags sharing a name.
	DuplicateName // name

	// MissingRepresentation indicates an undeclared or platform-dependent representation width.
	MissingRepresentation // repr

	// SignedRepresentation indicates a signed representation type.
	SignedRepresentation // signed

	// InsufficientWidth indicates flags that do not fit into the representation.
	InsufficientWidth // width

	// UnknownDefault indicates a default naming a flag that is not declared.
	UnknownDefault // default

	// UndeclaredBits indicates a constant of a flag type with bits no flag declares.
	// It is only reported by static analysis of flag type uses.
	UndeclaredBits // undeclared
)

// Code returns the short diagnostic code for r, as in "fs:singlebit".
func (i Rule) Code() string { return "fs:" + i.String() }
