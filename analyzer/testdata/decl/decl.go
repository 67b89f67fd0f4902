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

// Valid is a well-formed flag type.
//
//flagset:bits default=First|Third
type Valid uint32 // want Valid:`flags\(0x80000007\)`

const (
	First Valid = 1 << iota
	Second
	Third
	Last Valid = 1 << 31
)

//flagset:bits
type Composite uint8

const (
	Read   Composite = 1
	Write  Composite = 2
	Both   Composite = Read | Write // want `Composite: flag Both has value 0x3, flags must have exactly one set bit \(fs:singlebit\)`
	Absent Composite = 0            // want `Composite: flag Absent is zero, flags must have exactly one set bit \(fs:singlebit\)`
)

//flagset:bits
type Platform uint // want `Platform: representation uint is not an explicit width, declare uint8, uint16, uint32 or uint64 \(fs:repr\)`

const Any Platform = 1

//flagset:bits
type Signed int16 // want `Signed: signed representation int16, flags need an unsigned integer \(fs:signed\)`

const Negative Signed = 1

//flagset:bits
type Crowded uint8 // want `Crowded: 9 flags do not fit into uint8 \(fs:width\)`

const (
	C0 Crowded = 1 << iota
	C1
	C2
	C3
	C4
	C5
	C6
	C7
	C8 Crowded = 1 // want `Crowded: flags C0 and C8 both use bit 0 \(fs:duplicate\)`
)

// Weekend has a typo in its default.
//
// want +1 `Weekend: default flag Sonday is not declared \(fs:default\)`
//flagset:bits default=Saturday|Sonday
type Weekend uint8

const (
	Saturday Weekend = 1 << iota
	Sunday
)

// Broken has a malformed directive.
//
// want +1 `Broken: malformed directive: unknown argument "bogus"`
//flagset:bits bogus
type Broken uint8

const Something Broken = 3

// Ignored has a suppressed declaration.
//
//nolint:flagcheck
//flagset:bits
type Ignored uint8

const Nothing Ignored = 0

//flagset:bits
type Partial uint8

const (
	Good  Partial = 1
	Bad   Partial = 6 //nolint:flagcheck
	Worse Partial = 0 // want `Partial: flag Worse is zero, flags must have exactly one set bit \(fs:singlebit\)`
)

// Plain types without a directive are not checked.
type Plain uint8

const (
	P0 Plain = 0
	P3 Plain = 3
)
