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

// Package config defines the flag types configuring the analyzer and the generator.
package config

import "fillmore-labs.com/flagset"

//go:generate go run fillmore-labs.com/flagset/cmd/flaggen types --type Check,Behavior,Feature

// Check represents a single check of the flagcheck analyzer.
//
//flagset:bits default=DeclarationCheck|ConversionCheck
type Check uint8

const (
	// DeclarationCheck validates the declarations of flag types.
	DeclarationCheck Check = 1 << iota

	// ConversionCheck reports constant conversions to flag types with undeclared bits.
	ConversionCheck
)

// Checks is the set of enabled checks.
type Checks = flagset.Set[Check]

// Behavior represents a switch of the analyzer behavior.
//
//flagset:bits
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota
)

// Behaviors is the set of enabled behavior switches.
type Behaviors = flagset.Set[Behavior]

// Feature represents an optional part of generated code.
//
//flagset:bits default=StringMethod|Operators|Assertions
type Feature uint8

const (
	// StringMethod generates a String method for the flag type.
	StringMethod Feature = 1 << iota

	// Operators generates the Set, Or, And, Xor and Not methods promoting flags to sets.
	Operators

	// Assertions generates compile-time assertions of the constant values.
	Assertions
)

// Features is the set of enabled code generation features.
type Features = flagset.Set[Feature]
