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

// Package analyzer implements the flagcheck static analysis pass.
//
// # Overview
//
// flagcheck validates flag types, integer types marked with a
// //flagset:bits directive whose constants name single bits:
//
//	// Permission controls file access.
//	//
//	//flagset:bits default=Read|Write
//	type Permission uint8
//
//	const (
//		Read Permission = 1 << iota
//		Write
//		Execute
//	)
//
// Each flag must be a single set bit, distinct from all other flags of the
// type. The type must be an unsigned integer of explicit width that holds
// every flag, and defaults must name declared flags.
//
// Diagnostics carry a short code, like "(fs:duplicate)". Duplicate bits
// come with a suggested fix moving the flag to the lowest unused bit.
//
// # Conversions
//
// The flags of valid types are exported as facts, so constant conversions
// like Permission(8) are reported in every package that sets undeclared bits.
//
// # Suppression
//
// A //nolint:flagcheck comment on the line of a flag or conversion, or in
// the documentation of a type, suppresses its diagnostics.
package analyzer
