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

import "strings"

// Repr describes the integer representation of a flag type.
type Repr struct {
	// Name is the declared type name, like "uint8". Empty when not declared.
	Name string

	// Width is the number of bits, 0 when not declared or platform-dependent.
	Width int

	// Signed marks a signed integer representation.
	Signed bool
}

// String returns the declared representation name.
func (r Repr) String() string {
	if r.Name == "" {
		return "<none>"
	}

	return r.Name
}

// Valid reports whether r is an explicit unsigned representation.
func (r Repr) Valid() bool {
	return r.Width > 0 && !r.Signed
}

// ParseRepr returns the representation for a Go integer type name.
//
// Platform-dependent types (uint, int, uintptr) are returned with a zero width,
// and unknown names as an undeclared representation carrying the name.
func ParseRepr(name string) Repr {
	name = strings.TrimSpace(name)

	r := Repr{Name: name}

	switch name {
	case "uint8", "byte":
		r.Width = 8
	case "uint16":
		r.Width = 16
	case "uint32":
		r.Width = 32
	case "uint64":
		r.Width = 64

	case "int8":
		r.Width, r.Signed = 8, true
	case "int16":
		r.Width, r.Signed = 16, true
	case "int32", "rune":
		r.Width, r.Signed = 32, true
	case "int64":
		r.Width, r.Signed = 64, true
	case "int":
		r.Signed = true
	}

	return r
}
