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
	"fmt"
	"strconv"
	"strings"
)

// EmptyMarker is the textual form of a set without flags.
const EmptyMarker = "<empty>"

const separator = " | "

// String returns the names of the flags in s, joined by " | " in ascending bit
// order, or [EmptyMarker] for the empty set.
func (s Set[T]) String() string {
	if s.bits == 0 {
		return EmptyMarker
	}

	var b strings.Builder
	s.appendNames(&b)

	return b.String()
}

func (s Set[T]) appendNames(b *strings.Builder) {
	for name := range s.Names() {
		if b.Len() > 0 {
			b.WriteString(separator)
		}

		b.WriteString(name)
	}
}

// Format implements [fmt.Formatter].
//
// The verbs %v, %s and %q format the flag names, honoring width and flags.
// %+v and %#v format the type name, the bits in binary and the flag names, like
// "Set[Option](0b101, A | C)", honoring width and the '-' flag. The integer
// verbs %b, %o, %O, %x, %X and %d format the raw bits, so "%#04x" yields "0x05".
func (s Set[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') || f.Flag('#') {
			_, _ = fmt.Fprintf(f, padding(f), s.debugString())

			return
		}

		fallthrough

	case 's', 'q':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), s.String())

	case 'b', 'o', 'O', 'x', 'X', 'd':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), uint64(s.bits))

	default:
		_, _ = fmt.Fprintf(f, "%%!%c(%s=%s)", verb, BindingOf[T]().typeName, s.String())
	}
}

// padding returns a %s format with the width and '-' flag of f.
func padding(f fmt.State) string {
	spec := []byte{'%'}
	if f.Flag('-') {
		spec = append(spec, '-')
	}

	if w, ok := f.Width(); ok {
		spec = strconv.AppendInt(spec, int64(w), 10)
	}

	return string(append(spec, 's'))
}

// debugString returns the form "Set[Option](0b101, A | C)", or "Set[Option](0b0)" when empty.
func (s Set[T]) debugString() string {
	var b strings.Builder

	b.WriteString("Set[")
	b.WriteString(BindingOf[T]().typeName)
	b.WriteString("](0b")
	b.WriteString(strconv.FormatUint(uint64(s.bits), 2))

	if s.bits != 0 {
		b.WriteString(", ")

		var names strings.Builder
		s.appendNames(&names)
		b.WriteString(names.String())
	}

	b.WriteByte(')')

	return b.String()
}

// nameOrBit returns the name of the flag with the given value, or the value in
// hexadecimal when no such flag is declared.
func (b *Binding[T]) nameOrBit(value uint64) string {
	if i := b.index(value); i >= 0 {
		return b.names[i]
	}

	return "0x" + strconv.FormatUint(value, 16)
}
