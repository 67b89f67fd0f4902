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
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownFlag is wrapped by every [ParseError].
var ErrUnknownFlag = errors.New("unknown flag")

// ParseError reports a name that does not denote a declared flag.
type ParseError struct {
	Type string // Flag type name
	Name string // Offending name
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: unknown flag %q", e.Type, e.Name)
}

// Unwrap returns [ErrUnknownFlag].
func (e *ParseError) Unwrap() error { return ErrUnknownFlag }

// Parse returns the set of flags named in s, the inverse of [Set.String].
//
// Names are separated by "|" and may be surrounded by white space. The empty
// string and [EmptyMarker] denote the empty set.
func Parse[T Flag[T]](s string) (Set[T], error) {
	return parse[T](s, func(name string) string { return name })
}

// ParseFold is like [Parse], but matches names case-insensitively using Unicode
// case folding.
func ParseFold[T Flag[T]](s string) (Set[T], error) {
	folder := cases.Fold()

	return parse[T](s, folder.String)
}

// MustParse is like [Parse] but panics if s names an unknown flag.
// It is intended for declarative shorthands in variable initializations.
func MustParse[T Flag[T]](s string) Set[T] {
	set, err := Parse[T](s)
	if err != nil {
		panic("flagset: " + err.Error())
	}

	return set
}

func parse[T Flag[T]](s string, key func(string) string) (Set[T], error) {
	b := BindingOf[T]()

	s = strings.TrimSpace(s)
	if s == "" || s == EmptyMarker {
		return Set[T]{}, nil
	}

	index := make(map[string]T, len(b.names))
	for i, name := range b.names {
		index[key(name)] = b.flags[i]
	}

	var set Set[T]

	for name := range strings.SplitSeq(s, "|") {
		name = strings.TrimSpace(name)

		f, ok := index[key(name)]
		if !ok {
			return Set[T]{}, &ParseError{Type: b.typeName, Name: name}
		}

		set.bits |= f
	}

	return set, nil
}
