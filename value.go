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

import "strconv"

// Value is a [flag.Value] parsing a set of flag names like "A|B" into a [Set].
// Names are matched case-insensitively.
type Value[T Flag[T]] struct {
	set *Set[T]
}

// NewValue returns a [Value] storing into s.
func NewValue[T Flag[T]](s *Set[T]) Value[T] {
	return Value[T]{set: s}
}

// Set implements [flag.Value].
func (v Value[T]) Set(s string) error {
	set, err := ParseFold[T](s)
	if err != nil {
		return err
	}

	*v.set = set

	return nil
}

// String implements [flag.Value].
func (v Value[T]) String() string {
	if v.set == nil {
		return EmptyMarker
	}

	return v.set.String()
}

// Get implements [flag.Getter].
func (v Value[T]) Get() any {
	if v.set == nil {
		return Set[T]{}
	}

	return *v.set
}

// FlagValue is a boolean [flag.Value] enabling or disabling a single flag of a [Set].
type FlagValue[T Flag[T]] struct {
	set  *Set[T]
	flag T
}

// NewFlagValue returns a [FlagValue] toggling f in s.
func NewFlagValue[T Flag[T]](s *Set[T], f T) FlagValue[T] {
	return FlagValue[T]{set: s, flag: f}
}

// Set implements [flag.Value].
func (v FlagValue[T]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	v.set.Set(v.flag, b)

	return nil
}

// String implements [flag.Value].
func (v FlagValue[T]) String() string {
	if v.set == nil {
		return "false"
	}

	return strconv.FormatBool(v.set.Has(v.flag))
}

// Get implements [flag.Getter].
func (v FlagValue[T]) Get() any {
	if v.set == nil {
		return false
	}

	return v.set.Has(v.flag)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (FlagValue[T]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
