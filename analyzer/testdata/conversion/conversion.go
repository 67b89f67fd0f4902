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

package conversion

import "test/flags"

//flagset:bits
type Mode uint8 // want Mode:`flags\(0x3\)`

const (
	Fast Mode = 1 << iota
	Safe
)

var (
	_ = Mode(3)
	_ = Mode(Fast | Safe)
	_ = Mode(0)
	_ = Mode(4) // want `Mode: value 0x4 has bits not declared by any flag \(fs:undeclared\)`
	_ = Mode(8) //nolint:flagcheck
)

func options(m Mode) []flags.Option {
	return []flags.Option{
		flags.Option(0x101),
		flags.Option(0x10), // want `Option: value 0x10 has bits not declared by any flag \(fs:undeclared\)`
		flags.Option(m),
		flags.Level(5),
	}
}

type unmarked uint8

var _ = unmarked(0xff)
