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

package flagset_test

import "fillmore-labs.com/flagset"

type Test uint8

const (
	A Test = 1 << iota
	B
	C
	D
)

var testFlags = flagset.MustBind("Test", []flagset.Named[Test]{
	{"A", A}, {"B", B}, {"C", C}, {"D", D},
})

func (Test) FlagBinding() *flagset.Binding[Test] { return testFlags }

type Perm uint16

const (
	Read    Perm = 1 << 0
	Write   Perm = 1 << 1
	Execute Perm = 1 << 9
)

var permFlags = flagset.MustBind("", []flagset.Named[Perm]{
	{"Read", Read}, {"Write", Write}, {"Execute", Execute},
}, flagset.WithDefault("Read", "Write"))

func (Perm) FlagBinding() *flagset.Binding[Perm] { return permFlags }

type Wide uint64

const (
	Low  Wide = 1 << 0
	High Wide = 1 << 34
	Top  Wide = 1 << 63
)

var wideFlags = flagset.MustBind("Wide", []flagset.Named[Wide]{
	{"Low", Low}, {"High", High}, {"Top", Top},
})

func (Wide) FlagBinding() *flagset.Binding[Wide] { return wideFlags }
