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

// Package flagset provides type-safe sets of named bit flags.
//
// # Overview
//
// A flag type is an unsigned integer type whose constants each denote a single
// bit. A [Set] of that type holds any combination of the declared flags in one
// value of the flag type and guarantees that no other bits are ever set.
//
// # Declaring flags
//
//	//flagset:bits default=Read|Write
//	type Permission uint8
//
//	//go:generate go tool flaggen types --type Permission
//	const (
//	    Read Permission = 1 << iota
//	    Write
//	    Execute
//	)
//
// The flaggen command generates the [Binding] and the FlagBinding method that
// make Permission satisfy [Flag]. Without code generation, bind explicitly:
//
//	var (
//	    permissionOnce  sync.Once
//	    permissionFlags *flagset.Binding[Permission]
//	)
//
//	func (Permission) FlagBinding() *flagset.Binding[Permission] {
//	    permissionOnce.Do(func() {
//	        permissionFlags = flagset.MustBind("Permission", []flagset.Named[Permission]{
//	            {"Read", Read}, {"Write", Write}, {"Execute", Execute},
//	        }, flagset.WithDefault("Read", "Write"))
//	    })
//
//	    return permissionFlags
//	}
//
// The binding is built and validated on first use, before any set of the type
// exists. Its variables need no initializer, so package-level variables like
//
//	var defaultPermissions = flagset.MustParse[Permission]("Read | Write")
//
// are safe in any file of the package. The flagcheck analyzer reports the same
// violations at lint time.
//
// # Using sets
//
//	s := flagset.Of(Read, Write)
//	s.Insert(Execute)
//	s.Has(Write)              // true
//	s.Complement()            // <empty>
//	fmt.Printf("%v %#04x", s, s) // Read | Write | Execute 0x07
//
// Raw values are converted with [FromBits], which rejects unknown bits with a
// [FromBitsError], or [FromBitsTruncate], which discards them.
//
// # Serialization
//
// Sets encode as their raw integer for JSON, YAML, TOML, MessagePack and binary
// encodings, and decoding rejects unknown bits. A Set has the size and alignment
// of its flag type; reinterpreting raw memory as a Set is only valid after the
// value has been checked with [FromBits].
package flagset
