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

// Code generated by hand for testing. DO NOT EDIT.

package generated

//flagset:bits
type Generated uint8 // want Generated:`flags\(0x3\)`

const (
	One Generated = 1 << iota
	Two
)

//flagset:bits
type Invalid uint8

const (
	Zero  Invalid = 0
	Again Invalid = 0
)

var _ = Generated(4)
