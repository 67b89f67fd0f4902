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

package duplicate

//flagset:bits
type Color uint8

const (
	Red   Color = 1 << 0
	Green Color = 1 << 1
	Blue  Color = 1 << 1 // want `Color: flags Green and Blue both use bit 1 \(fs:duplicate\)`
)

//flagset:bits
type Access uint16

const (
	Get, Put Access = 1, 1 // want `Access: flags Get and Put both use bit 0 \(fs:duplicate\)`
	Delete   Access = 4
	Patch    Access = 4 // want `Access: flags Delete and Patch both use bit 2 \(fs:duplicate\)`
)
