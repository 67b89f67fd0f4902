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

import (
	"testing"

	"github.com/go-quicktest/qt"

	"fillmore-labs.com/flagset"
)

//flagset:bits default=Warning|Critical
type Level uint8

const (
	Info Level = 1 << iota
	Warning
	Critical
)

// Initialized before anything declared in level_flags_test.go.
var (
	defaultLevels = flagset.MustParse[Level]("Warning | Critical")
	allLevels     = flagset.All[Level]()
	levelNames    = flagset.Default[Level]().String()
)

func TestInitOrder(t *testing.T) {
	t.Parallel()

	qt.Assert(t, qt.Equals(defaultLevels, flagset.Of(Warning, Critical)))
	qt.Assert(t, qt.Equals(allLevels.Len(), 3))
	qt.Assert(t, qt.Equals(levelNames, "Warning | Critical"))
}
