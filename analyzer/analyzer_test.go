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

package analyzer_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/flagset/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dirs    []string
		options Option
		fix     bool
	}{
		{
			name: "Declarations",
			dirs: []string{"./decl"},
		},
		{
			name: "Duplicates",
			dirs: []string{"./duplicate"},
			fix:  true,
		},
		{
			name: "Conversions",
			dirs: []string{"./flags", "./conversion"},
		},
		{
			name:    "ConversionsOnly",
			dirs:    []string{"./conversion"},
			options: WithDeclarations(false),
		},
		{
			name:    "Generated",
			dirs:    []string{"./generated"},
			options: Options{WithGenerated(false), WithConversions(true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if a := New(tt.options); tt.fix {
				analysistest.RunWithSuggestedFixes(t, testdata, a, tt.dirs...)
			} else {
				analysistest.Run(t, testdata, a, tt.dirs...)
			}
		})
	}
}

func TestNoDiagnostics(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	a := New(WithDeclarations(false), WithConversions(false))

	results := analysistest.Run(&nopT{t}, testdata, a, "./decl")
	for _, r := range results {
		if len(r.Action.Diagnostics) > 0 {
			t.Errorf("Expected no diagnostics, got %d", len(r.Action.Diagnostics))
		}
	}
}

// nopT ignores unmet expectations.
type nopT struct{ *testing.T }

func (nopT) Errorf(string, ...any) {}
