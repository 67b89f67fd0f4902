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

package gclplugin

import "fillmore-labs.com/flagset/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Declarations enables validation of flag type declarations.
	Declarations *bool `json:"declarations,omitzero"`
	// Conversions enables checks of constant conversions to flag types.
	Conversions *bool `json:"conversions,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the flagcheck analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Declarations, analyzer.WithDeclarations)
	opts = appendOption(opts, s.Conversions, analyzer.WithConversions)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
