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
	"log/slog"
	"strings"
)

// Option configures a [Bind] call.
type Option interface {
	apply(o *options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

type options struct {
	typeName string
	defaults []string
}

func makeOptions(opts []Option) options {
	var o options
	Options(opts).apply(&o)

	return o
}

// WithDefault is an [Option] naming the flags of the default value.
// Without it the default value is empty.
func WithDefault(names ...string) Option { return defaultOption{names: names} }

type defaultOption struct{ names []string }

func (o defaultOption) apply(r *options) {
	r.defaults = append(r.defaults, o.names...)
}

func (o defaultOption) LogAttr() slog.Attr {
	return slog.String("default", strings.Join(o.names, "|"))
}

// WithTypeName is an [Option] overriding the type name used in diagnostic output.
func WithTypeName(name string) Option { return typeNameOption{name: name} }

type typeNameOption struct{ name string }

func (o typeNameOption) apply(r *options) {
	r.typeName = o.name
}

func (o typeNameOption) LogAttr() slog.Attr {
	return slog.String("type", o.name)
}
