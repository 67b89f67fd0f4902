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

package declfile_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"fillmore-labs.com/flagset/internal/decl"
	. "fillmore-labs.com/flagset/internal/declfile"
)

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	f, err := Load("testdata/perm.toml")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f.Package, "perm"))
	qt.Assert(t, qt.HasLen(f.Types, 2))

	d, err := f.Types[0].Declaration()
	qt.Assert(t, qt.IsNil(err))

	b, errs := decl.Check(d)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.DeepEquals(b.Values, []uint64{1, 2, 16, 4}))
	qt.Assert(t, qt.Equals(b.Default, 3))
	qt.Assert(t, qt.Equals(f.Types[0].Flags[2].Doc, "Execute allows running a file."))

	d, err = f.Types[1].Declaration()
	qt.Assert(t, qt.IsNil(err))

	b, errs = decl.Check(d)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.DeepEquals(b.Values, []uint64{1, 1 << 63}))
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	f, err := Load("testdata/shape.yaml")
	qt.Assert(t, qt.IsNil(err))

	d, err := f.Types[0].Declaration()
	qt.Assert(t, qt.IsNil(err))

	_, errs := decl.Check(d)

	rules := make([]decl.Rule, 0, len(errs))
	for _, e := range errs {
		rules = append(rules, e.Rule)
	}

	qt.Assert(t, qt.DeepEquals(rules, []decl.Rule{
		decl.StructuredVariant,
		decl.NotSingleBit,
		decl.DuplicateBit,
		decl.SignedRepresentation,
	}))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		file string
		data string
		err  string
	}{
		{"format", "x.json", `{}`, `x.json: unsupported declaration file format ".json"`},
		{"toml syntax", "x.toml", `types = [`, `(?s)x.toml: .*`},
		{"toml unknown", "x.toml", "[[types]]\nname = \"T\"\nwidth = 8\n", `x.toml: invalid declaration file: unknown key "types.width"`},
		{"yaml unknown", "x.yaml", "types:\n  - name: T\n    width: 8\n", `(?s)x.yaml: .*field width not found.*`},
		{"no types", "x.yml", "package: p\n", `x.yml: invalid declaration file: no types declared`},
		{"package", "x.toml", "package = \"a-b\"\n[[types]]\nname = \"T\"\n", `x.toml: invalid declaration file: package name "a-b"`},
		{"type name", "x.yaml", "types:\n  - name: 1T\n", `x.yaml: invalid declaration file: type name "1T"`},
		{"flag name", "x.yaml", "types:\n  - name: T\n    flags:\n      - name: a.b\n", `x.yaml: invalid declaration file: T: flag name "a.b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.file, []byte(tt.data))
			qt.Assert(t, qt.ErrorMatches(err, tt.err))
		})
	}
}

func TestDeclarationErrors(t *testing.T) {
	t.Parallel()

	bit, value := int64(64), int64(-2)

	tests := [...]struct {
		name string
		flag Flag
		err  string
	}{
		{"both", Flag{Name: "A", Bit: new(int64), Value: new(int64)}, `invalid declaration file: T: flag A has both bit and value`},
		{"bit", Flag{Name: "A", Bit: &bit}, `invalid declaration file: T: flag A has bit 64, want 0 to 63`},
		{"value", Flag{Name: "A", Value: &value}, `invalid declaration file: T: flag A has value -2: out of range`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ := Type{Name: "T", Repr: "uint8", Flags: []Flag{tt.flag}}

			_, err := typ.Declaration()
			qt.Assert(t, qt.ErrorMatches(err, tt.err))
			qt.Assert(t, qt.ErrorIs(err, ErrInvalid))
		})
	}
}

func TestMissingRepr(t *testing.T) {
	t.Parallel()

	typ := Type{Name: "T", Flags: []Flag{{Name: "A"}}}

	d, err := typ.Declaration()
	qt.Assert(t, qt.IsNil(err))

	_, errs := decl.Check(d)
	qt.Assert(t, qt.HasLen(errs, 1))
	qt.Assert(t, qt.Equals(errs[0].Rule, decl.MissingRepresentation))
}
