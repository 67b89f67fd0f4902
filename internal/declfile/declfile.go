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

// Package declfile reads flag type declarations from TOML and YAML files.
//
// A declaration file describes one or more flag types:
//
//	package = "perm"
//
//	[[types]]
//	name    = "Permission"
//	repr    = "uint8"
//	default = ["Read"]
//
//	[[types.flags]]
//	name = "Read"
//
//	[[types.flags]]
//	name = "Execute"
//	bit  = 3
//
// Flags without bit or value get the lowest unused bit, in declaration order.
package declfile

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/flagset/internal/decl"
)

var (
	// ErrFormat is returned for files with an unknown extension.
	ErrFormat = errors.New("unsupported declaration file format")

	// ErrInvalid is returned for syntactically valid files with invalid content.
	ErrInvalid = errors.New("invalid declaration file")
)

// File is the content of a declaration file.
type File struct {
	// Package is the Go package name of the generated code.
	Package string `toml:"package" yaml:"package"`

	// Types are the declared flag types.
	Types []Type `toml:"types" yaml:"types"`
}

// Type is a declared flag type.
type Type struct {
	Name    string   `toml:"name"    yaml:"name"`
	Doc     string   `toml:"doc"     yaml:"doc"`
	Repr    string   `toml:"repr"    yaml:"repr"`
	Default []string `toml:"default" yaml:"default"`
	Flags   []Flag   `toml:"flags"   yaml:"flags"`
}

// Flag is a declared flag. At most one of Bit and Value may be set.
type Flag struct {
	Name  string `toml:"name"  yaml:"name"`
	Doc   string `toml:"doc"   yaml:"doc"`
	Bit   *int64 `toml:"bit"   yaml:"bit"`
	Value *int64 `toml:"value" yaml:"value"`

	// Fields declare payload data, which flags can't carry.
	Fields []string `toml:"fields" yaml:"fields"`
}

// Load reads the declaration file at path. The format is selected by the
// file extension: .toml, .yaml or .yml.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(path, data)
}

// Parse decodes a declaration file. name selects the format like in [Load]
// and is used in error messages.
func Parse(name string, data []byte) (*File, error) {
	var (
		f   File
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		err = decodeTOML(data, &f)

	case ".yaml", ".yml":
		err = decodeYAML(data, &f)

	default:
		return nil, fmt.Errorf("%s: %w %q", name, ErrFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &f, nil
}

func decodeTOML(data []byte, f *File) error {
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(f)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	return nil
}

func decodeYAML(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(f)
}

func (f *File) validate() error {
	if f.Package != "" && !token.IsIdentifier(f.Package) {
		return fmt.Errorf("%w: package name %q", ErrInvalid, f.Package)
	}

	if len(f.Types) == 0 {
		return fmt.Errorf("%w: no types declared", ErrInvalid)
	}

	for _, t := range f.Types {
		if !token.IsIdentifier(t.Name) {
			return fmt.Errorf("%w: type name %q", ErrInvalid, t.Name)
		}

		for _, fl := range t.Flags {
			if fl.Name != "" && !token.IsIdentifier(fl.Name) {
				return fmt.Errorf("%w: %s: flag name %q", ErrInvalid, t.Name, fl.Name)
			}
		}
	}

	return nil
}

// Declaration returns the [decl.Declaration] of t for [decl.Check].
//
// Flags without bit and value are left unresolved and inferred by the check.
func (t Type) Declaration() (decl.Declaration, error) {
	d := decl.Declaration{
		Type:     t.Name,
		Variants: make([]decl.Variant, len(t.Flags)),
		Default:  t.Default,
		Infer:    true,
	}

	if t.Repr != "" {
		d.Repr = decl.ParseRepr(t.Repr)
	}

	for i, f := range t.Flags {
		v := decl.Variant{Name: f.Name, Structured: len(f.Fields) > 0}

		switch {
		case f.Bit != nil && f.Value != nil:
			return d, fmt.Errorf("%w: %s: flag %s has both bit and value", ErrInvalid, t.Name, f.Name)

		case f.Bit != nil:
			bit, err := safecast.Conv[uint8](*f.Bit)
			if err != nil || bit >= decl.MaxWidth {
				return d, fmt.Errorf("%w: %s: flag %s has bit %d, want 0 to %d", ErrInvalid, t.Name, f.Name, *f.Bit, decl.MaxWidth-1)
			}

			v.Value, v.Resolved = uint64(1)<<bit, true

		case f.Value != nil:
			value, err := safecast.Conv[uint64](*f.Value)
			if err != nil {
				return d, fmt.Errorf("%w: %s: flag %s has value %d: %w", ErrInvalid, t.Name, f.Name, *f.Value, err)
			}

			v.Value, v.Resolved = value, true
		}

		d.Variants[i] = v
	}

	return d, nil
}
