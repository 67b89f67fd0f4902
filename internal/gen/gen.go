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

// Package gen renders the Go source of flag type bindings.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"math/bits"
	"strconv"
	"strings"

	"fillmore-labs.com/flagset/internal/config"
)

// ImportPath is the import path of the flagset package used by generated code.
const ImportPath = "fillmore-labs.com/flagset"

// ErrNoTypes is returned when a [File] has no types to generate.
var ErrNoTypes = errors.New("no types to generate")

// Flag is a flag of a generated type.
type Flag struct {
	Name  string
	Value uint64
	Doc   string
}

// Type describes the generated binding of a flag type.
type Type struct {
	// Name is the flag type name.
	Name string

	// Flags are the flags in declaration order.
	Flags []Flag

	// Default names the flags of the default value.
	Default []string

	// Declare also emits the type and its constants, documented with Doc.
	Declare bool
	Repr    string
	Doc     string
}

// File is a generated source file.
type File struct {
	// Command is the command line recorded in the header, without the program name.
	Command string

	// Package is the package name.
	Package string

	// Features selects the optional parts of the generated code.
	Features config.Features

	// Types are the flag types, in output order.
	Types []Type
}

// FileName returns the default output file name for a file starting with typeName.
func FileName(typeName string, test bool) string {
	suffix := "flags.go"
	if test {
		suffix = "flags_test.go"
	}

	return strings.ToLower(typeName) + "_" + suffix
}

// generator buffers the output for [format.Source].
type generator struct {
	buf bytes.Buffer
}

func (g *generator) Printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

// Source returns the formatted source of f.
func (f *File) Source() ([]byte, error) {
	if len(f.Types) == 0 {
		return nil, ErrNoTypes
	}

	var g generator

	g.Printf("// Code generated by \"flaggen %s\"; DO NOT EDIT.\n", f.Command)
	g.Printf("\n")
	g.Printf("package %s\n", f.Package)
	g.Printf("\n")

	g.Printf("import (\n")

	if f.Features.Has(config.StringMethod) {
		g.Printf("\t\"strconv\"\n")
	}

	g.Printf("\t\"sync\"\n\n\t%q\n)\n", ImportPath)

	for _, t := range f.Types {
		if t.Declare {
			g.declare(t)
		}

		if f.Features.Has(config.Assertions) {
			g.assertions(t)
		}

		g.binding(t)

		if f.Features.Has(config.StringMethod) {
			g.stringMethod(t)
		}

		if f.Features.Has(config.Operators) {
			g.operators(t)
		}
	}

	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		return g.buf.Bytes(), fmt.Errorf("internal error: invalid Go generated: %w", err)
	}

	return src, nil
}

func (g *generator) comment(indent, doc string) {
	for line := range strings.SplitSeq(strings.TrimSpace(doc), "\n") {
		if line = strings.TrimRight(line, " \t"); line == "" {
			g.Printf("%s//\n", indent)
		} else {
			g.Printf("%s// %s\n", indent, line)
		}
	}
}

func (g *generator) declare(t Type) {
	g.Printf("\n")

	if t.Doc != "" {
		g.comment("", t.Doc)
		g.Printf("//\n")
	}

	if len(t.Default) > 0 {
		g.Printf("//flagset:bits default=%s\n", strings.Join(t.Default, "|"))
	} else {
		g.Printf("//flagset:bits\n")
	}

	g.Printf("type %s %s\n", t.Name, t.Repr)
	g.Printf("\n")
	g.Printf("const (\n")

	for _, fl := range t.Flags {
		if fl.Doc != "" {
			g.comment("\t", fl.Doc)
		}

		g.Printf("\t%s %s = 1 << %d\n", fl.Name, t.Name, bits.TrailingZeros64(fl.Value))
	}

	g.Printf(")\n")
}

// assertions produces code that fails to compile if the constants change value.
func (g *generator) assertions(t Type) {
	g.Printf("\n")
	g.Printf("func _() {\n")
	g.Printf("\t// An \"invalid array index\" compiler error signifies that the constant values have changed.\n")
	g.Printf("\t// Re-run the flaggen command to generate them again.\n")
	g.Printf("\tvar x [1]struct{}\n")

	for _, fl := range t.Flags {
		g.Printf("\t_ = x[%s-%s]\n", fl.Name, strconv.FormatUint(fl.Value, 10))
	}

	g.Printf("}\n")
}

// binding produces the lazily built binding, so package-level variables using
// the flag type in files initialized earlier find it.
func (g *generator) binding(t Type) {
	v := bindingVar(t.Name)
	once := "_" + t.Name + "_once"

	g.Printf("\n")
	g.Printf("var (\n")
	g.Printf("\t%s %s sync.Once\n", once, strings.Repeat(" ", len(v)-len(once)))
	g.Printf("\t%s *flagset.Binding[%s]\n", v, t.Name)
	g.Printf(")\n")

	g.Printf("\n")
	g.Printf("// FlagBinding returns the binding of the flag type %s.\n", t.Name)
	g.Printf("func (%s) FlagBinding() *flagset.Binding[%s] {\n", t.Name, t.Name)
	g.Printf("\t%s.Do(func() {\n", once)
	g.Printf("\t\t%s = flagset.MustBind(%q, []flagset.Named[%s]{\n", v, t.Name, t.Name)

	for _, fl := range t.Flags {
		g.Printf("\t\t\t{Name: %q, Value: %s},\n", fl.Name, fl.Name)
	}

	if len(t.Default) > 0 {
		quoted := make([]string, len(t.Default))
		for i, name := range t.Default {
			quoted[i] = strconv.Quote(name)
		}

		g.Printf("\t\t}, flagset.WithDefault(%s))\n", strings.Join(quoted, ", "))
	} else {
		g.Printf("\t\t})\n")
	}

	g.Printf("\t})\n")
	g.Printf("\n")
	g.Printf("\treturn %s\n", v)
	g.Printf("}\n")
}

func (g *generator) stringMethod(t Type) {
	g.Printf("\n")
	g.Printf("func (i %s) String() string {\n", t.Name)
	g.Printf("\tif name, ok := i.FlagBinding().NameOf(uint64(i)); ok {\n")
	g.Printf("\t\treturn name\n")
	g.Printf("\t}\n")
	g.Printf("\n")
	g.Printf("\treturn \"%s(\" + strconv.FormatUint(uint64(i), 10) + \")\"\n", t.Name)
	g.Printf("}\n")
}

func (g *generator) operators(t Type) {
	set := "flagset.Set[" + t.Name + "]"

	g.Printf("\n")
	g.Printf("// Set returns the set containing only i.\n")
	g.Printf("func (i %s) Set() %s {\n", t.Name, set)
	g.Printf("\treturn flagset.Of(i)\n")
	g.Printf("}\n")

	g.Printf("\n")
	g.Printf("// Or returns the set containing i and o.\n")
	g.Printf("func (i %s) Or(o ...%s) %s {\n", t.Name, t.Name, set)
	g.Printf("\treturn flagset.Of(i).With(o...)\n")
	g.Printf("}\n")

	g.Printf("\n")
	g.Printf("// And returns the intersection of s and the set containing only i.\n")
	g.Printf("func (i %s) And(s %s) %s {\n", t.Name, set, set)
	g.Printf("\treturn s.Intersection(flagset.Of(i))\n")
	g.Printf("}\n")

	g.Printf("\n")
	g.Printf("// Xor returns s with i toggled.\n")
	g.Printf("func (i %s) Xor(s %s) %s {\n", t.Name, set, set)
	g.Printf("\treturn s.SymmetricDifference(flagset.Of(i))\n")
	g.Printf("}\n")

	g.Printf("\n")
	g.Printf("// Not returns the set of all flags except i.\n")
	g.Printf("func (i %s) Not() %s {\n", t.Name, set)
	g.Printf("\treturn flagset.Of(i).Complement()\n")
	g.Printf("}\n")
}

func bindingVar(typeName string) string {
	return "_" + typeName + "_flags"
}

