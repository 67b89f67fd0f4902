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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stderr bytes.Buffer

	cmd := newRootCmd(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(t.Context())

	return stderr.String(), err
}

// compareGolden compares a generated file without its header to the golden file.
func compareGolden(t *testing.T, path, golden string) {
	t.Helper()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Can't read generated file: %v", err)
	}

	header, body, _ := bytes.Cut(got, []byte("\n"))
	if !bytes.HasPrefix(header, []byte(`// Code generated by "flaggen `)) {
		t.Errorf("Unexpected header %q", header)
	}

	want, err := os.ReadFile(golden)
	if err != nil {
		t.Fatalf("Can't read golden file: %v", err)
	}

	if diff := cmp.Diff(string(want), string(body)); diff != "" {
		t.Errorf("Generated source differs from %s (-want +got):\n%s", golden, diff)
	}
}

func TestDecl(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := execute(t, "decl", "--color=off", "--output-dir", dir, "testdata/mode.toml")
	if err != nil {
		t.Fatalf("Unexpected error: %v\n%s", err, out)
	}

	compareGolden(t, filepath.Join(dir, "mode_flags.go"), "testdata/mode_flags.golden")
}

func TestDeclInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := execute(t, "decl", "--color=off", "--output-dir", dir, "testdata/invalid.yaml")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("Got error %v, want %v", err, errInvalid)
	}

	want := []string{
		"testdata/invalid.yaml: Shape: flag Circle must be a bare constant without data (fs:structured)",
		"testdata/invalid.yaml: Shape: flag Line has value 0x6, flags must have exactly one set bit (fs:singlebit)",
		"testdata/invalid.yaml: Shape: flags Dot and Point both use bit 0 (fs:duplicate)",
		"testdata/invalid.yaml: Shape: default flag Square is not declared (fs:default)",
	}

	got := strings.Split(strings.TrimSpace(out), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diagnostics differ (-want +got):\n%s", diff)
	}

	if _, err := os.Stat(filepath.Join(dir, "invalid_flags.go")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected no output for invalid declarations, got %v", err)
	}
}

func TestDeclMissingPackage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := filepath.Join(dir, "bare.yaml")
	if err := os.WriteFile(path, []byte("types:\n  - name: Bare\n    repr: uint8\n    flags:\n      - name: A\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "decl", "--color=off", path); err == nil {
		t.Error("Expected error for missing package name")
	}

	if _, err := execute(t, "decl", "--color=off", "--package", "bare", "--no-string", "--no-ops", path); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	src, err := os.ReadFile(filepath.Join(dir, "bare_flags.go"))
	if err != nil {
		t.Fatalf("Can't read generated file: %v", err)
	}

	if bytes.Contains(src, []byte("String()")) || !bytes.Contains(src, []byte("package bare")) {
		t.Errorf("Unexpected generated source:\n%s", src)
	}
}

func TestTypes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.CopyFS(dir, os.DirFS("testdata/types")); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "types", "--color=off", dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v\n%s", err, out)
	}

	compareGolden(t, filepath.Join(dir, "option_flags.go"), "testdata/option_flags.golden")
}

func TestTypesInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	files := map[string]string{
		"go.mod": "module test/dup\n\ngo 1.24\n",
		"dup.go": `package dup

//flagset:bits
type Dup uint8

const (
	One Dup = 1
	Uno Dup = 1
)
`,
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	out, err := execute(t, "types", "--color=off", dir)
	if !errors.Is(err, errInvalid) {
		t.Fatalf("Got error %v, want %v", err, errInvalid)
	}

	if want := "dup.go:8:2: Dup: flags One and Uno both use bit 0 (fs:duplicate)\n"; !strings.HasSuffix(out, want) {
		t.Errorf("Got diagnostics %q, want suffix %q", out, want)
	}

	if _, err := execute(t, "types", "--color=off", "--type", "Missing", dir); err == nil || errors.Is(err, errInvalid) {
		t.Errorf("Got error %v, want type not found", err)
	}
}

func TestColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	p, err := newPrinter(&buf, "on")
	if err != nil {
		t.Fatal(err)
	}

	p.print("file.go:1:1", "message", "fs:code")

	if got := buf.String(); !strings.Contains(got, "\x1b[") || !strings.Contains(got, "message") {
		t.Errorf("Expected colored output, got %q", got)
	}

	if _, err := newPrinter(&buf, "sometimes"); err == nil {
		t.Error("Expected error for invalid color mode")
	}
}
