package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/phobologic/luagmpdoc/internal/query"
)

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func createSampleProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "src/vec.hpp", `#pragma once
/* luagmp (class)
 * A four component vector.
 * @name Vec4
 * @side shared
 * @category Math
 */
class Vec4 {
	/* luagmp (method)
	 * @name Length
	 * @return (number) length
	 */
	float length() const;
};
`)
	writeTestFile(t, dir, "src/api.cpp", `/* luagmp (function)
 * Adds two numbers.
 * @name Add
 * @side shared
 * @param (number) a first
 * @param (number) b second
 * @return (number) sum
 */
/* luadoc (event)
 * @name onPlayerJoin
 * @side server
 * @param (int) pid
 */
`)
	writeTestFile(t, dir, "README.md", "/* luagmp (global) @name NotScanned */\n")
	return dir
}

func TestRunGenerate(t *testing.T) {
	t.Parallel()
	dir := createSampleProject(t)
	out := filepath.Join(t.TempDir(), "docs")

	var stdout, stderr bytes.Buffer
	err := run([]string{dir, "--out", out, "--gitignore=false"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}

	got := stdout.String()
	if !strings.HasPrefix(got, "Done. Parsed 4 blocks.") {
		t.Errorf("unexpected summary:\n%s", got)
	}
	if !strings.Contains(got, "classes:   1") {
		t.Errorf("missing class count:\n%s", got)
	}

	for _, rel := range []string{
		"shared-classes/math/Vec4.md",
		"shared-functions/uncategorized/Add.md",
		"server-events/uncategorized/onPlayerJoin.md",
	} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "unknown-globals", "NotScanned.md")); err == nil {
		t.Error("README.md should not be scanned with the default extensions")
	}

	data, err := os.ReadFile(filepath.Join(out, "shared-functions", "uncategorized", "Add.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "number Add(number a, number b)") {
		t.Errorf("unexpected Add.md:\n%s", data)
	}
}

func TestRunAllExtensions(t *testing.T) {
	t.Parallel()
	dir := createSampleProject(t)
	out := filepath.Join(t.TempDir(), "docs")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--project", dir, "-o", out, "--ext", "*"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(out, "unknown-globals", "NotScanned.md")); err != nil {
		t.Errorf("expected README.md global with --ext '*': %v", err)
	}
}

func TestRunCustomTemplates(t *testing.T) {
	t.Parallel()
	dir := createSampleProject(t)
	tmpl := t.TempDir()
	for _, name := range []string{"class", "function", "event", "global", "const"} {
		writeTestFile(t, tmpl, filepath.Join("templates", name+".md"), name+": {{.side}}")
	}
	out := filepath.Join(t.TempDir(), "docs")

	var stdout, stderr bytes.Buffer
	if err := run([]string{dir, "-o", out, "-t", tmpl}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}
	data, err := os.ReadFile(filepath.Join(out, "server-events", "uncategorized", "onPlayerJoin.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "event: server\n" {
		t.Errorf("got %q", data)
	}
}

func TestRunMissingTemplates(t *testing.T) {
	t.Parallel()
	dir := createSampleProject(t)

	var stdout, stderr bytes.Buffer
	err := run([]string{dir, "-o", filepath.Join(t.TempDir(), "docs"), "-t", t.TempDir()}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "templates not found") {
		t.Errorf("expected templates not found error, got %v", err)
	}
}

func TestRunRefusesProjectOutput(t *testing.T) {
	t.Parallel()
	dir := createSampleProject(t)

	var stdout, stderr bytes.Buffer
	err := run([]string{dir, "-o", dir}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected error when output is the project")
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "vec.hpp")); err != nil {
		t.Errorf("project was modified: %v", err)
	}
}

func TestRunConfigFile(t *testing.T) {
	t.Parallel()
	dir := createSampleProject(t)
	out := filepath.Join(t.TempDir(), "site")
	cfg := filepath.Join(t.TempDir(), "luagmpdoc.yaml")
	writeTestFile(t, filepath.Dir(cfg), "luagmpdoc.yaml", "project: "+dir+"\nout: "+out+"\n")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--config", cfg}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(out, "shared-classes", "math", "Vec4.md")); err != nil {
		t.Errorf("config file output not used: %v", err)
	}
}

func TestRunIndexToon(t *testing.T) {
	t.Parallel()
	dir := createSampleProject(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"index", dir}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}

	out := stdout.String()
	if !strings.HasPrefix(out, "project: ") {
		t.Errorf("missing project header:\n%s", out)
	}
	if !strings.Contains(out, "classes[1]{side,category,name,extends,path}:") {
		t.Errorf("missing classes table:\n%s", out)
	}
	if !strings.Contains(out, "  Vec4,method,Length,number Length()") {
		t.Errorf("missing member row:\n%s", out)
	}
}

func TestRunIndexYAMLFiltered(t *testing.T) {
	t.Parallel()
	dir := createSampleProject(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"index", dir, "--format", "yaml", "--side", "server"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}

	var entries []query.Entry
	if err := yaml.Unmarshal(stdout.Bytes(), &entries); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, stdout.String())
	}
	if len(entries) != 1 || entries[0].Name != "onPlayerJoin" {
		t.Errorf("unexpected entries: %+v", entries)
	}
	if entries[0].Path != "server-events/uncategorized/onPlayerJoin.md" {
		t.Errorf("unexpected path %q", entries[0].Path)
	}
}

func TestRunIndexSymbol(t *testing.T) {
	t.Parallel()
	dir := createSampleProject(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"index", dir, "-s", "length"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "classes[1]") || !strings.Contains(out, "functions[0]") {
		t.Errorf("unexpected filter result:\n%s", out)
	}
}

func TestRunIndexBadFlags(t *testing.T) {
	t.Parallel()
	dir := createSampleProject(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"side", []string{"index", dir, "--side", "browser"}, "unknown side"},
		{"format", []string{"index", dir, "--format", "json"}, "unsupported format"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"version"}, {"--version"}} {
		var stdout, stderr bytes.Buffer
		if err := run(args, &stdout, &stderr); err != nil {
			t.Fatalf("run %v: %v", args, err)
		}
		if got := stdout.String(); got != "luagmpdoc dev\n" {
			t.Errorf("run %v: got %q", args, got)
		}
	}
}

func TestRunNonexistentProject(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{filepath.Join(t.TempDir(), "missing"), "-o", filepath.Join(t.TempDir(), "docs")}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected error for missing project")
	}
}
