package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWithArgs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.lua")
	b := filepath.Join(dir, "b.lua")
	os.WriteFile(a, []byte("A"), 0o644)
	os.WriteFile(b, []byte("B"), 0o644)
	out := filepath.Join(dir, "scripts.h")

	stderr := &bytes.Buffer{}
	if code := run([]string{"-o", out, b, a}, stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	text := string(got)
	first := strings.Index(text, "// From b.lua")
	second := strings.Index(text, "// From a.lua")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("scripts out of order:\n%s", text)
	}
	if !strings.Contains(text, "preloaded_script_1[] = { 66 };") {
		t.Fatalf("unexpected first array:\n%s", text)
	}
}

func TestRunWithManifest(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "s.lua")
	os.WriteFile(script, []byte("s"), 0o644)
	out := filepath.Join(dir, "bundle.h")
	manifest := filepath.Join(dir, "bundle.toml")
	content := "output = " + quote(out) + "\nguard = \"BUNDLE_H\"\nfiles = [" + quote(script) + "]\n"
	os.WriteFile(manifest, []byte(content), 0o644)

	stderr := &bytes.Buffer{}
	if code := run([]string{"-manifest", manifest}, stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(got), "#ifndef BUNDLE_H\n") {
		t.Fatalf("guard not applied:\n%s", got)
	}
}

func TestRunMissingScript(t *testing.T) {
	dir := t.TempDir()
	stderr := &bytes.Buffer{}
	if code := run([]string{"-o", filepath.Join(dir, "x.h"), filepath.Join(dir, "nope.lua")}, stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

// quote renders s as a TOML literal string so Windows paths survive.
func quote(s string) string { return "'" + s + "'" }
