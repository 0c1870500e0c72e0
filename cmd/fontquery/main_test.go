package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadResolverDefault(t *testing.T) {
	r, err := loadResolver("")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Known("engine:title") {
		t.Error("default resolver should know engine:title")
	}
}

func TestLoadResolverMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fonts.yaml")
	doc := "\"app:body\":\n  family: Dialog\n  size: 13\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := loadResolver(path)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Known("app:body") || !r.Known("engine:default") {
		t.Error("merged resolver should know both file and built-in identifiers")
	}
	if got := r.Resolve("app:body").Descriptor.Size; got != 13 {
		t.Errorf("app:body size = %d, want 13", got)
	}
}

func TestLoadResolverMissingFile(t *testing.T) {
	if _, err := loadResolver(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing table file")
	}
}

func TestRun(t *testing.T) {
	if err := run("engine:title", "Hello\nWorld", "", false); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run("engine:unknown", "x", "", true); err != nil {
		t.Fatalf("run with fallback and shaping: %v", err)
	}
}
