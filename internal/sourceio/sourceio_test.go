package sourceio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.irl")
	if err := os.WriteFile(path, []byte(bom+"(+ 1 2)"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "(+ 1 2)" {
		t.Errorf("got %q, want the BOM stripped", got)
	}
}

func TestLoadWithoutBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.irl")
	if err := os.WriteFile(path, []byte("(+ 1 2)"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "(+ 1 2)" {
		t.Errorf("got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.irl")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
