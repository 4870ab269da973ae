package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), runErr
}

func TestRunFilePrintsResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.irl")
	if err := os.WriteFile(path, []byte(`(print "10 + 20 = ") (print (+ 10 20))`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	oldDebug := flagDebug
	oldAST := flagAST
	defer func() { flagDebug = oldDebug; flagAST = oldAST }()
	flagDebug = false
	flagAST = false

	output, err := captureStdout(t, func() error {
		return runFile(path, nil)
	})
	if err != nil {
		t.Fatalf("runFile: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "10 + 20 = 30") {
		t.Errorf("expected '10 + 20 = 30' in output, got %q", output)
	}
}

func TestRunFileASTFlagSkipsEvaluation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.irl")
	if err := os.WriteFile(path, []byte(`(+ 1 2)`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	oldAST := flagAST
	defer func() { flagAST = oldAST }()
	flagAST = true

	output, err := captureStdout(t, func() error {
		return runFile(path, nil)
	})
	if err != nil {
		t.Fatalf("runFile: %v", err)
	}
	if !strings.Contains(output, "Root {") {
		t.Errorf("expected an AST dump, got %q", output)
	}
}

func TestRunFileReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.irl")
	if err := os.WriteFile(path, []byte(`(+ 1 2`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	oldAST := flagAST
	defer func() { flagAST = oldAST }()
	flagAST = false

	_, err := captureStdout(t, func() error {
		return runFile(path, nil)
	})
	if err == nil {
		t.Fatal("expected a parse error for an unterminated sexpr")
	}
}

func TestRunFilesWithNoArgsReportsREPLNotImplemented(t *testing.T) {
	if err := runFiles(rootCmd, nil); err == nil {
		t.Fatal("expected an error when no files are given")
	}
}

func TestRunFileMissingFile(t *testing.T) {
	if err := runFile(filepath.Join(t.TempDir(), "missing.irl"), nil); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
