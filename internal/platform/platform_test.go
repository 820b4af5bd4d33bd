package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenFileRunsOpener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	var gotName string
	var gotArgs []string
	orig := runFn
	runFn = func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}
	t.Cleanup(func() { runFn = orig })

	if err := OpenFile(path); err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	wantName, wantArgs := openCommand(path)
	if gotName != wantName || len(gotArgs) != len(wantArgs) || gotArgs[len(gotArgs)-1] != path {
		t.Fatalf("ran %s %v, want %s %v", gotName, gotArgs, wantName, wantArgs)
	}
}

func TestOpenFileMissing(t *testing.T) {
	orig := runFn
	runFn = func(string, ...string) error {
		t.Fatal("opener should not run for a missing file")
		return nil
	}
	t.Cleanup(func() { runFn = orig })
	if err := OpenFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error")
	}
}
