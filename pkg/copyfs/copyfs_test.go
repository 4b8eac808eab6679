package copyfs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestCopyOverwrite(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(src, "a.jpg"), "aaa")
	writeFile(t, filepath.Join(src, "b.jpg"), "bbb")
	writeFile(t, filepath.Join(dest, "b.jpg"), "old")

	copied, overwritten, err := CopyOverwrite([]string{
		filepath.Join(src, "a.jpg"),
		filepath.Join(src, "b.jpg"),
	}, dest)
	if err != nil {
		t.Fatalf("CopyOverwrite() error = %v", err)
	}

	if copied != 2 {
		t.Errorf("copied = %d, want 2", copied)
	}
	if overwritten != 1 {
		t.Errorf("overwritten = %d, want 1", overwritten)
	}
	if got := readFile(t, filepath.Join(dest, "b.jpg")); got != "bbb" {
		t.Errorf("b.jpg content = %q, want bbb", got)
	}
}

func TestCopyOverwriteMissingSource(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out")
	_, _, err := CopyOverwrite([]string{filepath.Join(t.TempDir(), "absent.jpg")}, dest)
	if err == nil {
		t.Error("expected error for missing source file")
	}
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jpg")
	dst := filepath.Join(dir, "dst.jpg")
	writeFile(t, src, "payload")

	if err := MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile() error = %v", err)
	}

	if FileExists(src) {
		t.Error("source still exists after move")
	}
	if got := readFile(t, dst); got != "payload" {
		t.Errorf("moved content = %q, want payload", got)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	if FileExists(filepath.Join(dir, "nope")) {
		t.Error("FileExists() true for missing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() true for directory")
	}
	p := filepath.Join(dir, "f")
	writeFile(t, p, "x")
	if !FileExists(p) {
		t.Error("FileExists() false for regular file")
	}
}
