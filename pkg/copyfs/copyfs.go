// Package copyfs holds the filesystem primitives shared by the fetch and
// labeling engines: directory creation, overwrite-copy and atomic-ish move.
package copyfs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureDir creates a directory and its parents if absent.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CopyFile copies src to dst, truncating dst if it exists. Permissions of
// the source file are preserved.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finish %s: %w", dst, err)
	}
	return nil
}

// CopyOverwrite copies files into destDir by base name, overwriting any
// existing destination. Returns (copied, overwritten); an overwrite is a
// copy whose destination already existed.
func CopyOverwrite(files []string, destDir string) (copied, overwritten int, err error) {
	if err := EnsureDir(destDir); err != nil {
		return 0, 0, err
	}

	for _, src := range files {
		dst := filepath.Join(destDir, filepath.Base(src))
		if FileExists(dst) {
			overwritten++
		}
		if err := CopyFile(src, dst); err != nil {
			return copied, overwritten, err
		}
		copied++
	}

	return copied, overwritten, nil
}

// MoveFile relocates src to dst. It renames when possible; across volumes
// it falls back to copy+delete, removing src only after dst is fully
// written, so the file is never lost mid-move.
func MoveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := CopyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove %s after copy: %w", src, err)
	}
	return nil
}
