// Package labeling moves the SourceMap of a selected occurrence into the
// HumanReview mirror tree and can undo that move exactly once.
package labeling

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mavin-tools/mavinfetch/pkg/copyfs"
	"github.com/mavin-tools/mavinfetch/pkg/viewindex"
)

// Apply moves the occurrence's SourceMap into
// <humanRoot>/<class folder>/<label>/, overwriting any same-named file
// already there. Only the SourceMap moves; the ActiveMap stays behind.
//
// The occurrence must have an existing SourceMap; Apply fails before any
// mutation otherwise.
func Apply(occ *viewindex.OccurrenceItem, label Label, humanRoot string) (*Action, error) {
	if !label.Valid() {
		return nil, fmt.Errorf("unknown label %q", label)
	}
	if occ.SourcePath == "" {
		return nil, fmt.Errorf("occurrence %s/%s %s has no SourceMap file", occ.ClassFolder, occ.CellKey, occ.Region)
	}
	if !copyfs.FileExists(occ.SourcePath) {
		return nil, fmt.Errorf("SourceMap file not found: %s", occ.SourcePath)
	}

	destDir := DestDirFor(humanRoot, occ.ClassFolder, label)
	if err := copyfs.EnsureDir(destDir); err != nil {
		return nil, err
	}

	dst := filepath.Join(destDir, filepath.Base(occ.SourcePath))

	// Overwrite allowed.
	if copyfs.FileExists(dst) {
		if err := os.Remove(dst); err != nil {
			return nil, fmt.Errorf("failed to replace %s: %w", dst, err)
		}
	}

	if err := copyfs.MoveFile(occ.SourcePath, dst); err != nil {
		return nil, err
	}

	return &Action{
		Label:       label,
		ClassFolder: occ.ClassFolder,
		CellKey:     occ.CellKey,
		Region:      occ.Region,
		SrcPath:     occ.SourcePath,
		DstPath:     dst,
	}, nil
}

// Undo moves the file back from the review tree to its original path,
// overwriting whatever occupies it. If the moved file no longer exists
// (double-undo, external removal) Undo is a silent no-op.
func Undo(action *Action) error {
	if !copyfs.FileExists(action.DstPath) {
		return nil
	}

	if err := copyfs.EnsureDir(filepath.Dir(action.SrcPath)); err != nil {
		return err
	}

	if copyfs.FileExists(action.SrcPath) {
		if err := os.Remove(action.SrcPath); err != nil {
			return fmt.Errorf("failed to replace %s: %w", action.SrcPath, err)
		}
	}

	return copyfs.MoveFile(action.DstPath, action.SrcPath)
}
