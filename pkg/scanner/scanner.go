// Package scanner lists class folders under a Crop_B root and collects
// the image files to copy from each, optionally pairing every SourceMap
// with its ActiveMap counterpart.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanResult is the outcome of one read-only pass over a Crop_B root.
type ScanResult struct {
	// FilesByClass maps class folder name to the ordered list of files to
	// copy (SourceMap always, its ActiveMap immediately after when paired).
	// Empty class folders keep an entry with a nil list so callers can see
	// the folder existed.
	FilesByClass map[string][]string

	// IncludedActiveMaps counts ActiveMaps successfully paired.
	IncludedActiveMaps int

	// MissingActiveMaps counts SourceMaps whose ActiveMap was absent.
	// Only meaningful when the scan was asked to include ActiveMaps.
	MissingActiveMaps int
}

// Scanner holds the folder exclusion set. The zero value excludes nothing.
type Scanner struct {
	excluded map[string]bool
}

// New returns a Scanner that skips class folders whose lower-cased name
// is in excludedClasses.
func New(excludedClasses []string) *Scanner {
	excluded := make(map[string]bool, len(excludedClasses))
	for _, name := range excludedClasses {
		excluded[strings.ToLower(name)] = true
	}
	return &Scanner{excluded: excluded}
}

// listClassFolders returns the non-excluded immediate subdirectories of
// root, sorted case-insensitively by name.
func (s *Scanner) listClassFolders(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read crop root %s: %w", root, err)
	}

	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if s.excluded[strings.ToLower(e.Name())] {
			continue
		}
		out = append(out, filepath.Join(root, e.Name()))
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(filepath.Base(out[i])) < strings.ToLower(filepath.Base(out[j]))
	})
	return out, nil
}

// collectSourceMaps returns the SourceMap files directly inside a class
// folder, sorted case-insensitively by name.
func collectSourceMaps(classDir string) ([]string, error) {
	entries, err := os.ReadDir(classDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read class folder %s: %w", classDir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), SourceMapSuffix) {
			files = append(files, filepath.Join(classDir, e.Name()))
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i])) < strings.ToLower(filepath.Base(files[j]))
	})
	return files, nil
}

// Scan walks one Crop_B root. When includeActiveMap is set, every
// SourceMap that has an existing ActiveMap contributes both files.
// Scan never mutates the filesystem.
func (s *Scanner) Scan(cropBRoot string, includeActiveMap bool) (*ScanResult, error) {
	classDirs, err := s.listClassFolders(cropBRoot)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{FilesByClass: make(map[string][]string)}

	for _, classDir := range classDirs {
		className := filepath.Base(classDir)

		srcs, err := collectSourceMaps(classDir)
		if err != nil {
			return nil, err
		}
		if len(srcs) == 0 {
			result.FilesByClass[className] = nil
			continue
		}

		var outFiles []string
		for _, src := range srcs {
			outFiles = append(outFiles, src)
			if !includeActiveMap {
				continue
			}

			active := SourceMapToActiveMapPath(src)
			if info, err := os.Stat(active); err == nil && info.Mode().IsRegular() {
				outFiles = append(outFiles, active)
				result.IncludedActiveMaps++
			} else {
				result.MissingActiveMaps++
			}
		}

		result.FilesByClass[className] = outFiles
	}

	return result, nil
}

// TotalFiles sums the file lists across all classes.
func (r *ScanResult) TotalFiles() int {
	total := 0
	for _, files := range r.FilesByClass {
		total += len(files)
	}
	return total
}
