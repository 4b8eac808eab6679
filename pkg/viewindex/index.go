// Package viewindex builds a queryable snapshot of a fetch output tree:
// one OccurrenceItem per (class folder, cell, region), with the
// SourceMap/ActiveMap paths that back it.
//
// The index is a snapshot. Labeling moves files underneath it, so it
// must be rebuilt to observe any mutation.
package viewindex

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mavin-tools/mavinfetch/pkg/imagename"
)

// OccurrenceItem is one inspection event: one cell in one region, with
// up to two backing image files.
type OccurrenceItem struct {
	ClassFolder string // folder name as found on disk, e.g. 05_NG_CRITICAL
	ClassKey    string // normalized, e.g. NG_CRITICAL
	CellKey     string
	Region      string
	SourcePath  string // "" when the SourceMap is absent
	ActivePath  string // "" when the ActiveMap is absent
}

// Index is the occurrence snapshot for one output directory.
type Index struct {
	OutDir string

	// Classes maps class folder name to its occurrences, sorted by
	// (cell, region).
	Classes map[string][]*OccurrenceItem

	// ClassKeyToFolder maps a normalized class key to the first folder
	// name seen for it. A later folder whose key collides keeps its
	// occurrences under its own folder name but is absent from this
	// lookup.
	ClassKeyToFolder map[string]string
}

// NormalizeClassFolder strips a numeric sort prefix and upper-cases:
//
//	05_NG_CRITICAL -> NG_CRITICAL
//	06_OK_ROI      -> OK_ROI
//	NG_FOLDED      -> NG_FOLDED
func NormalizeClassFolder(folderName string) string {
	s := strings.TrimSpace(folderName)
	if head, tail, ok := strings.Cut(s, "_"); ok && isDigits(head) {
		return strings.ToUpper(strings.TrimSpace(tail))
	}
	return strings.ToUpper(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Build walks outDir and indexes every parseable image under its class
// folders. A missing or non-directory outDir yields an empty index.
func Build(outDir string) *Index {
	idx := &Index{
		OutDir:           outDir,
		Classes:          make(map[string][]*OccurrenceItem),
		ClassKeyToFolder: make(map[string]string),
	}

	info, err := os.Stat(outDir)
	if err != nil || !info.IsDir() {
		return idx
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return idx
	}

	var classDirs []string
	for _, e := range entries {
		if e.IsDir() {
			classDirs = append(classDirs, e.Name())
		}
	}
	sort.Strings(classDirs)

	type groupKey struct {
		folder string
		cell   string
		region string
	}
	bucket := make(map[groupKey]*OccurrenceItem)

	for _, folderName := range classDirs {
		classKey := NormalizeClassFolder(folderName)
		if _, taken := idx.ClassKeyToFolder[classKey]; !taken {
			idx.ClassKeyToFolder[classKey] = folderName
		}

		files, err := filepath.Glob(filepath.Join(outDir, folderName, "*.jpg"))
		if err != nil {
			continue
		}

		for _, f := range files {
			parsed, ok := imagename.Parse(f)
			if !ok {
				continue
			}

			key := groupKey{folder: folderName, cell: parsed.CellKey, region: parsed.Region}
			item := bucket[key]
			if item == nil {
				item = &OccurrenceItem{
					ClassFolder: folderName,
					ClassKey:    classKey,
					CellKey:     parsed.CellKey,
					Region:      parsed.Region,
				}
				bucket[key] = item
				idx.Classes[folderName] = append(idx.Classes[folderName], item)
			}

			switch parsed.MapType {
			case imagename.MapTypeSource:
				item.SourcePath = f
			case imagename.MapTypeActive:
				item.ActivePath = f
			}
		}
	}

	for folderName := range idx.Classes {
		items := idx.Classes[folderName]
		sort.Slice(items, func(i, j int) bool {
			if items[i].CellKey != items[j].CellKey {
				return items[i].CellKey < items[j].CellKey
			}
			return items[i].Region < items[j].Region
		})
	}

	return idx
}

// ResolveFolderForClassKey maps a normalized key like NG_CRITICAL back to
// its on-disk folder name, e.g. 05_NG_CRITICAL.
func (idx *Index) ResolveFolderForClassKey(classKey string) (string, bool) {
	key := strings.ToUpper(strings.TrimSpace(classKey))
	if key == "" {
		return "", false
	}
	folder, ok := idx.ClassKeyToFolder[key]
	return folder, ok
}
