// Package fetch copies crop images for a set of days into one merged
// output tree, one folder per defect class.
//
// The run is two-phase: a pre-scan resolves and scans every day first so
// the total file count is known before the first copy (meaningful
// progress reporting, and a zero-work short-circuit), then a sequential
// copy loop streams per-file progress. Cancellation is polled between
// days during pre-scan and between files during copy; a cancelled run
// returns valid-but-incomplete stats.
package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mavin-tools/mavinfetch/pkg/copyfs"
	"github.com/mavin-tools/mavinfetch/pkg/pathresolver"
	"github.com/mavin-tools/mavinfetch/pkg/scanner"
)

func sortClasses(classes []string) {
	sort.Slice(classes, func(i, j int) bool {
		return strings.ToLower(classes[i]) < strings.ToLower(classes[j])
	})
}

type dayScan struct {
	root    pathresolver.FoundRoot
	result  *scanner.ScanResult
	classes []string // class iteration order for deterministic copying
}

// Run executes one fetch. The returned error covers mid-copy I/O
// failures and an unusable output root; missing days and empty scans are
// normal outcomes tallied in Stats.
func Run(opts Options) (*Stats, error) {
	stats := &Stats{PerClassCopied: make(map[string]int)}

	// Validate the output root up front, but create nothing until there
	// is something to copy.
	if info, err := os.Stat(opts.OutDir); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("output root %s is not a directory", opts.OutDir)
	}

	s := scanner.New(opts.ExcludedClasses)

	opts.log(fmt.Sprintf("fetch days: %d | model=%s | include_activemap=%v",
		len(opts.Days), opts.Model, opts.IncludeActiveMap))

	// Phase 1: pre-scan every day.
	var scanned []dayScan
	totalFiles := 0

	for _, day := range opts.Days {
		if opts.cancelled() {
			opts.log("cancelled during pre-scan")
			stats.Cancelled = true
			return stats, nil
		}

		found, ok := pathresolver.Resolve(opts.Model, day, opts.Drives)
		if !ok {
			opts.log(fmt.Sprintf("missing Crop_B folder for %s (model=%s)",
				day.Format("2006-01-02"), opts.Model))
			stats.MissingDays++
			continue
		}

		opts.log(fmt.Sprintf("%s -> %s: %s", day.Format("2006-01-02"), found.Drive, found.Path))

		sr, err := s.Scan(found.Path, opts.IncludeActiveMap)
		if err != nil {
			return nil, err
		}

		var classes []string
		for class := range sr.FilesByClass {
			classes = append(classes, class)
		}
		sortClasses(classes)

		scanned = append(scanned, dayScan{root: found, result: sr, classes: classes})
		stats.ActiveIncluded += sr.IncludedActiveMaps
		stats.ActiveMissing += sr.MissingActiveMaps
		totalFiles += sr.TotalFiles()
	}

	if totalFiles == 0 {
		opts.log("nothing to copy (0 files)")
		opts.progress(0, 0)
		return stats, nil
	}

	opts.log(fmt.Sprintf("total files to copy: %d", totalFiles))
	if opts.IncludeActiveMap {
		opts.log(fmt.Sprintf("ActiveMap included: %d | missing pairs: %d",
			stats.ActiveIncluded, stats.ActiveMissing))
	}

	// Phase 2: copy in original day order.
	if err := copyfs.EnsureDir(opts.OutDir); err != nil {
		return nil, err
	}

	done := 0
	opts.progress(0, totalFiles)

	for _, ds := range scanned {
		for _, className := range ds.classes {
			files := ds.result.FilesByClass[className]
			if len(files) == 0 {
				continue
			}

			destDir := filepath.Join(opts.OutDir, className)
			if err := copyfs.EnsureDir(destDir); err != nil {
				return nil, err
			}

			for _, src := range files {
				if opts.cancelled() {
					opts.log("cancelled during copy")
					opts.progress(done, totalFiles)
					stats.Cancelled = true
					return stats, nil
				}

				dst := filepath.Join(destDir, filepath.Base(src))
				if copyfs.FileExists(dst) {
					stats.TotalOverwritten++
				}
				if err := copyfs.CopyFile(src, dst); err != nil {
					return nil, err
				}

				stats.TotalCopied++
				stats.PerClassCopied[className]++

				done++
				opts.detailProgress(done, totalFiles, className, filepath.Base(src))
				opts.progress(done, totalFiles)
			}
		}
	}

	opts.log(fmt.Sprintf("copied %d files (overwrote %d), missing days: %d",
		stats.TotalCopied, stats.TotalOverwritten, stats.MissingDays))
	return stats, nil
}
