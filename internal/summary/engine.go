// Package summary runs the B-area summarizer over many result files with
// per-file progress, skipping missing files with a log line instead of
// failing the whole batch.
package summary

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mavin-tools/mavinfetch/pkg/csvsummary"
)

// LogFn receives human-readable progress lines.
type LogFn func(msg string)

// ProgressFn receives (done, total) file counts.
type ProgressFn func(done, total int)

// Result bundles the computed summary with the text report the CLI
// prints.
type Result struct {
	Text      string
	FileCount int
	Summary   *csvsummary.BAreaSummary
}

// Run summarizes the given result files. Missing files are logged and
// skipped; parse failures abort.
func Run(paths []string, topN int, log LogFn, progress ProgressFn) (*Result, error) {
	logf := func(format string, args ...interface{}) {
		if log != nil {
			log(fmt.Sprintf(format, args...))
		}
	}
	prog := func(done, total int) {
		if progress != nil {
			progress(done, total)
		}
	}

	total := len(paths)
	if total == 0 {
		return &Result{Text: "no files provided"}, nil
	}

	logf("summarizing %d file(s)", total)
	prog(0, total)

	var existing []string
	for i, p := range paths {
		if _, err := os.Stat(p); err != nil {
			logf("missing file: %s", p)
		} else {
			logf("reading: %s", filepath.Base(p))
			existing = append(existing, p)
		}
		prog(i+1, total)
	}

	b, err := csvsummary.SummarizeBArea(existing)
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:      csvsummary.FormatBArea(b, topN),
		FileCount: len(existing),
		Summary:   b,
	}, nil
}
