package csvsummary

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Match is one result file located for one day.
type Match struct {
	Day  time.Time
	Path string
}

// ignoredResultFile filters companion exports that are not row tables.
func ignoredResultFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(filepath.Base(path)), "_defect.csv")
}

// suffixOrder extracts the trailing _N counter of a result filename.
// The base file (stem ending in the yyyymmdd date itself) orders as 0,
// so "x_20260127.csv" sorts before "x_20260127_1.csv".
func suffixOrder(path, yyyymmdd string) int {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if strings.HasSuffix(stem, "_"+yyyymmdd) {
		return 0
	}
	if i := strings.LastIndex(stem, "_"); i >= 0 {
		if tail := stem[i+1:]; isDigits(tail) {
			n := 0
			for _, r := range tail {
				n = n*10 + int(r-'0')
			}
			return n
		}
	}
	return 0
}

// FindCSVsForDay locates the welding-vision result files for one day and
// model inside csvDir. Filenames look like:
//
//	#5-2 WELDING VISION(-)_JF2_20260127.csv
//	#5-2 WELDING VISION(+)_JF2_20260127_2.csv
//
// Line number and polarity are not constrained; model and date must match
// exactly. The base file sorts first, then _1, _2, ...
func FindCSVsForDay(csvDir, model string, day time.Time) ([]string, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, fmt.Errorf("model is required (e.g. JF2)")
	}

	d := day.Format("20060102")

	// Two globs because Match has no optional-group syntax.
	patBase := filepath.Join(csvDir, fmt.Sprintf("#*-* WELDING VISION(*)_%s_%s.csv", model, d))
	patSuffix := filepath.Join(csvDir, fmt.Sprintf("#*-* WELDING VISION(*)_%s_%s_*.csv", model, d))

	baseHits, err := filepath.Glob(patBase)
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern: %w", err)
	}
	suffixHits, err := filepath.Glob(patSuffix)
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern: %w", err)
	}

	uniq := make(map[string]bool)
	for _, p := range append(baseHits, suffixHits...) {
		if !ignoredResultFile(p) {
			uniq[p] = true
		}
	}

	out := make([]string, 0, len(uniq))
	for p := range uniq {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		ni, nj := suffixOrder(out[i], d), suffixOrder(out[j], d)
		if ni != nj {
			return ni < nj
		}
		return strings.ToLower(filepath.Base(out[i])) < strings.ToLower(filepath.Base(out[j]))
	})

	return out, nil
}

// FindCSVsForDays flattens per-day matches for multiple days, sorted by
// day then suffix order.
func FindCSVsForDays(csvDir, model string, days []time.Time) ([]Match, error) {
	sorted := append([]time.Time(nil), days...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var out []Match
	for _, day := range sorted {
		paths, err := FindCSVsForDay(csvDir, model, day)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			out = append(out, Match{Day: day, Path: p})
		}
	}
	return out, nil
}

// FlattenPaths converts matches into bare paths, preserving order.
func FlattenPaths(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Path
	}
	return out
}
