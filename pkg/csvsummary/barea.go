package csvsummary

import (
	"fmt"
	"sort"
	"strings"
)

// NormalizeClass maps raw region-name values onto stable class keys:
//
//   - strip a numeric sort prefix ("02_NG_TORN" -> "NG_TORN")
//   - keep OK_ROI (prefixed or bare)
//   - drop every other OK_* category (accepted parts, not defects)
//   - keep NG_* as-is
//   - anything else passes through upper-cased
//
// Returns "" for values that must not be counted.
func NormalizeClass(name string) string {
	s := strings.TrimSpace(name)
	if s == "" {
		return ""
	}

	if head, tail, ok := strings.Cut(s, "_"); ok && isDigits(head) {
		s = strings.TrimSpace(tail)
	}

	up := strings.ToUpper(s)

	if up == "OK_ROI" {
		return "OK_ROI"
	}
	if strings.HasPrefix(up, "OK_") {
		return ""
	}
	return up
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

// BAreaSummary aggregates normalized class counts plus unique-cell
// tallies. Occurrences count every region hit; cells count each cell at
// most once per class, whichever regions it hit.
type BAreaSummary struct {
	TotalRows  int
	TotalCells int
	// RegionCounts maps class -> region -> occurrence count.
	RegionCounts map[string]map[string]int
	// CellCounts maps class -> number of distinct cells.
	CellCounts map[string]int
}

// SummarizeBArea builds the B-area summary over the given files.
// Tracking unique cells keeps one identity set per class in memory,
// proportional to distinct cells, not to row count.
func SummarizeBArea(paths []string) (*BAreaSummary, error) {
	regionCounts := make(map[string]map[string]int)
	cellSets := make(map[string]map[string]bool)
	allCells := make(map[string]bool)
	totalRows := 0

	for _, path := range paths {
		err := IterRows(path, func(row Row) error {
			totalRows++

			cellID := strings.TrimSpace(row[CellIDColumn])
			if cellID != "" {
				allCells[cellID] = true
			}

			// Classes hit in this row, deduplicated: a cell hitting the
			// same class in two regions counts twice as occurrences but
			// once toward the cell tally.
			classesInRow := make(map[string]bool)

			for _, region := range Regions {
				cls := NormalizeClass(row[nameColumn(region)])
				if cls == "" {
					continue
				}

				classesInRow[cls] = true

				if regionCounts[cls] == nil {
					regionCounts[cls] = make(map[string]int, len(Regions))
					for _, r := range Regions {
						regionCounts[cls][r] = 0
					}
				}
				regionCounts[cls][region]++
			}

			if cellID != "" {
				for cls := range classesInRow {
					if cellSets[cls] == nil {
						cellSets[cls] = make(map[string]bool)
					}
					cellSets[cls][cellID] = true
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	cellCounts := make(map[string]int, len(cellSets))
	for cls, set := range cellSets {
		cellCounts[cls] = len(set)
	}

	return &BAreaSummary{
		TotalRows:    totalRows,
		TotalCells:   len(allCells),
		RegionCounts: regionCounts,
		CellCounts:   cellCounts,
	}, nil
}

// Occurrences sums a class's region counts.
func (b *BAreaSummary) Occurrences(class string) int {
	total := 0
	for _, n := range b.RegionCounts[class] {
		total += n
	}
	return total
}

// FormatBArea renders the top-N classes by unique cell count.
func FormatBArea(b *BAreaSummary, topN int) string {
	type entry struct {
		class string
		cells int
	}
	entries := make([]entry, 0, len(b.RegionCounts))
	for cls := range b.RegionCounts {
		entries = append(entries, entry{class: cls, cells: b.CellCounts[cls]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].cells != entries[j].cells {
			return entries[i].cells > entries[j].cells
		}
		return entries[i].class < entries[j].class
	})
	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "B-area: total cells: %d | total rows: %d\n", b.TotalCells, b.TotalRows)
	sb.WriteString("Top classes by cells:\n")
	for _, e := range entries {
		byRegion := b.RegionCounts[e.class]
		fmt.Fprintf(&sb, " - %s: cells=%d, occurrences=%d, LBL=%d, LBR=%d, UBL=%d, UBR=%d\n",
			e.class, e.cells, b.Occurrences(e.class),
			byRegion["LOWER_B_L"], byRegion["LOWER_B_R"],
			byRegion["UPPER_B_L"], byRegion["UPPER_B_R"])
	}
	return sb.String()
}
