package csvsummary

import (
	"fmt"
	"sort"
	"strings"
)

// Regions are the four B-area quadrant codes, matching the
// <REGION>-NAME column convention of the result tables.
var Regions = []string{"LOWER_B_L", "LOWER_B_R", "UPPER_B_L", "UPPER_B_R"}

// CellIDColumn identifies the inspected cell in each row.
const CellIDColumn = "CELL-ID"

func nameColumn(region string) string {
	return region + "-NAME"
}

// Summary holds raw class counts with no name normalization.
type Summary struct {
	Rows int
	// ByRegion maps region -> class name -> count.
	ByRegion map[string]map[string]int
	// Overall maps class name -> count summed across regions.
	Overall map[string]int
}

// Summarize counts every non-blank <REGION>-NAME value across the given
// files, with class names taken verbatim.
func Summarize(paths []string) (*Summary, error) {
	s := &Summary{
		ByRegion: make(map[string]map[string]int, len(Regions)),
		Overall:  make(map[string]int),
	}
	for _, region := range Regions {
		s.ByRegion[region] = make(map[string]int)
	}

	for _, path := range paths {
		err := IterRows(path, func(row Row) error {
			s.Rows++
			for _, region := range Regions {
				name := strings.TrimSpace(row[nameColumn(region)])
				if name == "" {
					continue
				}
				s.ByRegion[region][name]++
				s.Overall[name]++
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ClassCount is one (class, count) entry of a ranked listing.
type ClassCount struct {
	Name  string
	Count int
}

// topItems returns up to n entries, highest count first, ties broken by
// name.
func topItems(d map[string]int, n int) []ClassCount {
	items := make([]ClassCount, 0, len(d))
	for k, v := range d {
		items = append(items, ClassCount{Name: k, Count: v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items
}

// FormatSummary renders the top-N classes overall and per region as a
// plain text report.
func FormatSummary(s *Summary, topN int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total rows: %d\n", s.Rows)

	b.WriteString("\nOverall (sum across 4 regions) - top counts:\n")
	for _, it := range topItems(s.Overall, topN) {
		fmt.Fprintf(&b, "  - %s: %d\n", it.Name, it.Count)
	}

	b.WriteString("\nBy region - top counts:\n")
	for _, region := range Regions {
		fmt.Fprintf(&b, "  %s:\n", region)
		items := topItems(s.ByRegion[region], topN)
		if len(items) == 0 {
			b.WriteString("    (no data)\n")
			continue
		}
		for _, it := range items {
			fmt.Fprintf(&b, "    - %s: %d\n", it.Name, it.Count)
		}
	}

	return b.String()
}
