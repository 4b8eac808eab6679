package csvsummary

import (
	"strings"
	"testing"
)

func TestNormalizeClass(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"02_NG_TORN", "NG_TORN"},
		{"NG_TORN", "NG_TORN"},
		{"ng_torn", "NG_TORN"},
		{"06_OK_ROI", "OK_ROI"},
		{"OK_ROI", "OK_ROI"},
		{"01_OK_ANODE", ""},
		{"OK_CATHODE", ""},
		{"weird", "WEIRD"},
		{"  02_NG_TORN  ", "NG_TORN"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeClass(tt.input); got != tt.want {
			t.Errorf("NormalizeClass(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSummarizeBArea(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "r.csv",
		resultHeader+
			// Same cell, same class, same region twice across rows.
			"X1,02_NG_TORN,,,\n"+
			"X1,02_NG_TORN,,,\n"+
			// OK_* other than OK_ROI is excluded entirely.
			"X2,01_OK_ANODE,,,\n"+
			// OK_ROI is kept.
			"X3,,,06_OK_ROI,\n")

	b, err := SummarizeBArea([]string{path})
	if err != nil {
		t.Fatalf("SummarizeBArea() error = %v", err)
	}

	if b.TotalRows != 4 {
		t.Errorf("TotalRows = %d, want 4", b.TotalRows)
	}
	if b.TotalCells != 3 {
		t.Errorf("TotalCells = %d, want 3", b.TotalCells)
	}

	// Two region hits but one distinct cell for NG_TORN.
	if got := b.Occurrences("NG_TORN"); got != 2 {
		t.Errorf("NG_TORN occurrences = %d, want 2", got)
	}
	if b.CellCounts["NG_TORN"] != 1 {
		t.Errorf("NG_TORN cells = %d, want 1", b.CellCounts["NG_TORN"])
	}
	if b.RegionCounts["NG_TORN"]["LOWER_B_L"] != 2 {
		t.Errorf("NG_TORN LOWER_B_L = %d, want 2", b.RegionCounts["NG_TORN"]["LOWER_B_L"])
	}

	if _, ok := b.RegionCounts["OK_ANODE"]; ok {
		t.Error("OK_ANODE must be excluded from counts")
	}
	if b.CellCounts["OK_ROI"] != 1 {
		t.Errorf("OK_ROI cells = %d, want 1", b.CellCounts["OK_ROI"])
	}
}

// A cell hitting the same class in two regions of one row counts twice
// as occurrences but once toward the unique-cell tally.
func TestSummarizeBAreaRowDedupAsymmetry(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "r.csv",
		resultHeader+
			"X1,02_NG_TORN,02_NG_TORN,,\n")

	b, err := SummarizeBArea([]string{path})
	if err != nil {
		t.Fatalf("SummarizeBArea() error = %v", err)
	}

	if got := b.Occurrences("NG_TORN"); got != 2 {
		t.Errorf("occurrences = %d, want 2", got)
	}
	if b.CellCounts["NG_TORN"] != 1 {
		t.Errorf("cells = %d, want 1", b.CellCounts["NG_TORN"])
	}
}

func TestSummarizeBAreaBlankCellID(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "r.csv",
		resultHeader+
			",02_NG_TORN,,,\n")

	b, err := SummarizeBArea([]string{path})
	if err != nil {
		t.Fatalf("SummarizeBArea() error = %v", err)
	}

	// Occurrence still counted; no cell attribution.
	if got := b.Occurrences("NG_TORN"); got != 1 {
		t.Errorf("occurrences = %d, want 1", got)
	}
	if b.CellCounts["NG_TORN"] != 0 {
		t.Errorf("cells = %d, want 0", b.CellCounts["NG_TORN"])
	}
	if b.TotalCells != 0 {
		t.Errorf("TotalCells = %d, want 0", b.TotalCells)
	}
}

func TestFormatBArea(t *testing.T) {
	b := &BAreaSummary{
		TotalRows:  2,
		TotalCells: 1,
		RegionCounts: map[string]map[string]int{
			"NG_TORN": {"LOWER_B_L": 2, "LOWER_B_R": 0, "UPPER_B_L": 0, "UPPER_B_R": 0},
		},
		CellCounts: map[string]int{"NG_TORN": 1},
	}

	out := FormatBArea(b, 10)
	for _, want := range []string{"total cells: 1", "NG_TORN: cells=1, occurrences=2", "LBL=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
