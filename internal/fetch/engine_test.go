package fetch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mavin-tools/mavinfetch/pkg/pathresolver"
)

func fakeDrives(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	orig := pathresolver.DriveRoot
	pathresolver.DriveRoot = func(letter string) string {
		return filepath.Join(base, letter)
	}
	t.Cleanup(func() { pathresolver.DriveRoot = orig })
	return base
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func cropB(base, drive, model string, d time.Time) string {
	return filepath.Join(base, drive, "Files", "Image", model,
		d.Format("2006"), d.Format("01"), d.Format("02"), "Mavin", "Crop_B")
}

func TestRunCopiesAndMergesDays(t *testing.T) {
	base := fakeDrives(t)
	outDir := filepath.Join(t.TempDir(), "out")

	d1, d2 := day(27), day(28)
	writeFile(t, filepath.Join(cropB(base, "E", "JF2", d1), "05_NG_CRITICAL", "cellA_LOWER_B_L_SourceMap.jpg"), "day1")
	writeFile(t, filepath.Join(cropB(base, "E", "JF2", d2), "05_NG_CRITICAL", "cellA_LOWER_B_L_SourceMap.jpg"), "day2")
	writeFile(t, filepath.Join(cropB(base, "E", "JF2", d2), "02_NG_TORN", "cellB_UPPER_B_R_SourceMap.jpg"), "torn")

	var detail []string
	stats, err := Run(Options{
		Days:   []time.Time{d1, d2},
		OutDir: outDir,
		Model:  "JF2",
		Drives: []string{"E"},
		DetailProgress: func(done, total int, className, filename string) {
			detail = append(detail, filename)
		},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if stats.TotalCopied != 3 {
		t.Errorf("TotalCopied = %d, want 3", stats.TotalCopied)
	}
	// Day 2 re-copies the same filename into the same class: one overwrite.
	if stats.TotalOverwritten != 1 {
		t.Errorf("TotalOverwritten = %d, want 1", stats.TotalOverwritten)
	}
	if stats.MissingDays != 0 {
		t.Errorf("MissingDays = %d, want 0", stats.MissingDays)
	}
	if stats.PerClassCopied["05_NG_CRITICAL"] != 2 || stats.PerClassCopied["02_NG_TORN"] != 1 {
		t.Errorf("PerClassCopied = %v", stats.PerClassCopied)
	}
	if len(detail) != 3 {
		t.Errorf("detail progress fired %d times, want 3", len(detail))
	}

	// Later day wins the merge.
	data, err := os.ReadFile(filepath.Join(outDir, "05_NG_CRITICAL", "cellA_LOWER_B_L_SourceMap.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "day2" {
		t.Errorf("merged content = %q, want day2", data)
	}
}

func TestRunCountsMissingDays(t *testing.T) {
	base := fakeDrives(t)
	outDir := filepath.Join(t.TempDir(), "out")

	d1, d2 := day(27), day(28)
	writeFile(t, filepath.Join(cropB(base, "E", "JF2", d1), "05_NG_CRITICAL", "cellA_LOWER_B_L_SourceMap.jpg"), "x")

	stats, err := Run(Options{
		Days:   []time.Time{d1, d2},
		OutDir: outDir,
		Model:  "JF2",
		Drives: []string{"E"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.MissingDays != 1 {
		t.Errorf("MissingDays = %d, want 1", stats.MissingDays)
	}
	if stats.TotalCopied != 1 {
		t.Errorf("TotalCopied = %d, want 1", stats.TotalCopied)
	}
}

func TestRunIncludesActiveMaps(t *testing.T) {
	base := fakeDrives(t)
	outDir := filepath.Join(t.TempDir(), "out")

	d1 := day(27)
	classDir := filepath.Join(cropB(base, "E", "JF2", d1), "02_NG_TORN")
	writeFile(t, filepath.Join(classDir, "cellA_LOWER_B_L_SourceMap.jpg"), "s")
	writeFile(t, filepath.Join(classDir, "cellA_LOWER_B_L_ActiveMap.jpg"), "a")
	writeFile(t, filepath.Join(classDir, "cellB_LOWER_B_R_SourceMap.jpg"), "s2")

	stats, err := Run(Options{
		Days:             []time.Time{d1},
		OutDir:           outDir,
		Model:            "JF2",
		Drives:           []string{"E"},
		IncludeActiveMap: true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if stats.ActiveIncluded != 1 || stats.ActiveMissing != 1 {
		t.Errorf("active stats = %d/%d, want 1/1", stats.ActiveIncluded, stats.ActiveMissing)
	}
	if stats.TotalCopied != 3 {
		t.Errorf("TotalCopied = %d, want 3", stats.TotalCopied)
	}
}

func TestRunCancelledBeforeFirstDay(t *testing.T) {
	fakeDrives(t)
	outDir := filepath.Join(t.TempDir(), "out")

	stats, err := Run(Options{
		Days:        []time.Time{day(27)},
		OutDir:      outDir,
		Model:       "JF2",
		Drives:      []string{"E"},
		IsCancelled: func() bool { return true },
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !stats.Cancelled {
		t.Error("Cancelled flag not set")
	}
	if stats.TotalCopied != 0 || stats.MissingDays != 0 {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("cancelled run must not create the output directory")
	}
}

func TestRunCancelledMidCopy(t *testing.T) {
	base := fakeDrives(t)
	outDir := filepath.Join(t.TempDir(), "out")

	d1 := day(27)
	classDir := filepath.Join(cropB(base, "E", "JF2", d1), "02_NG_TORN")
	writeFile(t, filepath.Join(classDir, "cellA_LOWER_B_L_SourceMap.jpg"), "1")
	writeFile(t, filepath.Join(classDir, "cellB_LOWER_B_R_SourceMap.jpg"), "2")

	copies := 0
	stats, err := Run(Options{
		Days:   []time.Time{d1},
		OutDir: outDir,
		Model:  "JF2",
		Drives: []string{"E"},
		DetailProgress: func(done, total int, className, filename string) {
			copies = done
		},
		IsCancelled: func() bool { return copies >= 1 },
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !stats.Cancelled {
		t.Error("Cancelled flag not set")
	}
	if stats.TotalCopied != 1 {
		t.Errorf("TotalCopied = %d, want 1 (partial)", stats.TotalCopied)
	}
}

func TestRunZeroWorkShortCircuit(t *testing.T) {
	base := fakeDrives(t)
	outDir := filepath.Join(t.TempDir(), "out")

	d1 := day(27)
	// Root exists, class folder present but empty.
	if err := os.MkdirAll(filepath.Join(cropB(base, "E", "JF2", d1), "02_NG_TORN"), 0755); err != nil {
		t.Fatal(err)
	}

	var progressCalls [][2]int
	stats, err := Run(Options{
		Days:   []time.Time{d1},
		OutDir: outDir,
		Model:  "JF2",
		Drives: []string{"E"},
		Progress: func(done, total int) {
			progressCalls = append(progressCalls, [2]int{done, total})
		},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if stats.TotalCopied != 0 {
		t.Errorf("TotalCopied = %d, want 0", stats.TotalCopied)
	}
	if len(progressCalls) != 1 || progressCalls[0] != [2]int{0, 0} {
		t.Errorf("expected single (0,0) progress call, got %v", progressCalls)
	}
	if _, err := os.Stat(filepath.Join(outDir, "02_NG_TORN")); !os.IsNotExist(err) {
		t.Error("zero-work run must not create class directories")
	}
}

func TestRunExcludesConfiguredClasses(t *testing.T) {
	base := fakeDrives(t)
	outDir := filepath.Join(t.TempDir(), "out")

	d1 := day(27)
	writeFile(t, filepath.Join(cropB(base, "E", "JF2", d1), "01_ok_anode", "cellA_LOWER_B_L_SourceMap.jpg"), "x")
	writeFile(t, filepath.Join(cropB(base, "E", "JF2", d1), "02_NG_TORN", "cellB_LOWER_B_R_SourceMap.jpg"), "y")

	stats, err := Run(Options{
		Days:            []time.Time{d1},
		OutDir:          outDir,
		Model:           "JF2",
		Drives:          []string{"E"},
		ExcludedClasses: []string{"01_ok_anode", "01_ok_cathode"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if stats.TotalCopied != 1 {
		t.Errorf("TotalCopied = %d, want 1", stats.TotalCopied)
	}
	if _, ok := stats.PerClassCopied["01_ok_anode"]; ok {
		t.Error("excluded class was copied")
	}
}

// Progress counts must be monotonically non-decreasing and end at
// done == total for an uncancelled run.
func TestRunProgressMonotonic(t *testing.T) {
	base := fakeDrives(t)
	outDir := filepath.Join(t.TempDir(), "out")

	d1 := day(27)
	classDir := filepath.Join(cropB(base, "E", "JF2", d1), "02_NG_TORN")
	for _, name := range []string{"a_LOWER_B_L_SourceMap.jpg", "b_LOWER_B_R_SourceMap.jpg", "c_UPPER_B_L_SourceMap.jpg"} {
		writeFile(t, filepath.Join(classDir, name), name)
	}

	var calls [][2]int
	_, err := Run(Options{
		Days:   []time.Time{d1},
		OutDir: outDir,
		Model:  "JF2",
		Drives: []string{"E"},
		Progress: func(done, total int) {
			calls = append(calls, [2]int{done, total})
		},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(calls) == 0 {
		t.Fatal("no progress calls")
	}
	prev := -1
	for _, c := range calls {
		if c[0] < prev {
			t.Fatalf("progress went backwards: %v", calls)
		}
		prev = c[0]
	}
	last := calls[len(calls)-1]
	if last[0] != last[1] {
		t.Errorf("final progress %v should have done == total", last)
	}
}
