// Package pathresolver locates the dated Crop_B root directory for a
// model across candidate drives.
//
// The vision pipeline writes crops under a fixed layout:
//
//	E:/Files/Image/JF2/2026/01/27/Mavin/Crop_B
//
// Only the drive letter varies between machines, so resolution is a
// first-hit probe over the caller's drive order.
package pathresolver

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mavin-tools/mavinfetch/pkg/dateutil"
)

// BaseParts is the fixed path base under the drive root.
var BaseParts = []string{"Files", "Image"}

// PipelineParts is the fixed inner path under the date segments.
var PipelineParts = []string{"Mavin", "Crop_B"}

// FoundRoot describes one resolved Crop_B directory for one (model, day).
type FoundRoot struct {
	Drive string
	Path  string
}

// DriveRoot maps a normalized drive letter to its filesystem root.
// Overridable for tests, which have no drive letters to mount.
var DriveRoot = func(letter string) string {
	return letter + ":" + string(filepath.Separator)
}

// NormalizeDrive reduces inputs like "e", "E:", "E:\" to a single upper-case
// letter. Returns "" for anything that is not one alphabetic character.
func NormalizeDrive(drive string) string {
	d := strings.TrimSpace(drive)
	d = strings.TrimRight(d, "\\/")
	d = strings.TrimRight(d, ":")
	d = strings.ToUpper(d)
	if len(d) != 1 || d[0] < 'A' || d[0] > 'Z' {
		return ""
	}
	return d
}

// Resolve returns the first existing Crop_B root across the given drives,
// probed in caller order. A false result is a normal outcome (a day with
// no inspection run), not an error.
func Resolve(model string, day time.Time, drives []string) (FoundRoot, bool) {
	yyyy, mm, dd := dateutil.YMDParts(day)

	for _, drv := range drives {
		d := NormalizeDrive(drv)
		if d == "" {
			continue
		}

		segments := append([]string{DriveRoot(d)}, BaseParts...)
		segments = append(segments, model, yyyy, mm, dd)
		segments = append(segments, PipelineParts...)
		candidate := filepath.Join(segments...)

		info, err := os.Stat(candidate)
		if err != nil || !info.IsDir() {
			continue
		}
		return FoundRoot{Drive: d, Path: candidate}, true
	}

	return FoundRoot{}, false
}
