// Package imagename parses crop image filenames into cell identity,
// spatial region and map type.
//
// Filenames look like:
//
//	l61SK02085_03-2_AN_083058_LOWER_2_B_L_..._SourceMap.jpg
//	l61SK02085_03-2_AN_083058_UPPER_B_R_..._ActiveMap.jpg
//
// The upstream generator has varied whether a digit token follows the
// LOWER/UPPER anchor, so the parser must accept every observed variant
// without changing the extracted region.
package imagename

import (
	"path/filepath"
	"strings"
)

// Regions are the four fixed spatial quadrants, in display order.
var Regions = []string{"LOWER_B_L", "LOWER_B_R", "UPPER_B_L", "UPPER_B_R"}

// Map types.
const (
	MapTypeSource = "SourceMap"
	MapTypeActive = "ActiveMap"
)

// Parsed is the semantic content of one crop image filename.
type Parsed struct {
	CellKey string // identity of the inspected cell, from the filename prefix
	Region  string // LOWER_B_L / LOWER_B_R / UPPER_B_L / UPPER_B_R
	MapType string // MapTypeSource or MapTypeActive
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

// mapType returns the map-type marker sitting immediately before the
// extension, or "" if neither marker is present.
func mapType(lowerName string) string {
	switch {
	case strings.Contains(lowerName, "_sourcemap."):
		return MapTypeSource
	case strings.Contains(lowerName, "_activemap."):
		return MapTypeActive
	}
	return ""
}

// sideLetter extracts the L/R side for the region anchored at parts[idx].
//
// Two strategies, in order:
//  1. fixed shape: anchor, optional digit, literal "B", then L or R
//  2. bounded window: scan the anchor token plus the next five tokens for
//     the first adjacent "B", L/R pair
//
// Returns "" when neither strategy matches.
func sideLetter(parts []string, idx int) string {
	j := idx + 1
	if j < len(parts) && isDigits(parts[j]) {
		j++
	}

	if j < len(parts) && parts[j] == "B" {
		if j+1 < len(parts) && (parts[j+1] == "L" || parts[j+1] == "R") {
			return parts[j+1]
		}
		return ""
	}

	end := idx + 6
	if end > len(parts) {
		end = len(parts)
	}
	window := parts[idx:end]
	for k := 0; k < len(window)-1; k++ {
		if window[k] == "B" && (window[k+1] == "L" || window[k+1] == "R") {
			return window[k+1]
		}
	}
	return ""
}

// Parse extracts the semantic keys from a crop image filename or path.
// Returns false for anything that is not a recognizable crop image;
// callers treat that as an expected skip, never an error.
func Parse(name string) (Parsed, bool) {
	base := filepath.Base(name)
	lower := strings.ToLower(base)

	if !strings.HasSuffix(lower, ".jpg") &&
		!strings.HasSuffix(lower, ".jpeg") &&
		!strings.HasSuffix(lower, ".png") {
		return Parsed{}, false
	}

	mt := mapType(lower)
	if mt == "" {
		return Parsed{}, false
	}

	stem := base[:len(base)-len(filepath.Ext(base))]
	parts := strings.Split(stem, "_")

	idx := -1
	for i, p := range parts {
		if p == "LOWER" || p == "UPPER" {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Parsed{}, false
	}

	side := sideLetter(parts, idx)
	if side == "" {
		return Parsed{}, false
	}

	// Any digit between the anchor and "B" is a non-semantic naming
	// artifact and is dropped from the region.
	region := parts[idx] + "_B_" + side

	cellKey := strings.TrimSpace(strings.Join(parts[:idx], "_"))
	if cellKey == "" {
		cellKey = stem
	}

	return Parsed{CellKey: cellKey, Region: region, MapType: mt}, true
}
