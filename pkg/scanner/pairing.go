package scanner

import (
	"path/filepath"
	"strings"
)

// SourceMapSuffix marks the primary crop image written per inspection.
const SourceMapSuffix = "SourceMap.jpg"

// ActiveMapSuffix marks the paired overlay image, when present.
const ActiveMapSuffix = "ActiveMap.jpg"

// SourceMapToActiveMapPath derives the expected ActiveMap path for a
// SourceMap file:
//
//	..._SourceMap.jpg -> ..._ActiveMap.jpg
func SourceMapToActiveMapPath(src string) string {
	dir := filepath.Dir(src)
	name := filepath.Base(src)

	if !strings.HasSuffix(name, SourceMapSuffix) {
		// Fallback for unexpected names: naive substring replace.
		return filepath.Join(dir, strings.ReplaceAll(name, "SourceMap.jpg", "ActiveMap.jpg"))
	}

	activeName := name[:len(name)-len(SourceMapSuffix)] + ActiveMapSuffix
	return filepath.Join(dir, activeName)
}
