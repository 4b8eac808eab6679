// Package dateutil parses the user-facing date formats accepted by the CLI
// and expands them into the day lists the fetch engine iterates over.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseYMD parses a calendar day from "YYYY-MM-DD", "YYYY/MM/DD" or
// "YYYY.MM.DD".
func ParseYMD(s string) (time.Time, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "/", "-")
	cleaned = strings.ReplaceAll(cleaned, ".", "-")

	parts := strings.Split(cleaned, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date format %q: use YYYY-MM-DD", s)
	}

	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q: %w", s, err)
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("date out of range: %q", s)
	}

	// time.Date normalizes overflow (Feb 30 -> Mar 2); an input that does
	// not round-trip names a day that does not exist.
	day := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if day.Year() != y || day.Month() != time.Month(m) || day.Day() != d {
		return time.Time{}, fmt.Errorf("no such calendar day: %q", s)
	}

	return day, nil
}

// YMDParts returns the zero-padded path segments for a day:
// ("2026", "01", "27").
func YMDParts(day time.Time) (yyyy, mm, dd string) {
	return fmt.Sprintf("%04d", day.Year()),
		fmt.Sprintf("%02d", int(day.Month())),
		fmt.Sprintf("%02d", day.Day())
}

// DateRangeInclusive returns every day from start to end inclusive.
// Reversed bounds are swapped rather than rejected.
func DateRangeInclusive(start, end time.Time) []time.Time {
	if end.Before(start) {
		start, end = end, start
	}

	var out []time.Time
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		out = append(out, cur)
	}
	return out
}

// ParseDatesCSV parses a comma-separated list of dates, e.g.
// "2026-01-27, 2026-01-28,2026/01/30". Duplicates are dropped, first
// occurrence order preserved.
func ParseDatesCSV(s string) ([]time.Time, error) {
	var out []time.Time
	seen := make(map[time.Time]bool)

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, err := ParseYMD(part)
		if err != nil {
			return nil, err
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		out = append(out, day)
	}

	return out, nil
}
