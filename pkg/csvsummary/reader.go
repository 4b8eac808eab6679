// Package csvsummary aggregates defect-class counts from the result
// tables the vision pipeline exports next to its images, in either CSV
// or Excel form.
package csvsummary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one table row keyed by header name. Missing and blank cells are
// empty strings, never absent keys for headers that exist.
type Row map[string]string

// IterRows streams every row of a .csv, .xlsx or .xlsm file into fn.
// Iteration stops on the first error fn returns.
func IterRows(path string, fn func(Row) error) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return iterCSV(path, fn)
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return iterXLSX(path, fn)
	}
	return fmt.Errorf("unsupported file type: %s (expected .csv or .xlsx)", filepath.Base(path))
}

func iterCSV(path string, fn func(Row) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // exports sometimes carry ragged rows

	header, err := r.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	// Excel-produced CSVs often start with a UTF-8 BOM.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		row := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(record) {
				row[key] = record[i]
			} else {
				row[key] = ""
			}
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}

func iterXLSX(path string, fn func(Row) error) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.Rows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet of %s: %w", path, err)
	}
	defer rows.Close()

	var header []string
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("failed to read row of %s: %w", path, err)
		}

		if header == nil {
			header = make([]string, len(cols))
			for i, h := range cols {
				header[i] = strings.TrimSpace(h)
			}
			continue
		}

		row := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(cols) {
				row[key] = cols[i]
			} else {
				row[key] = ""
			}
		}
		if err := fn(row); err != nil {
			return err
		}
	}

	return rows.Error()
}
