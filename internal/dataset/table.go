// =============================================================================
// Superstore Dashboard - Dataset Module
// =============================================================================
//
// This module loads the raw sales dataset into memory. It handles:
//   - Delimited files (comma, pipe, tab) via encoding/csv
//   - Excel workbooks (.xlsx, .xlsm, .xls) via excelize
//   - Header normalization so config column names match the raw file
//   - Required-column checks before the cleaning pass touches a cell
//
// The loaded Table keeps every value as a string. Type coercion is the
// cleaning pass's job (internal/pipeline), not the loader's.
//
// =============================================================================

package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/superstore-dashboard/internal/config"
)

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Table represents the loaded dataset.
type Table struct {
	// Headers contains the normalized column headers, in file order.
	Headers []string

	// Rows contains the data rows as maps of normalized header -> raw value.
	// Using maps allows field access by name during cleaning.
	Rows []map[string]string

	// SourceFile is the path the table was loaded from.
	SourceFile string

	// RowCount is the number of data rows (excluding the header).
	RowCount int

	// ColumnCount is the number of columns in the dataset.
	ColumnCount int
}

// Column returns all values for the given normalized header, in row order.
// Returns nil if the header does not exist.
func (t *Table) Column(header string) []string {
	if !t.HasColumn(header) {
		return nil
	}

	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[header])
	}
	return values
}

// HasColumn reports whether the table has the given normalized header.
func (t *Table) HasColumn(header string) bool {
	for _, h := range t.Headers {
		if h == header {
			return true
		}
	}
	return false
}

// =============================================================================
// LOAD ERROR
// =============================================================================

// LoadError reports a dataset that could not be loaded: missing file,
// unreadable content, or a required column absent from the header row.
// It aborts the run; there is no partial-load mode.
type LoadError struct {
	// Path is the dataset file involved.
	Path string

	// Reason is a short description of what went wrong.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// =============================================================================
// LOADING
// =============================================================================

// Load reads the dataset file into a Table and verifies that every required
// column is present. The reader is picked by file extension: Excel formats
// go through excelize, everything else is treated as a delimited file.
func Load(cfg config.DatasetConfig, required []string) (*Table, error) {
	var (
		table *Table
		err   error
	)

	switch strings.ToLower(filepath.Ext(cfg.Path)) {
	case ".xlsx", ".xlsm", ".xls":
		table, err = parseExcel(cfg.Path)
	default:
		table, err = parseDelimited(cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := requireColumns(table, required); err != nil {
		return nil, err
	}

	return table, nil
}

// requireColumns verifies that every required column exists in the table.
// Missing columns are reported together so one run surfaces all of them.
func requireColumns(table *Table, required []string) error {
	var missing []string
	for _, col := range required {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return &LoadError{
			Path:   table.SourceFile,
			Reason: fmt.Sprintf("missing required column(s): %s", strings.Join(missing, ", ")),
		}
	}
	return nil
}

// NormalizeHeader converts a raw column header to its canonical form:
// trimmed, lowercased, with spaces and hyphens replaced by underscores.
// "Sub-Category" and " sub category " both normalize to "sub_category".
func NormalizeHeader(header string) string {
	h := strings.TrimSpace(strings.ToLower(header))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

// normalizeHeaders normalizes a full header row, disambiguating duplicates
// and filling in blanks so every column is addressable.
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	seen := make(map[string]int)

	for i, h := range raw {
		header := NormalizeHeader(h)
		if header == "" {
			header = fmt.Sprintf("column_%d", i+1)
		}

		if n, dup := seen[header]; dup {
			seen[header] = n + 1
			header = fmt.Sprintf("%s_%d", header, n+1)
		}
		seen[header] = 1

		headers[i] = header
	}
	return headers
}

// isRowEmpty checks whether every cell in a row is blank.
// Blank rows are skipped during loading.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// rowsToMaps converts raw rows into header-keyed maps. Short rows leave the
// trailing columns empty; long rows drop the extra cells (encoding/csv
// rejects ragged rows already, but the Excel reader can produce them).
func rowsToMaps(headers []string, raw [][]string) []map[string]string {
	rows := make([]map[string]string, 0, len(raw))

	for _, rawRow := range raw {
		if isRowEmpty(rawRow) {
			continue
		}

		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(rawRow) {
				row[header] = rawRow[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
