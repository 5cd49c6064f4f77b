package dataset

import (
	"bufio"
	"encoding/csv"
	"os"

	"github.com/ginjaninja78/superstore-dashboard/internal/config"
)

// parseDelimited reads a delimited file into a Table.
//
// PARSING PROCESS:
//   1. Open the file and wrap it in a buffered reader
//   2. Configure the CSV reader with the configured delimiter
//   3. Skip any rows above the configured header row
//   4. Normalize the header row
//   5. Convert each data row to a map of header -> value, dropping blanks
func parseDelimited(cfg config.DatasetConfig) (*Table, error) {
	file, err := os.Open(cfg.Path)
	if err != nil {
		return nil, &LoadError{Path: cfg.Path, Reason: "cannot open file", Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.Comma = rune(cfg.Delimiter[0])
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: cfg.Path, Reason: "malformed delimited file", Err: err}
	}

	if len(allRows) < cfg.HeaderRow {
		return nil, &LoadError{Path: cfg.Path, Reason: "file has no header row"}
	}

	headers := normalizeHeaders(allRows[cfg.HeaderRow-1])
	rows := rowsToMaps(headers, allRows[cfg.HeaderRow:])

	return &Table{
		Headers:     headers,
		Rows:        rows,
		SourceFile:  cfg.Path,
		RowCount:    len(rows),
		ColumnCount: len(headers),
	}, nil
}
