package dataset

import (
	"github.com/xuri/excelize/v2"
)

// parseExcel reads the first sheet of an Excel workbook into a Table.
// The first non-empty row of the sheet is taken as the header row; the
// Superstore workbook ships with headers on row one.
func parseExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "cannot open workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Reason: "workbook has no sheets"}
	}

	allRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "cannot read sheet", Err: err}
	}

	// Find the header row: the first row with any content.
	headerIdx := -1
	for i, row := range allRows {
		if !isRowEmpty(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, &LoadError{Path: path, Reason: "sheet has no header row"}
	}

	headers := normalizeHeaders(allRows[headerIdx])
	rows := rowsToMaps(headers, allRows[headerIdx+1:])

	return &Table{
		Headers:     headers,
		Rows:        rows,
		SourceFile:  path,
		RowCount:    len(rows),
		ColumnCount: len(headers),
	}, nil
}
