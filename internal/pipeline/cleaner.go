// =============================================================================
// Superstore Dashboard - Cleaning Module
// =============================================================================
//
// The cleaning pass turns the loaded string table into typed SalesRecords:
//   - order/ship date cells are parsed against the configured layout list
//   - sales/profit cells are coerced to decimal amounts
//   - order year and order month are derived from the order date
//
// MALFORMED-ROW POLICY:
//   Strict (default): the first unparseable cell aborts the run. No rows
//   are dropped and no dashboard is written.
//   Lenient (cleaning.lenient): bad rows are skipped with a logged warning
//   and counted in Stats.RowsSkipped.
//
// =============================================================================

package pipeline

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/superstore-dashboard/internal/config"
	"github.com/ginjaninja78/superstore-dashboard/internal/dataset"
)

// =============================================================================
// CLEANER STRUCTURE
// =============================================================================

// Cleaner converts raw dataset rows into typed sales records.
type Cleaner struct {
	columns config.ColumnConfig
	layouts []string
	lenient bool
}

// Stats describes the outcome of a cleaning pass.
type Stats struct {
	// RowsIn is the number of raw rows read from the dataset.
	RowsIn int

	// RowsCleaned is the number of rows converted into SalesRecords.
	RowsCleaned int

	// RowsSkipped is the number of rows dropped in lenient mode.
	// Always zero in strict mode.
	RowsSkipped int
}

// NewCleaner creates a Cleaner from the column and cleaning configuration.
func NewCleaner(columns config.ColumnConfig, cleaning config.CleaningConfig) *Cleaner {
	layouts := cleaning.DateFormats
	if len(layouts) == 0 {
		layouts = config.DefaultDateFormats
	}

	return &Cleaner{
		columns: columns,
		layouts: layouts,
		lenient: cleaning.Lenient,
	}
}

// =============================================================================
// CLEANING PASS
// =============================================================================

// Clean converts every row of the table into a SalesRecord.
//
// RETURNS:
//   - The cleaned records, in source row order.
//   - Stats for the run summary.
//   - A *DateParseError or *NumericParseError in strict mode when a cell
//     cannot be coerced. The error identifies the first offending cell.
func (c *Cleaner) Clean(table *dataset.Table) ([]SalesRecord, Stats, error) {
	records := make([]SalesRecord, 0, len(table.Rows))
	stats := Stats{RowsIn: len(table.Rows)}

	interpreted := map[string]bool{
		c.columns.OrderDate:   true,
		c.columns.ShipDate:    true,
		c.columns.Sales:       true,
		c.columns.Profit:      true,
		c.columns.Category:    true,
		c.columns.SubCategory: true,
		c.columns.Region:      true,
	}

	for i, row := range table.Rows {
		record, err := c.cleanRow(i+1, row, interpreted)
		if err != nil {
			if c.lenient {
				stats.RowsSkipped++
				logrus.WithError(err).Warnf("Skipping row %d", i+1)
				continue
			}
			return nil, stats, err
		}
		records = append(records, record)
	}

	stats.RowsCleaned = len(records)
	logrus.Debugf("Cleaned %d of %d rows (%d skipped)", stats.RowsCleaned, stats.RowsIn, stats.RowsSkipped)

	return records, stats, nil
}

// cleanRow coerces a single row. rowNum is 1-based and excludes the header.
func (c *Cleaner) cleanRow(rowNum int, row map[string]string, interpreted map[string]bool) (SalesRecord, error) {
	orderDate, err := c.parseDate(rowNum, c.columns.OrderDate, row[c.columns.OrderDate])
	if err != nil {
		return SalesRecord{}, err
	}

	shipDate, err := c.parseDate(rowNum, c.columns.ShipDate, row[c.columns.ShipDate])
	if err != nil {
		return SalesRecord{}, err
	}

	sales, err := c.parseAmount(rowNum, c.columns.Sales, row[c.columns.Sales])
	if err != nil {
		return SalesRecord{}, err
	}

	profit, err := c.parseAmount(rowNum, c.columns.Profit, row[c.columns.Profit])
	if err != nil {
		return SalesRecord{}, err
	}

	// Passthrough for every column the pipeline does not interpret.
	extra := make(map[string]string)
	for header, value := range row {
		if !interpreted[header] {
			extra[header] = value
		}
	}

	return SalesRecord{
		OrderDate:   orderDate,
		ShipDate:    shipDate,
		Sales:       sales,
		Profit:      profit,
		Category:    strings.TrimSpace(row[c.columns.Category]),
		SubCategory: strings.TrimSpace(row[c.columns.SubCategory]),
		Region:      strings.TrimSpace(row[c.columns.Region]),
		OrderYear:   orderDate.Year(),
		OrderMonth:  int(orderDate.Month()),
		Extra:       extra,
	}, nil
}

// parseDate tries each configured layout in turn.
func (c *Cleaner) parseDate(rowNum int, column, value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	for _, layout := range c.layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &DateParseError{Row: rowNum, Column: column, Value: value}
}

// parseAmount coerces a currency cell to a decimal. Currency symbols and
// thousands separators show up in some exports, so they are stripped first.
func (c *Cleaner) parseAmount(rowNum int, column, value string) (decimal.Decimal, error) {
	v := strings.TrimSpace(value)
	v = strings.TrimPrefix(v, "$")
	v = strings.ReplaceAll(v, ",", "")

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, &NumericParseError{Row: rowNum, Column: column, Value: value, Err: err}
	}
	return d, nil
}
