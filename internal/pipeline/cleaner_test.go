package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/superstore-dashboard/internal/config"
	"github.com/ginjaninja78/superstore-dashboard/internal/dataset"
)

func defaultColumns() config.ColumnConfig {
	return config.Default().Columns
}

// tableOf builds a Table from row maps, deriving headers from the first row.
func tableOf(rows ...map[string]string) *dataset.Table {
	var headers []string
	if len(rows) > 0 {
		for header := range rows[0] {
			headers = append(headers, header)
		}
	}
	return &dataset.Table{
		Headers:     headers,
		Rows:        rows,
		RowCount:    len(rows),
		ColumnCount: len(headers),
	}
}

func goodRow() map[string]string {
	return map[string]string{
		"order_date":   "2023-05-10",
		"ship_date":    "2023-05-12",
		"sales":        "100",
		"profit":       "20",
		"category":     "Furniture",
		"sub_category": "Chairs",
		"region":       "West",
	}
}

func TestCleanRoundTrip(t *testing.T) {
	cleaner := NewCleaner(defaultColumns(), config.CleaningConfig{})

	records, stats, err := cleaner.Clean(tableOf(goodRow()))
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC), r.OrderDate)
	assert.Equal(t, time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC), r.ShipDate)
	assert.Equal(t, "100", r.Sales.String())
	assert.Equal(t, "20", r.Profit.String())
	assert.Equal(t, "Furniture", r.Category)
	assert.Equal(t, "Chairs", r.SubCategory)
	assert.Equal(t, "West", r.Region)
	assert.Equal(t, 2023, r.OrderYear)
	assert.Equal(t, 5, r.OrderMonth)

	assert.Equal(t, Stats{RowsIn: 1, RowsCleaned: 1}, stats)
}

func TestCleanDateFormats(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{"2023-05-10", time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)},
		{"5/10/2023", time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)},
		{"05/10/2023", time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)},
		{"2023-05-10 13:45:00", time.Date(2023, 5, 10, 13, 45, 0, 0, time.UTC)},
		{"10-May-2023", time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)},
	}

	cleaner := NewCleaner(defaultColumns(), config.CleaningConfig{})

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			row := goodRow()
			row["order_date"] = tt.value

			records, _, err := cleaner.Clean(tableOf(row))
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.True(t, records[0].OrderDate.Equal(tt.want),
				"got %s, want %s", records[0].OrderDate, tt.want)
		})
	}
}

func TestCleanAmountCoercion(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"100", "100"},
		{"100.50", "100.5"},
		{"-19.99", "-19.99"},
		{"$1,234.56", "1234.56"},
		{" 42 ", "42"},
	}

	cleaner := NewCleaner(defaultColumns(), config.CleaningConfig{})

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			row := goodRow()
			row["sales"] = tt.value

			records, _, err := cleaner.Clean(tableOf(row))
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0].Sales.String())
		})
	}
}

func TestCleanStrictFailures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(row map[string]string)
		wantDate bool
		wantNum  bool
		column   string
	}{
		{
			name:     "malformed order date",
			mutate:   func(row map[string]string) { row["order_date"] = "not-a-date" },
			wantDate: true,
			column:   "order_date",
		},
		{
			name:     "malformed ship date",
			mutate:   func(row map[string]string) { row["ship_date"] = "soon" },
			wantDate: true,
			column:   "ship_date",
		},
		{
			name:    "malformed sales",
			mutate:  func(row map[string]string) { row["sales"] = "lots" },
			wantNum: true,
			column:  "sales",
		},
		{
			name:    "malformed profit",
			mutate:  func(row map[string]string) { row["profit"] = "" },
			wantNum: true,
			column:  "profit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := goodRow()
			tt.mutate(row)

			cleaner := NewCleaner(defaultColumns(), config.CleaningConfig{})
			records, _, err := cleaner.Clean(tableOf(goodRow(), row))
			require.Error(t, err)
			assert.Nil(t, records, "no partial output on strict failure")

			if tt.wantDate {
				var dateErr *DateParseError
				require.ErrorAs(t, err, &dateErr)
				assert.Equal(t, 2, dateErr.Row)
				assert.Equal(t, tt.column, dateErr.Column)
			}
			if tt.wantNum {
				var numErr *NumericParseError
				require.ErrorAs(t, err, &numErr)
				assert.Equal(t, 2, numErr.Row)
				assert.Equal(t, tt.column, numErr.Column)
			}
		})
	}
}

func TestCleanLenientSkipsBadRows(t *testing.T) {
	bad := goodRow()
	bad["order_date"] = "not-a-date"

	cleaner := NewCleaner(defaultColumns(), config.CleaningConfig{Lenient: true})
	records, stats, err := cleaner.Clean(tableOf(goodRow(), bad, goodRow()))

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, Stats{RowsIn: 3, RowsCleaned: 2, RowsSkipped: 1}, stats)
}

func TestCleanPassthroughColumns(t *testing.T) {
	row := goodRow()
	row["customer_name"] = "Alice"
	row["order_id"] = "CA-2023-1"

	cleaner := NewCleaner(defaultColumns(), config.CleaningConfig{})
	records, _, err := cleaner.Clean(tableOf(row))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, map[string]string{
		"customer_name": "Alice",
		"order_id":      "CA-2023-1",
	}, records[0].Extra)
}

func TestCleanEmptyTable(t *testing.T) {
	cleaner := NewCleaner(defaultColumns(), config.CleaningConfig{})

	records, stats, err := cleaner.Clean(tableOf())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, Stats{}, stats)
}
