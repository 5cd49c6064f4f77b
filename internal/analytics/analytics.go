// =============================================================================
// Superstore Dashboard - Analytics Module
// =============================================================================
//
// Aggregations over the cleaned sales records:
//   - Summary: total sales, total profit, profit margin
//   - SalesByMonth: (year, month) -> summed sales and profit, chronological
//   - SalesBySubCategory: sub-category -> summed sales, with parent category
//   - SalesByRegion: region -> summed sales
//
// Grouping sums amounts per distinct key; keys with no records are never
// emitted. Sums are exact decimal arithmetic, not floats. The chart-facing
// ordering (descending, top-N) is provided as helpers for the renderer.
//
// =============================================================================

package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/superstore-dashboard/internal/pipeline"
)

// =============================================================================
// AGGREGATE TYPES
// =============================================================================

// Summary holds the scalar KPIs computed over the full record collection.
type Summary struct {
	// TotalSales is the sum of the sales amount over all records.
	TotalSales decimal.Decimal

	// TotalProfit is the sum of the profit amount over all records.
	TotalProfit decimal.Decimal

	// RecordCount is the number of records summarized.
	RecordCount int
}

// ProfitMargin returns TotalProfit / TotalSales. The second return value is
// false when TotalSales is zero, where the margin is undefined.
func (s Summary) ProfitMargin() (decimal.Decimal, bool) {
	if s.TotalSales.IsZero() {
		return decimal.Decimal{}, false
	}
	return s.TotalProfit.Div(s.TotalSales), true
}

// MonthTotal is one (year, month) bucket of the monthly time series.
type MonthTotal struct {
	Year   int
	Month  int // 1-12
	Sales  decimal.Decimal
	Profit decimal.Decimal
}

// GroupTotal maps one grouping key to its summed sales.
type GroupTotal struct {
	// Key is the distinct group value (sub-category or region name).
	Key string

	// Category is the parent product category. Only populated for
	// sub-category grouping, where the chart colors bars by it.
	Category string

	// Sales is the summed sales amount for records sharing Key.
	Sales decimal.Decimal
}

// =============================================================================
// KPI SUMMARY
// =============================================================================

// Summarize computes the KPI summary. Both totals are zero for an empty
// collection.
func Summarize(records []pipeline.SalesRecord) Summary {
	s := Summary{
		TotalSales:  decimal.Zero,
		TotalProfit: decimal.Zero,
		RecordCount: len(records),
	}

	for _, r := range records {
		s.TotalSales = s.TotalSales.Add(r.Sales)
		s.TotalProfit = s.TotalProfit.Add(r.Profit)
	}
	return s
}

// =============================================================================
// GROUPED AGGREGATES
// =============================================================================

// SalesByMonth groups records by (order year, order month) and sums sales
// and profit per bucket. The result is sorted chronologically.
func SalesByMonth(records []pipeline.SalesRecord) []MonthTotal {
	type yearMonth struct {
		year  int
		month int
	}

	buckets := make(map[yearMonth]*MonthTotal)
	for _, r := range records {
		key := yearMonth{r.OrderYear, r.OrderMonth}
		b, ok := buckets[key]
		if !ok {
			b = &MonthTotal{
				Year:   r.OrderYear,
				Month:  r.OrderMonth,
				Sales:  decimal.Zero,
				Profit: decimal.Zero,
			}
			buckets[key] = b
		}
		b.Sales = b.Sales.Add(r.Sales)
		b.Profit = b.Profit.Add(r.Profit)
	}

	totals := make([]MonthTotal, 0, len(buckets))
	for _, b := range buckets {
		totals = append(totals, *b)
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		return totals[i].Month < totals[j].Month
	})

	return totals
}

// SalesBySubCategory groups records by sub-category and sums sales per
// group. Each group carries the parent category of its first record; in the
// Superstore dataset a sub-category never spans categories. The result is
// sorted by sales descending.
func SalesBySubCategory(records []pipeline.SalesRecord) []GroupTotal {
	return groupSales(records,
		func(r pipeline.SalesRecord) string { return r.SubCategory },
		func(r pipeline.SalesRecord) string { return r.Category },
	)
}

// SalesByRegion groups records by region and sums sales per group.
// The result is sorted by sales descending.
func SalesByRegion(records []pipeline.SalesRecord) []GroupTotal {
	return groupSales(records,
		func(r pipeline.SalesRecord) string { return r.Region },
		nil,
	)
}

// groupSales sums sales per distinct key. keyFn selects the grouping key;
// catFn, when non-nil, selects the parent category attached to each group.
func groupSales(records []pipeline.SalesRecord, keyFn, catFn func(pipeline.SalesRecord) string) []GroupTotal {
	sums := make(map[string]decimal.Decimal)
	categories := make(map[string]string)
	order := make([]string, 0)

	for _, r := range records {
		key := keyFn(r)
		if _, seen := sums[key]; !seen {
			order = append(order, key)
			sums[key] = decimal.Zero
			if catFn != nil {
				categories[key] = catFn(r)
			}
		}
		sums[key] = sums[key].Add(r.Sales)
	}

	totals := make([]GroupTotal, 0, len(order))
	for _, key := range order {
		totals = append(totals, GroupTotal{
			Key:      key,
			Category: categories[key],
			Sales:    sums[key],
		})
	}

	// Descending by value is the "top sellers" presentation the charts use.
	// Ties keep first-occurrence order, so output is deterministic.
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Sales.GreaterThan(totals[j].Sales)
	})

	return totals
}

// TopN returns the first n groups of an already-ordered aggregate.
func TopN(totals []GroupTotal, n int) []GroupTotal {
	if n <= 0 || n >= len(totals) {
		return totals
	}
	return totals[:n]
}
