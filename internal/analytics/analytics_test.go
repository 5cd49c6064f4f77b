package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/superstore-dashboard/internal/pipeline"
)

// record builds a SalesRecord for a given order date and amounts.
func record(orderDate string, sales, profit int64, category, subCategory, region string) pipeline.SalesRecord {
	d, err := time.Parse("2006-01-02", orderDate)
	if err != nil {
		panic(err)
	}
	return pipeline.SalesRecord{
		OrderDate:   d,
		ShipDate:    d.AddDate(0, 0, 2),
		Sales:       decimal.NewFromInt(sales),
		Profit:      decimal.NewFromInt(profit),
		Category:    category,
		SubCategory: subCategory,
		Region:      region,
		OrderYear:   d.Year(),
		OrderMonth:  int(d.Month()),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.True(t, s.TotalSales.IsZero())
	assert.True(t, s.TotalProfit.IsZero())
	assert.Equal(t, 0, s.RecordCount)

	_, ok := s.ProfitMargin()
	assert.False(t, ok, "margin undefined with zero sales")

	assert.Empty(t, SalesByMonth(nil))
	assert.Empty(t, SalesBySubCategory(nil))
	assert.Empty(t, SalesByRegion(nil))
}

func TestSummarizeSingleRecord(t *testing.T) {
	records := []pipeline.SalesRecord{
		record("2023-05-10", 100, 20, "Furniture", "Chairs", "West"),
	}

	s := Summarize(records)
	assert.Equal(t, "100", s.TotalSales.String())
	assert.Equal(t, "20", s.TotalProfit.String())
	assert.Equal(t, 1, s.RecordCount)

	margin, ok := s.ProfitMargin()
	require.True(t, ok)
	assert.Equal(t, "0.2", margin.String())

	subCats := SalesBySubCategory(records)
	require.Len(t, subCats, 1)
	assert.Equal(t, "Chairs", subCats[0].Key)
	assert.Equal(t, "Furniture", subCats[0].Category)
	assert.Equal(t, "100", subCats[0].Sales.String())

	regions := SalesByRegion(records)
	require.Len(t, regions, 1)
	assert.Equal(t, "West", regions[0].Key)
	assert.Equal(t, "100", regions[0].Sales.String())

	months := SalesByMonth(records)
	require.Len(t, months, 1)
	assert.Equal(t, 2023, months[0].Year)
	assert.Equal(t, 5, months[0].Month)
	assert.Equal(t, "100", months[0].Sales.String())
}

func TestGroupingMergesNotOverwrites(t *testing.T) {
	records := []pipeline.SalesRecord{
		record("2023-05-10", 100, 20, "Furniture", "Chairs", "West"),
		record("2023-06-02", 50, 5, "Furniture", "Chairs", "East"),
	}

	subCats := SalesBySubCategory(records)
	require.Len(t, subCats, 1)
	assert.Equal(t, "Chairs", subCats[0].Key)
	assert.Equal(t, "150", subCats[0].Sales.String())
}

func TestNegativeProfitAggregates(t *testing.T) {
	records := []pipeline.SalesRecord{
		record("2023-05-10", 100, -30, "Technology", "Machines", "South"),
		record("2023-05-11", 200, 10, "Technology", "Phones", "South"),
	}

	s := Summarize(records)
	assert.Equal(t, "300", s.TotalSales.String())
	assert.Equal(t, "-20", s.TotalProfit.String())
}

func TestSalesByMonthChronological(t *testing.T) {
	records := []pipeline.SalesRecord{
		record("2024-01-05", 10, 1, "Furniture", "Tables", "West"),
		record("2023-11-20", 20, 2, "Furniture", "Tables", "West"),
		record("2023-02-14", 30, 3, "Furniture", "Tables", "West"),
		record("2023-11-02", 5, 1, "Furniture", "Tables", "West"),
	}

	months := SalesByMonth(records)
	require.Len(t, months, 3)

	assert.Equal(t, []int{2023, 2023, 2024}, []int{months[0].Year, months[1].Year, months[2].Year})
	assert.Equal(t, []int{2, 11, 1}, []int{months[0].Month, months[1].Month, months[2].Month})

	// November merges its two records.
	assert.Equal(t, "25", months[1].Sales.String())
	assert.Equal(t, "3", months[1].Profit.String())
}

func TestGroupSumsReconcileWithTotal(t *testing.T) {
	records := []pipeline.SalesRecord{
		record("2023-01-10", 120, 12, "Furniture", "Chairs", "West"),
		record("2023-02-11", 80, -8, "Furniture", "Tables", "East"),
		record("2023-02-12", 55, 5, "Technology", "Phones", "West"),
		record("2023-03-01", 45, 4, "Office Supplies", "Paper", "Central"),
	}

	total := Summarize(records).TotalSales

	// Grouping partitions the data: every aggregate's entries must sum
	// back to the ungrouped total.
	for name, sum := range map[string]decimal.Decimal{
		"sub-category": sumGroups(SalesBySubCategory(records)),
		"region":       sumGroups(SalesByRegion(records)),
		"month":        sumMonths(SalesByMonth(records)),
	} {
		assert.True(t, sum.Equal(total), "%s sum %s != total %s", name, sum, total)
	}
}

func sumGroups(totals []GroupTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, g := range totals {
		sum = sum.Add(g.Sales)
	}
	return sum
}

func sumMonths(totals []MonthTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range totals {
		sum = sum.Add(m.Sales)
	}
	return sum
}

func TestGroupOrderingDescending(t *testing.T) {
	records := []pipeline.SalesRecord{
		record("2023-01-01", 10, 1, "A", "Low", "West"),
		record("2023-01-02", 300, 1, "A", "High", "East"),
		record("2023-01-03", 200, 1, "B", "Mid", "South"),
	}

	subCats := SalesBySubCategory(records)
	require.Len(t, subCats, 3)
	assert.Equal(t, []string{"High", "Mid", "Low"}, []string{subCats[0].Key, subCats[1].Key, subCats[2].Key})
}

func TestTopN(t *testing.T) {
	records := []pipeline.SalesRecord{
		record("2023-01-01", 300, 1, "A", "First", "West"),
		record("2023-01-02", 200, 1, "A", "Second", "West"),
		record("2023-01-03", 100, 1, "A", "Third", "West"),
	}

	totals := SalesBySubCategory(records)

	top := TopN(totals, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "First", top[0].Key)
	assert.Equal(t, "Second", top[1].Key)

	assert.Len(t, TopN(totals, 10), 3, "n beyond length returns everything")
	assert.Len(t, TopN(totals, 0), 3, "zero means no cut")
}
