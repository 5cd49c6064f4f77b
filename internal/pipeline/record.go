package pipeline

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one cleaned row of the sales dataset.
type SalesRecord struct {
	// OrderDate is the calendar date the order was placed.
	OrderDate time.Time

	// ShipDate is the calendar date the order shipped.
	// OrderDate <= ShipDate is assumed from the source, not validated here.
	ShipDate time.Time

	// Sales is the sale amount in dataset currency.
	Sales decimal.Decimal

	// Profit is the profit amount. May be negative.
	Profit decimal.Decimal

	// Category is the product category (e.g., "Furniture").
	Category string

	// SubCategory is the product sub-category (e.g., "Chairs").
	SubCategory string

	// Region is the sales region (e.g., "West").
	Region string

	// OrderYear is derived from OrderDate during cleaning.
	OrderYear int

	// OrderMonth is derived from OrderDate during cleaning (1-12).
	OrderMonth int

	// Extra holds every uninterpreted column as-is, keyed by normalized
	// header. Carried through untouched for any downstream consumer.
	Extra map[string]string
}
