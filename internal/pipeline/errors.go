// =============================================================================
// Superstore Dashboard - Cleaning Errors
// =============================================================================
//
// Typed errors for the cleaning pass. Both carry enough context (row,
// column, offending value) to point straight at the bad cell. In strict
// mode the first one raised aborts the whole run; there is no partial
// output, so these are reported once, not per row.
//
// =============================================================================

package pipeline

import "fmt"

// DateParseError reports a date cell that matched none of the configured
// layouts.
type DateParseError struct {
	// Row is the 1-based data row number (excluding the header).
	Row int

	// Column is the normalized column name.
	Column string

	// Value is the raw cell content that failed to parse.
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %q as a date in column %q", e.Row, e.Value, e.Column)
}

// NumericParseError reports a sales or profit cell that could not be
// coerced to a decimal amount.
type NumericParseError struct {
	// Row is the 1-based data row number (excluding the header).
	Row int

	// Column is the normalized column name.
	Column string

	// Value is the raw cell content that failed to parse.
	Value string

	// Err is the underlying decimal parse error.
	Err error
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %q as a number in column %q", e.Row, e.Value, e.Column)
}

func (e *NumericParseError) Unwrap() error { return e.Err }
