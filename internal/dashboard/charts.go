package dashboard

import (
	"encoding/json"
	"fmt"

	"github.com/ginjaninja78/superstore-dashboard/internal/analytics"
)

// =============================================================================
// CHART PAYLOADS
// =============================================================================
//
// Each chart is a set of plotly traces plus a layout, embedded in the page
// as JSON and drawn client-side. Amounts are converted to floats here, at
// the presentation boundary; all arithmetic upstream stays decimal.

// trace is one plotly data series.
type trace struct {
	Type string    `json:"type"`
	Mode string    `json:"mode,omitempty"`
	Name string    `json:"name,omitempty"`
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
}

// layout is the subset of plotly layout options the dashboard uses.
type layout struct {
	Title   string    `json:"title,omitempty"`
	Barmode string    `json:"barmode,omitempty"`
	XAxis   axisTitle `json:"xaxis"`
	YAxis   axisTitle `json:"yaxis"`
}

type axisTitle struct {
	Title string `json:"title,omitempty"`
}

// chart ties an element id to its serialized traces and layout.
type chart struct {
	// ElementID is the id of the <div> plotly draws into.
	ElementID string

	// Heading is the section heading shown above the chart.
	Heading string

	// DataJSON and LayoutJSON are the serialized plotly arguments.
	DataJSON   string
	LayoutJSON string
}

// RenderError reports a chart that could not be serialized for embedding.
type RenderError struct {
	Chart string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render chart %q: %v", e.Chart, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// =============================================================================
// CHART BUILDERS
// =============================================================================

// monthlyChart builds the sales/profit trend lines over the chronological
// month buckets.
func monthlyChart(months []analytics.MonthTotal) (chart, error) {
	labels := make([]string, 0, len(months))
	sales := make([]float64, 0, len(months))
	profit := make([]float64, 0, len(months))

	for _, m := range months {
		labels = append(labels, fmt.Sprintf("%04d-%02d", m.Year, m.Month))
		sales = append(sales, m.Sales.InexactFloat64())
		profit = append(profit, m.Profit.InexactFloat64())
	}

	traces := []trace{
		{Type: "scatter", Mode: "lines+markers", Name: "Sales", X: labels, Y: sales},
		{Type: "scatter", Mode: "lines+markers", Name: "Profit", X: labels, Y: profit},
	}

	return marshalChart("chart-monthly", "Monthly Sales Trend", traces, layout{
		XAxis: axisTitle{Title: "Month"},
		YAxis: axisTitle{Title: "Amount"},
	})
}

// subCategoryChart builds the top-sellers bar chart. Bars are split into one
// trace per parent category so plotly colors them by category.
func subCategoryChart(totals []analytics.GroupTotal) (chart, error) {
	// Category order follows first appearance in the (descending) totals.
	var categories []string
	byCategory := make(map[string][]analytics.GroupTotal)
	for _, t := range totals {
		if _, seen := byCategory[t.Category]; !seen {
			categories = append(categories, t.Category)
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}

	traces := make([]trace, 0, len(categories))
	for _, cat := range categories {
		group := byCategory[cat]
		x := make([]string, 0, len(group))
		y := make([]float64, 0, len(group))
		for _, t := range group {
			x = append(x, t.Key)
			y = append(y, t.Sales.InexactFloat64())
		}
		traces = append(traces, trace{Type: "bar", Name: cat, X: x, Y: y})
	}

	return marshalChart("chart-subcategory", "Top Sub-Categories by Sales", traces, layout{
		Barmode: "group",
		XAxis:   axisTitle{Title: "Sub-Category"},
		YAxis:   axisTitle{Title: "Sales"},
	})
}

// regionChart builds the sales-by-region bar chart.
func regionChart(totals []analytics.GroupTotal) (chart, error) {
	x := make([]string, 0, len(totals))
	y := make([]float64, 0, len(totals))
	for _, t := range totals {
		x = append(x, t.Key)
		y = append(y, t.Sales.InexactFloat64())
	}

	traces := []trace{{Type: "bar", Name: "Sales", X: x, Y: y}}

	return marshalChart("chart-region", "Sales by Region", traces, layout{
		XAxis: axisTitle{Title: "Region"},
		YAxis: axisTitle{Title: "Sales"},
	})
}

// marshalChart serializes traces and layout for embedding.
// json.Marshal escapes <, > and & inside strings, so the payload is safe
// to inline in a <script> block.
func marshalChart(elementID, heading string, traces []trace, lay layout) (chart, error) {
	dataJSON, err := json.Marshal(traces)
	if err != nil {
		return chart{}, &RenderError{Chart: elementID, Err: err}
	}

	layoutJSON, err := json.Marshal(lay)
	if err != nil {
		return chart{}, &RenderError{Chart: elementID, Err: err}
	}

	return chart{
		ElementID:  elementID,
		Heading:    heading,
		DataJSON:   string(dataJSON),
		LayoutJSON: string(layoutJSON),
	}, nil
}
