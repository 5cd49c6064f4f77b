// =============================================================================
// Superstore Dashboard - HTML Renderer
// =============================================================================
//
// Assembles the single self-contained dashboard page: a KPI box with the
// scalar metrics, then one section per chart. Chart data is embedded as
// JSON and drawn by a CDN-loaded plotly script, so the file is viewable
// without any further processing.
//
// The page is built with a bytes.Buffer rather than html/template: the
// structure is fixed and the only dynamic parts are escaped strings and
// pre-serialized JSON.
//
// =============================================================================

package dashboard

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/superstore-dashboard/internal/analytics"
)

// plotlyCDN is the script that draws the embedded chart payloads.
const plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// =============================================================================
// RENDER OPTIONS
// =============================================================================

// Options control the rendered page.
type Options struct {
	// Title is the page and top-heading title.
	Title string

	// TopSubCategories caps the top-sellers bar chart.
	TopSubCategories int

	// GeneratedBy is shown in the page footer (tool name and version).
	GeneratedBy string
}

// DefaultOptions returns the standard dashboard options.
func DefaultOptions() Options {
	return Options{
		Title:            "Superstore Sales Dashboard",
		TopSubCategories: 20,
	}
}

// =============================================================================
// RENDERING
// =============================================================================

// Render builds the complete dashboard page.
//
// PARAMETERS:
//   - summary: the KPI summary over all records.
//   - months: the chronological monthly aggregate.
//   - subCategories: the sub-category aggregate, ordered descending.
//   - regions: the region aggregate, ordered descending.
//
// An empty dataset renders an empty-state page rather than failing; the
// all-or-nothing policy applies to parse errors, not to a legitimately
// empty collection.
func Render(summary analytics.Summary, months []analytics.MonthTotal, subCategories, regions []analytics.GroupTotal, opts Options) ([]byte, error) {
	if opts.Title == "" {
		opts.Title = DefaultOptions().Title
	}
	if opts.TopSubCategories > 0 {
		subCategories = analytics.TopN(subCategories, opts.TopSubCategories)
	}

	var buf bytes.Buffer

	writeHead(&buf, opts.Title)
	writeKPIBox(&buf, summary)

	if summary.RecordCount == 0 {
		buf.WriteString("<p class='empty'>No sales records in the dataset. Nothing to chart.</p>\n")
		writeFoot(&buf, opts)
		return buf.Bytes(), nil
	}

	charts := make([]chart, 0, 3)

	monthly, err := monthlyChart(months)
	if err != nil {
		return nil, err
	}
	charts = append(charts, monthly)

	subCat, err := subCategoryChart(subCategories)
	if err != nil {
		return nil, err
	}
	charts = append(charts, subCat)

	region, err := regionChart(regions)
	if err != nil {
		return nil, err
	}
	charts = append(charts, region)

	for _, c := range charts {
		writeChartSection(&buf, c)
	}

	writeFoot(&buf, opts)
	return buf.Bytes(), nil
}

// writeHead emits the document head, styles and the plotly script tag.
func writeHead(buf *bytes.Buffer, title string) {
	esc := html.EscapeString(title)

	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("<meta charset=\"UTF-8\">\n")
	fmt.Fprintf(buf, "<title>%s</title>\n", esc)
	fmt.Fprintf(buf, "<script src=%q></script>\n", plotlyCDN)
	buf.WriteString("<style>\n")
	buf.WriteString("body { font-family: Arial, sans-serif; margin: 20px; color: #2c3e50; }\n")
	buf.WriteString("h1 { color: #2c3e50; }\n")
	buf.WriteString("h2 { color: #3498db; margin-top: 30px; }\n")
	buf.WriteString(".kpi-box { background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 10px 0; }\n")
	buf.WriteString(".kpi-box p { margin: 4px 0; }\n")
	buf.WriteString(".chart { width: 100%; height: 500px; }\n")
	buf.WriteString(".empty { color: #7f8c8d; font-style: italic; }\n")
	buf.WriteString("footer { margin-top: 40px; color: #95a5a6; font-size: 0.8em; }\n")
	buf.WriteString("</style>\n</head>\n<body>\n")
	fmt.Fprintf(buf, "<h1>%s</h1>\n", esc)
}

// writeKPIBox emits the scalar metrics section.
func writeKPIBox(buf *bytes.Buffer, summary analytics.Summary) {
	buf.WriteString("<div class=\"kpi-box\">\n<h2>Key Metrics</h2>\n")
	fmt.Fprintf(buf, "<p><strong>Total Sales:</strong> %s</p>\n", FormatMoney(summary.TotalSales))
	fmt.Fprintf(buf, "<p><strong>Total Profit:</strong> %s</p>\n", FormatMoney(summary.TotalProfit))

	if margin, ok := summary.ProfitMargin(); ok {
		fmt.Fprintf(buf, "<p><strong>Profit Margin:</strong> %s%%</p>\n", margin.Mul(decimal.NewFromInt(100)).StringFixed(2))
	} else {
		buf.WriteString("<p><strong>Profit Margin:</strong> n/a</p>\n")
	}

	fmt.Fprintf(buf, "<p><strong>Records:</strong> %d</p>\n", summary.RecordCount)
	buf.WriteString("</div>\n")
}

// writeChartSection emits one chart heading, placeholder div and the
// plotly call with the embedded JSON payload.
func writeChartSection(buf *bytes.Buffer, c chart) {
	fmt.Fprintf(buf, "<h2>%s</h2>\n", html.EscapeString(c.Heading))
	fmt.Fprintf(buf, "<div id=%q class=\"chart\"></div>\n", c.ElementID)
	fmt.Fprintf(buf, "<script>Plotly.newPlot(%q, %s, %s, {responsive: true});</script>\n",
		c.ElementID, c.DataJSON, c.LayoutJSON)
}

// writeFoot closes the document.
func writeFoot(buf *bytes.Buffer, opts Options) {
	if opts.GeneratedBy != "" {
		fmt.Fprintf(buf, "<footer>Generated by %s</footer>\n", html.EscapeString(opts.GeneratedBy))
	}
	buf.WriteString("</body>\n</html>\n")
}

// =============================================================================
// MONEY FORMATTING
// =============================================================================

// FormatMoney renders a decimal amount as "$1,234,567.89" with a leading
// minus for negative values.
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")

	// Insert thousands separators into the whole part.
	var groups []string
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)

	out := "$" + strings.Join(groups, ",") + "." + frac
	if negative {
		out = "-" + out
	}
	return out
}

// =============================================================================
// WRITING
// =============================================================================

// WriteError reports a dashboard that could not be written to disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Write stores the rendered page at path. The content is written to a
// temporary file in the same directory and renamed into place, so a failed
// run never leaves a truncated dashboard behind.
func Write(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".dashboard-*.html")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
