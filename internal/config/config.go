// =============================================================================
// Superstore Dashboard - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. A single YAML file describes where the sales dataset lives,
// which columns the pipeline depends on, how cells are coerced during
// cleaning, and where the rendered dashboard is written.
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Self-contained: one file drives the whole run, no flags required
//   - Defaulted: every option has a sensible default for the Superstore dataset
//   - Validated: the configuration is validated on load, before any I/O
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full application configuration.
// This is loaded from the main config.yaml file.
type Config struct {
	// Dataset describes the input file and how to read it.
	Dataset DatasetConfig `yaml:"dataset"`

	// Columns names the required dataset columns after header normalization.
	Columns ColumnConfig `yaml:"columns"`

	// Cleaning controls type coercion during the cleaning pass.
	Cleaning CleaningConfig `yaml:"cleaning"`

	// Output describes the rendered dashboard artifact.
	Output OutputConfig `yaml:"output"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// DatasetConfig describes the input sales dataset.
type DatasetConfig struct {
	// Path is the location of the dataset file. CSV is read with the
	// configured delimiter; .xlsx/.xlsm/.xls files are read via excelize.
	// Default: "./data/superstore.csv"
	Path string `yaml:"path"`

	// Delimiter is the field separator for delimited files.
	// Common values: "," (comma), "|" (pipe), "\t" (tab)
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// HeaderRow is the 1-based row holding the column headers.
	// Data is read from the row after it.
	// Default: 1
	HeaderRow int `yaml:"header_row"`
}

// ColumnConfig names the columns the pipeline depends on. Values are matched
// against normalized headers (trimmed, lowercased, spaces and hyphens
// replaced with underscores), so "Sub-Category" in the raw file matches the
// default "sub_category" here.
type ColumnConfig struct {
	// OrderDate is the order date column. Default: "order_date"
	OrderDate string `yaml:"order_date"`

	// ShipDate is the ship date column. Default: "ship_date"
	ShipDate string `yaml:"ship_date"`

	// Sales is the sales amount column. Default: "sales"
	Sales string `yaml:"sales"`

	// Profit is the profit amount column. Default: "profit"
	Profit string `yaml:"profit"`

	// Category is the product category column. Default: "category"
	Category string `yaml:"category"`

	// SubCategory is the product sub-category column. Default: "sub_category"
	SubCategory string `yaml:"sub_category"`

	// Region is the sales region column. Default: "region"
	Region string `yaml:"region"`
}

// CleaningConfig controls the cleaning pass.
type CleaningConfig struct {
	// DateFormats is an ordered list of Go reference layouts tried in turn
	// when parsing date cells. The first layout that parses wins.
	DateFormats []string `yaml:"date_formats"`

	// Lenient switches the malformed-row policy. When false (the default),
	// the first unparseable cell aborts the whole run and no dashboard is
	// written. When true, bad rows are skipped with a logged warning and
	// counted in the run summary.
	Lenient bool `yaml:"lenient"`
}

// OutputConfig describes the rendered dashboard artifact.
type OutputConfig struct {
	// Path is where the dashboard HTML file is written.
	// Default: "./output/dashboard.html"
	Path string `yaml:"path"`

	// ArchiveDir is where a previous dashboard is moved before being
	// replaced, when BackupPrevious is enabled.
	// Default: "./output/archive"
	ArchiveDir string `yaml:"archive_dir"`

	// Title is the dashboard page title.
	// Default: "Superstore Sales Dashboard"
	Title string `yaml:"title"`

	// TopSubCategories is how many sub-categories the "top sellers" chart
	// keeps, ordered by summed sales descending.
	// Default: 20
	TopSubCategories int `yaml:"top_sub_categories"`

	// BackupPrevious moves an existing dashboard file into ArchiveDir
	// before the new one is written.
	// Default: true
	BackupPrevious *bool `yaml:"backup_previous"`

	// SummaryLog writes a plain-text run summary next to the dashboard
	// after a successful build.
	// Default: true
	SummaryLog *bool `yaml:"summary_log"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// DefaultDateFormats are the layouts tried when cleaning date cells, in
// order. They cover the formats the Superstore exports have shipped with.
var DefaultDateFormats = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"2006-01-02 15:04:05",
	"2-Jan-2006",
}

// Load reads the configuration from a YAML file, applies defaults and
// validates the result. A missing file is an error: the caller decides
// whether to fall back to Default().
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with every option set to its default.
// Used when no config file is present on disk.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "./data/superstore.csv"
	}
	if cfg.Dataset.Delimiter == "" {
		cfg.Dataset.Delimiter = ","
	}
	if cfg.Dataset.HeaderRow == 0 {
		cfg.Dataset.HeaderRow = 1
	}

	if cfg.Columns.OrderDate == "" {
		cfg.Columns.OrderDate = "order_date"
	}
	if cfg.Columns.ShipDate == "" {
		cfg.Columns.ShipDate = "ship_date"
	}
	if cfg.Columns.Sales == "" {
		cfg.Columns.Sales = "sales"
	}
	if cfg.Columns.Profit == "" {
		cfg.Columns.Profit = "profit"
	}
	if cfg.Columns.Category == "" {
		cfg.Columns.Category = "category"
	}
	if cfg.Columns.SubCategory == "" {
		cfg.Columns.SubCategory = "sub_category"
	}
	if cfg.Columns.Region == "" {
		cfg.Columns.Region = "region"
	}

	if len(cfg.Cleaning.DateFormats) == 0 {
		cfg.Cleaning.DateFormats = append([]string{}, DefaultDateFormats...)
	}

	if cfg.Output.Path == "" {
		cfg.Output.Path = "./output/dashboard.html"
	}
	if cfg.Output.ArchiveDir == "" {
		cfg.Output.ArchiveDir = "./output/archive"
	}
	if cfg.Output.Title == "" {
		cfg.Output.Title = "Superstore Sales Dashboard"
	}
	if cfg.Output.TopSubCategories == 0 {
		cfg.Output.TopSubCategories = 20
	}
	if cfg.Output.BackupPrevious == nil {
		t := true
		cfg.Output.BackupPrevious = &t
	}
	if cfg.Output.SummaryLog == nil {
		t := true
		cfg.Output.SummaryLog = &t
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks the configuration for values the pipeline cannot work with.
func validate(cfg *Config) error {
	if len(cfg.Dataset.Delimiter) != 1 {
		return fmt.Errorf("dataset delimiter must be a single character, got %q", cfg.Dataset.Delimiter)
	}
	if cfg.Dataset.HeaderRow < 1 {
		return fmt.Errorf("dataset header_row must be >= 1, got %d", cfg.Dataset.HeaderRow)
	}
	if cfg.Output.TopSubCategories < 1 {
		return fmt.Errorf("output top_sub_categories must be >= 1, got %d", cfg.Output.TopSubCategories)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	return nil
}

// RequiredColumns returns the normalized column names the cleaning pass
// depends on, in a stable order for error reporting.
func (c *Config) RequiredColumns() []string {
	return []string{
		c.Columns.OrderDate,
		c.Columns.ShipDate,
		c.Columns.Sales,
		c.Columns.Profit,
		c.Columns.Category,
		c.Columns.SubCategory,
		c.Columns.Region,
	}
}
