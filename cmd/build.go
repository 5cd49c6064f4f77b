// =============================================================================
// Superstore Dashboard - Build Command
// =============================================================================
//
// This file defines the 'build' command, which runs the full dashboard
// pipeline for one dataset.
//
// COMMAND USAGE:
//   dashboard build [flags]
//
// FLAGS:
//   --input       : Override the dataset path from the configuration
//   --output      : Override the dashboard output path
//   --dry-run     : Run the whole pipeline but skip writing any files
//
// PIPELINE:
//   1. Load configuration
//   2. Load the dataset (CSV or Excel) and check required columns
//   3. Clean rows into typed sales records
//   4. Compute the KPI summary and the three grouped aggregates
//   5. Render the HTML dashboard
//   6. Back up a previous dashboard, write the new one, write the summary
//
// Every stage failure aborts the run with the stage named in the error.
// There is no partial output.
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/superstore-dashboard/internal/analytics"
	"github.com/ginjaninja78/superstore-dashboard/internal/dashboard"
	"github.com/ginjaninja78/superstore-dashboard/internal/dataset"
	"github.com/ginjaninja78/superstore-dashboard/internal/pipeline"
	"github.com/ginjaninja78/superstore-dashboard/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputPath overrides the configured dataset path.
var inputPath string

// outputPath overrides the configured dashboard path.
var outputPath string

// dryRun runs the pipeline without writing output files.
var dryRun bool

// =============================================================================
// BUILD COMMAND DEFINITION
// =============================================================================

// buildCmd represents the 'build' command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the HTML dashboard from the sales dataset",
	Long: `The build command loads the configured sales dataset, cleans and derives
columns, computes aggregate metrics (total sales, total profit, profit
margin) and group-by summaries (by month, by sub-category, by region), and
writes one self-contained HTML dashboard.

On success:
  - The dashboard HTML is written to the configured output path
  - A previous dashboard is moved into the archive directory first
  - A plain-text run summary is written next to the dashboard

On error:
  - The run aborts with the failing stage named in the error
  - The previous dashboard, if any, is left untouched`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd)
	},
}

// init registers the build command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(
		&inputPath,
		"input",
		"",
		"Path to the dataset file (overrides the configuration)",
	)

	buildCmd.Flags().StringVar(
		&outputPath,
		"output",
		"",
		"Path for the dashboard HTML file (overrides the configuration)",
	)

	buildCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the pipeline without writing output files",
	)
}

// =============================================================================
// MAIN BUILD FUNCTION
// =============================================================================

// runBuild orchestrates the dashboard pipeline.
func runBuild(cmd *cobra.Command) error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if inputPath != "" {
		cfg.Dataset.Path = inputPath
	}
	if outputPath != "" {
		cfg.Output.Path = outputPath
	}

	logrus.Infof("Building dashboard from %s", cfg.Dataset.Path)

	// =========================================================================
	// STEP 2: LOAD DATASET
	// =========================================================================

	table, err := dataset.Load(cfg.Dataset, cfg.RequiredColumns())
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	logrus.Infof("Loaded %d rows, %d columns", table.RowCount, table.ColumnCount)

	// =========================================================================
	// STEP 3: CLEAN
	// =========================================================================
	// Parse dates, coerce amounts, derive order year/month. In strict mode
	// (the default) the first bad cell aborts the whole run.

	cleaner := pipeline.NewCleaner(cfg.Columns, cfg.Cleaning)
	records, stats, err := cleaner.Clean(table)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	if stats.RowsSkipped > 0 {
		logrus.Warnf("Skipped %d malformed row(s) in lenient mode", stats.RowsSkipped)
	}
	logrus.Infof("Cleaned %d records", stats.RowsCleaned)

	// =========================================================================
	// STEP 4: AGGREGATE
	// =========================================================================

	summary := analytics.Summarize(records)
	byMonth := analytics.SalesByMonth(records)
	bySubCategory := analytics.SalesBySubCategory(records)
	byRegion := analytics.SalesByRegion(records)

	logrus.Infof("Totals: sales %s, profit %s",
		dashboard.FormatMoney(summary.TotalSales),
		dashboard.FormatMoney(summary.TotalProfit))
	logrus.Debugf("Aggregates: %d months, %d sub-categories, %d regions",
		len(byMonth), len(bySubCategory), len(byRegion))

	// =========================================================================
	// STEP 5: RENDER
	// =========================================================================

	page, err := dashboard.Render(summary, byMonth, bySubCategory, byRegion, dashboard.Options{
		Title:            cfg.Output.Title,
		TopSubCategories: cfg.Output.TopSubCategories,
		GeneratedBy:      fmt.Sprintf("superstore-dashboard %s", Version),
	})
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if dryRun {
		logrus.Infof("Dry run: skipping write of %d bytes to %s", len(page), cfg.Output.Path)
		return nil
	}

	// =========================================================================
	// STEP 6: WRITE OUTPUT
	// =========================================================================
	// Back up the previous dashboard first so the output path only ever
	// holds a complete artifact.

	if *cfg.Output.BackupPrevious {
		archived, err := utils.BackupFile(cfg.Output.Path, cfg.Output.ArchiveDir)
		if err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
		if archived != "" {
			logrus.Infof("Archived previous dashboard to %s", archived)
		}
	}

	if err := dashboard.Write(cfg.Output.Path, page); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	elapsed := time.Since(startTime)
	logrus.Infof("Dashboard written to %s in %s", cfg.Output.Path, elapsed)

	if *cfg.Output.SummaryLog {
		summaryPath, err := utils.WriteRunSummary(utils.RunSummary{
			StartedAt:   startTime,
			DatasetPath: cfg.Dataset.Path,
			RowsRead:    stats.RowsIn,
			RowsCleaned: stats.RowsCleaned,
			RowsSkipped: stats.RowsSkipped,
			TotalSales:  dashboard.FormatMoney(summary.TotalSales),
			TotalProfit: dashboard.FormatMoney(summary.TotalProfit),
			OutputPath:  cfg.Output.Path,
			Elapsed:     elapsed,
		})
		if err != nil {
			// The dashboard itself is already in place; a failed summary
			// log is not worth failing the run over.
			logrus.Warnf("Failed to write run summary: %v", err)
		} else {
			logrus.Debugf("Run summary written to %s", summaryPath)
		}
	}

	return nil
}
