// =============================================================================
// Superstore Dashboard - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks the configuration
// and the dataset without writing any output. It runs the same load and
// clean stages as 'build' and reports what it found.
//
// COMMAND USAGE:
//   dashboard validate [flags]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/superstore-dashboard/internal/dataset"
	"github.com/ginjaninja78/superstore-dashboard/internal/pipeline"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and dataset without building",
	Long: `The validate command loads the configuration and the dataset, checks that
every required column is present, and runs the cleaning pass. Nothing is
written. Use it to verify a new dataset or configuration before a build.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(
		&inputPath,
		"input",
		"",
		"Path to the dataset file (overrides the configuration)",
	)
}

// runValidate loads and cleans the dataset, reporting counts on success.
func runValidate(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if inputPath != "" {
		cfg.Dataset.Path = inputPath
	}

	table, err := dataset.Load(cfg.Dataset, cfg.RequiredColumns())
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	cleaner := pipeline.NewCleaner(cfg.Columns, cfg.Cleaning)
	_, stats, err := cleaner.Clean(table)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	fmt.Println("=== Validation OK ===")
	fmt.Printf("Dataset:       %s\n", cfg.Dataset.Path)
	fmt.Printf("Columns:       %d\n", table.ColumnCount)
	fmt.Printf("Rows read:     %d\n", stats.RowsIn)
	fmt.Printf("Rows cleaned:  %d\n", stats.RowsCleaned)
	fmt.Printf("Rows skipped:  %d\n", stats.RowsSkipped)

	return nil
}
