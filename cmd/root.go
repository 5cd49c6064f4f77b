// =============================================================================
// Superstore Dashboard - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (dashboard)
//   ├── buildCmd (dashboard build)
//   ├── validateCmd (dashboard validate)
//   └── versionCmd (dashboard version)
//
// The root command owns the global flags (--config, --verbose) and the
// logrus setup shared by every subcommand.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/superstore-dashboard/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose forces debug-level logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "dashboard",

	Short: "Superstore Dashboard - Build an interactive sales dashboard from a retail dataset",

	Long: `Superstore Dashboard is a CLI tool that loads a retail sales dataset
(CSV or Excel), cleans and derives columns, computes aggregate business
metrics, and renders a set of interactive charts into one static,
self-contained HTML dashboard.

The pipeline is a single linear pass: load -> clean -> aggregate -> render
-> write. Either the full dashboard is produced or nothing is.

Example Usage:
  dashboard build                       # Build using config.yaml defaults
  dashboard build --input sales.csv     # Build from a specific dataset
  dashboard validate                    # Check config and dataset, write nothing`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags shared by all subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig reads the configuration file and wires up logging. A missing
// config file is not an error unless the user pointed --config at it
// explicitly: the defaults describe the standard Superstore layout.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config

	if _, err := os.Stat(cfgFile); os.IsNotExist(err) && !cmd.Flags().Changed("config") {
		cfg = config.Default()
	} else {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	configureLogger(cfg.LogLevel)
	return cfg, nil
}

// configureLogger sets up the global logrus logger.
func configureLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	if verbose {
		logLevel = logrus.DebugLevel
	}
	logrus.SetLevel(logLevel)
}
