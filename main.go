// =============================================================================
// Superstore Dashboard - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Superstore Dashboard CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   dashboard build          - Build the HTML dashboard from the sales dataset
//   dashboard validate       - Validate configuration and dataset without writing output
//   dashboard version        - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/superstore-dashboard/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
