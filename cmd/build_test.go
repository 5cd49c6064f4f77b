package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCSV = `Order Date,Ship Date,Sales,Profit,Category,Sub-Category,Region
2023-05-10,2023-05-12,100,20,Furniture,Chairs,West
2023-05-20,2023-05-23,50,10,Furniture,Tables,East
2023-06-01,2023-06-03,75,-5,Technology,Phones,West
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs the root command with args, resetting flag state afterwards.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		inputPath = ""
		outputPath = ""
		dryRun = false
	})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestValidateCommand(t *testing.T) {
	fixture := writeFixture(t, fixtureCSV)

	err := execute(t, "validate", "--input", fixture)
	assert.NoError(t, err)
}

func TestValidateCommandBadDataset(t *testing.T) {
	fixture := writeFixture(t, "Sales,Profit\n100,20\n")

	err := execute(t, "validate", "--input", fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load failed")
	assert.Contains(t, err.Error(), "missing required column(s)")
}

func TestBuildCommand(t *testing.T) {
	fixture := writeFixture(t, fixtureCSV)
	output := filepath.Join(t.TempDir(), "dashboard.html")

	err := execute(t, "build", "--input", fixture, "--output", output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "chart-monthly")

	// The run summary lands next to the dashboard.
	summary, err := os.ReadFile(filepath.Join(filepath.Dir(output), "dashboard_summary.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Rows cleaned:   3")
}

func TestBuildCommandDryRun(t *testing.T) {
	fixture := writeFixture(t, fixtureCSV)
	output := filepath.Join(t.TempDir(), "dashboard.html")

	err := execute(t, "build", "--input", fixture, "--output", output, "--dry-run")
	require.NoError(t, err)

	assert.NoFileExists(t, output)
}

func TestBuildCommandMalformedDateFailsWithNoOutput(t *testing.T) {
	fixture := writeFixture(t, "Order Date,Ship Date,Sales,Profit,Category,Sub-Category,Region\n"+
		"not-a-date,2023-05-12,100,20,Furniture,Chairs,West\n")
	output := filepath.Join(t.TempDir(), "dashboard.html")

	err := execute(t, "build", "--input", fixture, "--output", output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clean failed")
	assert.Contains(t, err.Error(), "not-a-date")

	assert.NoFileExists(t, output, "no partial output on failure")
}
