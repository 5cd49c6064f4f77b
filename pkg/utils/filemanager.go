// =============================================================================
// Superstore Dashboard - File Manager Utilities
// =============================================================================
//
// Shared file-handling utilities for the build pipeline:
//   - Ensuring output/archive directories exist
//   - Backing up a previous dashboard before it is replaced
//   - Writing the plain-text run summary
//
// Archive names carry a timestamp plus a short UUID so repeated builds in
// the same second never collide.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORIES
// =============================================================================

// EnsureDirectories creates every given directory (and parents) if missing.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// =============================================================================
// BACKUP
// =============================================================================

// BackupFile moves an existing file into archiveDir under an archive name.
// Returns the archive path, or "" when there was nothing to back up.
func BackupFile(path, archiveDir string) (string, error) {
	if !FileExists(path) {
		return "", nil
	}

	if err := EnsureDirectories(archiveDir); err != nil {
		return "", err
	}

	archivePath := filepath.Join(archiveDir, ArchiveName(filepath.Base(path)))

	// Rename first; fall back to copy+remove for cross-device moves.
	if err := os.Rename(path, archivePath); err != nil {
		if err := copyFile(path, archivePath); err != nil {
			return "", fmt.Errorf("failed to back up %s: %w", path, err)
		}
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("failed to remove %s after backup: %w", path, err)
		}
	}

	return archivePath, nil
}

// ArchiveName derives the archive file name for a base name:
// "dashboard.html" -> "dashboard_20240131_154500_1a2b3c4d.html".
func ArchiveName(baseName string) string {
	ext := filepath.Ext(baseName)
	stem := strings.TrimSuffix(baseName, ext)

	timestamp := time.Now().Format("20060102_150405")
	shortID := uuid.New().String()[:8]

	return fmt.Sprintf("%s_%s_%s%s", stem, timestamp, shortID, ext)
}

// copyFile copies src to dst, creating or truncating dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// RunSummary describes one completed build for the summary log.
type RunSummary struct {
	// StartedAt is when the build began.
	StartedAt time.Time

	// DatasetPath is the input file that was processed.
	DatasetPath string

	// RowsRead, RowsCleaned and RowsSkipped describe the cleaning pass.
	RowsRead    int
	RowsCleaned int
	RowsSkipped int

	// TotalSales and TotalProfit are the formatted KPI values.
	TotalSales  string
	TotalProfit string

	// OutputPath is where the dashboard was written.
	OutputPath string

	// Elapsed is the total build duration.
	Elapsed time.Duration
}

// WriteRunSummary writes the summary next to the dashboard file as
// "<dashboard stem>_summary.txt" and returns its path.
func WriteRunSummary(summary RunSummary) (string, error) {
	ext := filepath.Ext(summary.OutputPath)
	path := strings.TrimSuffix(summary.OutputPath, ext) + "_summary.txt"

	var sb strings.Builder
	sb.WriteString("=== Dashboard Build Summary ===\n")
	fmt.Fprintf(&sb, "Started:        %s\n", summary.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Dataset:        %s\n", summary.DatasetPath)
	fmt.Fprintf(&sb, "Rows read:      %d\n", summary.RowsRead)
	fmt.Fprintf(&sb, "Rows cleaned:   %d\n", summary.RowsCleaned)
	fmt.Fprintf(&sb, "Rows skipped:   %d\n", summary.RowsSkipped)
	fmt.Fprintf(&sb, "Total sales:    %s\n", summary.TotalSales)
	fmt.Fprintf(&sb, "Total profit:   %s\n", summary.TotalProfit)
	fmt.Fprintf(&sb, "Output:         %s\n", summary.OutputPath)
	fmt.Fprintf(&sb, "Elapsed:        %s\n", summary.Elapsed)

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write run summary: %w", err)
	}
	return path, nil
}
