// =============================================================================
// gosort - File Manager Utility
// =============================================================================
//
// This module provides small file helpers shared by the CLI and the sink:
//   - Output path expansion (placeholders in the destination setting)
//   - Directory management
//
// OUTPUT PLACEHOLDERS:
//   {original}  - Input file name without its extension
//   {ext}       - Input file extension, including the dot
//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//   {date}      - Current date (YYYYMMDD)
//   {uuid}      - A random UUID
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// ExpandOutputPath replaces the placeholders in format using inputPath and
// the current time.
//
// EXAMPLE:
//
//	format:    "sorted/{original}_{date}{ext}"
//	inputPath: "data/names.txt"
//	output:    "sorted/names_20240115.txt"
func ExpandOutputPath(format, inputPath string, now time.Time) string {
	if !strings.Contains(format, "{") {
		return format
	}

	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)

	replacer := strings.NewReplacer(
		"{original}", strings.TrimSuffix(base, ext),
		"{ext}", ext,
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("20060102"),
		"{uuid}", uuid.NewString(),
	)
	return replacer.Replace(format)
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates dir and its parents if they don't exist.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
