// =============================================================================
// gosort - Output Sink
// =============================================================================
//
// This module persists the final ordered sequence. Output is written to a
// temporary file next to the destination and renamed into place once every
// line has been flushed, so the destination is either left untouched or
// replaced with the complete result.
//
// Destinations ending in .gz are gzip-compressed.
//
// =============================================================================

package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/gosort/pkg/utils"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
)

// WriteAll writes lines to path, one per line, each terminated by "\n".
func WriteAll(path string, lines []string) (err error) {
	dir := filepath.Dir(path)
	if err := utils.EnsureDir(dir); err != nil {
		return err
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	// Remove the temporary file on any failure below.
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	var w io.Writer = file
	var zw *gzip.Writer
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		zw = gzip.NewWriter(file)
		w = zw
	}

	if err = writeLines(w, lines); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			return fmt.Errorf("failed to finish gzip stream: %w", err)
		}
	}
	if err = file.Sync(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
