// =============================================================================
// gosort - Line Source
// =============================================================================
//
// This module loads the whole input file into memory as an ordered sequence
// of lines. It handles:
//   - Plain text files (LF or CRLF line endings)
//   - Gzip-compressed text files (*.gz)
//   - Spreadsheets (*.xlsx), one line per row of the first sheet
//
// Line terminators are removed. A final line without a terminator is kept;
// the empty string after a final terminator is not a line.
//
// =============================================================================

package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/gosort/internal/types"
	"github.com/klauspost/compress/gzip"
)

// =============================================================================
// OPTIONS
// =============================================================================

// DefaultMaxLineBytes is the longest line accepted when Options leaves it unset.
const DefaultMaxLineBytes = 1024 * 1024

// Options controls how input is read.
type Options struct {
	// MaxLineBytes is the longest line accepted. Longer lines fail the read.
	// Default: DefaultMaxLineBytes
	MaxLineBytes int

	// CellSeparator joins the cells of a spreadsheet row into one line.
	// Default: "\t"
	CellSeparator string
}

func (o Options) withDefaults() Options {
	if o.MaxLineBytes <= 0 {
		o.MaxLineBytes = DefaultMaxLineBytes
	}
	if o.CellSeparator == "" {
		o.CellSeparator = "\t"
	}
	return o
}

// =============================================================================
// READ FUNCTIONS
// =============================================================================

// ReadAll reads every line of the file at path.
//
// The format is chosen by extension. A missing file yields an error for which
// errors.Is(err, os.ErrNotExist) holds.
func ReadAll(path string, opts Options) ([]types.Line, error) {
	opts = opts.withDefaults()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readSpreadsheet(path, opts)
	case ".gz":
		return readCompressed(path, opts)
	default:
		return readPlain(path, opts)
	}
}

func readPlain(path string, opts Options) ([]types.Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadLines(file, opts)
}

func readCompressed(path string, opts Options) ([]types.Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	zr, err := gzip.NewReader(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer zr.Close()

	return ReadLines(zr, opts)
}

// ReadLines splits r into lines.
func ReadLines(r io.Reader, opts Options) ([]types.Line, error) {
	opts = opts.withDefaults()

	scanner := bufio.NewScanner(r)
	initial := min(64*1024, opts.MaxLineBytes)
	scanner.Buffer(make([]byte, initial), opts.MaxLineBytes)

	var lines []types.Line
	for scanner.Scan() {
		lines = append(lines, types.Line{Ordinal: len(lines), Content: scanner.Text()})
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d is longer than %d bytes: %w", len(lines)+1, opts.MaxLineBytes, err)
		}
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}

	return lines, nil
}
