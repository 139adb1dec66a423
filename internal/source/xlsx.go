package source

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/gosort/internal/types"
	"github.com/xuri/excelize/v2"
)

// readSpreadsheet turns each row of the first sheet into one line, joining
// the cells with opts.CellSeparator. Blank rows become empty lines so row
// positions are preserved.
func readSpreadsheet(path string, opts Options) ([]types.Line, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	lines := make([]types.Line, 0, len(rows))
	for i, row := range rows {
		content := strings.Join(row, opts.CellSeparator)
		if len(content) > opts.MaxLineBytes {
			return nil, fmt.Errorf("row %d is longer than %d bytes", i+1, opts.MaxLineBytes)
		}
		lines = append(lines, types.Line{Ordinal: i, Content: content})
	}

	return lines, nil
}
