// =============================================================================
// gosort - Shared Types
// =============================================================================
//
// This package contains the types shared by the line source, the sort engine
// and the sink, so none of them has to import another:
//   - source
//   - sorter
//   - pipeline
//
// =============================================================================

package types

// =============================================================================
// LINE
// =============================================================================

// Line is one input record.
type Line struct {
	// Ordinal is the 0-based position of the line in the input.
	Ordinal int

	// Content is the text of the line without its line terminator.
	Content string
}

// NewLines numbers contents in input order.
func NewLines(contents []string) []Line {
	lines := make([]Line, len(contents))
	for i, content := range contents {
		lines[i] = Line{Ordinal: i, Content: content}
	}
	return lines
}

// Contents returns the text of each line, in order.
func Contents(lines []Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Content
	}
	return out
}
