package sorter

import "strings"

// SplitFields splits a line into columns.
//
// With an empty separator the line is split on runs of whitespace and
// leading or trailing whitespace produces no empty fields. With a separator
// the split is exact, so adjacent separators yield empty fields.
func SplitFields(line, separator string) []string {
	if separator == "" {
		return strings.Fields(line)
	}
	return strings.Split(line, separator)
}

// Field returns the 1-based column index of fields, or "" if the line has
// no such column.
func Field(fields []string, index int) string {
	if index < 1 || index > len(fields) {
		return ""
	}
	return fields[index-1]
}
