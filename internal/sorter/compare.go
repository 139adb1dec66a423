package sorter

import (
	"cmp"
	"strings"
)

// Ordering is the result of comparing two keys.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare orders two keys of the same mode.
//
// Text and column sub-keys use byte order. Numeric, suffix and month keys use
// numeric order. Columns are compared left to right and the first mismatch
// decides; rows whose selected columns are all equal compare Equal no matter
// what the rest of the line holds.
//
// Compare knows nothing about reversing or deduplication.
func Compare(a, b Key) Ordering {
	if a.Kind != b.Kind {
		// Never happens within one run; keeps the ordering total anyway.
		return Ordering(cmp.Compare(a.Kind, b.Kind))
	}

	switch a.Kind {
	case ModeNumeric, ModeNumericSuffix, ModeMonth:
		return Ordering(cmp.Compare(a.Number, b.Number))
	case ModeColumns:
		return compareColumns(a.Columns, b.Columns)
	default:
		return Ordering(strings.Compare(a.Text, b.Text))
	}
}

func compareColumns(a, b []string) Ordering {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return Ordering(c)
		}
	}
	return Ordering(cmp.Compare(len(a), len(b)))
}
