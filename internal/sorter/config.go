// =============================================================================
// gosort - Sort Configuration
// =============================================================================
//
// This file defines the immutable configuration consumed by the sort engine:
//   - ModeKind / Mode : the tagged variant selecting how a line becomes a key
//   - FieldSpec       : the 1-based column list used by Columns mode
//   - Config          : mode plus the orchestration switches
//   - ConfigError     : the error returned for any invalid option
//
// A Config is built once by the caller (the CLI layer) and is never mutated
// afterwards. Every behavior of the engine is a function of (Config, lines).
//
// =============================================================================

package sorter

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// SORT MODES
// =============================================================================

// ModeKind identifies which key extractor is active for a run.
type ModeKind int

const (
	// ModeText compares whole lines by byte order.
	ModeText ModeKind = iota

	// ModeNumeric parses each line as a floating-point number.
	ModeNumeric

	// ModeNumericSuffix parses a number with an optional k/m/b/t multiplier.
	ModeNumericSuffix

	// ModeMonth maps a three-letter month abbreviation to its ordinal.
	ModeMonth

	// ModeColumns compares the selected columns left to right.
	ModeColumns
)

// String returns the flag-style name of the mode.
func (k ModeKind) String() string {
	switch k {
	case ModeText:
		return "text"
	case ModeNumeric:
		return "numeric"
	case ModeNumericSuffix:
		return "numeric-suffix"
	case ModeMonth:
		return "month"
	case ModeColumns:
		return "columns"
	default:
		return fmt.Sprintf("mode(%d)", int(k))
	}
}

// Mode is the active sort mode. Columns is only meaningful for ModeColumns.
type Mode struct {
	Kind    ModeKind
	Columns FieldSpec
}

// TextMode returns the default lexicographic mode.
func TextMode() Mode { return Mode{Kind: ModeText} }

// NumericMode returns the plain numeric mode.
func NumericMode() Mode { return Mode{Kind: ModeNumeric} }

// NumericSuffixMode returns the suffix-aware numeric mode.
func NumericSuffixMode() Mode { return Mode{Kind: ModeNumericSuffix} }

// MonthMode returns the month-name mode.
func MonthMode() Mode { return Mode{Kind: ModeMonth} }

// ColumnsMode returns a columns mode over a private copy of spec.
func ColumnsMode(spec FieldSpec) Mode {
	cols := make(FieldSpec, len(spec))
	copy(cols, spec)
	return Mode{Kind: ModeColumns, Columns: cols}
}

// =============================================================================
// FIELD SPEC
// =============================================================================

// FieldSpec is an ordered list of 1-based column indices. Duplicates are
// allowed and the order defines tie-break precedence.
type FieldSpec []int

// ParseFieldSpec parses a comma-separated column list such as "2,1,3".
//
// Every entry must be a positive integer. Anything else is rejected here so
// that comparison itself can never fail.
func ParseFieldSpec(value string) (FieldSpec, error) {
	if strings.TrimSpace(value) == "" {
		return nil, &ConfigError{Option: "-k", Value: value, Reason: "column list is empty"}
	}

	parts := strings.Split(value, ",")
	spec := make(FieldSpec, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		index, err := strconv.Atoi(part)
		if err != nil {
			return nil, &ConfigError{Option: "-k", Value: value, Reason: fmt.Sprintf("column %q is not an integer", part)}
		}
		if index < 1 {
			return nil, &ConfigError{Option: "-k", Value: value, Reason: fmt.Sprintf("column %d is out of range, columns start at 1", index)}
		}
		spec = append(spec, index)
	}

	return spec, nil
}

// String renders the spec in the same form ParseFieldSpec accepts.
func (f FieldSpec) String() string {
	parts := make([]string, len(f))
	for i, index := range f {
		parts[i] = strconv.Itoa(index)
	}
	return strings.Join(parts, ",")
}

// =============================================================================
// CONFIG
// =============================================================================

// Config holds everything the engine needs for one invocation.
type Config struct {
	// Mode selects the key extractor.
	Mode Mode

	// Reverse reverses the whole sorted sequence as a separate step.
	Reverse bool

	// Unique removes adjacent duplicate lines after sorting (and reversing).
	Unique bool

	// TrimTrailing strips trailing whitespace from every line before keying.
	// The trimmed content is what gets written out.
	TrimTrailing bool

	// CheckOnly reports whether the input is already sorted. A sorted input
	// ends the run without output; an unsorted one is sorted as usual.
	CheckOnly bool

	// Separator splits columns on an exact string. Empty means runs of
	// whitespace.
	Separator string
}

// Validate checks the invariants a Config must hold before it is used.
func (c Config) Validate() error {
	switch c.Mode.Kind {
	case ModeText, ModeNumeric, ModeNumericSuffix, ModeMonth:
		if len(c.Mode.Columns) > 0 {
			return &ConfigError{Option: "-k", Value: c.Mode.Columns.String(), Reason: fmt.Sprintf("columns cannot be combined with %s mode", c.Mode.Kind)}
		}
	case ModeColumns:
		if len(c.Mode.Columns) == 0 {
			return &ConfigError{Option: "-k", Reason: "columns mode requires at least one column"}
		}
		for _, index := range c.Mode.Columns {
			if index < 1 {
				return &ConfigError{Option: "-k", Value: c.Mode.Columns.String(), Reason: fmt.Sprintf("column %d is out of range, columns start at 1", index)}
			}
		}
	default:
		return &ConfigError{Reason: fmt.Sprintf("unknown sort mode %d", int(c.Mode.Kind))}
	}
	return nil
}

// =============================================================================
// ERRORS
// =============================================================================

// ConfigError reports an invalid option. It is always raised before any
// input is read.
type ConfigError struct {
	// Option is the flag the problem relates to, if any.
	Option string

	// Value is the offending value, if any.
	Value string

	// Reason is a human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	switch {
	case e.Option != "" && e.Value != "":
		return fmt.Sprintf("invalid %s %q: %s", e.Option, e.Value, e.Reason)
	case e.Option != "":
		return fmt.Sprintf("invalid %s: %s", e.Option, e.Reason)
	default:
		return "invalid configuration: " + e.Reason
	}
}
