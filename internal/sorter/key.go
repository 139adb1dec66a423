// =============================================================================
// gosort - Key Extractor
// =============================================================================
//
// The extractor turns the content of a line into a typed sort key according
// to the active mode:
//
//   | Mode           | Key                                               |
//   |----------------|---------------------------------------------------|
//   | text           | the line itself                                   |
//   | numeric        | float64, 0 when the line is not a number          |
//   | numeric-suffix | float64 scaled by k/m/b/t, 0 prefix when invalid  |
//   | month          | 1..12 for jan..dec, 0 when not a month            |
//   | columns        | the selected fields in FieldSpec order            |
//
// Malformed input never fails: it resolves to the fallback value shown above
// and is ordered like any other key.
//
// =============================================================================

package sorter

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// =============================================================================
// LOOKUP TABLES
// =============================================================================

// suffixTable maps a lower-case magnitude suffix to its multiplier.
var suffixTable = map[byte]float64{
	'k': 1e3,
	'm': 1e6,
	'b': 1e9,
	't': 1e12,
}

// monthTable maps a lower-case month abbreviation to its ordinal.
var monthTable = map[string]int{
	"jan": 1,
	"feb": 2,
	"mar": 3,
	"apr": 4,
	"may": 5,
	"jun": 6,
	"jul": 7,
	"aug": 8,
	"sep": 9,
	"oct": 10,
	"nov": 11,
	"dec": 12,
}

// =============================================================================
// KEY
// =============================================================================

// Key is the comparable form of a line. Only the fields relevant to Kind are
// populated.
type Key struct {
	Kind    ModeKind
	Text    string
	Number  float64
	Columns []string
}

// =============================================================================
// EXTRACTOR
// =============================================================================

// Extractor derives keys for one Config.
type Extractor struct {
	mode      Mode
	separator string
}

// NewExtractor returns an extractor for cfg. cfg is assumed to be valid.
func NewExtractor(cfg Config) *Extractor {
	return &Extractor{mode: cfg.Mode, separator: cfg.Separator}
}

// Extract returns the key of content. It is deterministic and has no side
// effects.
func (e *Extractor) Extract(content string) Key {
	switch e.mode.Kind {
	case ModeNumeric:
		return Key{Kind: ModeNumeric, Number: ParseNumber(content)}
	case ModeNumericSuffix:
		return Key{Kind: ModeNumericSuffix, Number: ParseNumberWithSuffix(content)}
	case ModeMonth:
		return Key{Kind: ModeMonth, Number: float64(MonthOrdinal(content))}
	case ModeColumns:
		fields := SplitFields(content, e.separator)
		cols := make([]string, len(e.mode.Columns))
		for i, index := range e.mode.Columns {
			cols[i] = Field(fields, index)
		}
		return Key{Kind: ModeColumns, Columns: cols}
	default:
		return Key{Kind: ModeText, Text: content}
	}
}

// ParseNumber parses s as a decimal float64, ignoring surrounding whitespace.
// Text that does not parse, and NaN, map to 0. Values too large for a
// float64 become ±Inf.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if !isDecimal(s) {
		return 0
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	if math.IsNaN(value) {
		return 0
	}
	return value
}

// isDecimal rejects the Go literal forms ParseFloat accepts on top of plain
// decimal notation: digit separators and hexadecimal mantissas.
func isDecimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X')
}

// ParseNumberWithSuffix parses numbers such as "1k", "2.5M" or "3t".
//
// A trailing k, m, b or t (any case) is stripped and its multiplier applied.
// The remaining prefix falls back to 0 when it does not parse, so an invalid
// prefix always yields 0 regardless of the suffix.
func ParseNumberWithSuffix(s string) float64 {
	s = strings.TrimSpace(s)
	multiplier := 1.0

	if n := len(s); n > 0 {
		last := s[n-1]
		if 'A' <= last && last <= 'Z' {
			last += 'a' - 'A'
		}
		if m, ok := suffixTable[last]; ok {
			multiplier = m
			s = s[:n-1]
		}
	}

	return ParseNumber(s) * multiplier
}

// MonthOrdinal returns 1..12 for a line starting with jan..dec (any case,
// leading blanks skipped) and 0 otherwise.
func MonthOrdinal(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if len(s) < 3 {
		return 0
	}
	return monthTable[strings.ToLower(s[:3])]
}
