// =============================================================================
// gosort - Sort Orchestrator
// =============================================================================
//
// The orchestrator drives one in-memory sort:
//
//   1. Loaded         : lines handed in; trailing whitespace trimmed if asked
//   2. Checked        : (check only) report whether the input is sorted; a
//                       sorted input stops here and nothing is emitted
//   3. Sorted         : stable ascending sort by the key comparator
//   4. Reversed       : (reverse only) the whole sequence is reversed
//   5. Deduplicated   : (unique only) adjacent equal lines are collapsed
//   6. Emitted        : the final sequence is returned to the caller
//
// Keys are extracted once per line. The whole run is synchronous and
// single-threaded.
//
// =============================================================================

package sorter

import (
	"slices"
	"strings"
	"unicode"

	"github.com/ginjaninja78/gosort/internal/types"
	"go.uber.org/zap"
)

// =============================================================================
// CHECK STATUS
// =============================================================================

// CheckStatus is the outcome of the optional sortedness check.
type CheckStatus int

const (
	// CheckSkipped means check mode was not requested.
	CheckSkipped CheckStatus = iota

	// CheckSorted means the input was already sorted; nothing is emitted.
	CheckSorted

	// CheckUnsorted means the input was not sorted and was sorted anyway.
	CheckUnsorted
)

// String returns the user-facing report for the status.
func (s CheckStatus) String() string {
	switch s {
	case CheckSorted:
		return "data is already sorted"
	case CheckUnsorted:
		return "data is not sorted"
	default:
		return "not checked"
	}
}

// =============================================================================
// OUTCOME
// =============================================================================

// Outcome is the result of Sorter.Sort.
type Outcome struct {
	// Lines is the final sequence. It is nil when Emit is false.
	Lines []types.Line

	// Emit is false only when check mode found the input already sorted.
	Emit bool

	// Check is the result of the sortedness check.
	Check CheckStatus

	// DuplicatesRemoved counts lines dropped by adjacent deduplication.
	DuplicatesRemoved int
}

// =============================================================================
// SORTER
// =============================================================================

// Sorter applies one Config to sequences of lines.
type Sorter struct {
	cfg       Config
	extractor *Extractor
	logger    *zap.Logger
}

// Option configures a Sorter.
type Option func(*Sorter)

// WithLogger sets the logger used for debug tracing of the pipeline stages.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Sorter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New validates cfg and returns a Sorter for it.
func New(cfg Config, opts ...Option) (*Sorter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Mode.Kind == ModeColumns {
		cfg.Mode = ColumnsMode(cfg.Mode.Columns)
	}

	s := &Sorter{
		cfg:       cfg,
		extractor: NewExtractor(cfg),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// keyedLine pairs a line with its key so keys are extracted only once.
type keyedLine struct {
	line types.Line
	key  Key
}

// Sort runs the full pipeline over lines. The input slice is not modified.
func (s *Sorter) Sort(lines []types.Line) Outcome {
	if s.cfg.TrimTrailing {
		lines = TrimTrailing(lines)
	}
	keyed := s.keyAll(lines)
	s.logger.Debug("Lines loaded",
		zap.Int("lines", len(keyed)),
		zap.Stringer("mode", s.cfg.Mode.Kind))

	outcome := Outcome{Emit: true, Check: CheckSkipped}

	if s.cfg.CheckOnly {
		if keyedSorted(keyed) {
			s.logger.Debug("Input already sorted, nothing to emit")
			return Outcome{Emit: false, Check: CheckSorted}
		}
		outcome.Check = CheckUnsorted
		s.logger.Debug("Input not sorted, sorting anyway")
	}

	slices.SortStableFunc(keyed, func(a, b keyedLine) int {
		return int(Compare(a.key, b.key))
	})

	result := make([]types.Line, len(keyed))
	for i, k := range keyed {
		result[i] = k.line
	}

	if s.cfg.Reverse {
		slices.Reverse(result)
		s.logger.Debug("Reversed sorted sequence")
	}

	if s.cfg.Unique {
		result, outcome.DuplicatesRemoved = Dedup(result)
		s.logger.Debug("Removed adjacent duplicates", zap.Int("removed", outcome.DuplicatesRemoved))
	}

	outcome.Lines = result
	return outcome
}

func (s *Sorter) keyAll(lines []types.Line) []keyedLine {
	keyed := make([]keyedLine, len(lines))
	for i, line := range lines {
		keyed[i] = keyedLine{line: line, key: s.extractor.Extract(line.Content)}
	}
	return keyed
}

func keyedSorted(keyed []keyedLine) bool {
	for i := 1; i < len(keyed); i++ {
		if Compare(keyed[i-1].key, keyed[i].key) == Greater {
			return false
		}
	}
	return true
}

// =============================================================================
// SEQUENCE HELPERS
// =============================================================================

// TrimTrailing returns a copy of lines with trailing whitespace removed from
// every line.
func TrimTrailing(lines []types.Line) []types.Line {
	out := make([]types.Line, len(lines))
	for i, line := range lines {
		out[i] = types.Line{
			Ordinal: line.Ordinal,
			Content: strings.TrimRightFunc(line.Content, unicode.IsSpace),
		}
	}
	return out
}

// Dedup drops every line whose content equals the previously kept line and
// returns the kept lines with the number dropped. Only neighbours are
// compared, so it is only a full deduplication on sorted input.
func Dedup(lines []types.Line) ([]types.Line, int) {
	if len(lines) == 0 {
		return lines, 0
	}

	kept := make([]types.Line, 0, len(lines))
	kept = append(kept, lines[0])
	for _, line := range lines[1:] {
		if line.Content != kept[len(kept)-1].Content {
			kept = append(kept, line)
		}
	}
	return kept, len(lines) - len(kept)
}
