// =============================================================================
// gosort - Pipeline
// =============================================================================
//
// This module runs one sort invocation from input file to output file:
//
//   1. Load every line from the source file
//   2. Hand the lines to the sort engine (trim, check, sort, reverse, dedup)
//   3. Write the final sequence to the destination, unless check mode found
//      the input already sorted
//
// The configuration has already been validated when a Runner is built, so
// only I/O can fail here. Nothing is written unless the whole sequence has
// been finalized.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/gosort/internal/sink"
	"github.com/ginjaninja78/gosort/internal/sorter"
	"github.com/ginjaninja78/gosort/internal/source"
	"github.com/ginjaninja78/gosort/internal/types"
	"go.uber.org/zap"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one run.
type Result struct {
	// InputPath is the file that was sorted.
	InputPath string

	// OutputPath is the destination. It is empty when nothing was written.
	OutputPath string

	// Check is the sortedness report; CheckSkipped unless check mode was on.
	Check sorter.CheckStatus

	// Stats contains statistics about the run.
	Stats Stats
}

// Stats contains statistics about a run.
type Stats struct {
	// LinesRead is the number of input lines.
	LinesRead int

	// LinesWritten is the number of lines in the output.
	LinesWritten int

	// DuplicatesRemoved is the number of lines dropped by -u.
	DuplicatesRemoved int

	// ProcessingTime is the wall time of the run.
	ProcessingTime time.Duration
}

// =============================================================================
// ERRORS
// =============================================================================

// IOError reports a failure to read the input or write the output.
type IOError struct {
	// Op is "read" or "write".
	Op string

	// Path is the file involved.
	Path string

	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// =============================================================================
// RUNNER
// =============================================================================

// Request describes one run.
type Request struct {
	InputPath  string
	OutputPath string
	Source     source.Options
}

// Runner executes requests with a fixed sort configuration.
type Runner struct {
	sorter *sorter.Sorter
	logger *zap.Logger
}

// New validates cfg and returns a Runner. A nil logger disables logging.
func New(cfg sorter.Config, logger *zap.Logger) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s, err := sorter.New(cfg, sorter.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &Runner{sorter: s, logger: logger}, nil
}

// Run executes the pipeline for req.
func (r *Runner) Run(req Request) (Result, error) {
	startTime := time.Now()
	result := Result{InputPath: req.InputPath}

	r.logger.Debug("Reading input", zap.String("path", req.InputPath))

	lines, err := source.ReadAll(req.InputPath, req.Source)
	if err != nil {
		return result, &IOError{Op: "read", Path: req.InputPath, Err: err}
	}
	result.Stats.LinesRead = len(lines)

	outcome := r.sorter.Sort(lines)
	result.Check = outcome.Check
	result.Stats.DuplicatesRemoved = outcome.DuplicatesRemoved

	if !outcome.Emit {
		result.Stats.ProcessingTime = time.Since(startTime)
		r.logger.Info("Input already sorted, output not written",
			zap.String("input", req.InputPath),
			zap.Int("lines", result.Stats.LinesRead))
		return result, nil
	}

	if err := sink.WriteAll(req.OutputPath, types.Contents(outcome.Lines)); err != nil {
		return result, &IOError{Op: "write", Path: req.OutputPath, Err: err}
	}

	result.OutputPath = req.OutputPath
	result.Stats.LinesWritten = len(outcome.Lines)
	result.Stats.ProcessingTime = time.Since(startTime)

	r.logger.Info("Sorted",
		zap.String("input", req.InputPath),
		zap.String("output", req.OutputPath),
		zap.Int("lines_read", result.Stats.LinesRead),
		zap.Int("lines_written", result.Stats.LinesWritten),
		zap.Int("duplicates_removed", result.Stats.DuplicatesRemoved),
		zap.Duration("elapsed", result.Stats.ProcessingTime))

	return result, nil
}
