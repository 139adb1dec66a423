// =============================================================================
// gosort - Main Entry Point
// =============================================================================
//
// gosort sorts the lines of a file in memory with the ordering rules of the
// UNIX sort utility.
//
// USAGE:
//   gosort [flags] <file>   - Sort a file (see gosort --help)
//   gosort version          - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : sort engine, line source, sink, pipeline, settings
//   - pkg/           : shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/gosort/cmd"
)

func main() {
	cmd.Execute()
}
