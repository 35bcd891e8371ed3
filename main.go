// =============================================================================
// QSC Pricing Processor - Main Entry Point
// =============================================================================
//
// This is the main entry point for the QSC Pricing Processor CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   qsc-processor process <source-file> [output-file]  - Convert a pricing file
//   qsc-processor inspect <source-file>                - Show column resolution only
//   qsc-processor version                              - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core pipeline logic (not for external import)
//   - pkg/       : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/qsc-pricing-processor/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
