// =============================================================================
// QSC Pricing Processor - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the full conversion
// pipeline for one pricing file.
//
// COMMAND USAGE:
//   qsc-processor process <source-file> [output-file] [flags]
//
// FLAGS:
//   --dry-run     : Transform and report without writing the output workbook
//   --no-archive  : Leave the source file in place even when archival is
//                   enabled in the configuration
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Derive the output path when none was given
//   3. Run the pipeline (load -> resolve -> transform -> write)
//   4. Optionally archive the processed source file
//   5. Print the summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/qsc-pricing-processor/internal/config"
	"github.com/ginjaninja78/qsc-pricing-processor/internal/converter"
	"github.com/ginjaninja78/qsc-pricing-processor/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun transforms and reports without writing output files.
var dryRun bool

// noArchive disables source archival for this run regardless of config.
var noArchive bool

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <source-file> [output-file]",
	Short: "Convert a QSC pricing file to the template schema",
	Long: `The process command reads a QSC vendor pricing file (.xlsx, .xlsm, or .csv),
maps its columns onto the fixed template schema, and writes a styled output
workbook.

When the output file is omitted, the destination is derived from the
configuration as <output_dir>/<output_prefix><source-base-name>.xlsx.

Recoverable conditions are absorbed with a diagnostic: unmapped canonical
columns produce empty output fields, and price values that cannot be parsed
after currency cleanup are carried through as text. Only a load or write
failure aborts the run, and no partial output file is left behind.`,

	Args: cobra.RangeArgs(1, 2),

	RunE: func(cmd *cobra.Command, args []string) error {
		sourcePath := args[0]
		outputPath := ""
		if len(args) > 1 {
			outputPath = args[1]
		}
		return runProcess(sourcePath, outputPath)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Transform and report without writing the output workbook",
	)

	processCmd.Flags().BoolVar(
		&noArchive,
		"no-archive",
		false,
		"Do not archive the source file after processing",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess runs the pipeline for a single source file.
func runProcess(sourcePath, outputPath string) error {
	startTime := time.Now()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if outputPath == "" {
		outputPath = utils.DefaultOutputPath(sourcePath, cfg.OutputDir, cfg.OutputPrefix)
		if verbose {
			fmt.Printf("No output path given, using: %s\n", outputPath)
		}
	}

	conv := converter.New(sourcePath, outputPath)
	conv.SetDryRun(dryRun)

	result := conv.Run()
	if !result.Success {
		return result.Error
	}

	if cfg.ArchiveOnSuccess && !noArchive && !dryRun {
		archived, err := utils.ArchiveSourceFile(sourcePath, cfg.ArchiveDir)
		if err != nil {
			// The output workbook is already in place; a failed archive
			// move is reported but does not fail the run.
			fmt.Printf("Warning: could not archive source file: %v\n", err)
		} else {
			fmt.Printf("   - Source archived to: %s\n", archived)
		}
	}

	if verbose {
		fmt.Printf("   - Time elapsed: %s\n", time.Since(startTime))
	}

	return nil
}
