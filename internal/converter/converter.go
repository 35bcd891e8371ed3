// =============================================================================
// QSC Pricing Processor - Conversion Pipeline
// =============================================================================
//
// This module orchestrates the four pipeline stages for a single file:
//
//   loader -> resolver -> transformer -> writer
//
// Data flows strictly forward; no stage reads back from a later one. The
// recoverable conditions (unmapped canonical columns, unparseable prices)
// are absorbed inside the stages with a diagnostic; only load and write
// failures abort the run, and a load failure never produces an output file.
//
// =============================================================================

package converter

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/qsc-pricing-processor/internal/resolver"
	"github.com/ginjaninja78/qsc-pricing-processor/internal/sourceloader"
	"github.com/ginjaninja78/qsc-pricing-processor/internal/transformer"
	"github.com/ginjaninja78/qsc-pricing-processor/internal/types"
	"github.com/ginjaninja78/qsc-pricing-processor/internal/xlsxwriter"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// LoadError reports that the source file could not be read into a table.
type LoadError struct {
	// Path is the source file that failed to load.
	Path string

	// Err is the underlying failure.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error reading source file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError reports that the output workbook could not be written.
type WriteError struct {
	// Path is the destination that failed.
	Path string

	// Err is the underlying failure.
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error writing output file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// =============================================================================
// RESULT
// =============================================================================

// Result is the outcome of processing one source file.
type Result struct {
	// SourcePath is the input file that was processed.
	SourcePath string

	// OutputPath is the written workbook. Empty if processing failed or the
	// run was a dry run.
	OutputPath string

	// RowCount is the number of records produced.
	RowCount int

	// MissingFields lists canonical fields that had no alias match.
	MissingFields []string

	// Success indicates whether the processing completed.
	Success bool

	// Error contains the failure when Success is false.
	Error error
}

// =============================================================================
// CONVERTER
// =============================================================================

// Converter processes a single QSC pricing file.
type Converter struct {
	// sourcePath is the input pricing file.
	sourcePath string

	// outputPath is the destination workbook.
	outputPath string

	// dryRun transforms and reports without writing the workbook.
	dryRun bool
}

// New creates a Converter for one source/destination pair.
func New(sourcePath, outputPath string) *Converter {
	return &Converter{sourcePath: sourcePath, outputPath: outputPath}
}

// SetDryRun enables or disables dry-run mode.
func (c *Converter) SetDryRun(dryRun bool) {
	c.dryRun = dryRun
}

// Run executes the pipeline for the file.
//
// PROCESSING STEPS:
//  1. Load the source spreadsheet into memory
//  2. Resolve canonical fields against the source columns
//  3. Transform every source row into a template record
//  4. Write the styled output workbook (skipped on dry run)
func (c *Converter) Run() Result {
	result := Result{SourcePath: c.sourcePath}

	fmt.Printf("Processing QSC source file: %s\n", c.sourcePath)

	// =========================================================================
	// STEP 1: LOAD
	// =========================================================================

	table, err := sourceloader.Load(c.sourcePath)
	if err != nil {
		result.Error = &LoadError{Path: c.sourcePath, Err: err}
		return result
	}

	// =========================================================================
	// STEP 2: RESOLVE COLUMNS
	// =========================================================================

	mapping := resolver.Resolve(table)
	for _, field := range resolver.CanonicalFields() {
		if match, ok := mapping.Lookup(field); ok {
			fmt.Printf("Found '%s' as '%s'\n", field, match.SourceColumn)
		}
	}

	result.MissingFields = mapping.Missing()
	if len(result.MissingFields) > 0 {
		fmt.Printf("\nWarning: could not find the following columns: %s\n",
			strings.Join(result.MissingFields, ", "))
		fmt.Println("Attempting to proceed with available columns...")
	}

	// =========================================================================
	// STEP 3: TRANSFORM
	// =========================================================================

	records := transformer.Transform(table, mapping)
	result.RowCount = len(records)

	// =========================================================================
	// STEP 4: WRITE
	// =========================================================================

	if c.dryRun {
		fmt.Printf("\nDry run: skipping write of %s\n", c.outputPath)
	} else {
		if err := xlsxwriter.Write(records, c.outputPath); err != nil {
			result.Error = &WriteError{Path: c.outputPath, Err: err}
			return result
		}
		result.OutputPath = c.outputPath
		fmt.Printf("\nProcessed file saved to: %s\n", c.outputPath)
	}

	fmt.Printf("   - Total rows processed: %d\n", result.RowCount)
	fmt.Printf("   - Brand: %s (all rows)\n", transformer.BrandQSC)
	fmt.Printf("   - TAXABLE: %s (all rows)\n", transformer.TaxableFlag)
	fmt.Printf("   - USETAXFLAG: %s (all rows)\n", transformer.UseTaxFlagFlag)

	result.Success = true
	return result
}

// =============================================================================
// INSPECTION
// =============================================================================

// Inspect loads and resolves the source file without transforming or
// writing, and returns the table and mapping for reporting.
func Inspect(sourcePath string) (*types.SourceTable, *resolver.ColumnMapping, error) {
	table, err := sourceloader.Load(sourcePath)
	if err != nil {
		return nil, nil, &LoadError{Path: sourcePath, Err: err}
	}
	return table, resolver.Resolve(table), nil
}
