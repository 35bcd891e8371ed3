// =============================================================================
// QSC Pricing Processor - Source Loader
// =============================================================================
//
// This module reads a vendor pricing file into a SourceTable. Two formats
// are accepted, selected by file extension:
//   - .xlsx / .xlsm : Excel workbook via excelize (first sheet only)
//   - .csv          : comma-separated export
//
// The first row is always the header row; everything after it is data. The
// loader emits a diagnostic with the row count, column count, and column
// names, matching the feed operators' expectations when they eyeball a run.
//
// Any failure here aborts the pipeline: there is no point transforming a
// file that could not be read, and no output file is produced.
//
// =============================================================================

package sourceloader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/qsc-pricing-processor/internal/types"
)

// =============================================================================
// LOADING
// =============================================================================

// Load reads the pricing file at path into a SourceTable.
//
// RETURNS:
//   - The loaded table, with headers and data rows split.
//   - An error if the file is missing, has an unsupported extension, is not
//     a valid workbook/CSV, or contains no header row.
func Load(path string) (*types.SourceTable, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("source file not accessible: %w", err)
	}

	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported source format %q (expected .xlsx, .xlsm, or .csv)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("source file %s has no header row", path)
	}

	table := &types.SourceTable{
		Headers:     rows[0],
		Rows:        rows[1:],
		SourceFile:  path,
		ColumnCount: len(rows[0]),
	}
	table.RowCount = len(table.Rows)

	fmt.Printf("Source file has %d rows and %d columns\n", table.RowCount, table.ColumnCount)
	fmt.Printf("Column names found: %s\n", strings.Join(table.Headers, ", "))

	return table, nil
}

// readWorkbook reads all rows from the first sheet of an Excel workbook.
func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	return rows, nil
}

// readCSV reads all rows from a CSV export.
//
// The reader is configured for real-world vendor exports: variable field
// counts per row, lazy quoting, and trimmed leading space.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return rows, nil
}
