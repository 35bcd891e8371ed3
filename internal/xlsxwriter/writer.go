// =============================================================================
// QSC Pricing Processor - Spreadsheet Writer
// =============================================================================
//
// This module serializes the transformed records into the styled workbook
// the downstream import expects:
//   - single sheet titled "QSC Pricing"
//   - header row: bold white on dark blue (366092), centered, frozen
//   - per-column fixed widths (unlisted columns default to 15)
//   - thin borders over the entire used range
//   - numeric STANDARDCOST/MSRP cells formatted as #,##0.00
//
// The workbook is assembled fully in memory and saved once at the end, so a
// failed run never leaves a partial output file behind.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/qsc-pricing-processor/internal/types"
)

// SheetTitle is the fixed name of the single output sheet.
const SheetTitle = "QSC Pricing"

// =============================================================================
// COLUMN LAYOUT
// =============================================================================

// defaultColumnWidth is used for any template field without an explicit width.
const defaultColumnWidth = 15

// columnWidths holds the fixed per-field column widths required by the
// downstream template.
var columnWidths = map[string]float64{
	types.FieldMasterNo:       20,
	types.FieldDescription:    50,
	types.FieldBrand:          10,
	types.FieldStandardCost:   15,
	types.FieldMSRP:           15,
	types.FieldTaxable:        10,
	types.FieldUseTaxFlag:     12,
	types.FieldCategory1:      15,
	types.FieldCategory2:      15,
	types.FieldCategory3:      15,
	types.FieldWeight:         10,
	types.FieldHeight:         10,
	types.FieldWidth:          10,
	types.FieldDepth:          10,
	types.FieldUPC:            20,
	types.FieldManufacturerNo: 20,
	types.FieldVendorPartNo:   20,
	types.FieldNotes:          30,
}

// ColumnWidth returns the configured width for a template field.
func ColumnWidth(field string) float64 {
	if width, ok := columnWidths[field]; ok {
		return width
	}
	return defaultColumnWidth
}

// =============================================================================
// WRITER
// =============================================================================

// Write serializes the output table into a styled workbook at destPath.
// The destination directory is created if it does not exist.
func Write(records []types.OutputRecord, destPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetTitle); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, dataStyle, priceStyle, err := buildStyles(f)
	if err != nil {
		return err
	}

	headers := types.TemplateFields()
	if err := writeHeader(f, headers, headerStyle); err != nil {
		return err
	}
	if err := writeRecords(f, headers, records, dataStyle, priceStyle); err != nil {
		return err
	}

	// Keep the header visible while scrolling.
	if err := f.SetPanes(SheetTitle, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}

	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := f.SaveAs(destPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// buildStyles registers the three cell styles used by the sheet: header,
// plain bordered data, and bordered price data with the #,##0.00 format.
func buildStyles(f *excelize.File) (header, data, price int, err error) {
	thinBorder := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorder,
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to create header style: %w", err)
	}

	data, err = f.NewStyle(&excelize.Style{Border: thinBorder})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to create data style: %w", err)
	}

	priceFormat := "#,##0.00"
	price, err = f.NewStyle(&excelize.Style{
		Border:       thinBorder,
		CustomNumFmt: &priceFormat,
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to create price style: %w", err)
	}

	return header, data, price, nil
}

// writeHeader writes the styled header row and sets the column widths.
func writeHeader(f *excelize.File, headers []string, styleID int) error {
	for i, field := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("invalid header coordinates: %w", err)
		}
		if err := f.SetCellValue(SheetTitle, cell, field); err != nil {
			return fmt.Errorf("failed to write header %q: %w", field, err)
		}

		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("invalid column number: %w", err)
		}
		if err := f.SetColWidth(SheetTitle, colName, colName, ColumnWidth(field)); err != nil {
			return fmt.Errorf("failed to set width for %q: %w", field, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("invalid header coordinates: %w", err)
	}
	if err := f.SetCellStyle(SheetTitle, "A1", last, styleID); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	return nil
}

// writeRecords writes the data rows starting at row 2, one row per record,
// columns in template field order.
func writeRecords(f *excelize.File, headers []string, records []types.OutputRecord, dataStyle, priceStyle int) error {
	for rowIdx := range records {
		record := &records[rowIdx]
		rowNum := rowIdx + 2

		for colIdx, field := range headers {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return fmt.Errorf("invalid cell coordinates: %w", err)
			}

			value := record.Value(field)
			styleID := dataStyle
			if value.Numeric {
				// Only parsed numbers get the #,##0.00 display format;
				// fallback text like "N/A" is written as-is.
				styleID = priceStyle
				err = f.SetCellValue(SheetTitle, cell, value.Number)
			} else {
				err = f.SetCellValue(SheetTitle, cell, value.Text)
			}
			if err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}

			if err := f.SetCellStyle(SheetTitle, cell, cell, styleID); err != nil {
				return fmt.Errorf("failed to style cell %s: %w", cell, err)
			}
		}
	}

	return nil
}
