// =============================================================================
// QSC Pricing Processor - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - sourceloader
//   - resolver
//   - transformer
//   - xlsxwriter
//   - converter
//
// =============================================================================

package types

import "strconv"

// =============================================================================
// SOURCE TABLE
// =============================================================================

// SourceTable holds the raw contents of a vendor pricing file after loading.
// Rows are kept as plain strings; all typing decisions happen later in the
// transformer.
type SourceTable struct {
	// Headers are the column names from the first row, in source order,
	// with their original casing preserved.
	Headers []string

	// Rows are the data rows (everything after the header row).
	// Rows may be shorter than Headers; missing cells are treated as empty.
	Rows [][]string

	// SourceFile is the path the table was loaded from.
	// Useful for diagnostics and error reporting.
	SourceFile string

	// RowCount is the number of data rows.
	RowCount int

	// ColumnCount is the number of header columns.
	ColumnCount int
}

// Cell returns the value at the given column index of a row, or an empty
// string when the row is shorter than the index. A negative index also
// yields an empty string, which is how unmapped fields are read.
func Cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}

// =============================================================================
// CELL VALUE
// =============================================================================

// CellValue is the value of a price-like output cell. It is an explicit
// variant: either a parsed numeric value, or fallback text (possibly empty).
// This replaces an implicit "number or string" cell so the output schema
// stays typed and testable.
type CellValue struct {
	// Number holds the parsed value when Numeric is true.
	Number float64

	// Text holds the fallback text when Numeric is false.
	Text string

	// Numeric reports which arm of the variant is populated.
	Numeric bool
}

// NumericCell returns a CellValue holding a parsed number.
func NumericCell(v float64) CellValue {
	return CellValue{Number: v, Numeric: true}
}

// TextCell returns a CellValue holding plain text.
// TextCell("") is the canonical empty cell.
func TextCell(s string) CellValue {
	return CellValue{Text: s}
}

// IsEmpty reports whether the cell holds neither a number nor text.
func (c CellValue) IsEmpty() bool {
	return !c.Numeric && c.Text == ""
}

// Display returns the cell rendered as a string, for diagnostics.
func (c CellValue) Display() string {
	if c.Numeric {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}

// =============================================================================
// OUTPUT RECORD
// =============================================================================

// Template schema field names, in the fixed order required by the
// downstream system. This order is the column order of the output sheet.
const (
	FieldMasterNo       = "MASTERNO"
	FieldPartNo         = "PARTNO"
	FieldDescription    = "DESCRIPTION"
	FieldBrand          = "BRAND"
	FieldStandardCost   = "STANDARDCOST"
	FieldMSRP           = "MSRP"
	FieldTaxable        = "TAXABLE"
	FieldUseTaxFlag     = "USETAXFLAG"
	FieldCategory1      = "CATEGORY1"
	FieldCategory2      = "CATEGORY2"
	FieldCategory3      = "CATEGORY3"
	FieldWeight         = "WEIGHT"
	FieldHeight         = "HEIGHT"
	FieldWidth          = "WIDTH"
	FieldDepth          = "DEPTH"
	FieldUPC            = "UPC"
	FieldManufacturerNo = "MANUFACTURERNO"
	FieldVendorPartNo   = "VENDORPARTNO"
	FieldNotes          = "NOTES"
)

// TemplateFields lists all 19 template schema columns in output order.
func TemplateFields() []string {
	return []string{
		FieldMasterNo,
		FieldPartNo,
		FieldDescription,
		FieldBrand,
		FieldStandardCost,
		FieldMSRP,
		FieldTaxable,
		FieldUseTaxFlag,
		FieldCategory1,
		FieldCategory2,
		FieldCategory3,
		FieldWeight,
		FieldHeight,
		FieldWidth,
		FieldDepth,
		FieldUPC,
		FieldManufacturerNo,
		FieldVendorPartNo,
		FieldNotes,
	}
}

// OutputRecord is one row of the template schema. One record is produced per
// source row. STANDARDCOST and MSRP carry the numeric-or-text variant; every
// other field is a plain string.
type OutputRecord struct {
	MasterNo       string
	PartNo         string
	Description    string
	Brand          string
	StandardCost   CellValue
	MSRP           CellValue
	Taxable        string
	UseTaxFlag     string
	Category1      string
	Category2      string
	Category3      string
	Weight         string
	Height         string
	Width          string
	Depth          string
	UPC            string
	ManufacturerNo string
	VendorPartNo   string
	Notes          string
}

// Value returns the record's value for a template schema field name.
// Non-price fields are returned as text cells. Unknown field names yield an
// empty cell.
func (r *OutputRecord) Value(field string) CellValue {
	switch field {
	case FieldMasterNo:
		return TextCell(r.MasterNo)
	case FieldPartNo:
		return TextCell(r.PartNo)
	case FieldDescription:
		return TextCell(r.Description)
	case FieldBrand:
		return TextCell(r.Brand)
	case FieldStandardCost:
		return r.StandardCost
	case FieldMSRP:
		return r.MSRP
	case FieldTaxable:
		return TextCell(r.Taxable)
	case FieldUseTaxFlag:
		return TextCell(r.UseTaxFlag)
	case FieldCategory1:
		return TextCell(r.Category1)
	case FieldCategory2:
		return TextCell(r.Category2)
	case FieldCategory3:
		return TextCell(r.Category3)
	case FieldWeight:
		return TextCell(r.Weight)
	case FieldHeight:
		return TextCell(r.Height)
	case FieldWidth:
		return TextCell(r.Width)
	case FieldDepth:
		return TextCell(r.Depth)
	case FieldUPC:
		return TextCell(r.UPC)
	case FieldManufacturerNo:
		return TextCell(r.ManufacturerNo)
	case FieldVendorPartNo:
		return TextCell(r.VendorPartNo)
	case FieldNotes:
		return TextCell(r.Notes)
	default:
		return TextCell("")
	}
}
