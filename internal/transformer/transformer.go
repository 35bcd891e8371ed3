// =============================================================================
// QSC Pricing Processor - Row Transformer
// =============================================================================
//
// This module turns source rows into template schema records. Each source
// row produces exactly one OutputRecord:
//   - SALES PART       -> MASTERNO and PARTNO
//   - LONG DESCRIPTION -> DESCRIPTION
//   - NET DEALER       -> STANDARDCOST (currency-normalized)
//   - List Price       -> MSRP         (currency-normalized)
//   - BRAND/TAXABLE/USETAXFLAG are injected constants
//   - every remaining template field is an empty string
//
// The transform is pure: it reads only the source table and the column
// mapping, never the filesystem, so it can be tested without fixtures and
// is trivially idempotent.
//
// =============================================================================

package transformer

import (
	"strconv"
	"strings"

	"github.com/ginjaninja78/qsc-pricing-processor/internal/resolver"
	"github.com/ginjaninja78/qsc-pricing-processor/internal/types"
)

// =============================================================================
// INJECTED CONSTANTS
// =============================================================================

// Constant field values injected into every record. These are invariants of
// the QSC feed, not configuration: every output row carries them.
const (
	BrandQSC       = "QSC"
	TaxableFlag    = "Y"
	UseTaxFlagFlag = "Y"
)

// =============================================================================
// TABLE TRANSFORM
// =============================================================================

// Transform builds the output table for a source table. The result always
// has exactly one record per source row, in source order.
func Transform(table *types.SourceTable, mapping *resolver.ColumnMapping) []types.OutputRecord {
	records := make([]types.OutputRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, TransformRow(row, mapping))
	}
	return records
}

// TransformRow builds a single OutputRecord from one source row.
//
// Unmapped canonical fields and cells past the end of a short row both read
// as empty strings; neither is an error. The 11 template fields with no
// source counterpart (categories, dimensions, UPC, vendor numbers, notes)
// are left as empty strings by construction.
func TransformRow(row []string, mapping *resolver.ColumnMapping) types.OutputRecord {
	salesPart := types.Cell(row, mapping.Index(resolver.FieldSalesPart))

	return types.OutputRecord{
		MasterNo:     salesPart,
		PartNo:       salesPart,
		Description:  types.Cell(row, mapping.Index(resolver.FieldLongDescription)),
		Brand:        BrandQSC,
		StandardCost: NormalizeCurrency(types.Cell(row, mapping.Index(resolver.FieldNetDealer))),
		MSRP:         NormalizeCurrency(types.Cell(row, mapping.Index(resolver.FieldListPrice))),
		Taxable:      TaxableFlag,
		UseTaxFlag:   UseTaxFlagFlag,
	}
}

// =============================================================================
// CURRENCY NORMALIZATION
// =============================================================================

// NormalizeCurrency cleans a price-like source value.
//
// The dollar sign, thousands-separator commas, and surrounding whitespace
// are stripped, then a numeric parse is attempted:
//   - parse succeeds -> numeric cell ("$1,234.50" -> 1234.50)
//   - parse fails    -> text cell holding the stripped string ("N/A" -> "N/A")
//   - empty input    -> empty text cell, never zero
//
// The text fallback is deliberate: vendor files carry placeholders like
// "N/A" or "CALL" in price columns, and those must survive into the output
// rather than abort the run.
func NormalizeCurrency(raw string) types.CellValue {
	stripped := strings.ReplaceAll(raw, "$", "")
	stripped = strings.ReplaceAll(stripped, ",", "")
	stripped = strings.TrimSpace(stripped)

	if stripped == "" {
		return types.TextCell("")
	}

	value, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return types.TextCell(stripped)
	}
	return types.NumericCell(value)
}
