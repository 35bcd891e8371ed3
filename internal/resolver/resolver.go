// =============================================================================
// QSC Pricing Processor - Column Resolver
// =============================================================================
//
// This module maps the 4 canonical source fields of the QSC pricing feed to
// whatever the vendor actually named those columns in a given file. Vendor
// exports are inconsistent ("SALES PART", "Part Number", "partno", ...), so
// each canonical field carries an ordered list of recognized aliases.
//
// RESOLUTION ALGORITHM:
//   1. Normalize every source header (trim whitespace, lower-case).
//   2. For each canonical field, walk its alias list in order and pick the
//      first alias present among the normalized headers.
//   3. Record the original-case header and its column index.
//
// A canonical field with no alias match is left unmapped. That is not a
// fatal condition: the transformer substitutes empty strings and the
// pipeline reports a warning naming the unmapped fields.
//
// =============================================================================

package resolver

import (
	"strings"

	"github.com/ginjaninja78/qsc-pricing-processor/internal/types"
)

// =============================================================================
// CANONICAL FIELDS AND ALIAS TABLES
// =============================================================================

// Canonical field names of the QSC pricing feed.
const (
	FieldSalesPart       = "SALES PART"
	FieldLongDescription = "LONG DESCRIPTION"
	FieldNetDealer       = "NET DEALER"
	FieldListPrice       = "List Price"
)

// FieldAliases pairs a canonical field with its ordered alias list.
// Earlier aliases win ties, so the table is a slice rather than a map:
// resolution order must never depend on map iteration.
type FieldAliases struct {
	// Field is the canonical field name.
	Field string

	// Aliases are the recognized header spellings, in priority order.
	// Matching is case-insensitive and whitespace-tolerant.
	Aliases []string
}

// aliasTable is the fixed alias configuration for the QSC feed.
var aliasTable = []FieldAliases{
	{
		Field: FieldSalesPart,
		Aliases: []string{
			"sales part", "salespart", "sales_part",
			"part number", "part no", "partno", "part",
		},
	},
	{
		Field: FieldLongDescription,
		Aliases: []string{
			"long description", "longdescription", "long_description",
			"description", "desc", "product description",
		},
	},
	{
		Field: FieldNetDealer,
		Aliases: []string{
			"net dealer", "netdealer", "net_dealer",
			"dealer price", "dealer cost", "net price", "net cost", "dealer",
		},
	},
	{
		Field: FieldListPrice,
		Aliases: []string{
			"list price", "listprice", "list_price",
			"msrp", "retail price", "retail", "price", "list",
		},
	},
}

// CanonicalFields returns the canonical field names in table order.
func CanonicalFields() []string {
	fields := make([]string, 0, len(aliasTable))
	for _, entry := range aliasTable {
		fields = append(fields, entry.Field)
	}
	return fields
}

// =============================================================================
// COLUMN MAPPING
// =============================================================================

// ColumnMatch records where a canonical field was found in the source table.
type ColumnMatch struct {
	// SourceColumn is the header as it appears in the source file,
	// original casing preserved.
	SourceColumn string

	// Index is the 0-based column index in the source table.
	Index int
}

// ColumnMapping maps canonical field names to their matched source columns.
// Built once per file by Resolve and read-only afterward.
type ColumnMapping struct {
	matches map[string]ColumnMatch
}

// Lookup returns the match for a canonical field, if one was found.
func (m *ColumnMapping) Lookup(field string) (ColumnMatch, bool) {
	match, ok := m.matches[field]
	return match, ok
}

// Index returns the source column index for a canonical field, or -1 when
// the field is unmapped. types.Cell treats -1 as an empty cell, which is
// exactly the fallback the transformer wants.
func (m *ColumnMapping) Index(field string) int {
	if match, ok := m.matches[field]; ok {
		return match.Index
	}
	return -1
}

// Missing returns the canonical fields with no alias match, in table order.
func (m *ColumnMapping) Missing() []string {
	var missing []string
	for _, entry := range aliasTable {
		if _, ok := m.matches[entry.Field]; !ok {
			missing = append(missing, entry.Field)
		}
	}
	return missing
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolve builds the ColumnMapping for a source table's headers.
//
// Headers are normalized by trimming whitespace and lower-casing. When two
// source columns normalize to the same string, the first occurrence wins.
// Each canonical field resolves independently, so a single source column can
// satisfy more than one canonical field (a lone "price" column serves List
// Price regardless of what NET DEALER resolves to).
func Resolve(table *types.SourceTable) *ColumnMapping {
	// Normalized header -> first source column carrying it.
	normalized := make(map[string]ColumnMatch, len(table.Headers))
	for i, header := range table.Headers {
		key := strings.ToLower(strings.TrimSpace(header))
		if key == "" {
			continue
		}
		if _, seen := normalized[key]; !seen {
			normalized[key] = ColumnMatch{SourceColumn: header, Index: i}
		}
	}

	mapping := &ColumnMapping{matches: make(map[string]ColumnMatch, len(aliasTable))}
	for _, entry := range aliasTable {
		for _, alias := range entry.Aliases {
			if match, ok := normalized[alias]; ok {
				mapping.matches[entry.Field] = match
				break
			}
		}
	}

	return mapping
}
