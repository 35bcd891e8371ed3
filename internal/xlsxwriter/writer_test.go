package xlsxwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/qsc-pricing-processor/internal/types"
)

func sampleRecords() []types.OutputRecord {
	return []types.OutputRecord{
		{
			MasterNo:     "ABC-123",
			PartNo:       "ABC-123",
			Description:  "Widget",
			Brand:        "QSC",
			StandardCost: types.NumericCell(1234.5),
			MSRP:         types.NumericCell(99.99),
			Taxable:      "Y",
			UseTaxFlag:   "Y",
		},
		{
			MasterNo:     "DEF-456",
			PartNo:       "DEF-456",
			Description:  "Gadget",
			Brand:        "QSC",
			StandardCost: types.TextCell("N/A"),
			MSRP:         types.TextCell(""),
			Taxable:      "Y",
			UseTaxFlag:   "Y",
		},
	}
}

func writeAndReopen(t *testing.T, records []types.OutputRecord) *excelize.File {
	t.Helper()

	dest := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, Write(records, dest))

	f, err := excelize.OpenFile(dest)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriteSheetAndHeader(t *testing.T) {
	f := writeAndReopen(t, sampleRecords())

	require.Equal(t, []string{SheetTitle}, f.GetSheetList())

	fields := types.TemplateFields()
	require.Len(t, fields, 19)
	for i, field := range fields {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		got, err := f.GetCellValue(SheetTitle, cell)
		require.NoError(t, err)
		assert.Equal(t, field, got, "header mismatch at %s", cell)
	}
}

func TestWriteDataRows(t *testing.T) {
	f := writeAndReopen(t, sampleRecords())

	// Row 2 is the first data row.
	got, err := f.GetCellValue(SheetTitle, "A2")
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", got)

	// Numeric price cells hold raw numbers.
	raw, err := f.GetCellValue(SheetTitle, "E2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1234.5", raw)

	// The display format adds the thousands separator and two decimals.
	formatted, err := f.GetCellValue(SheetTitle, "E2")
	require.NoError(t, err)
	assert.Equal(t, "1,234.50", formatted)

	// Text fallback is written as-is, no numeric format.
	got, err = f.GetCellValue(SheetTitle, "E3")
	require.NoError(t, err)
	assert.Equal(t, "N/A", got)

	// Empty price cells stay empty.
	got, err = f.GetCellValue(SheetTitle, "F3")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestWriteColumnWidths(t *testing.T) {
	f := writeAndReopen(t, sampleRecords())

	// MASTERNO (A) 20, PARTNO (B) defaults to 15, DESCRIPTION (C) 50.
	width, err := f.GetColWidth(SheetTitle, "A")
	require.NoError(t, err)
	assert.InDelta(t, 20, width, 0.01)

	width, err = f.GetColWidth(SheetTitle, "B")
	require.NoError(t, err)
	assert.InDelta(t, 15, width, 0.01)

	width, err = f.GetColWidth(SheetTitle, "C")
	require.NoError(t, err)
	assert.InDelta(t, 50, width, 0.01)
}

func TestWriteFrozenHeader(t *testing.T) {
	f := writeAndReopen(t, sampleRecords())

	panes, err := f.GetPanes(SheetTitle)
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 1, panes.YSplit)
	assert.Equal(t, "A2", panes.TopLeftCell)
}

func TestWriteEmptyTable(t *testing.T) {
	f := writeAndReopen(t, nil)

	rows, err := f.GetRows(SheetTitle)
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
	assert.Equal(t, types.TemplateFields(), rows[0])
}

func TestColumnWidthDefault(t *testing.T) {
	assert.Equal(t, float64(15), ColumnWidth("PARTNO"))
	assert.Equal(t, float64(50), ColumnWidth(types.FieldDescription))
	assert.Equal(t, float64(30), ColumnWidth(types.FieldNotes))
}

func TestWriteUnwritableDestination(t *testing.T) {
	// A regular file where a directory is needed makes the path unwritable.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := Write(sampleRecords(), filepath.Join(blocker, "oops.xlsx"))
	assert.Error(t, err)
}
