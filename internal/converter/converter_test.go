package converter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeSourceWorkbook builds a vendor-style pricing workbook fixture.
func writeSourceWorkbook(t *testing.T, dir string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(dir, "source.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	source := writeSourceWorkbook(t, dir, [][]interface{}{
		{"Part Number", "Description", "Dealer Price", "MSRP"},
		{"ABC-123", "Widget", "$50.00", "$99.99"},
	})
	output := filepath.Join(dir, "out", "processed.xlsx")

	result := New(source, output).Run()
	require.True(t, result.Success, "run failed: %v", result.Error)
	assert.Equal(t, output, result.OutputPath)
	assert.Equal(t, 1, result.RowCount)
	assert.Empty(t, result.MissingFields)

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("QSC Pricing", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "ABC-123", get("A2")) // MASTERNO
	assert.Equal(t, "ABC-123", get("B2")) // PARTNO
	assert.Equal(t, "Widget", get("C2"))  // DESCRIPTION
	assert.Equal(t, "QSC", get("D2"))     // BRAND
	assert.Equal(t, "Y", get("G2"))       // TAXABLE
	assert.Equal(t, "Y", get("H2"))       // USETAXFLAG

	raw, err := f.GetCellValue("QSC Pricing", "E2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "50", raw) // STANDARDCOST
}

func TestRunMissingListPriceColumn(t *testing.T) {
	dir := t.TempDir()
	source := writeSourceWorkbook(t, dir, [][]interface{}{
		{"Part Number", "Description", "Dealer Price"},
		{"ABC-123", "Widget", "$50.00"},
		{"DEF-456", "Gadget", "$75.00"},
	})
	output := filepath.Join(dir, "processed.xlsx")

	result := New(source, output).Run()
	require.True(t, result.Success, "run failed: %v", result.Error)
	assert.Equal(t, []string{"List Price"}, result.MissingFields)

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()

	// MSRP (column F) is empty on every data row.
	for _, cell := range []string{"F2", "F3"} {
		v, err := f.GetCellValue("QSC Pricing", cell)
		require.NoError(t, err)
		assert.Equal(t, "", v)
	}
}

func TestRunLoadFailureProducesNoOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "processed.xlsx")

	result := New(filepath.Join(dir, "missing.xlsx"), output).Run()
	require.False(t, result.Success)

	var loadErr *LoadError
	assert.True(t, errors.As(result.Error, &loadErr))
	assert.Empty(t, result.OutputPath)

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err), "no partial output file may be left behind")
}

func TestRunWriteFailure(t *testing.T) {
	dir := t.TempDir()
	source := writeSourceWorkbook(t, dir, [][]interface{}{
		{"Part Number"},
		{"ABC-123"},
	})

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	result := New(source, filepath.Join(blocker, "out.xlsx")).Run()
	require.False(t, result.Success)

	var writeErr *WriteError
	assert.True(t, errors.As(result.Error, &writeErr))
}

func TestRunDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	source := writeSourceWorkbook(t, dir, [][]interface{}{
		{"Part Number", "List Price"},
		{"ABC-123", "10"},
	})
	output := filepath.Join(dir, "processed.xlsx")

	conv := New(source, output)
	conv.SetDryRun(true)

	result := conv.Run()
	require.True(t, result.Success)
	assert.Equal(t, 1, result.RowCount)
	assert.Empty(t, result.OutputPath)

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	source := writeSourceWorkbook(t, dir, [][]interface{}{
		{"Part Number", "Description"},
		{"ABC-123", "Widget"},
	})

	table, mapping, err := Inspect(source)
	require.NoError(t, err)
	assert.Equal(t, 1, table.RowCount)
	assert.Equal(t, []string{"NET DEALER", "List Price"}, mapping.Missing())
}
