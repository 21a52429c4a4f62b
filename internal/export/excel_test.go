package export

import (
	"path/filepath"
	"testing"

	"github.com/mariosromano/ribmaker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutlist.xlsx")

	err := ExportExcel(path, singleRib(), dxfParams(), model.ModeWall, true, model.DefaultRates())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Ribs", "Pricing"}, f.GetSheetList())

	// Header row of the Ribs sheet.
	v, err := f.GetCellValue("Ribs", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Rib Index", v)
	v, err = f.GetCellValue("Ribs", "F1")
	require.NoError(t, err)
	assert.Equal(t, "Phase Shift (rad)", v)

	// First rib row.
	v, err = f.GetCellValue("Ribs", "A2")
	require.NoError(t, err)
	assert.Equal(t, "0", v)
	v, err = f.GetCellValue("Ribs", "B2")
	require.NoError(t, err)
	assert.Equal(t, "96", v)
}

func TestExportExcelPricingSheet(t *testing.T) {
	p := dxfParams()
	p.Count = 40
	p.Height = 144
	p.MaxDepth = 12

	path := filepath.Join(t.TempDir(), "pricing.xlsx")
	err := ExportExcel(path, nil, p, model.ModeWall, true, model.DefaultRates())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Pricing")
	require.NoError(t, err)

	got := map[string]string{}
	for _, row := range rows {
		if len(row) >= 2 {
			got[row[0]] = row[1]
		}
	}
	assert.Equal(t, "40", got["Rib Count"])
	assert.Equal(t, "21600", got["Rib Price ($)"])
	assert.Equal(t, "14400", got["LED Price ($)"])
	assert.Equal(t, "36000", got["Grand Total ($)"])
}
