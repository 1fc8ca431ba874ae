package export_test

import (
	"testing"

	"Plantek/internal/calc/export"
	"Plantek/internal/calc/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbook_ContainsLedgerAndSummary(t *testing.T) {
	out, err := model.Run(model.Input{})
	require.NoError(t, err)

	f, err := export.Workbook(out)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Cash Flow", "DCF", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Cash Flow")
	require.NoError(t, err)
	// Header plus the twelve ledger rows, each spanning all years.
	require.Len(t, rows, 13)
	assert.Equal(t, "Concept", rows[0][0])
	assert.Equal(t, "Investment", rows[1][0])
	assert.Len(t, rows[1], out.Ledger.Years+1)

	npv, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.NotEmpty(t, npv)

	dcf, err := f.GetRows("DCF")
	require.NoError(t, err)
	assert.Len(t, dcf, out.Ledger.Years)
}
