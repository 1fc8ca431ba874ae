package export

import (
	"fmt"

	"Plantek/internal/calc/model"

	"github.com/xuri/excelize/v2"
)

// Workbook renders a model run into an xlsx file: the cash-flow ledger,
// the discounted-cash-flow matrix, and a summary sheet with the scalar
// metrics. Consumers only read the finished numbers.
func Workbook(out model.Output) (*excelize.File, error) {
	f := excelize.NewFile()

	const ledgerSheet = "Cash Flow"
	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return nil, err
	}

	f.SetCellValue(ledgerSheet, "A1", "Concept")
	for year := 0; year < out.Ledger.Years; year++ {
		cell, err := excelize.CoordinatesToCellName(year+2, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(ledgerSheet, cell, year)
	}
	for i, row := range out.Ledger.Rows() {
		nameCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(ledgerSheet, nameCell, row.Name)
		for j, v := range row.Values {
			cell, err := excelize.CoordinatesToCellName(j+2, i+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(ledgerSheet, cell, v)
		}
	}

	const dcfSheet = "DCF"
	if _, err := f.NewSheet(dcfSheet); err != nil {
		return nil, err
	}
	for i, row := range out.DCFTable {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(dcfSheet, cell, v)
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	f.SetCellValue(summarySheet, "A1", "Capex")
	f.SetCellValue(summarySheet, "B1", out.Capex.Total)
	f.SetCellValue(summarySheet, "A2", "NPV")
	f.SetCellValue(summarySheet, "B2", out.NPV)
	f.SetCellValue(summarySheet, "A3", "IRR")
	f.SetCellValue(summarySheet, "B3", out.IRR)
	f.SetCellValue(summarySheet, "A4", "Payback year")
	f.SetCellValue(summarySheet, "B4", out.PaybackYear)
	for i, w := range out.Warnings {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", 6+i), "WARNING: "+w)
	}

	return f, nil
}
