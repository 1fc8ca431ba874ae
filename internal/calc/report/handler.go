package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"Plantek/internal/calc/model"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string      `json:"project"`
	Author  string      `json:"author"`
	Title   string      `json:"title"`
	Notes   string      `json:"notes"`
	Model   model.Input `json:"model"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Techno-Economic Feasibility Report"
	}

	out, err := model.Run(input.Model)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Capital cost")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Boiler: %d EUR", out.Capex.Boiler))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Steam turbine: %d EUR", out.Capex.Turbine))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Condenser: %.0f EUR", out.Capex.Condenser))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Pump: %d EUR", out.Capex.Pump))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total capex: %.0f EUR", out.Capex.Total))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Investment metrics")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("NPV: %.2f EUR", out.NPV))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("IRR: %.2f %%", out.IRR*100))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Payback: year %d", out.PaybackYear))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Cash flow by year")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(15, 6, "Year", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, "Cash flow", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 6, "Cumulative", "1", 1, "R", false, 0, "")
	for i := 0; i < out.Ledger.Years; i++ {
		pdf.CellFormat(15, 5, fmt.Sprintf("%d", i), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 5, fmt.Sprintf("%.2f", out.Ledger.CashFlow[i]), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 5, fmt.Sprintf("%.2f", out.Ledger.Cumulative[i]), "1", 1, "R", false, 0, "")
	}

	for _, warning := range out.Warnings {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "WARNING: "+warning, "", "L", false)
	}

	if input.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"feasibility.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
