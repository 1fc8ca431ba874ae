package metrics

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type Input struct {
	DiscountRate float64   `json:"discount_rate"`
	CashFlows    []float64 `json:"cash_flows"`
}

type Result struct {
	NPV         float64     `json:"npv"`
	IRR         *float64    `json:"irr,omitempty"`
	PaybackYear int         `json:"payback_year"`
	DCFTable    [][]float64 `json:"dcf_table"`
	Notes       string      `json:"notes,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.CashFlows) == 0 {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	res := Result{
		NPV:         NPV(input.DiscountRate, input.CashFlows),
		PaybackYear: Payback(input.CashFlows),
		DCFTable:    DCFTable(input.DiscountRate, input.CashFlows),
	}
	if irr, err := IRR(input.CashFlows); err != nil {
		res.Notes = err.Error()
	} else {
		res.IRR = &irr
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
