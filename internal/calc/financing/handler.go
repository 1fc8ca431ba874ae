package financing

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type DepreciationResult struct {
	Schedule []float64 `json:"schedule"`
	Years    int       `json:"years"`
}

func (h *Handler) Loan(w http.ResponseWriter, r *http.Request) {
	var input LoanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Loan(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Depreciation(w http.ResponseWriter, r *http.Request) {
	var input DepreciationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	schedule, err := Depreciation(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DepreciationResult{Schedule: schedule, Years: len(schedule)})
}
