package equipment

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type WilliamInput struct {
	CostRef     float64 `json:"cost_ref"`
	Capacity    float64 `json:"capacity"`
	CapacityRef float64 `json:"capacity_ref"`
	Exponent    float64 `json:"exponent"`
}

type WilliamResult struct {
	CostEUR float64 `json:"cost_eur"`
}

func (h *Handler) Boiler(w http.ResponseWriter, r *http.Request) {
	var input BoilerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Boiler(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Pump(w http.ResponseWriter, r *http.Request) {
	var input PumpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Pump(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) SteamTurbine(w http.ResponseWriter, r *http.Request) {
	var input TurbineInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := SteamTurbine(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) William(w http.ResponseWriter, r *http.Request) {
	var input WilliamInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	cost, err := William(input.CostRef, input.Capacity, input.CapacityRef, input.Exponent)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(WilliamResult{CostEUR: cost})
}
