package scenario

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"Plantek/internal/auth"
	"Plantek/internal/calc/model"
	"Plantek/internal/repo"

	"github.com/gorilla/mux"
)

// Handler manages named, per-user sets of saved model inputs.
type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name   string      `json:"name"`
	Params model.Input `json:"params"`
}

type SaveResponse struct {
	ID int `json:"id"`
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Scenario name required", http.StatusBadRequest)
		return
	}
	// Reject parameter sets the model itself would refuse.
	if _, err := model.Run(req.Params); err != nil {
		http.Error(w, "Invalid model parameters", http.StatusBadRequest)
		return
	}

	params, err := json.Marshal(req.Params)
	if err != nil {
		http.Error(w, "Invalid model parameters", http.StatusBadRequest)
		return
	}
	id, err := h.Repo.SaveScenario(r.Context(), userID, req.Name, params)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{ID: id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	scenarios, err := h.Repo.ListScenarios(r.Context(), userID)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scenarios)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.scenarioID(w, r)
	if !ok {
		return
	}
	s, err := h.Repo.GetScenario(r.Context(), userID, id)
	if err == sql.ErrNoRows {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// Run loads a saved scenario and executes the model on it.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.scenarioID(w, r)
	if !ok {
		return
	}
	s, err := h.Repo.GetScenario(r.Context(), userID, id)
	if err == sql.ErrNoRows {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	var input model.Input
	if err := json.Unmarshal(s.Params, &input); err != nil {
		http.Error(w, "Stored parameters are corrupt", http.StatusInternalServerError)
		return
	}
	out, err := model.Run(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.scenarioID(w, r)
	if !ok {
		return
	}
	if err := h.Repo.DeleteScenario(r.Context(), userID, id); err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) scenarioID(w http.ResponseWriter, r *http.Request) (userID, id int, ok bool) {
	userID, authed := auth.UserID(r.Context())
	if !authed {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return 0, 0, false
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid scenario id", http.StatusBadRequest)
		return 0, 0, false
	}
	return userID, id, true
}
