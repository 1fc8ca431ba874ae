package export

import (
	"encoding/json"
	"fmt"
	"net/http"

	"Plantek/internal/calc/batch"
	"Plantek/internal/calc/model"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

// Results runs the model and streams the results workbook.
func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	var input model.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := model.Run(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	f, err := Workbook(out)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"results.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

// Equipment imports an equipment list from an uploaded xlsx and costs it.
// Expected columns: kind, size, pressure (optional), material factor
// (optional); first row is the header.
func (h *Handler) Equipment(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var items []batch.Item
	for i := 1; i < len(rows); i++ {
		item, err := parseItemRow(rows[i])
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	res, err := batch.Calculate(batch.Input{Items: items})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func parseItemRow(row []string) (batch.Item, error) {
	if len(row) < 2 {
		return batch.Item{}, fmt.Errorf("bad row")
	}
	size, err := toFloat(row[1])
	if err != nil {
		return batch.Item{}, err
	}
	item := batch.Item{Kind: row[0], Size: size}
	if len(row) > 2 && row[2] != "" {
		item.PressureBar, _ = toFloat(row[2])
	}
	if len(row) > 3 && row[3] != "" {
		item.MaterialFactor, _ = toFloat(row[3])
	}
	return item, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
