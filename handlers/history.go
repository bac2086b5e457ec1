package handlers

import (
	"encoding/json"
	"net/http"

	"hpq.in/rondas/config"
	"hpq.in/rondas/models"
)

func historyFilterFromQuery(r *http.Request) models.HistoryFilter {
	return models.HistoryFilter{
		Categoria:   r.URL.Query().Get("categoria"),
		Subservicio: r.URL.Query().Get("subservicio"),
	}
}

// GetHistory lists round entries and weekly surgery rounds merged into one
// reverse-chronological sequence.
func GetHistory(w http.ResponseWriter, r *http.Request) {
	items, err := models.History(config.DB, historyFilterFromQuery(r))
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"registros":  items,
		"categorias": models.CategoriaTitles,
	})
}

// GetIndicators serves the aggregate counters for the indicators view.
func GetIndicators(w http.ResponseWriter, r *http.Request) {
	ind, err := models.ComputeIndicators(config.DB)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ind)
}
