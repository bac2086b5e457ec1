package handlers

import (
	"encoding/json"
	"net/http"

	"hpq.in/rondas/config"
	"hpq.in/rondas/models"
)

// Read-only catalog endpoints. The round workflows do not validate against
// these yet; they back dropdowns and future structured equipment tracking.

func GetServices(w http.ResponseWriter, r *http.Request) {
	var services []models.Service
	if err := config.DB.Where("active = ?", true).Order("name").Find(&services).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services)
}

func GetRooms(w http.ResponseWriter, r *http.Request) {
	var rooms []models.Room
	if err := config.DB.Where("active = ?", true).Order("number").Find(&rooms).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rooms)
}

func GetEquipment(w http.ResponseWriter, r *http.Request) {
	q := config.DB.Where("active = ?", true).Order("name")
	if roomID := r.URL.Query().Get("roomId"); roomID != "" {
		q = q.Where("room_id = ?", roomID)
	}
	var equipment []models.Equipment
	if err := q.Find(&equipment).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(equipment)
}
