package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"hpq.in/rondas/utils"
)

type panelResponse struct {
	DiaActual     string             `json:"diaActual"`
	Ahora         time.Time          `json:"ahora"`
	Servicios     utils.Availability `json:"servicios"`
	SurgeryLayout []utils.RoomLayout `json:"surgeryLayout,omitempty"`
}

// GetPanel returns today's applicable service categories and, when the
// surgery rooms are open, the per-room equipment layout. The presentation
// layer renders one entry form per listed subservice.
func GetPanel(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	if !utils.WithinSubmissionHours(now) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "fuera del horario de registro",
			"ahora": now,
		})
		return
	}

	day := utils.WeekdayIndex(now)
	resp := panelResponse{
		DiaActual: utils.SpanishWeekday(now),
		Ahora:     now,
		Servicios: utils.ServicesForWeekday(day),
	}
	if resp.Servicios.SurgeryAvailable {
		resp.SurgeryLayout = utils.SurgeryLayout()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
