package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"hpq.in/rondas/config"
	"hpq.in/rondas/middleware"
	"hpq.in/rondas/models"
	"hpq.in/rondas/utils"
)

// CreateWeeklySurgeryRound validates and persists one weekly aggregate
// surgery submission. Both signatures go through the codec; a signature the
// codec cannot convert is dropped without failing the save.
func CreateWeeklySurgeryRound(w http.ResponseWriter, r *http.Request) {
	var in models.SurgeryRoundInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "invalid token claims", http.StatusUnauthorized)
		return
	}

	if err := in.Validate(); err != nil {
		writeWorkflowError(w, err, in)
		return
	}

	record := in.Record(usuarioID)
	record.FirmaServicio = utils.StoreSignatureDataURI(in.FirmaServicio)
	record.FirmaRonda = utils.StoreSignatureDataURI(in.FirmaRonda)

	if err := config.DB.Create(record).Error; err != nil {
		log.Printf("cirugia: error al guardar formato semanal: %v", err)
		writeSaveFailure(w, in)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

// CreateDailySurgeryRecord validates and persists one per (date, room,
// equipment) daily status record. A second submission for the same key is
// rejected by the store's unique constraint, not by a check-then-insert.
func CreateDailySurgeryRecord(w http.ResponseWriter, r *http.Request) {
	var in models.DailySurgeryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "invalid token claims", http.StatusUnauthorized)
		return
	}

	if err := in.Validate(); err != nil {
		writeWorkflowError(w, err, in)
		return
	}

	record := in.Record(usuarioID, utils.SpanishWeekday(in.Fecha.Time()))
	record.FirmaServicio = utils.StoreSignatureDataURI(in.FirmaServicio)
	record.FirmaRonda = utils.StoreSignatureDataURI(in.FirmaRonda)

	if err := config.DB.Create(record).Error; err != nil {
		if models.IsDuplicateKey(err) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": models.ErrDuplicateRecord.Error(),
				"form":  in,
			})
			return
		}
		log.Printf("cirugia: error al guardar registro diario: %v", err)
		writeSaveFailure(w, in)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

// DeleteSurgeryRound removes one weekly surgery round, idempotent on
// missing and malformed ids.
func DeleteSurgeryRound(w http.ResponseWriter, r *http.Request) {
	if id, err := uuid.Parse(mux.Vars(r)["id"]); err == nil {
		if err := config.DB.Delete(&models.SurgeryRound{}, "id = ?", id).Error; err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Registro de cirugía eliminado correctamente",
	})
}

// writeWorkflowError maps the validation error taxonomy onto the HTTP
// boundary: field maps, single combined messages, and the typed week-start
// and payload errors all come back as 400 with the form echoed.
func writeWorkflowError(w http.ResponseWriter, err error, form interface{}) {
	var fieldErrs models.FieldErrors
	if errors.As(err, &fieldErrs) {
		writeFormErrors(w, fieldErrs, form)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
		"form":  form,
	})
}
