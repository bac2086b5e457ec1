package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"hpq.in/rondas/config"
	"hpq.in/rondas/middleware"
	"hpq.in/rondas/models"
)

// CreateRoundEntry validates and persists a single service inspection
// entry. Signatures arrive as data-URI strings and are stored as-is on this
// record type. On validation failure nothing is persisted and the submitted
// form is echoed back so the client can re-render it with prior input.
func CreateRoundEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.RoundEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
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
	entry.ID = uuid.Nil
	entry.UsuarioID = usuarioID
	entry.Usuario = nil
	// the creation timestamp is server-assigned; a client-supplied value
	// must not survive into the stored record
	entry.CreatedAt = time.Time{}

	if errs := entry.Validate(); errs != nil {
		writeFormErrors(w, errs, entry)
		return
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		log.Printf("rondas: error al guardar registro: %v", err)
		writeSaveFailure(w, entry)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry)
}

// DeleteRoundEntry removes one round entry. Deleting an id that does not
// exist is treated as already-gone, not an error; a malformed id cannot name
// any record, so it gets the same treatment without touching the store.
func DeleteRoundEntry(w http.ResponseWriter, r *http.Request) {
	if id, err := uuid.Parse(mux.Vars(r)["id"]); err == nil {
		if err := config.DB.Delete(&models.RoundEntry{}, "id = ?", id).Error; err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Registro eliminado correctamente",
	})
}

// writeFormErrors reports field-scoped validation errors plus the submitted
// form state.
func writeFormErrors(w http.ResponseWriter, errs models.FieldErrors, form interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"errors": errs,
		"form":   form,
	})
}

// writeSaveFailure reports a generic storage failure without losing the
// already-entered form data.
func writeSaveFailure(w http.ResponseWriter, form interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": "No se pudo guardar el registro. Intente de nuevo.",
		"form":  form,
	})
}
