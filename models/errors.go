package models

import (
	"errors"
	"sort"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// FieldErrors collects validation messages keyed by form field. It is both
// the map the handlers serialize back to the client and an error value.
type FieldErrors map[string][]string

// Add appends a message to one field's error list.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(e))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], "; "))
	}
	return strings.Join(parts, ", ")
}

// ValidationError is a single combined validation message, used by the daily
// surgery workflow where the form surfaces one error at a time.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Sentinel errors for the surgery workflows.
var (
	// ErrInvalidWeekStart rejects weekly submissions not anchored on a Monday.
	ErrInvalidWeekStart = errors.New("La semana debe iniciar en lunes.")

	// ErrPayloadFormat rejects weekly payloads that are not a JSON object.
	ErrPayloadFormat = errors.New("El formato de los datos de cirugía no es válido.")

	// ErrDuplicateRecord reports a second daily submission for the same
	// (fecha, sala, equipo) key.
	ErrDuplicateRecord = errors.New("Ya existe un registro para esta fecha, sala y equipo.")
)

// IsDuplicateKey reports whether err is a unique-constraint violation,
// whichever layer surfaced it.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}
