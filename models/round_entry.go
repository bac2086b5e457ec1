package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Round categories. The keys match the values stored in the categoria
// column and sent by the panel forms.
const (
	CategoriaPrioritarios  = "prioritarios"
	CategoriaRondaDiaria   = "ronda_diaria"
	CategoriaServicioSalas = "servicio_salas"
	CategoriaLaboratorio   = "laboratorio_clinico"
	CategoriaSedesExternas = "sedes_externas"
	CategoriaCirugia       = "cirugia"
)

// CategoriaTitles maps category keys to their display titles, used by the
// history and indicators responses.
var CategoriaTitles = map[string]string{
	CategoriaPrioritarios:  "Servicios Prioritarios",
	CategoriaRondaDiaria:   "Ronda Diaria",
	CategoriaServicioSalas: "Servicio de Salas",
	CategoriaLaboratorio:   "Laboratorio Clínico",
	CategoriaSedesExternas: "Sedes Externas",
	CategoriaCirugia:       "Cirugías",
}

// SinNovedadPlaceholder is the fixed text substituted into the optional
// fields of a round submitted with nothing to report.
const SinNovedadPlaceholder = "Sin novedad"

// RoundEntry is one inspection of a single service or subservice. Records
// are append-only: created by the round workflow, never updated, deleted
// only by an administrator.
type RoundEntry struct {
	ID                      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UsuarioID               uuid.UUID `gorm:"type:uuid;index;not null" json:"usuarioId"`
	Usuario                 *User     `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	Categoria               string    `gorm:"size:32;index;not null" json:"categoria"`
	Subservicio             string    `gorm:"size:100;not null" json:"subservicio"`
	Hallazgo                string    `gorm:"type:text" json:"hallazgo"`
	PlacaEquipo             string    `gorm:"size:100" json:"placaEquipo"`
	OrdenTrabajo            string    `gorm:"size:100" json:"ordenTrabajo"`
	TieneEventosSeguridad   bool      `gorm:"default:false" json:"tieneEventosSeguridad"`
	EventosSeguridad        string    `gorm:"type:text" json:"eventosSeguridad"`
	FueraDeServicio         string    `gorm:"size:200" json:"fueraDeServicio"`
	NombreEncargadoServicio string    `gorm:"size:100" json:"nombreEncargadoServicio"`
	FirmaServicio           string    `gorm:"type:text" json:"firmaServicio,omitempty"`
	NombreEncargadoRonda    string    `gorm:"size:100" json:"nombreEncargadoRonda"`
	FirmaRonda              string    `gorm:"type:text" json:"firmaRonda,omitempty"`
	SinNovedad              bool      `gorm:"default:false" json:"sinNovedad"`
	CreatedAt               time.Time `gorm:"autoCreateTime" json:"fechaCreacion"`
}

func (RoundEntry) TableName() string { return "round_entries" }

// Validate checks the entry before persisting. Categoria and subservicio are
// accepted as opaque identifiers; they are not cross-checked against the
// availability tables (late submissions for a service that rotated off the
// weekday list must still be accepted). Signer names are only mandatory when
// the round has findings.
func (e *RoundEntry) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(e.Categoria) == "" {
		errs.Add("categoria", "Este campo es requerido.")
	}
	if strings.TrimSpace(e.Subservicio) == "" {
		errs.Add("subservicio", "Este campo es requerido.")
	}
	if !e.SinNovedad {
		if strings.TrimSpace(e.NombreEncargadoServicio) == "" {
			errs.Add("nombre_encargado_servicio", "Este campo es requerido.")
		}
		if strings.TrimSpace(e.NombreEncargadoRonda) == "" {
			errs.Add("nombre_encargado_ronda", "Este campo es requerido.")
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ApplyDefaults fills the placeholder text on a sin-novedad entry so the
// stored record reads consistently in history and exports.
func (e *RoundEntry) ApplyDefaults() {
	if !e.SinNovedad {
		return
	}
	if e.Hallazgo == "" {
		e.Hallazgo = SinNovedadPlaceholder
	}
	if e.PlacaEquipo == "" {
		e.PlacaEquipo = SinNovedadPlaceholder
	}
	if e.EventosSeguridad == "" {
		e.EventosSeguridad = SinNovedadPlaceholder
	}
}

func (e *RoundEntry) BeforeCreate(tx *gorm.DB) error {
	e.ApplyDefaults()
	return nil
}

// EstadoLabel renders the sin-novedad flag the way history exports print it.
func (e *RoundEntry) EstadoLabel() string {
	if e.SinNovedad {
		return "Sin novedad"
	}
	return "Con novedad"
}

// EventosLabel summarizes the safety-event flag and description in one cell.
func (e *RoundEntry) EventosLabel() string {
	if !e.TieneEventosSeguridad {
		return "No"
	}
	if e.EventosSeguridad != "" {
		return "Sí: " + e.EventosSeguridad
	}
	return "Sí"
}
