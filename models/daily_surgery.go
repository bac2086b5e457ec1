package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Equipment operational states.
const (
	EstadoOperativoCompleto = "operativo_completo"
	EstadoOperativoParcial  = "operativo_parcial"
	EstadoFueraDeServicio   = "fuera_de_servicio"
)

// DailySurgeryRecord is one per-day status record for a single piece of
// equipment in a surgery room. The composite unique index makes the store
// reject a second submission for the same (fecha, sala, equipo) atomically
// on insert; concurrent duplicates cannot both succeed.
type DailySurgeryRecord struct {
	ID                      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UsuarioID               uuid.UUID `gorm:"type:uuid;index;not null" json:"usuarioId"`
	Usuario                 *User     `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	Fecha                   JSONDate  `gorm:"type:date;not null;uniqueIndex:idx_daily_surgery_fecha_sala_equipo,priority:1" json:"fecha"`
	DiaSemana               string    `gorm:"size:20" json:"diaSemana"`
	Sala                    string    `gorm:"size:10;not null;uniqueIndex:idx_daily_surgery_fecha_sala_equipo,priority:2" json:"sala"`
	Equipo                  string    `gorm:"size:100;not null;uniqueIndex:idx_daily_surgery_fecha_sala_equipo,priority:3" json:"equipo"`
	EquipoEnUso             bool      `gorm:"default:true" json:"equipoEnUso"`
	EstadoEquipo            string    `gorm:"size:20" json:"estadoEquipo"`
	Observaciones           string    `gorm:"type:text" json:"observaciones"`
	NombreEncargadoServicio string    `gorm:"size:100" json:"nombreEncargadoServicio"`
	NombreEncargadoRonda    string    `gorm:"size:100" json:"nombreEncargadoRonda"`
	FirmaServicio           string    `gorm:"type:text" json:"firmaServicio,omitempty"`
	FirmaRonda              string    `gorm:"type:text" json:"firmaRonda,omitempty"`
	CreatedAt               time.Time `gorm:"autoCreateTime" json:"fechaCreacion"`
}

func (DailySurgeryRecord) TableName() string { return "daily_surgery_records" }

// DailySurgeryInput is the daily equipment submission as received from the
// panel. Firma fields carry raw data-URI strings.
type DailySurgeryInput struct {
	Fecha                   JSONDate `json:"fecha"`
	Sala                    string   `json:"sala"`
	Equipo                  string   `json:"equipo"`
	EquipoEnUso             bool     `json:"equipoEnUso"`
	EstadoEquipo            string   `json:"estadoEquipo"`
	Observaciones           string   `json:"observaciones"`
	NombreEncargadoServicio string   `json:"nombreEncargadoServicio"`
	NombreEncargadoRonda    string   `json:"nombreEncargadoRonda"`
	FirmaServicio           string   `json:"firmaServicio"`
	FirmaRonda              string   `json:"firmaRonda"`
}

// Validate reports the first violated rule as a single combined message;
// the daily form surfaces one error at a time.
func (in *DailySurgeryInput) Validate() error {
	if in.Fecha.IsZero() {
		return &ValidationError{Message: "Debe indicar la fecha del registro."}
	}
	if strings.TrimSpace(in.Sala) == "" || strings.TrimSpace(in.Equipo) == "" {
		return &ValidationError{Message: "Debe indicar la sala y el equipo."}
	}
	if in.EquipoEnUso {
		if in.EstadoEquipo == "" {
			return &ValidationError{Message: "Debe seleccionar el estado del equipo cuando está en uso."}
		}
		if strings.TrimSpace(in.NombreEncargadoServicio) == "" {
			return &ValidationError{Message: "Debe ingresar el nombre del encargado del servicio."}
		}
		if strings.TrimSpace(in.NombreEncargadoRonda) == "" {
			return &ValidationError{Message: "Debe ingresar el nombre del encargado de la ronda."}
		}
	}
	return nil
}

// Record builds the persistable DailySurgeryRecord for a validated input,
// computing the Spanish weekday label server-side from the date.
func (in *DailySurgeryInput) Record(usuarioID uuid.UUID, diaSemana string) *DailySurgeryRecord {
	return &DailySurgeryRecord{
		UsuarioID:               usuarioID,
		Fecha:                   in.Fecha,
		DiaSemana:               diaSemana,
		Sala:                    in.Sala,
		Equipo:                  in.Equipo,
		EquipoEnUso:             in.EquipoEnUso,
		EstadoEquipo:            in.EstadoEquipo,
		Observaciones:           in.Observaciones,
		NombreEncargadoServicio: in.NombreEncargadoServicio,
		NombreEncargadoRonda:    in.NombreEncargadoRonda,
	}
}
