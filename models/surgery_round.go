package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SurgeryRound is one weekly aggregate submission for the surgery rooms.
// Datos holds the opaque room/equipment status payload captured by the
// panel; the source imposes no schema beyond "is an object".
type SurgeryRound struct {
	ID                      uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UsuarioID               uuid.UUID      `gorm:"type:uuid;index;not null" json:"usuarioId"`
	Usuario                 *User          `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	SemanaInicio            JSONDate       `gorm:"type:date;index;not null" json:"semanaInicio"`
	Datos                   datatypes.JSON `gorm:"type:jsonb;not null" json:"datos"`
	Observaciones           string         `gorm:"type:text" json:"observaciones"`
	NombreEncargadoServicio string         `gorm:"size:100" json:"nombreEncargadoServicio"`
	NombreEncargadoRonda    string         `gorm:"size:100" json:"nombreEncargadoRonda"`
	FirmaServicio           string         `gorm:"type:text" json:"firmaServicio,omitempty"`
	FirmaRonda              string         `gorm:"type:text" json:"firmaRonda,omitempty"`
	CreatedAt               time.Time      `gorm:"autoCreateTime" json:"fechaCreacion"`
}

func (SurgeryRound) TableName() string { return "surgery_rounds" }

// SurgeryRoundInput is the weekly surgery submission as received from the
// panel. Firma fields carry raw data-URI strings; the handler runs them
// through the signature codec before persisting.
type SurgeryRoundInput struct {
	SemanaInicio            JSONDate        `json:"semanaInicio"`
	Observaciones           string          `json:"observaciones"`
	NombreEncargadoServicio string          `json:"nombreEncargadoServicio"`
	NombreEncargadoRonda    string          `json:"nombreEncargadoRonda"`
	FirmaServicio           string          `json:"firmaServicio"`
	FirmaRonda              string          `json:"firmaRonda"`
	Payload                 json.RawMessage `json:"payload"`
}

// Validate enforces the weekly submission rules: the week-start date must be
// the Monday of the registered week, the payload must be a JSON object, and
// both signer names and signatures are mandatory.
func (in *SurgeryRoundInput) Validate() error {
	if in.SemanaInicio.IsZero() {
		errs := FieldErrors{}
		errs.Add("semana_inicio", "Este campo es requerido.")
		return errs
	}
	if in.SemanaInicio.WeekdayIndex() != 0 {
		return ErrInvalidWeekStart
	}

	errs := FieldErrors{}
	if strings.TrimSpace(in.NombreEncargadoServicio) == "" {
		errs.Add("nombre_encargado_servicio", "Este campo es requerido.")
	}
	if strings.TrimSpace(in.NombreEncargadoRonda) == "" {
		errs.Add("nombre_encargado_ronda", "Este campo es requerido.")
	}
	if strings.TrimSpace(in.FirmaServicio) == "" {
		errs.Add("firma_servicio", "Este campo es requerido.")
	}
	if strings.TrimSpace(in.FirmaRonda) == "" {
		errs.Add("firma_ronda", "Este campo es requerido.")
	}
	if len(errs) > 0 {
		return errs
	}

	var datos map[string]interface{}
	if len(in.Payload) == 0 || json.Unmarshal(in.Payload, &datos) != nil || datos == nil {
		return ErrPayloadFormat
	}
	return nil
}

// Record builds the persistable SurgeryRound for a validated input. The
// signature fields are left empty; the caller attaches the converted image
// paths when the codec succeeds.
func (in *SurgeryRoundInput) Record(usuarioID uuid.UUID) *SurgeryRound {
	return &SurgeryRound{
		UsuarioID:               usuarioID,
		SemanaInicio:            in.SemanaInicio,
		Datos:                   datatypes.JSON(in.Payload),
		Observaciones:           in.Observaciones,
		NombreEncargadoServicio: in.NombreEncargadoServicio,
		NombreEncargadoRonda:    in.NombreEncargadoRonda,
	}
}
