package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reference catalog for structured equipment tracking. These entities back
// the read-only catalog endpoints; the round workflows keep accepting
// free-form identifiers and are not validated against them yet.

type Service struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string         `gorm:"size:200;not null" json:"name"`
	Category string         `gorm:"size:20;not null" json:"category"` // PRIORITARIO, DIARIA, SALAS, LAB, SEDES
	DayRules datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"dayRules,omitempty"`
	Active   bool           `gorm:"default:true" json:"active"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Room struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Number    string    `gorm:"size:50;not null" json:"number"`
	Name      string    `gorm:"size:200" json:"name,omitempty"`
	RoomType  string    `gorm:"size:20;default:otro" json:"roomType"` // sala_cirugia, habitacion, consulta, laboratorio, otro
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Service   *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Active    bool      `gorm:"default:true" json:"active"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type Equipment struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	PlateNumber string         `gorm:"size:100" json:"plateNumber,omitempty"`
	RoomID      *uuid.UUID     `gorm:"type:uuid;index" json:"roomId,omitempty"`
	Room        *Room          `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	ServiceID   uuid.UUID      `gorm:"type:uuid;index;not null" json:"serviceId"`
	Service     *Service       `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Status      string         `gorm:"size:20;default:operativo_completo" json:"status"`
	Tags        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags,omitempty"`
	Active      bool           `gorm:"default:true" json:"active"`
}

func (e *Equipment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (Equipment) TableName() string { return "equipments" }
