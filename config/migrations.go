package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"hpq.in/rondas/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20240601_create_rounds_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.RoundEntry{},
					&models.SurgeryRound{}, &models.DailySurgeryRecord{})
			},
		},
		{
			ID: "20240610_create_catalog_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Service{}, &models.Room{}, &models.Equipment{})
			},
		},
		{
			// AutoMigrate creates the composite index from the model tags;
			// this keeps older databases honest if the tables predate them.
			ID: "20240612_unique_daily_surgery_record",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_surgery_fecha_sala_equipo
					ON daily_surgery_records (fecha, sala, equipo)`).Error
			},
		},
	})
	return m.Migrate()
}
