package config

import (
	"log"

	"hpq.in/rondas/models"
	"hpq.in/rondas/utils"
)

// SeedCatalog populates the reference catalog with the surgery rooms and
// their equipment. Skips if the catalog already has data. User provisioning
// is deliberately not seeded here; accounts and credentials come from the
// deployment.
func SeedCatalog() {
	var count int64
	if err := DB.Model(&models.Service{}).Count(&count).Error; err != nil {
		log.Printf("Warning: could not inspect catalog: %v", err)
		return
	}
	if count > 0 {
		log.Println("Catalog already seeded, skipping")
		return
	}

	service := models.Service{
		Name:     "Salas de Cirugía",
		Category: "SALAS",
		Active:   true,
	}
	if err := DB.Create(&service).Error; err != nil {
		log.Printf("Warning: could not seed surgery service: %v", err)
		return
	}

	for _, layout := range utils.SurgeryLayout() {
		room := models.Room{
			Number:    layout.Sala,
			Name:      "Sala de cirugía " + layout.Sala,
			RoomType:  "sala_cirugia",
			ServiceID: service.ID,
			Active:    true,
		}
		if err := DB.Create(&room).Error; err != nil {
			log.Printf("Warning: could not seed room %s: %v", layout.Sala, err)
			continue
		}
		for _, name := range layout.Equipos {
			roomID := room.ID
			equipment := models.Equipment{
				Name:      name,
				RoomID:    &roomID,
				ServiceID: service.ID,
				Status:    models.EstadoOperativoCompleto,
				Active:    true,
			}
			if err := DB.Create(&equipment).Error; err != nil {
				log.Printf("Warning: could not seed equipment %s (sala %s): %v", name, layout.Sala, err)
			}
		}
	}
	log.Println("Catalog seeding complete")
}
