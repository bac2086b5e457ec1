package models

import (
	"gorm.io/gorm"
)

// CategorySummary aggregates round entries for one category.
type CategorySummary struct {
	Categoria  string `json:"categoria"`
	Titulo     string `json:"titulo"`
	Total      int64  `json:"total"`
	ConNovedad int64  `json:"conNovedad"`
	SinNovedad int64  `json:"sinNovedad"`
}

// TopSubservicio is one row of the top-5 rankings.
type TopSubservicio struct {
	Subservicio string `json:"subservicio"`
	Categoria   string `json:"categoria"`
	Total       int64  `json:"total"`
}

// WeeklySurgeryCount is the number of weekly surgery submissions anchored on
// one week-start Monday.
type WeeklySurgeryCount struct {
	SemanaInicio JSONDate `json:"semanaInicio"`
	Total        int64    `json:"total"`
}

// Indicators is the aggregate view served to administrators.
type Indicators struct {
	Resumen              []CategorySummary    `json:"resumen"`
	EquiposFueraServicio int64                `json:"equiposFueraServicio"`
	EventosSeguridad     int64                `json:"eventosSeguridad"`
	TopFueraServicio     []TopSubservicio     `json:"topFueraServicio"`
	TopEventosSeguridad  []TopSubservicio     `json:"topEventosSeguridad"`
	SemanalCirugia       []WeeklySurgeryCount `json:"semanalCirugia"`
}

// ComputeIndicators runs the aggregate count queries grouped by category and
// subservice, plus the trailing 12-week surgery submission trend.
func ComputeIndicators(db *gorm.DB) (*Indicators, error) {
	ind := &Indicators{}

	err := db.Model(&RoundEntry{}).
		Select("categoria",
			"COUNT(*) AS total",
			"COUNT(*) FILTER (WHERE NOT sin_novedad) AS con_novedad",
			"COUNT(*) FILTER (WHERE sin_novedad) AS sin_novedad").
		Group("categoria").
		Order("categoria").
		Scan(&ind.Resumen).Error
	if err != nil {
		return nil, err
	}
	for i := range ind.Resumen {
		ind.Resumen[i].Titulo = CategoriaTitles[ind.Resumen[i].Categoria]
		if ind.Resumen[i].Titulo == "" {
			ind.Resumen[i].Titulo = ind.Resumen[i].Categoria
		}
	}

	// fuera_de_servicio is a free-text note; any non-empty value counts.
	err = db.Model(&RoundEntry{}).
		Where("fuera_de_servicio <> ''").
		Count(&ind.EquiposFueraServicio).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&RoundEntry{}).
		Where("tiene_eventos_seguridad = ?", true).
		Count(&ind.EventosSeguridad).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&RoundEntry{}).
		Select("subservicio", "categoria", "COUNT(*) AS total").
		Where("fuera_de_servicio <> ''").
		Group("subservicio, categoria").
		Order("total DESC").
		Limit(5).
		Scan(&ind.TopFueraServicio).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&RoundEntry{}).
		Select("subservicio", "categoria", "COUNT(*) AS total").
		Where("tiene_eventos_seguridad = ?", true).
		Group("subservicio, categoria").
		Order("total DESC").
		Limit(5).
		Scan(&ind.TopEventosSeguridad).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&SurgeryRound{}).
		Select("semana_inicio", "COUNT(*) AS total").
		Group("semana_inicio").
		Order("semana_inicio DESC").
		Limit(12).
		Scan(&ind.SemanalCirugia).Error
	if err != nil {
		return nil, err
	}

	return ind, nil
}
