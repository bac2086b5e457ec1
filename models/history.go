package models

import (
	"sort"
	"time"

	"gorm.io/gorm"
)

// HistoryFilter narrows the round-entry side of the history listing.
// Categoria matches exactly; Subservicio is a case-insensitive substring.
type HistoryFilter struct {
	Categoria   string
	Subservicio string
}

// HistoryItem is one row of the merged history: either a round entry or a
// weekly surgery round, tagged by Tipo.
type HistoryItem struct {
	Tipo          string        `json:"tipo"` // "ronda" | "cirugia"
	Ronda         *RoundEntry   `json:"ronda,omitempty"`
	Cirugia       *SurgeryRound `json:"cirugia,omitempty"`
	FechaCreacion time.Time     `json:"fechaCreacion"`
}

// FilteredRoundEntries returns round entries matching the filter, newest
// first. Shared by the history listing and the exports.
func FilteredRoundEntries(db *gorm.DB, f HistoryFilter) ([]RoundEntry, error) {
	q := db.Model(&RoundEntry{}).Order("created_at DESC")
	if f.Categoria != "" {
		q = q.Where("categoria = ?", f.Categoria)
	}
	if f.Subservicio != "" {
		q = q.Where("subservicio ILIKE ?", "%"+f.Subservicio+"%")
	}
	var entries []RoundEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// History merges round entries and weekly surgery rounds into one
// reverse-chronological sequence by creation timestamp.
func History(db *gorm.DB, f HistoryFilter) ([]HistoryItem, error) {
	entries, err := FilteredRoundEntries(db, f)
	if err != nil {
		return nil, err
	}

	var cirugias []SurgeryRound
	if err := db.Model(&SurgeryRound{}).Order("created_at DESC").Find(&cirugias).Error; err != nil {
		return nil, err
	}

	items := make([]HistoryItem, 0, len(entries)+len(cirugias))
	for i := range entries {
		items = append(items, HistoryItem{Tipo: "ronda", Ronda: &entries[i], FechaCreacion: entries[i].CreatedAt})
	}
	for i := range cirugias {
		items = append(items, HistoryItem{Tipo: "cirugia", Cirugia: &cirugias[i], FechaCreacion: cirugias[i].CreatedAt})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].FechaCreacion.After(items[j].FechaCreacion)
	})
	return items, nil
}
