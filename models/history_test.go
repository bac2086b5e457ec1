package models

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestHistoryMergesReverseChronologically(t *testing.T) {
	db, mock := newMockDB(t)

	t1 := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM "round_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "categoria", "subservicio", "sin_novedad", "created_at"}).
			AddRow("0b9f3f7a-57b4-4dc5-a2bb-111111111111", CategoriaPrioritarios, "UNIDAD DE CUIDADOS INTENSIVOS", false, t3).
			AddRow("0b9f3f7a-57b4-4dc5-a2bb-222222222222", CategoriaRondaDiaria, "Urgencias", true, t1))

	mock.ExpectQuery(`SELECT .* FROM "surgery_rounds"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "semana_inicio", "created_at"}).
			AddRow("0b9f3f7a-57b4-4dc5-a2bb-333333333333", t1, t2))

	items, err := History(db, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "ronda", items[0].Tipo)
	assert.Equal(t, t3, items[0].FechaCreacion)
	assert.Equal(t, "cirugia", items[1].Tipo)
	assert.Equal(t, t2, items[1].FechaCreacion)
	assert.Equal(t, "ronda", items[2].Tipo)
	assert.Equal(t, t1, items[2].FechaCreacion)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilteredRoundEntriesAppliesFilters(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "round_entries" WHERE categoria = .* AND subservicio ILIKE .*`).
		WithArgs(CategoriaPrioritarios, "%urgencias%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "categoria", "subservicio", "created_at"}))

	_, err := FilteredRoundEntries(db, HistoryFilter{
		Categoria:   CategoriaPrioritarios,
		Subservicio: "urgencias",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
