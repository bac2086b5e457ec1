package models

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIndicators(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT categoria, .* FROM "round_entries" GROUP BY`).
		WillReturnRows(sqlmock.NewRows([]string{"categoria", "total", "con_novedad", "sin_novedad"}).
			AddRow(CategoriaPrioritarios, 10, 4, 6).
			AddRow("obsoleta", 1, 1, 0))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "round_entries" WHERE fuera_de_servicio`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "round_entries" WHERE tiene_eventos_seguridad`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(`SELECT subservicio, .* FROM "round_entries" WHERE fuera_de_servicio .* GROUP BY subservicio, categoria`).
		WillReturnRows(sqlmock.NewRows([]string{"subservicio", "categoria", "total"}).
			AddRow("UNIDAD DE CUIDADOS INTENSIVOS", CategoriaPrioritarios, 2).
			AddRow("Urgencias", CategoriaRondaDiaria, 1))

	mock.ExpectQuery(`SELECT subservicio, .* FROM "round_entries" WHERE tiene_eventos_seguridad .* GROUP BY subservicio, categoria`).
		WillReturnRows(sqlmock.NewRows([]string{"subservicio", "categoria", "total"}))

	semana := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT semana_inicio, .* FROM "surgery_rounds" GROUP BY semana_inicio`).
		WillReturnRows(sqlmock.NewRows([]string{"semana_inicio", "total"}).AddRow(semana, 4))

	ind, err := ComputeIndicators(db)
	require.NoError(t, err)

	require.Len(t, ind.Resumen, 2)
	assert.Equal(t, "Servicios Prioritarios", ind.Resumen[0].Titulo)
	assert.Equal(t, int64(6), ind.Resumen[0].SinNovedad)
	// Unknown categories fall back to the raw key as title.
	assert.Equal(t, "obsoleta", ind.Resumen[1].Titulo)

	assert.Equal(t, int64(3), ind.EquiposFueraServicio)
	assert.Equal(t, int64(2), ind.EventosSeguridad)

	require.Len(t, ind.TopFueraServicio, 2)
	assert.Equal(t, "UNIDAD DE CUIDADOS INTENSIVOS", ind.TopFueraServicio[0].Subservicio)
	assert.Empty(t, ind.TopEventosSeguridad)

	require.Len(t, ind.SemanalCirugia, 1)
	assert.Equal(t, int64(4), ind.SemanalCirugia[0].Total)
	assert.Equal(t, 0, ind.SemanalCirugia[0].SemanaInicio.WeekdayIndex())

	assert.NoError(t, mock.ExpectationsWereMet())
}
