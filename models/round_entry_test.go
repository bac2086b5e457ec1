package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundEntryValidateRequiresSignerNames(t *testing.T) {
	entry := RoundEntry{
		Categoria:   CategoriaPrioritarios,
		Subservicio: "UNIDAD DE CUIDADOS INTENSIVOS",
		Hallazgo:    "Monitor con pantalla dañada",
		SinNovedad:  false,
	}

	errs := entry.Validate()
	assert.NotNil(t, errs)
	assert.Contains(t, errs, "nombre_encargado_servicio")
	assert.Contains(t, errs, "nombre_encargado_ronda")
}

func TestRoundEntryValidateSinNovedadSkipsSignerNames(t *testing.T) {
	entry := RoundEntry{
		Categoria:   CategoriaRondaDiaria,
		Subservicio: "Urgencias",
		SinNovedad:  true,
	}

	assert.Nil(t, entry.Validate())
}

func TestRoundEntryValidateRequiresCategoryAndSubservice(t *testing.T) {
	entry := RoundEntry{SinNovedad: true}

	errs := entry.Validate()
	assert.NotNil(t, errs)
	assert.Contains(t, errs, "categoria")
	assert.Contains(t, errs, "subservicio")
}

func TestRoundEntryApplyDefaultsSinNovedad(t *testing.T) {
	entry := RoundEntry{
		Categoria:   CategoriaSedesExternas,
		Subservicio: "Intelectus",
		SinNovedad:  true,
	}
	entry.ApplyDefaults()

	assert.Equal(t, SinNovedadPlaceholder, entry.Hallazgo)
	assert.Equal(t, SinNovedadPlaceholder, entry.PlacaEquipo)
	assert.Equal(t, SinNovedadPlaceholder, entry.EventosSeguridad)
	assert.Empty(t, entry.OrdenTrabajo)
}

func TestRoundEntryApplyDefaultsKeepsProvidedValues(t *testing.T) {
	entry := RoundEntry{
		SinNovedad: true,
		Hallazgo:   "Revisión rutinaria",
	}
	entry.ApplyDefaults()
	assert.Equal(t, "Revisión rutinaria", entry.Hallazgo)
}

func TestRoundEntryApplyDefaultsNoopWithFindings(t *testing.T) {
	entry := RoundEntry{SinNovedad: false}
	entry.ApplyDefaults()
	assert.Empty(t, entry.Hallazgo)
	assert.Empty(t, entry.PlacaEquipo)
}

func TestRoundEntryLabels(t *testing.T) {
	entry := RoundEntry{SinNovedad: true}
	assert.Equal(t, "Sin novedad", entry.EstadoLabel())
	assert.Equal(t, "No", entry.EventosLabel())

	entry = RoundEntry{TieneEventosSeguridad: true}
	assert.Equal(t, "Con novedad", entry.EstadoLabel())
	assert.Equal(t, "Sí", entry.EventosLabel())

	entry.EventosSeguridad = "Caída de paciente"
	assert.Equal(t, "Sí: Caída de paciente", entry.EventosLabel())
}
