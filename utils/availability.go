package utils

import (
	"sort"
	"time"
)

// Weekday indexes run Monday=0 .. Sunday=6 throughout.

// Always-available category lists.
var Prioritarios = []string{
	"UNIDAD DE RECIÉN NACIDOS (CUIDADOS INTERMEDIOS)",
	"UNIDAD DE RECIÉN NACIDOS (CUIDADOS INTENSIVOS)",
	"UNIDAD DE CUIDADOS INTENSIVOS",
	"UNIDAD DE CUIDADO INTENSIVO PEDIÁTRICO",
}

var SedesExternas = []string{
	"Cuidados Paliativos",
	"Calle 41",
	"Intelectus",
}

// Day-dependent service lists. Days absent from a table get nothing.
var rondaDiariaPorDia = map[int][]string{
	0: {"Urgencias", "Salud Mental", "Trasplante de Médula"},
	1: {"Oftalmología", "Neurociencias", "Patología", "Radiología", "Hospitalización Aislamiento", "Sexto Centro", "Medicina Nuclear"},
	2: {"Urgencias", "Oncología", "Hemato-Oncología", "Gastroenterología"},
	3: {"Neumología", "Nefrología", "Cardiología", "Medicina Interna", "Neurología", "Otorrino"},
	4: {"Urgencias", "Consulta Externa", "Pediatría", "9 Piso"},
}

var servicioSalasPorDia = map[int][]string{
	0: {"Hospitalización Cirugía", "Lactario", "Central de Esterilización", "SIPE"},
	2: {"Central de Esterilización", "Neurociencias", "SIPE"},
	4: {"Central de Esterilización", "SIPE"},
}

// Clinical lab rounds only happen on Mondays.
var laboratorioClinico = []string{
	"LC - ALMACÉN", "LC - MICROBIOLOGÍA", "LC - BIOLOGÍA MOLECULAR", "LC - CITOMETRÍA DE FLUJO",
	"LC - INMUNOLOGÍA", "LC - HEMATOLOGÍA", "LC - QUÍMICA", "LC - TAMIZAJE",
	"LC - REFERENCIA Y CONTRAREFERENCIA", "LC - SERVICIO TRANSFUSIONAL", "LC - TOMA DE MUESTRAS", "LC - ERRORES INNATOS",
}

// Surgery rooms appear Monday through Saturday.
var surgeryAvailableDays = map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true}

var SpanishWeekdays = []string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

var SurgeryRooms = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14"}

var SurgeryEquipment = []string{
	"Máquina",
	"Presión bala de oxígeno (O₂)",
	"Monitor",
	"Mesa",
	"Lámpara",
	"Electrobisturí",
	"Microscopio",
	"Otros",
}

// Availability is the set of services applicable on one weekday, plus the
// full reference lists used to populate dropdowns.
type Availability struct {
	Prioritarios          []string `json:"prioritarios"`
	RondaDiaria           []string `json:"rondaDiaria"`
	ServicioSalas         []string `json:"servicioSalas"`
	LaboratorioClinico    []string `json:"laboratorioClinico"`
	SedesExternas         []string `json:"sedesExternas"`
	SurgeryAvailable      bool     `json:"surgeryAvailable"`
	AllRondaDiaria        []string `json:"todosRondaDiaria"`
	AllServicioSalas      []string `json:"todosServicioSalas"`
	AllLaboratorioClinico []string `json:"todosLaboratorioClinico"`
}

// ServicesForWeekday resolves the static rule tables for one weekday
// (0=Monday .. 6=Sunday). Pure lookup, no external state.
func ServicesForWeekday(day int) Availability {
	return Availability{
		Prioritarios:          copyList(Prioritarios),
		RondaDiaria:           copyList(rondaDiariaPorDia[day]),
		ServicioSalas:         copyList(servicioSalasPorDia[day]),
		LaboratorioClinico:    labForDay(day),
		SedesExternas:         copyList(SedesExternas),
		SurgeryAvailable:      SurgeryAvailableOn(day),
		AllRondaDiaria:        sortedUnion(rondaDiariaPorDia),
		AllServicioSalas:      sortedUnion(servicioSalasPorDia),
		AllLaboratorioClinico: copyList(laboratorioClinico),
	}
}

func labForDay(day int) []string {
	if day != 0 {
		return nil
	}
	return copyList(laboratorioClinico)
}

// SurgeryAvailableOn reports whether the surgery room forms are shown on the
// given weekday.
func SurgeryAvailableOn(day int) bool {
	return surgeryAvailableDays[day]
}

// RoomLayout is one surgery room with its applicable equipment list.
type RoomLayout struct {
	Sala    string   `json:"sala"`
	Equipos []string `json:"equipos"`
}

// SurgeryLayout returns the per-room equipment checklists. The microscope is
// installed only in room 1.
func SurgeryLayout() []RoomLayout {
	layout := make([]RoomLayout, 0, len(SurgeryRooms))
	for _, sala := range SurgeryRooms {
		equipos := make([]string, 0, len(SurgeryEquipment))
		for _, equipo := range SurgeryEquipment {
			if equipo == "Microscopio" && sala != "1" {
				continue
			}
			equipos = append(equipos, equipo)
		}
		layout = append(layout, RoomLayout{Sala: sala, Equipos: equipos})
	}
	return layout
}

// WeekdayIndex converts a time.Time to the Monday=0 convention.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// SpanishWeekday returns the Spanish name of t's weekday.
func SpanishWeekday(t time.Time) string {
	return SpanishWeekdays[WeekdayIndex(t)]
}

// WithinSubmissionHours reports whether the panel accepts submissions at the
// given moment: 07:00 through 00:59.
func WithinSubmissionHours(t time.Time) bool {
	hour := t.Hour()
	return hour >= 7 || hour == 0
}

func copyList(src []string) []string {
	if src == nil {
		return nil
	}
	return append([]string(nil), src...)
}

func sortedUnion(tables map[int][]string) []string {
	seen := map[string]bool{}
	for _, list := range tables {
		for _, s := range list {
			seen[s] = true
		}
	}
	union := make([]string, 0, len(seen))
	for s := range seen {
		union = append(union, s)
	}
	sort.Strings(union)
	return union
}
