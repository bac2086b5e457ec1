package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"hpq.in/rondas/config"
	"hpq.in/rondas/models"
)

var exportHeader = []interface{}{
	"Fecha", "Categoría", "Servicio", "Hallazgo", "Eventos", "Placa", "Orden",
	"Nombre Encargado Servicio", "Tiene Firma Servicio",
	"Nombre Encargado Ronda", "Tiene Firma Ronda", "Estado",
}

// ExportHistory downloads the filtered round history. The default format is
// an Excel workbook; ?format=txt requests the delimited plain-text variant
// directly, and any workbook generation failure degrades to the same
// plain-text download instead of failing the request.
func ExportHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := models.FilteredRoundEntries(config.DB, historyFilterFromQuery(r))
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "txt" {
		writeHistoryText(w, entries)
		return
	}

	buf, err := buildHistoryWorkbook(entries)
	if err != nil {
		log.Printf("export: no se pudo generar el Excel, degradando a texto: %v", err)
		writeHistoryText(w, entries)
		return
	}

	filename := fmt.Sprintf("historial_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func buildHistoryWorkbook(entries []models.RoundEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, err
	}
	for i, e := range entries {
		row := exportRow(&e)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}

func exportRow(e *models.RoundEntry) []interface{} {
	return []interface{}{
		e.CreatedAt.Format("02/01/2006 15:04"),
		categoriaTitle(e.Categoria),
		e.Subservicio,
		e.Hallazgo,
		e.EventosLabel(),
		e.PlacaEquipo,
		e.OrdenTrabajo,
		e.NombreEncargadoServicio,
		siNo(e.FirmaServicio != ""),
		e.NombreEncargadoRonda,
		siNo(e.FirmaRonda != ""),
		e.EstadoLabel(),
	}
}

// writeHistoryText is the degraded export path: a tab-delimited plain-text
// download with the same columns.
func writeHistoryText(w http.ResponseWriter, entries []models.RoundEntry) {
	var buf bytes.Buffer
	for i, h := range exportHeader {
		if i > 0 {
			buf.WriteByte('\t')
		}
		fmt.Fprint(&buf, h)
	}
	buf.WriteByte('\n')
	for i := range entries {
		for j, v := range exportRow(&entries[i]) {
			if j > 0 {
				buf.WriteByte('\t')
			}
			fmt.Fprint(&buf, v)
		}
		buf.WriteByte('\n')
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=historial.txt")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func categoriaTitle(key string) string {
	if title, ok := models.CategoriaTitles[key]; ok {
		return title
	}
	return key
}

func siNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}
