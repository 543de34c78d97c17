package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"phaseplan/internal/calendar"
	"phaseplan/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func attachment(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
}

// ExportWorkbook downloads the plan, log and insights as a spreadsheet
func (h *PlanHandler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.reportService.WriteWorkbook(&buf, h.stateService.State()); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error building workbook", err)
		return
	}
	attachment(w, xlsxContentType, "plan.xlsx")
	w.Write(buf.Bytes())
}

// ExportCalendar downloads the planned sessions as an iCalendar feed
func (h *PlanHandler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	events := calendar.PlanEvents(h.stateService.State().Weeks)
	attachment(w, "text/calendar; charset=utf-8", "plan.ics")
	w.Write([]byte(calendar.GenerateICS(events, h.now())))
}

func requestFormat(r *http.Request) service.Format {
	if f := r.URL.Query().Get("format"); f == "yaml" || f == "yml" {
		return service.FormatYAML
	}
	return service.FormatJSON
}

// ExportBackup downloads the full state envelope as JSON or ?format=yaml
func (h *PlanHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	format := requestFormat(r)
	var buf bytes.Buffer
	if _, err := h.backupService.WriteBackup(&buf, format); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error exporting backup", err)
		return
	}

	filename := fmt.Sprintf("phaseplan_%s.%s", h.now().Format("20060102"), format)
	contentType := "application/json"
	if format == service.FormatYAML {
		contentType = "application/yaml"
	}
	attachment(w, contentType, filename)
	w.Write(buf.Bytes())
}

// ImportBackup replaces the whole state with the uploaded envelope
func (h *PlanHandler) ImportBackup(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if _, err := h.backupService.ImportFromReader(body, requestFormat(r)); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid backup", "Error importing backup", err)
		return
	}
	respondJSON(w, http.StatusOK, h.stateService.State())
}
