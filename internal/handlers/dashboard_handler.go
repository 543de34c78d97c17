package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"phaseplan/internal/calendar"
	"phaseplan/internal/models"
	"phaseplan/internal/planner"
)

// notes renders free-text fields as markdown. Raw HTML in the input is omitted.
var notes = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))

// RenderMarkdown converts user-entered markdown to HTML with raw HTML dropped
func RenderMarkdown(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := notes.Convert([]byte(src), &buf); err != nil {
		log.Printf("Error rendering markdown: %v", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// Dashboard renders the planner page
func (h *PlanHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := h.dashboardData(h.stateService.State())
	if err := h.stateService.LastPersistError(); err != nil {
		data.PersistError = err.Error()
	}

	if err := h.templates.ExecuteTemplate(w, "dashboard.tmpl", data); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error rendering dashboard template", err)
	}
}

func (h *PlanHandler) dashboardData(state models.AppState) DashboardViewData {
	data := DashboardViewData{
		Title:    "PhasePlan",
		Today:    calendar.FromTime(h.now()).String(),
		Insights: buildInsights(state),
		Trend:    planner.BuildTrendSeries(state.Logs),
		Settings: state.Settings,
	}

	for wi, week := range state.Weeks {
		view := WeekView{
			Index:      wi,
			Week:       week,
			Guidance:   planner.GuidanceFor(week.Phase, state.Settings),
			Motivation: RenderMarkdown(week.Motivation),
		}
		for di, day := range week.Days {
			view.Days = append(view.Days, DayView{Index: di, Name: models.WeekdayNames[di], Day: day})
		}
		data.Weeks = append(data.Weeks, view)
	}

	for li, row := range state.Logs {
		data.Logs = append(data.Logs, LogView{
			Index:      li,
			Row:        row,
			Suggestion: planner.SuggestFor(row, state.Weeks),
			Guidance:   planner.GuidanceFor(row.Phase, state.Settings),
			RPE:        formatNullable(row.RPE),
			Energy:     formatNullable(row.Energy),
			Sleep:      formatNullable(row.Sleep),
		})
	}
	return data
}
