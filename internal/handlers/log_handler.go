package handlers

import (
	"net/http"

	"phaseplan/internal/models"
	"phaseplan/internal/planner"
	"phaseplan/internal/reducer"
	"phaseplan/internal/validation"
)

type addLogRequest struct {
	Date string `json:"date"`
}

// AddLog appends a log entry, pre-filled from the plan when its date is covered
func (h *PlanHandler) AddLog(w http.ResponseWriter, r *http.Request) {
	var req addLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if invalid(w, validation.ValidateDate("date", req.Date)) {
		return
	}
	h.apply(w, http.StatusCreated, total(func(s models.AppState) models.AppState {
		return reducer.AddLog(s, req.Date)
	}))
}

// RemoveLog deletes the log entry at {li}
func (h *PlanHandler) RemoveLog(w http.ResponseWriter, r *http.Request) {
	li, ok := pathIndex(w, r, "li")
	if !ok {
		return
	}
	h.apply(w, http.StatusOK, func(s models.AppState) (models.AppState, error) {
		return reducer.RemoveLog(s, li)
	})
}

// patchLogRequest mirrors the log form. Numeric fields arrive as the raw
// text typed by the user; anything that is not a finite number clears the field.
type patchLogRequest struct {
	Date     *string       `json:"date"`
	CycleDay *int          `json:"cycleDay"`
	Phase    *models.Phase `json:"phase"`
	Planned  *string       `json:"planned"`
	Actual   *string       `json:"actual"`
	RPE      *string       `json:"rpe"`
	Energy   *string       `json:"energy"`
	Sleep    *string       `json:"sleep"`
	Notes    *string       `json:"notes"`
}

func numberUpdate(raw *string) *models.NumberUpdate {
	if raw == nil {
		return nil
	}
	return &models.NumberUpdate{Value: planner.ParseNullableNumber(*raw)}
}

func (req patchLogRequest) patch() models.LogRowPatch {
	return models.LogRowPatch{
		Date:     req.Date,
		CycleDay: req.CycleDay,
		Phase:    req.Phase,
		Planned:  req.Planned,
		Actual:   req.Actual,
		RPE:      numberUpdate(req.RPE),
		Energy:   numberUpdate(req.Energy),
		Sleep:    numberUpdate(req.Sleep),
		Notes:    req.Notes,
	}
}

// PatchLog updates the log entry at {li}
func (h *PlanHandler) PatchLog(w http.ResponseWriter, r *http.Request) {
	li, ok := pathIndex(w, r, "li")
	if !ok {
		return
	}
	var req patchLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	patch := req.patch()
	if invalid(w, validation.ValidateLogPatch(patch)) {
		return
	}
	h.apply(w, http.StatusOK, func(s models.AppState) (models.AppState, error) {
		return reducer.PatchLog(s, li, patch)
	})
}

// FinalizeLog clamps the numeric fields of the log entry at {li}
func (h *PlanHandler) FinalizeLog(w http.ResponseWriter, r *http.Request) {
	li, ok := pathIndex(w, r, "li")
	if !ok {
		return
	}
	h.apply(w, http.StatusOK, func(s models.AppState) (models.AppState, error) {
		return reducer.FinalizeLog(s, li)
	})
}

// UsePlan copies the planned session into {field} of the log entry at {li}
func (h *PlanHandler) UsePlan(w http.ResponseWriter, r *http.Request) {
	li, ok := pathIndex(w, r, "li")
	if !ok {
		return
	}
	field := reducer.PlanField(r.PathValue("field"))
	h.apply(w, http.StatusOK, func(s models.AppState) (models.AppState, error) {
		return reducer.UsePlan(s, li, field)
	})
}

type suggestResponse struct {
	Date    string `json:"date"`
	Session string `json:"session"`
	Found   bool   `json:"found"`
}

// Suggest looks up the planned session for ?date=
func (h *PlanHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	session, found := planner.FindPlannedSession(date, h.stateService.State().Weeks)
	respondJSON(w, http.StatusOK, suggestResponse{Date: date, Session: session, Found: found})
}

// Insights returns the per-phase averages
func (h *PlanHandler) Insights(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, buildInsights(h.stateService.State()))
}

// Trend returns the dated energy/RPE series
func (h *PlanHandler) Trend(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, planner.BuildTrendSeries(h.stateService.State().Logs))
}
