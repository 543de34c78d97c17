package handlers

import (
	"html/template"
	"net/http"
	"time"

	"phaseplan/internal/calendar"
	"phaseplan/internal/models"
	"phaseplan/internal/reducer"
	"phaseplan/internal/service"
	"phaseplan/internal/validation"
)

// PlanHandler serves the dashboard and the JSON API over the app state
type PlanHandler struct {
	stateService  *service.StateService
	backupService *service.BackupService
	reportService *service.ReportService
	templates     *template.Template
	now           func() time.Time
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(stateService *service.StateService, backupService *service.BackupService, reportService *service.ReportService, templates *template.Template) *PlanHandler {
	return &PlanHandler{
		stateService:  stateService,
		backupService: backupService,
		reportService: reportService,
		templates:     templates,
		now:           time.Now,
	}
}

// apply runs fn and writes the resulting state, or the mapped error
func (h *PlanHandler) apply(w http.ResponseWriter, status int, fn reducer.Func) {
	state, err := h.stateService.Apply(fn)
	if err != nil {
		respondWithStateError(w, err)
		return
	}
	respondJSON(w, status, state)
}

func total(fn func(models.AppState) models.AppState) reducer.Func {
	return func(s models.AppState) (models.AppState, error) {
		return fn(s), nil
	}
}

// invalid writes a 400 for a failed validation
func invalid(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
	return true
}

// GetState returns the whole app state
func (h *PlanHandler) GetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.stateService.State())
}

type healthResponse struct {
	Status       string `json:"status"`
	PersistError string `json:"persistError,omitempty"`
}

// Health reports whether the last save reached storage
func (h *PlanHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	if err := h.stateService.LastPersistError(); err != nil {
		resp.Status = "degraded"
		resp.PersistError = err.Error()
	}
	respondJSON(w, http.StatusOK, resp)
}

type addWeekRequest struct {
	WeekStart *string `json:"weekStart"`
}

// AddWeek appends a week. Without a weekStart the current week's Monday is used.
func (h *PlanHandler) AddWeek(w http.ResponseWriter, r *http.Request) {
	var req addWeekRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	start := calendar.MondayOf(h.now())
	if req.WeekStart != nil {
		start = *req.WeekStart
	}
	if invalid(w, validation.ValidateDate("weekStart", start)) {
		return
	}
	h.apply(w, http.StatusCreated, total(func(s models.AppState) models.AppState {
		return reducer.AddWeek(s, start)
	}))
}

// RemoveWeek deletes the week at {wi}
func (h *PlanHandler) RemoveWeek(w http.ResponseWriter, r *http.Request) {
	wi, ok := pathIndex(w, r, "wi")
	if !ok {
		return
	}
	h.apply(w, http.StatusOK, func(s models.AppState) (models.AppState, error) {
		return reducer.RemoveWeek(s, wi)
	})
}

// PatchWeek updates the top-level fields of the week at {wi}
func (h *PlanHandler) PatchWeek(w http.ResponseWriter, r *http.Request) {
	wi, ok := pathIndex(w, r, "wi")
	if !ok {
		return
	}
	var patch models.WeekPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if invalid(w, validation.ValidateWeekPatch(patch)) {
		return
	}
	h.apply(w, http.StatusOK, func(s models.AppState) (models.AppState, error) {
		return reducer.PatchWeek(s, wi, patch)
	})
}

type goalRequest struct {
	Text string `json:"text"`
}

// PutGoal replaces goal {gi} of the week at {wi}
func (h *PlanHandler) PutGoal(w http.ResponseWriter, r *http.Request) {
	wi, ok := pathIndex(w, r, "wi")
	if !ok {
		return
	}
	gi, ok := pathIndex(w, r, "gi")
	if !ok {
		return
	}
	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if invalid(w, validation.ValidateGoal(req.Text)) {
		return
	}
	h.apply(w, http.StatusOK, func(s models.AppState) (models.AppState, error) {
		return reducer.PatchGoal(s, wi, gi, req.Text)
	})
}

// PatchDay updates day {di} of the week at {wi}
func (h *PlanHandler) PatchDay(w http.ResponseWriter, r *http.Request) {
	wi, ok := pathIndex(w, r, "wi")
	if !ok {
		return
	}
	di, ok := pathIndex(w, r, "di")
	if !ok {
		return
	}
	var patch models.DayPlanPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if invalid(w, validation.ValidateDayPatch(patch)) {
		return
	}
	h.apply(w, http.StatusOK, func(s models.AppState) (models.AppState, error) {
		return reducer.PatchDay(s, wi, di, patch)
	})
}

// PatchCheckin updates the end-of-week check-in of the week at {wi}
func (h *PlanHandler) PatchCheckin(w http.ResponseWriter, r *http.Request) {
	wi, ok := pathIndex(w, r, "wi")
	if !ok {
		return
	}
	var patch models.CheckinPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if invalid(w, validation.ValidateCheckinPatch(patch)) {
		return
	}
	h.apply(w, http.StatusOK, func(s models.AppState) (models.AppState, error) {
		return reducer.PatchCheckin(s, wi, patch)
	})
}

// PatchSettings updates user preferences
func (h *PlanHandler) PatchSettings(w http.ResponseWriter, r *http.Request) {
	var patch models.SettingsPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	h.apply(w, http.StatusOK, total(func(s models.AppState) models.AppState {
		return reducer.PatchSettings(s, patch)
	}))
}
