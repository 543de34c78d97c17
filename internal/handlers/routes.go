package handlers

import (
	"net/http"

	"phaseplan/internal/security"
)

// Routes registers every page and API endpoint. Write routes pass through limiter.
func (h *PlanHandler) Routes(limiter *security.RateLimiter) *http.ServeMux {
	write := func(next http.HandlerFunc) http.HandlerFunc {
		return RateLimit(limiter, next)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Dashboard)

	mux.HandleFunc("GET /api/state", h.GetState)
	mux.HandleFunc("GET /api/health", h.Health)

	// Weekly plan
	mux.HandleFunc("POST /api/weeks", write(h.AddWeek))
	mux.HandleFunc("DELETE /api/weeks/{wi}", write(h.RemoveWeek))
	mux.HandleFunc("PATCH /api/weeks/{wi}", write(h.PatchWeek))
	mux.HandleFunc("PUT /api/weeks/{wi}/goals/{gi}", write(h.PutGoal))
	mux.HandleFunc("PATCH /api/weeks/{wi}/days/{di}", write(h.PatchDay))
	mux.HandleFunc("PATCH /api/weeks/{wi}/checkin", write(h.PatchCheckin))

	// Daily log
	mux.HandleFunc("POST /api/logs", write(h.AddLog))
	mux.HandleFunc("DELETE /api/logs/{li}", write(h.RemoveLog))
	mux.HandleFunc("PATCH /api/logs/{li}", write(h.PatchLog))
	mux.HandleFunc("POST /api/logs/{li}/finalize", write(h.FinalizeLog))
	mux.HandleFunc("POST /api/logs/{li}/use-plan/{field}", write(h.UsePlan))

	mux.HandleFunc("GET /api/suggest", h.Suggest)
	mux.HandleFunc("GET /api/insights", h.Insights)
	mux.HandleFunc("GET /api/trend", h.Trend)
	mux.HandleFunc("PATCH /api/settings", write(h.PatchSettings))
	mux.HandleFunc("POST /api/import", write(h.ImportBackup))

	// Downloads
	mux.HandleFunc("GET /export/plan.xlsx", h.ExportWorkbook)
	mux.HandleFunc("GET /export/plan.ics", h.ExportCalendar)
	mux.HandleFunc("GET /export/backup", h.ExportBackup)

	return mux
}
