package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"phaseplan/internal/models"
	"phaseplan/internal/security"
	"phaseplan/internal/service"
)

type memoryStore struct {
	blob    string
	found   bool
	saveErr error
}

func (m *memoryStore) Load() (string, bool, error) { return m.blob, m.found, nil }

func (m *memoryStore) Save(blob string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.blob, m.found = blob, true
	return nil
}

func newTestHandler(t *testing.T, store *memoryStore) (*PlanHandler, http.Handler) {
	t.Helper()
	tmpl, err := LoadTemplates("../templates")
	if err != nil {
		t.Fatalf("LoadTemplates() error = %v", err)
	}
	states := service.NewStateService(store)
	h := NewPlanHandler(states, service.NewBackupService(states), service.NewReportService(), tmpl)
	h.now = func() time.Time { return time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local) }
	return h, h.Routes(nil)
}

func do(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) models.AppState {
	t.Helper()
	var state models.AppState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v (body %q)", err, rec.Body.String())
	}
	return state
}

func TestGetStateReturnsSeed(t *testing.T) {
	_, handler := newTestHandler(t, &memoryStore{})

	rec := do(t, handler, "GET", "/api/state", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	state := decodeState(t, rec)
	if len(state.Weeks) != 1 || len(state.Logs) != 0 || !state.Settings.ShowPhaseNudges {
		t.Errorf("seed state = %+v", state)
	}
}

func TestAddWeekDefaultsToCurrentMonday(t *testing.T) {
	_, handler := newTestHandler(t, &memoryStore{})

	rec := do(t, handler, "POST", "/api/weeks", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	state := decodeState(t, rec)
	if got := state.Weeks[1].WeekStart; got != "2024-01-08" {
		t.Errorf("WeekStart = %q, want 2024-01-08", got)
	}

	rec = do(t, handler, "POST", "/api/weeks", `{"weekStart":""}`)
	state = decodeState(t, rec)
	if got := state.Weeks[2].WeekStart; got != "" {
		t.Errorf("explicit empty WeekStart = %q", got)
	}
}

func TestPlanAndLogFlow(t *testing.T) {
	store := &memoryStore{}
	_, handler := newTestHandler(t, store)

	steps := []struct {
		method, path, body string
		want               int
	}{
		{"PATCH", "/api/weeks/0", `{"weekStart":"2024-01-08","phase":"Follicular"}`, http.StatusOK},
		{"PATCH", "/api/weeks/0/days/0", `{"session":"Squats"}`, http.StatusOK},
		{"PUT", "/api/weeks/0/goals/2", `{"text":"Sleep by 10"}`, http.StatusOK},
		{"PATCH", "/api/weeks/0/checkin", `{"recovery":4}`, http.StatusOK},
		{"POST", "/api/logs", `{"date":"2024-01-08"}`, http.StatusCreated},
		{"PATCH", "/api/logs/0", `{"rpe":"12","energy":"","sleep":"7.5"}`, http.StatusOK},
		{"POST", "/api/logs/0/finalize", "", http.StatusOK},
	}
	var rec *httptest.ResponseRecorder
	for _, step := range steps {
		rec = do(t, handler, step.method, step.path, step.body)
		if rec.Code != step.want {
			t.Fatalf("%s %s status = %d, want %d (%s)", step.method, step.path, rec.Code, step.want, rec.Body.String())
		}
	}

	state := decodeState(t, rec)
	week := state.Weeks[0]
	if week.Phase != models.PhaseFollicular || week.Goals[2] != "Sleep by 10" || week.Checkin.Recovery != 4 {
		t.Errorf("week = %+v", week)
	}
	row := state.Logs[0]
	if row.Planned != "Squats" {
		t.Errorf("Planned = %q, want Squats", row.Planned)
	}
	if row.RPE == nil || *row.RPE != 10 {
		t.Errorf("RPE = %v, want clamped 10", row.RPE)
	}
	if row.Energy != nil {
		t.Errorf("Energy = %v, want nil", *row.Energy)
	}
	if row.Sleep == nil || *row.Sleep != 7.5 {
		t.Errorf("Sleep = %v, want 7.5", row.Sleep)
	}

	if !strings.Contains(store.blob, `"planned":"Squats"`) {
		t.Errorf("state not persisted: %s", store.blob)
	}
}

func TestUsePlan(t *testing.T) {
	_, handler := newTestHandler(t, &memoryStore{})
	do(t, handler, "PATCH", "/api/weeks/0", `{"weekStart":"2024-01-08"}`)
	do(t, handler, "PATCH", "/api/weeks/0/days/1", `{"session":"Intervals"}`)
	do(t, handler, "POST", "/api/logs", `{"date":"2024-01-09"}`)
	do(t, handler, "POST", "/api/logs", `{"date":"2024-02-01"}`)

	rec := do(t, handler, "POST", "/api/logs/0/use-plan/actual", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decodeState(t, rec).Logs[0].Actual; got != "Intervals" {
		t.Errorf("Actual = %q, want Intervals", got)
	}

	tests := []struct {
		path string
		want int
	}{
		{"/api/logs/1/use-plan/planned", http.StatusConflict},
		{"/api/logs/0/use-plan/notes", http.StatusBadRequest},
		{"/api/logs/9/use-plan/planned", http.StatusNotFound},
		{"/api/logs/x/use-plan/planned", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if rec := do(t, handler, "POST", tt.path, ""); rec.Code != tt.want {
			t.Errorf("POST %s status = %d, want %d", tt.path, rec.Code, tt.want)
		}
	}
}

func TestErrorStatuses(t *testing.T) {
	_, handler := newTestHandler(t, &memoryStore{})

	tests := []struct {
		name, method, path, body string
		want                     int
	}{
		{"missing week", "DELETE", "/api/weeks/3", "", http.StatusNotFound},
		{"negative week", "PATCH", "/api/weeks/-1", `{"theme":"x"}`, http.StatusNotFound},
		{"goal out of range", "PUT", "/api/weeks/0/goals/3", `{"text":"x"}`, http.StatusNotFound},
		{"day out of range", "PATCH", "/api/weeks/0/days/7", `{"session":"x"}`, http.StatusNotFound},
		{"missing log", "PATCH", "/api/logs/0", `{"notes":"x"}`, http.StatusNotFound},
		{"bad json", "PATCH", "/api/weeks/0", `{"theme":`, http.StatusBadRequest},
		{"unknown field", "PATCH", "/api/weeks/0", `{"colour":"red"}`, http.StatusBadRequest},
		{"unknown phase", "PATCH", "/api/weeks/0", `{"phase":"Winter"}`, http.StatusBadRequest},
		{"bad week start", "POST", "/api/weeks", `{"weekStart":"next monday"}`, http.StatusBadRequest},
		{"effort out of range", "PATCH", "/api/weeks/0/days/0", `{"effort":9}`, http.StatusBadRequest},
		{"recovery out of range", "PATCH", "/api/weeks/0/checkin", `{"recovery":0}`, http.StatusBadRequest},
		{"bad log date", "POST", "/api/logs", `{"date":"2024-02-30"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, handler, tt.method, tt.path, tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestSuggestInsightsTrend(t *testing.T) {
	_, handler := newTestHandler(t, &memoryStore{})
	do(t, handler, "PATCH", "/api/weeks/0", `{"weekStart":"2024-01-08"}`)
	do(t, handler, "PATCH", "/api/weeks/0/days/0", `{"session":"Squats"}`)
	do(t, handler, "POST", "/api/logs", `{"date":"2024-01-09"}`)
	do(t, handler, "PATCH", "/api/logs/0", `{"phase":"Luteal","energy":"4"}`)
	do(t, handler, "POST", "/api/logs", `{"date":"2024-01-08"}`)

	var suggest suggestResponse
	rec := do(t, handler, "GET", "/api/suggest?date=2024-01-08", "")
	json.Unmarshal(rec.Body.Bytes(), &suggest)
	if !suggest.Found || suggest.Session != "Squats" {
		t.Errorf("suggest = %+v", suggest)
	}

	var insights []InsightView
	rec = do(t, handler, "GET", "/api/insights", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &insights); err != nil {
		t.Fatalf("decode insights: %v", err)
	}
	if len(insights) != 4 {
		t.Fatalf("len(insights) = %d, want 4", len(insights))
	}
	luteal := insights[3]
	if luteal.N != 1 || luteal.Energy != "4.0" || luteal.RPE != "—" || luteal.Guidance == "" {
		t.Errorf("luteal = %+v", luteal)
	}

	rec = do(t, handler, "GET", "/api/trend", "")
	var trend []struct{ Date string }
	json.Unmarshal(rec.Body.Bytes(), &trend)
	if len(trend) != 2 || trend[0].Date != "2024-01-08" {
		t.Errorf("trend = %+v", trend)
	}
}

func TestSettingsHideGuidance(t *testing.T) {
	_, handler := newTestHandler(t, &memoryStore{})

	rec := do(t, handler, "PATCH", "/api/settings", `{"showPhaseNudges":false}`)
	if decodeState(t, rec).Settings.ShowPhaseNudges {
		t.Fatal("ShowPhaseNudges still on")
	}

	var insights []InsightView
	rec = do(t, handler, "GET", "/api/insights", "")
	json.Unmarshal(rec.Body.Bytes(), &insights)
	for _, in := range insights {
		if in.Guidance != "" {
			t.Errorf("%s guidance = %q with nudges off", in.Phase, in.Guidance)
		}
	}
}

func TestHealthReportsPersistFailure(t *testing.T) {
	store := &memoryStore{saveErr: errors.New("disk full")}
	_, handler := newTestHandler(t, store)

	if rec := do(t, handler, "POST", "/api/logs", ""); rec.Code != http.StatusCreated {
		t.Fatalf("write status = %d, want 201 despite persist failure", rec.Code)
	}

	var health healthResponse
	rec := do(t, handler, "GET", "/api/health", "")
	json.Unmarshal(rec.Body.Bytes(), &health)
	if health.Status != "degraded" || !strings.Contains(health.PersistError, "disk full") {
		t.Errorf("health = %+v", health)
	}
}

func TestDashboardRenders(t *testing.T) {
	_, handler := newTestHandler(t, &memoryStore{})
	do(t, handler, "PATCH", "/api/weeks/0", `{"weekStart":"2024-01-08","phase":"Menstrual","motivation":"**Show up**","nonNegotiables":"_Sleep 8h_"}`)
	do(t, handler, "PATCH", "/api/weeks/0/days/0", `{"session":"Yoga"}`)
	do(t, handler, "POST", "/api/logs", `{"date":"2024-01-08"}`)
	do(t, handler, "PATCH", "/api/logs/0", `{"notes":"<script>x</script>"}`)

	rec := do(t, handler, "GET", "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"Yoga", "<strong>Show up</strong>", "<em>Sleep 8h</em>", "Prioritise recovery", "2024-01-08"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
	if strings.Contains(body, "<script>x</script>") {
		t.Error("dashboard rendered raw HTML from notes")
	}
}

func TestExports(t *testing.T) {
	_, handler := newTestHandler(t, &memoryStore{})
	do(t, handler, "PATCH", "/api/weeks/0", `{"weekStart":"2024-01-08"}`)
	do(t, handler, "PATCH", "/api/weeks/0/days/2", `{"session":"Run"}`)

	rec := do(t, handler, "GET", "/export/plan.ics", "")
	if !strings.Contains(rec.Body.String(), "DTSTART;VALUE=DATE:20240110") {
		t.Errorf("ics missing event:\n%s", rec.Body.String())
	}

	rec = do(t, handler, "GET", "/export/plan.xlsx", "")
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != xlsxContentType {
		t.Errorf("xlsx status = %d, type = %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("xlsx body is not a zip archive")
	}
}

func TestBackupDownloadAndImport(t *testing.T) {
	_, src := newTestHandler(t, &memoryStore{})
	do(t, src, "POST", "/api/logs", `{"date":"2024-01-08"}`)

	rec := do(t, src, "GET", "/export/backup?format=yaml", "")
	if !strings.Contains(rec.Header().Get("Content-Disposition"), ".yaml") {
		t.Errorf("Content-Disposition = %q", rec.Header().Get("Content-Disposition"))
	}

	_, dst := newTestHandler(t, &memoryStore{})
	req := httptest.NewRequest("POST", "/api/import?format=yaml", bytes.NewReader(rec.Body.Bytes()))
	out := httptest.NewRecorder()
	dst.ServeHTTP(out, req)
	if out.Code != http.StatusOK {
		t.Fatalf("import status = %d (%s)", out.Code, out.Body.String())
	}
	if got := len(decodeState(t, out).Logs); got != 1 {
		t.Errorf("imported logs = %d, want 1", got)
	}

	if rec := do(t, dst, "POST", "/api/import", "garbage"); rec.Code != http.StatusBadRequest {
		t.Errorf("garbage import status = %d, want 400", rec.Code)
	}
}

func TestWriteRoutesAreRateLimited(t *testing.T) {
	h, _ := newTestHandler(t, &memoryStore{})
	limiter := security.NewRateLimiter(1, time.Hour)
	defer limiter.Stop()
	handler := h.Routes(limiter)

	if rec := do(t, handler, "POST", "/api/logs", ""); rec.Code != http.StatusCreated {
		t.Fatalf("first write status = %d", rec.Code)
	}
	if rec := do(t, handler, "POST", "/api/logs", ""); rec.Code != http.StatusTooManyRequests {
		t.Errorf("second write status = %d, want 429", rec.Code)
	}
	if rec := do(t, handler, "GET", "/api/state", ""); rec.Code != http.StatusOK {
		t.Errorf("read status = %d, want 200", rec.Code)
	}
}

func TestLoggingSetsRequestID(t *testing.T) {
	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("missing request id")
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("request id = %q, want abc", got)
	}
}
