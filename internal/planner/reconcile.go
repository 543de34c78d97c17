// Package planner holds the pure query functions the presentation layer
// calls on every render: plan/log reconciliation, numeric field
// normalization, per-phase aggregation and the trend series.
package planner

import (
	"phaseplan/internal/calendar"
	"phaseplan/internal/models"
)

// FindPlannedSession returns the session planned for dateISO.
// Weeks are scanned in order and the first week whose window contains the
// date wins, even when later weeks overlap it. An empty session counts as none.
func FindPlannedSession(dateISO string, weeks []models.Week) (string, bool) {
	if dateISO == "" || len(weeks) == 0 {
		return "", false
	}
	for _, week := range weeks {
		if week.WeekStart == "" || !calendar.IsWithinWeek(dateISO, week.WeekStart) {
			continue
		}
		session := week.Days[calendar.MondayIndexedWeekday(dateISO)].Session
		if session == "" {
			return "", false
		}
		return session, true
	}
	return "", false
}

// Suggestion is the "use plan" offer shown next to a log row
type Suggestion struct {
	Session      string `json:"session"`
	HasSession   bool   `json:"hasSession"`
	OfferPlanned bool   `json:"offerPlanned"`
	OfferActual  bool   `json:"offerActual"`
}

// SuggestFor computes the plan suggestion for row from its current date.
// The offer for a field is suppressed when the field already holds the suggestion.
func SuggestFor(row models.LogRow, weeks []models.Week) Suggestion {
	session, ok := FindPlannedSession(row.Date, weeks)
	if !ok {
		return Suggestion{}
	}
	return Suggestion{
		Session:      session,
		HasSession:   true,
		OfferPlanned: row.Planned != session,
		OfferActual:  row.Actual != session,
	}
}
