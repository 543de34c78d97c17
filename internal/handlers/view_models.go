package handlers

import (
	"html/template"
	"strconv"

	"phaseplan/internal/models"
	"phaseplan/internal/planner"
)

type DashboardViewData struct {
	Title        string
	Today        string
	Weeks        []WeekView
	Logs         []LogView
	Insights     []InsightView
	Trend        []planner.TrendPoint
	Settings     models.Settings
	PersistError string
}

type WeekView struct {
	Index      int
	Week       models.Week
	Guidance   string
	Motivation template.HTML
	Days       []DayView
}

type DayView struct {
	Index int
	Name  string
	Day   models.DayPlan
}

type LogView struct {
	Index      int
	Row        models.LogRow
	Suggestion planner.Suggestion
	Guidance   string
	RPE        string
	Energy     string
	Sleep      string
}

type InsightView struct {
	Phase    models.Phase `json:"phase"`
	N        int          `json:"n"`
	Energy   string       `json:"energy"`
	RPE      string       `json:"rpe"`
	Sleep    string       `json:"sleep"`
	Guidance string       `json:"guidance,omitempty"`
}

func buildInsights(state models.AppState) []InsightView {
	rows := planner.OrderedSummaries(state.Logs)
	views := make([]InsightView, 0, len(rows))
	for _, r := range rows {
		views = append(views, InsightView{
			Phase:    r.Phase,
			N:        r.Summary.N,
			Energy:   r.Summary.Energy.Display(),
			RPE:      r.Summary.RPE.Display(),
			Sleep:    r.Summary.Sleep.Display(),
			Guidance: planner.GuidanceFor(r.Phase, state.Settings),
		})
	}
	return views
}

// formatNullable renders an unrecorded value as an empty input
func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
