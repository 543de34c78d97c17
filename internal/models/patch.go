package models

// NumberUpdate replaces a nullable numeric field. A nil Value clears it.
type NumberUpdate struct {
	Value *float64
}

// WeekPatch carries the Week fields to replace; nil fields are left untouched
type WeekPatch struct {
	WeekStart      *string               `json:"weekStart,omitempty"`
	Phase          *Phase                `json:"phase,omitempty"`
	Theme          *string               `json:"theme,omitempty"`
	Goals          *[GoalsPerWeek]string `json:"goals,omitempty"`
	NonNegotiables *string               `json:"nonNegotiables,omitempty"`
	Motivation     *string               `json:"motivation,omitempty"`
}

// DayPlanPatch carries the DayPlan fields to replace
type DayPlanPatch struct {
	Session     *string  `json:"session,omitempty"`
	Intention   *string  `json:"intention,omitempty"`
	Effort      *int     `json:"effort,omitempty"`
	Fuel        *string  `json:"fuel,omitempty"`
	SleepTarget *float64 `json:"sleepTarget,omitempty"`
}

// CheckinPatch carries the WeekCheckin fields to replace
type CheckinPatch struct {
	Trend       *string `json:"trend,omitempty"`
	Recovery    *int    `json:"recovery,omitempty"`
	Wins        *string `json:"wins,omitempty"`
	Adjustments *string `json:"adjustments,omitempty"`
}

// LogRowPatch carries the LogRow fields to replace
type LogRowPatch struct {
	Date     *string
	CycleDay *int
	Phase    *Phase
	Planned  *string
	Actual   *string
	RPE      *NumberUpdate
	Energy   *NumberUpdate
	Sleep    *NumberUpdate
	Notes    *string
}

// SettingsPatch carries the Settings fields to replace
type SettingsPatch struct {
	ShowPhaseNudges *bool `json:"showPhaseNudges,omitempty"`
}

// Float returns a pointer to v, for building patches and fixtures
func Float(v float64) *float64 {
	return &v
}

// String returns a pointer to v
func String(v string) *string {
	return &v
}
