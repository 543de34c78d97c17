package models

// DaysPerWeek is the fixed length of Week.Days, Monday(0) through Sunday(6)
const DaysPerWeek = 7

// GoalsPerWeek is the fixed number of goal strings on a Week
const GoalsPerWeek = 3

// WeekdayNames labels Week.Days by index
var WeekdayNames = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayPlan represents one planned training day
type DayPlan struct {
	Session     string  `json:"session" yaml:"session"`
	Intention   string  `json:"intention" yaml:"intention"`
	Effort      int     `json:"effort" yaml:"effort"` // 1-5
	Fuel        string  `json:"fuel" yaml:"fuel"`
	SleepTarget float64 `json:"sleepTarget" yaml:"sleepTarget"` // hours
}

// WeekCheckin is the end-of-week reflection
type WeekCheckin struct {
	Trend       string `json:"trend" yaml:"trend"`
	Recovery    int    `json:"recovery" yaml:"recovery"` // 1-5
	Wins        string `json:"wins" yaml:"wins"`
	Adjustments string `json:"adjustments" yaml:"adjustments"`
}

// Week represents a planning unit starting on a Monday.
// Days and Goals are arrays so their lengths cannot drift.
type Week struct {
	WeekStart      string               `json:"weekStart" yaml:"weekStart"` // YYYY-MM-DD, may be empty
	Phase          Phase                `json:"phase" yaml:"phase"`
	Theme          string               `json:"theme" yaml:"theme"`
	Goals          [GoalsPerWeek]string `json:"goals" yaml:"goals"`
	NonNegotiables string               `json:"nonNegotiables" yaml:"nonNegotiables"`
	Motivation     string               `json:"motivation" yaml:"motivation"`
	Days           [DaysPerWeek]DayPlan `json:"days" yaml:"days"`
	Checkin        WeekCheckin          `json:"checkin" yaml:"checkin"`
}

// NewDayPlan returns a blank day with mid-range defaults
func NewDayPlan() DayPlan {
	return DayPlan{Effort: 3, SleepTarget: 8}
}

// NewWeek returns a fresh week starting at weekStart (which may be empty)
func NewWeek(weekStart string) Week {
	w := Week{
		WeekStart: weekStart,
		Checkin:   WeekCheckin{Recovery: 3},
	}
	for i := range w.Days {
		w.Days[i] = NewDayPlan()
	}
	return w
}
