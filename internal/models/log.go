package models

// LogRow represents one daily log entry.
// Nil numeric fields mean "not yet recorded", which is distinct from zero.
type LogRow struct {
	Date     string   `json:"date" yaml:"date"` // YYYY-MM-DD, may be empty
	CycleDay int      `json:"cycleDay" yaml:"cycleDay"`
	Phase    Phase    `json:"phase" yaml:"phase"`
	Planned  string   `json:"planned" yaml:"planned"`
	Actual   string   `json:"actual" yaml:"actual"`
	RPE      *float64 `json:"rpe" yaml:"rpe"`       // 1-10
	Energy   *float64 `json:"energy" yaml:"energy"` // 1-5
	Sleep    *float64 `json:"sleep" yaml:"sleep"`   // 0-24 hours, step 0.5
	Notes    string   `json:"notes" yaml:"notes"`
}

// Numeric field ranges applied when an edit is finalized
const (
	RPEMin    = 1
	RPEMax    = 10
	EnergyMin = 1
	EnergyMax = 5
	SleepMin  = 0
	SleepMax  = 24
)

// NewLogRow returns an empty entry for date
func NewLogRow(date string) LogRow {
	return LogRow{Date: date, CycleDay: 1}
}
