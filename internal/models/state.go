package models

// Settings holds user preferences
type Settings struct {
	ShowPhaseNudges bool `json:"showPhaseNudges" yaml:"showPhaseNudges"`
}

// AppState is the root aggregate and the whole unit of persistence
type AppState struct {
	Weeks    []Week   `json:"weeks" yaml:"weeks"`
	Logs     []LogRow `json:"logs" yaml:"logs"`
	Settings Settings `json:"settings" yaml:"settings"`
}

// DefaultState returns the seed state: one empty week, no logs, nudges on
func DefaultState() AppState {
	return AppState{
		Weeks:    []Week{NewWeek("")},
		Logs:     []LogRow{},
		Settings: Settings{ShowPhaseNudges: true},
	}
}

// Normalize replaces nil collections with empty ones so the state
// always serializes with arrays rather than null
func (s *AppState) Normalize() {
	if s.Weeks == nil {
		s.Weeks = []Week{}
	}
	if s.Logs == nil {
		s.Logs = []LogRow{}
	}
}
