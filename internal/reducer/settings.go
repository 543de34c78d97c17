package reducer

import "phaseplan/internal/models"

// PatchSettings replaces the settings fields set in p
func PatchSettings(s models.AppState, p models.SettingsPatch) models.AppState {
	if p.ShowPhaseNudges != nil {
		s.Settings.ShowPhaseNudges = *p.ShowPhaseNudges
	}
	return s
}
