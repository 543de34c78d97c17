package planner

import "phaseplan/internal/models"

var phaseGuidance = map[models.Phase]string{
	models.PhaseMenstrual:  "Prioritise recovery and technique. Keep intensity flexible and lean on iron-rich meals.",
	models.PhaseFollicular: "Energy tends to rise. Good window for strength work and learning new skills.",
	models.PhaseOvulatory:  "Peak power is common. Warm up thoroughly and watch joint stability on explosive work.",
	models.PhaseLuteal:     "Expect effort to feel harder. Favour steady volume, extra carbohydrate and sleep.",
}

// GuidanceFor returns the nudge for phase, or "" when nudges are off or
// the phase is unset
func GuidanceFor(phase models.Phase, settings models.Settings) string {
	if !settings.ShowPhaseNudges {
		return ""
	}
	return phaseGuidance[phase]
}
