package models

// Phase is a menstrual-cycle phase used to tag both weekly plans and daily logs.
// The zero value means the phase is unset.
type Phase string

const (
	PhaseUnset      Phase = ""
	PhaseMenstrual  Phase = "Menstrual"
	PhaseFollicular Phase = "Follicular"
	PhaseOvulatory  Phase = "Ovulatory"
	PhaseLuteal     Phase = "Luteal"
)

// Phases lists the known phases in cycle order
var Phases = []Phase{PhaseMenstrual, PhaseFollicular, PhaseOvulatory, PhaseLuteal}

// Known reports whether p is one of the four enumerated phases
func (p Phase) Known() bool {
	switch p {
	case PhaseMenstrual, PhaseFollicular, PhaseOvulatory, PhaseLuteal:
		return true
	}
	return false
}
