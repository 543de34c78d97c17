// Package validation checks edit requests before they reach the reducers.
package validation

import (
	"fmt"

	"phaseplan/internal/calendar"
	"phaseplan/internal/models"
)

// MaxTextLength bounds every free-text field
const MaxTextLength = 4000

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateDate accepts an empty value or a YYYY-MM-DD calendar date
func ValidateDate(field, date string) error {
	if date == "" {
		return nil
	}
	if _, err := calendar.ParseCalendarDate(date); err != nil {
		return ValidationError{Field: field, Message: "must be a YYYY-MM-DD date"}
	}
	return nil
}

// ValidatePhase accepts an unset phase or one of the four known phases
func ValidatePhase(field string, phase models.Phase) error {
	if phase == models.PhaseUnset || phase.Known() {
		return nil
	}
	return ValidationError{Field: field, Message: fmt.Sprintf("unknown phase %q", phase)}
}

// ValidateRange checks an integer score
func ValidateRange(field string, v, min, max int) error {
	if v < min || v > max {
		return ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d", min, max)}
	}
	return nil
}

// ValidateText checks a free-text field's length
func ValidateText(field, text string) error {
	if len(text) > MaxTextLength {
		return ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", MaxTextLength)}
	}
	return nil
}

// texts validates each non-nil field, keyed by name
func texts(fields map[string]*string) error {
	for name, value := range fields {
		if value == nil {
			continue
		}
		if err := ValidateText(name, *value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateWeekPatch checks the fields a week edit sets
func ValidateWeekPatch(p models.WeekPatch) error {
	if p.WeekStart != nil {
		if err := ValidateDate("weekStart", *p.WeekStart); err != nil {
			return err
		}
	}
	if p.Phase != nil {
		if err := ValidatePhase("phase", *p.Phase); err != nil {
			return err
		}
	}
	if p.Goals != nil {
		for i, goal := range p.Goals {
			if err := ValidateText(fmt.Sprintf("goals[%d]", i), goal); err != nil {
				return err
			}
		}
	}
	return texts(map[string]*string{
		"theme":          p.Theme,
		"nonNegotiables": p.NonNegotiables,
		"motivation":     p.Motivation,
	})
}

// ValidateDayPatch checks the fields a day edit sets
func ValidateDayPatch(p models.DayPlanPatch) error {
	if p.Effort != nil {
		if err := ValidateRange("effort", *p.Effort, 1, 5); err != nil {
			return err
		}
	}
	if p.SleepTarget != nil && (*p.SleepTarget < models.SleepMin || *p.SleepTarget > models.SleepMax) {
		return ValidationError{Field: "sleepTarget", Message: "must be between 0 and 24 hours"}
	}
	return texts(map[string]*string{
		"session":   p.Session,
		"intention": p.Intention,
		"fuel":      p.Fuel,
	})
}

// ValidateCheckinPatch checks the fields a check-in edit sets
func ValidateCheckinPatch(p models.CheckinPatch) error {
	if p.Recovery != nil {
		if err := ValidateRange("recovery", *p.Recovery, 1, 5); err != nil {
			return err
		}
	}
	return texts(map[string]*string{
		"trend":       p.Trend,
		"wins":        p.Wins,
		"adjustments": p.Adjustments,
	})
}

// ValidateLogPatch checks the fields a log edit sets. Numeric readings are
// not range-checked here; they are clamped when the edit is finalized.
func ValidateLogPatch(p models.LogRowPatch) error {
	if p.Date != nil {
		if err := ValidateDate("date", *p.Date); err != nil {
			return err
		}
	}
	if p.CycleDay != nil && *p.CycleDay < 1 {
		return ValidationError{Field: "cycleDay", Message: "must be a positive day number"}
	}
	if p.Phase != nil {
		if err := ValidatePhase("phase", *p.Phase); err != nil {
			return err
		}
	}
	return texts(map[string]*string{
		"planned": p.Planned,
		"actual":  p.Actual,
		"notes":   p.Notes,
	})
}

// ValidateGoal checks a single goal edit
func ValidateGoal(text string) error {
	return ValidateText("goal", text)
}
