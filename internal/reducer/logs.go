package reducer

import (
	"fmt"

	"phaseplan/internal/models"
	"phaseplan/internal/planner"
)

// PlanField names a log field the "use plan" action can fill
type PlanField string

const (
	FieldPlanned PlanField = "planned"
	FieldActual  PlanField = "actual"
)

// AddLog appends a new entry for date, pre-filling planned from the weekly plan
func AddLog(s models.AppState, date string) models.AppState {
	row := models.NewLogRow(date)
	if session, ok := planner.FindPlannedSession(date, s.Weeks); ok {
		row.Planned = session
	}
	logs := make([]models.LogRow, 0, len(s.Logs)+1)
	logs = append(logs, s.Logs...)
	s.Logs = append(logs, row)
	return s
}

// RemoveLog drops the entry at li
func RemoveLog(s models.AppState, li int) (models.AppState, error) {
	if err := checkIndex("log", li, len(s.Logs)); err != nil {
		return s, err
	}
	s.Logs = removeAt(s.Logs, li)
	return s, nil
}

func updateLog(s models.AppState, li int, fn func(*models.LogRow)) (models.AppState, error) {
	if err := checkIndex("log", li, len(s.Logs)); err != nil {
		return s, err
	}
	logs := cloneLogs(s.Logs)
	fn(&logs[li])
	s.Logs = logs
	return s, nil
}

// PatchLog replaces the fields set in p on entry li.
// A date change fills planned from the weekly plan only while planned is
// empty; an existing planned value is never overwritten by a date change.
func PatchLog(s models.AppState, li int, p models.LogRowPatch) (models.AppState, error) {
	return updateLog(s, li, func(row *models.LogRow) {
		wasPlannedEmpty := row.Planned == ""

		if p.Date != nil {
			row.Date = *p.Date
		}
		if p.CycleDay != nil {
			row.CycleDay = *p.CycleDay
		}
		if p.Phase != nil {
			row.Phase = *p.Phase
		}
		if p.Planned != nil {
			row.Planned = *p.Planned
		}
		if p.Actual != nil {
			row.Actual = *p.Actual
		}
		if p.RPE != nil {
			row.RPE = p.RPE.Value
		}
		if p.Energy != nil {
			row.Energy = p.Energy.Value
		}
		if p.Sleep != nil {
			row.Sleep = p.Sleep.Value
		}
		if p.Notes != nil {
			row.Notes = *p.Notes
		}

		if p.Date != nil && p.Planned == nil && wasPlannedEmpty {
			session, _ := planner.FindPlannedSession(row.Date, s.Weeks)
			row.Planned = session
		}
	})
}

// FinalizeLog clamps the recorded numeric fields of entry li into range.
// It runs when an edit completes, never per keystroke; none stays none.
func FinalizeLog(s models.AppState, li int) (models.AppState, error) {
	return updateLog(s, li, func(row *models.LogRow) {
		row.RPE = planner.ClampNullable(row.RPE, models.RPEMin, models.RPEMax)
		row.Energy = planner.ClampNullable(row.Energy, models.EnergyMin, models.EnergyMax)
		row.Sleep = planner.ClampNullable(row.Sleep, models.SleepMin, models.SleepMax)
	})
}

// UsePlan copies the current plan suggestion for entry li into field
func UsePlan(s models.AppState, li int, field PlanField) (models.AppState, error) {
	if field != FieldPlanned && field != FieldActual {
		return s, fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	if err := checkIndex("log", li, len(s.Logs)); err != nil {
		return s, err
	}
	session, ok := planner.FindPlannedSession(s.Logs[li].Date, s.Weeks)
	if !ok {
		return s, ErrNoSuggestion
	}
	return updateLog(s, li, func(row *models.LogRow) {
		if field == FieldPlanned {
			row.Planned = session
		} else {
			row.Actual = session
		}
	})
}
