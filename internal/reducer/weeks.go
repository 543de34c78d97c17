package reducer

import "phaseplan/internal/models"

// AddWeek appends a fresh week starting at weekStart
func AddWeek(s models.AppState, weekStart string) models.AppState {
	weeks := make([]models.Week, 0, len(s.Weeks)+1)
	weeks = append(weeks, s.Weeks...)
	s.Weeks = append(weeks, models.NewWeek(weekStart))
	return s
}

// RemoveWeek drops the week at wi
func RemoveWeek(s models.AppState, wi int) (models.AppState, error) {
	if err := checkIndex("week", wi, len(s.Weeks)); err != nil {
		return s, err
	}
	s.Weeks = removeAt(s.Weeks, wi)
	return s, nil
}

// updateWeek copies the week list and hands fn the week at wi to edit
func updateWeek(s models.AppState, wi int, fn func(*models.Week)) (models.AppState, error) {
	if err := checkIndex("week", wi, len(s.Weeks)); err != nil {
		return s, err
	}
	weeks := cloneWeeks(s.Weeks)
	fn(&weeks[wi])
	s.Weeks = weeks
	return s, nil
}

// PatchWeek replaces the week-level fields set in p
func PatchWeek(s models.AppState, wi int, p models.WeekPatch) (models.AppState, error) {
	return updateWeek(s, wi, func(w *models.Week) {
		if p.WeekStart != nil {
			w.WeekStart = *p.WeekStart
		}
		if p.Phase != nil {
			w.Phase = *p.Phase
		}
		if p.Theme != nil {
			w.Theme = *p.Theme
		}
		if p.Goals != nil {
			w.Goals = *p.Goals
		}
		if p.NonNegotiables != nil {
			w.NonNegotiables = *p.NonNegotiables
		}
		if p.Motivation != nil {
			w.Motivation = *p.Motivation
		}
	})
}

// PatchGoal replaces goal gi of week wi
func PatchGoal(s models.AppState, wi, gi int, text string) (models.AppState, error) {
	if err := checkIndex("goal", gi, models.GoalsPerWeek); err != nil {
		return s, err
	}
	return updateWeek(s, wi, func(w *models.Week) {
		w.Goals[gi] = text
	})
}

// PatchDay replaces the fields set in p on day di (Monday=0) of week wi
func PatchDay(s models.AppState, wi, di int, p models.DayPlanPatch) (models.AppState, error) {
	if err := checkIndex("day", di, models.DaysPerWeek); err != nil {
		return s, err
	}
	return updateWeek(s, wi, func(w *models.Week) {
		d := &w.Days[di]
		if p.Session != nil {
			d.Session = *p.Session
		}
		if p.Intention != nil {
			d.Intention = *p.Intention
		}
		if p.Effort != nil {
			d.Effort = *p.Effort
		}
		if p.Fuel != nil {
			d.Fuel = *p.Fuel
		}
		if p.SleepTarget != nil {
			d.SleepTarget = *p.SleepTarget
		}
	})
}

// PatchCheckin replaces the fields set in p on week wi's check-in
func PatchCheckin(s models.AppState, wi int, p models.CheckinPatch) (models.AppState, error) {
	return updateWeek(s, wi, func(w *models.Week) {
		c := &w.Checkin
		if p.Trend != nil {
			c.Trend = *p.Trend
		}
		if p.Recovery != nil {
			c.Recovery = *p.Recovery
		}
		if p.Wins != nil {
			c.Wins = *p.Wins
		}
		if p.Adjustments != nil {
			c.Adjustments = *p.Adjustments
		}
	})
}
