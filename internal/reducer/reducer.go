// Package reducer applies mutation intents to an AppState.
//
// Every function takes the current state by value and returns the next one.
// The input is never modified: touched collections are copied before they
// change, so a caller holding the previous state still sees it intact.
// Persisting the result is the caller's job.
package reducer

import (
	"errors"
	"fmt"

	"phaseplan/internal/models"
)

var (
	// ErrIndexOutOfRange is returned when a position does not exist in its sequence
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNoSuggestion is returned by UsePlan when no plan covers the row's date
	ErrNoSuggestion = errors.New("no planned session for date")
	// ErrUnknownField is returned by UsePlan for a field other than planned/actual
	ErrUnknownField = errors.New("unknown field")
)

// Func is a single state transition
type Func func(models.AppState) (models.AppState, error)

// Replace returns a transition that swaps in next wholesale
func Replace(next models.AppState) Func {
	return func(models.AppState) (models.AppState, error) {
		next.Normalize()
		return next, nil
	}
}

func checkIndex(kind string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%s %d: %w", kind, i, ErrIndexOutOfRange)
	}
	return nil
}

func cloneWeeks(weeks []models.Week) []models.Week {
	out := make([]models.Week, len(weeks))
	copy(out, weeks)
	return out
}

func cloneLogs(logs []models.LogRow) []models.LogRow {
	out := make([]models.LogRow, len(logs))
	copy(out, logs)
	return out
}

func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
