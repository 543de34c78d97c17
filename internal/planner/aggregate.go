package planner

import (
	"fmt"

	"phaseplan/internal/models"
)

// NoData marks a metric with no recorded observations
const NoData = "—"

// MetricSummary accumulates one metric over the rows that recorded it
type MetricSummary struct {
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

func (m *MetricSummary) add(v *float64) {
	if v == nil {
		return
	}
	m.Sum += *v
	m.Count++
}

// Average returns Sum/Count, or false when nothing was recorded
func (m MetricSummary) Average() (float64, bool) {
	if m.Count == 0 {
		return 0, false
	}
	return m.Sum / float64(m.Count), true
}

// Display renders the average to one decimal place, or NoData
func (m MetricSummary) Display() string {
	avg, ok := m.Average()
	if !ok {
		return NoData
	}
	return fmt.Sprintf("%.1f", avg)
}

// PhaseSummary is the dashboard row for one phase.
// N counts every tagged row; each metric averages only rows that recorded it.
type PhaseSummary struct {
	N      int           `json:"n"`
	Energy MetricSummary `json:"energy"`
	RPE    MetricSummary `json:"rpe"`
	Sleep  MetricSummary `json:"sleep"`
}

// AggregateByPhase summarizes logs for each of the four known phases.
// Rows with an unset or unknown phase are skipped.
func AggregateByPhase(logs []models.LogRow) map[models.Phase]PhaseSummary {
	acc := make(map[models.Phase]*PhaseSummary, len(models.Phases))
	for _, p := range models.Phases {
		acc[p] = &PhaseSummary{}
	}

	for _, row := range logs {
		s, ok := acc[row.Phase]
		if !ok {
			continue
		}
		s.N++
		s.Energy.add(row.Energy)
		s.RPE.add(row.RPE)
		s.Sleep.add(row.Sleep)
	}

	out := make(map[models.Phase]PhaseSummary, len(acc))
	for p, s := range acc {
		out[p] = *s
	}
	return out
}

// PhaseRow pairs a phase with its summary for ordered display
type PhaseRow struct {
	Phase   models.Phase `json:"phase"`
	Summary PhaseSummary `json:"summary"`
}

// OrderedSummaries returns AggregateByPhase in cycle order
func OrderedSummaries(logs []models.LogRow) []PhaseRow {
	byPhase := AggregateByPhase(logs)
	rows := make([]PhaseRow, 0, len(models.Phases))
	for _, p := range models.Phases {
		rows = append(rows, PhaseRow{Phase: p, Summary: byPhase[p]})
	}
	return rows
}
