package planner

import (
	"testing"

	"phaseplan/internal/models"
)

func f(v float64) *float64 { return &v }

func TestAggregateByPhaseAveragesOnlyRecordedValues(t *testing.T) {
	logs := []models.LogRow{
		{Phase: models.PhaseLuteal, Energy: f(3)},
		{Phase: models.PhaseLuteal},
		{Phase: models.PhaseLuteal, Energy: f(5)},
	}

	luteal := AggregateByPhase(logs)[models.PhaseLuteal]

	if luteal.N != 3 {
		t.Errorf("N = %d, want 3", luteal.N)
	}
	if luteal.Energy.Count != 2 {
		t.Errorf("energy count = %d, want 2", luteal.Energy.Count)
	}
	avg, ok := luteal.Energy.Average()
	if !ok || avg != 4.0 {
		t.Errorf("energy average = (%v, %v), want (4, true)", avg, ok)
	}
	if got := luteal.Energy.Display(); got != "4.0" {
		t.Errorf("energy display = %q, want 4.0", got)
	}
	if got := luteal.RPE.Display(); got != NoData {
		t.Errorf("rpe display = %q, want no-data marker", got)
	}
}

func TestAggregateByPhaseEmpty(t *testing.T) {
	got := AggregateByPhase(nil)

	if len(got) != 4 {
		t.Fatalf("expected 4 phases, got %d", len(got))
	}
	for _, p := range models.Phases {
		s, ok := got[p]
		if !ok {
			t.Fatalf("phase %s missing", p)
		}
		if s.N != 0 {
			t.Errorf("%s: N = %d, want 0", p, s.N)
		}
		for name, m := range map[string]MetricSummary{"energy": s.Energy, "rpe": s.RPE, "sleep": s.Sleep} {
			if m.Display() != NoData {
				t.Errorf("%s %s: display = %q, want no-data marker", p, name, m.Display())
			}
		}
	}
}

func TestAggregateByPhaseSkipsUnsetAndUnknown(t *testing.T) {
	logs := []models.LogRow{
		{Phase: models.PhaseUnset, Energy: f(1)},
		{Phase: models.Phase("Winter"), Energy: f(1)},
		{Phase: models.PhaseMenstrual, RPE: f(6), Sleep: f(7)},
		{Phase: models.PhaseMenstrual, RPE: f(8), Sleep: f(8)},
		{Phase: models.PhaseFollicular, Energy: f(4), RPE: f(5), Sleep: f(9)},
	}

	got := AggregateByPhase(logs)

	if len(got) != 4 {
		t.Fatalf("unknown phases must not appear, got %d entries", len(got))
	}
	men := got[models.PhaseMenstrual]
	if men.N != 2 || men.RPE.Display() != "7.0" || men.Sleep.Display() != "7.5" {
		t.Errorf("unexpected menstrual summary: %+v (rpe %s, sleep %s)", men, men.RPE.Display(), men.Sleep.Display())
	}
	if men.Energy.Count != 0 {
		t.Errorf("menstrual energy count = %d, want 0", men.Energy.Count)
	}
	if got[models.PhaseFollicular].N != 1 {
		t.Errorf("follicular N = %d, want 1", got[models.PhaseFollicular].N)
	}
	if got[models.PhaseOvulatory].N != 0 {
		t.Errorf("ovulatory N = %d, want 0", got[models.PhaseOvulatory].N)
	}
}

func TestAggregateByPhaseCountsZeroAsRecorded(t *testing.T) {
	logs := []models.LogRow{
		{Phase: models.PhaseOvulatory, Sleep: f(0)},
		{Phase: models.PhaseOvulatory, Sleep: f(8)},
	}

	sleep := AggregateByPhase(logs)[models.PhaseOvulatory].Sleep
	if sleep.Count != 2 || sleep.Display() != "4.0" {
		t.Errorf("sleep = %+v (%s), want count 2 average 4.0", sleep, sleep.Display())
	}
}

func TestOrderedSummaries(t *testing.T) {
	rows := OrderedSummaries([]models.LogRow{{Phase: models.PhaseLuteal}})

	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for i, p := range models.Phases {
		if rows[i].Phase != p {
			t.Errorf("row %d phase = %s, want %s", i, rows[i].Phase, p)
		}
	}
	if rows[3].Summary.N != 1 {
		t.Errorf("luteal N = %d, want 1", rows[3].Summary.N)
	}
}
