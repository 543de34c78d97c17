package planner

import (
	"sort"

	"phaseplan/internal/models"
)

// TrendPoint is one charted day
type TrendPoint struct {
	Date   string  `json:"date"`
	Energy float64 `json:"energy"`
	RPE    float64 `json:"rpe"`
}

// BuildTrendSeries returns dated rows in ascending date order.
// The chart has no gap representation, so unrecorded values plot as 0.
func BuildTrendSeries(logs []models.LogRow) []TrendPoint {
	points := make([]TrendPoint, 0, len(logs))
	for _, row := range logs {
		if row.Date == "" {
			continue
		}
		points = append(points, TrendPoint{
			Date:   row.Date,
			Energy: valueOrZero(row.Energy),
			RPE:    valueOrZero(row.RPE),
		})
	}

	// Zero-padded ISO dates sort correctly as strings
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
