package planner

import (
	"math"
	"strconv"
	"strings"
)

// ParseNullableNumber parses raw field input. Empty or non-numeric input
// yields nil rather than an error.
func ParseNullableNumber(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Clamp restricts n to [min, max]
func Clamp(n, min, max float64) float64 {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// ClampNullable clamps a recorded value and leaves none as none
func ClampNullable(v *float64, min, max float64) *float64 {
	if v == nil {
		return nil
	}
	c := Clamp(*v, min, max)
	return &c
}
