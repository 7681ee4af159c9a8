package normalize

import "math"

// Round2 rounds to two decimal places. Uses math.Round to avoid truncation bias.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MillisToMinutes converts integer milliseconds to minutes, rounded to two
// decimal places.
func MillisToMinutes(ms int64) float64 {
	return Round2(float64(ms) / 60000)
}

// ElementsPerMinute derives the throughput rate. Zero when no time was
// recorded; the rate is computed against minutes, not raw milliseconds, so
// the unit matches the element totals.
func ElementsPerMinute(totalElements int64, minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return Round2(float64(totalElements) / minutes)
}

// ClampCount coerces a parsed numeric into a non-negative integer count.
// Fractional inputs truncate toward zero.
func ClampCount(v float64) int64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int64(v)
}
