package service

import "math"

const PassPercentage = 33.0

// ComputeGrade maps a percentage to a letter grade. The band edges are
// inclusive at the lower bound.
func ComputeGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "O"
	case percentage >= 80:
		return "A+"
	case percentage >= 70:
		return "A"
	case percentage >= 60:
		return "B+"
	case percentage >= 50:
		return "B"
	case percentage >= 40:
		return "C"
	case percentage >= PassPercentage:
		return "D"
	default:
		return "F"
	}
}

func IsPassing(percentage float64) bool {
	return percentage >= PassPercentage
}

// Percentage computes obtained/max as a percentage rounded to two decimals.
// Returns 0 when max is not positive.
func Percentage(obtained, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Round(obtained/max*10000) / 100
}
