package service

import (
	"math"

	"campushub_backend/internals/features/academics/attendance/model"
)

// Summary aggregates a set of attendance records for one scope.
type Summary struct {
	Total      int `json:"total"`
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	Late       int `json:"late"`
	Leave      int `json:"leave"`
	Percentage int `json:"percentage"`
}

// Summarize counts statuses and derives the attendance percentage.
// Present and Late both count toward the percentage. An empty scope yields 0,
// never a division error.
func Summarize(records []model.AttendanceModel) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case model.StatusPresent:
			s.Present++
		case model.StatusAbsent:
			s.Absent++
		case model.StatusLate:
			s.Late++
		case model.StatusLeave:
			s.Leave++
		}
	}
	s.Percentage = Percentage(s.Present+s.Late, s.Total)
	return s
}

// Percentage is round(attended/total*100); 0 when total is 0.
func Percentage(attended, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(attended) / float64(total) * 100))
}
