package helper

import (
	"fmt"
	"time"
)

// CurrentAcademicYear returns the institution year label spanning two calendar
// years, e.g. "2024-2025". The year rolls over in July.
func CurrentAcademicYear() string {
	return AcademicYearAt(time.Now())
}

func AcademicYearAt(t time.Time) string {
	year := t.Year()
	if t.Month() < time.July {
		year--
	}
	return fmt.Sprintf("%d-%d", year, year+1)
}
