package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campushub_backend/internals/features/academics/attendance/model"
)

func rec(status model.AttendanceStatus, n int) []model.AttendanceModel {
	out := make([]model.AttendanceModel, n)
	for i := range out {
		out[i] = model.AttendanceModel{Status: status}
	}
	return out
}

func TestSummarize(t *testing.T) {
	records := append(rec(model.StatusPresent, 6), rec(model.StatusAbsent, 2)...)
	records = append(records, rec(model.StatusLate, 1)...)
	records = append(records, rec(model.StatusLeave, 1)...)

	s := Summarize(records)

	assert.Equal(t, 10, s.Total)
	assert.Equal(t, 6, s.Present)
	assert.Equal(t, 2, s.Absent)
	assert.Equal(t, 1, s.Late)
	assert.Equal(t, 1, s.Leave)
	assert.Equal(t, 70, s.Percentage, "late should count toward the percentage")
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Percentage)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		attended int
		total    int
		want     int
	}{
		{"all present", 20, 20, 100},
		{"none present", 0, 20, 0},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"rounds half up", 1, 2, 50},
		{"empty scope", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.attended, tt.total))
		})
	}
}

func TestAttendanceStatus(t *testing.T) {
	for _, s := range []model.AttendanceStatus{model.StatusPresent, model.StatusAbsent, model.StatusLate, model.StatusLeave} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, model.AttendanceStatus("Holiday").Valid())
	assert.False(t, model.AttendanceStatus("").Valid())

	assert.True(t, model.StatusPresent.CountsAsPresent())
	assert.True(t, model.StatusLate.CountsAsPresent())
	assert.False(t, model.StatusAbsent.CountsAsPresent())
	assert.False(t, model.StatusLeave.CountsAsPresent())
}
