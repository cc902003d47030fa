package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcademicYearAt(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"january belongs to previous year", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"june still previous year", time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"july starts the new year", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{"december", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "2025-2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AcademicYearAt(tt.at))
		})
	}
}

func TestParamsOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, PerPage: 25}.Offset())
	assert.Equal(t, 50, Params{Page: 3, PerPage: 25}.Offset())
	assert.Equal(t, 25, Params{Page: 2, PerPage: 25}.Limit())
}

func TestBuildMeta(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		perPage   int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"first of many", 120, 1, 25, 5, true, false},
		{"middle page", 120, 3, 25, 5, true, true},
		{"last partial page", 120, 5, 25, 5, false, true},
		{"exact fit", 100, 4, 25, 4, false, true},
		{"empty result", 0, 1, 25, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildMeta(tt.total, Params{Page: tt.page, PerPage: tt.perPage})
			assert.Equal(t, tt.wantPages, m.TotalPages)
			assert.Equal(t, tt.wantNext, m.HasNext)
			assert.Equal(t, tt.wantPrev, m.HasPrev)
			assert.Equal(t, tt.total, m.Total)
		})
	}
}
