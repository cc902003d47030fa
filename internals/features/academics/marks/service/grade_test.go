package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGrade(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		want       string
	}{
		{"full marks", 100, "O"},
		{"lower edge of O", 90, "O"},
		{"just under O", 89.99, "A+"},
		{"lower edge of A+", 80, "A+"},
		{"lower edge of A", 70, "A"},
		{"lower edge of B+", 60, "B+"},
		{"lower edge of B", 50, "B"},
		{"lower edge of C", 40, "C"},
		{"lower edge of D", 33, "D"},
		{"just under pass", 32.99, "F"},
		{"zero", 0, "F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeGrade(tt.percentage))
		})
	}
}

func TestIsPassing(t *testing.T) {
	assert.True(t, IsPassing(33))
	assert.True(t, IsPassing(100))
	assert.False(t, IsPassing(32.99))
	assert.False(t, IsPassing(0))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		obtained float64
		max      float64
		want     float64
	}{
		{"exact half", 50, 100, 50},
		{"rounds to two decimals", 33, 90, 36.67},
		{"full", 75, 75, 100},
		{"zero max", 10, 0, 0},
		{"negative max", 10, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.obtained, tt.max))
		})
	}
}
