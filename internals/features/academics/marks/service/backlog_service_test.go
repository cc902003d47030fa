package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campushub_backend/internals/features/academics/marks/model"
)

func TestShouldPromote(t *testing.T) {
	tests := []struct {
		name       string
		examType   model.ExamType
		percentage float64
		want       bool
	}{
		{"failing end-term", model.ExamEndTerm, 20, true},
		{"just under pass end-term", model.ExamEndTerm, 32.99, true},
		{"passing end-term", model.ExamEndTerm, 33, false},
		{"failing mid-term", model.ExamMidTerm, 20, false},
		{"failing internal", model.ExamInternal, 0, false},
		{"failing practical", model.ExamPractical, 10, false},
		{"failing assignment", model.ExamAssignment, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.MarksModel{ExamType: tt.examType, Percentage: tt.percentage}
			assert.Equal(t, tt.want, ShouldPromote(m))
		})
	}
}

func TestApplyAttemptOutcome(t *testing.T) {
	now := time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)
	marks := func(v float64) *float64 { return &v }

	t.Run("pass clears and freezes", func(t *testing.T) {
		backlog := model.BacklogModel{Status: model.BacklogRegistered}
		attempt := model.BacklogAttempt{AttemptNumber: 1}
		ApplyAttemptOutcome(&backlog, &attempt, AttemptOutcome{
			Result:        model.AttemptPass,
			ObtainedMarks: marks(45),
			MaxMarks:      marks(100),
		}, now)

		assert.Equal(t, model.BacklogCleared, backlog.Status)
		assert.Equal(t, now, *backlog.ClearedDate)
		assert.Equal(t, 45.0, *backlog.ClearedMarks)
		assert.Equal(t, model.AttemptPass, *attempt.Result)
		assert.Equal(t, 45.0, *attempt.ObtainedMarks)
	})

	t.Run("fail reopens", func(t *testing.T) {
		backlog := model.BacklogModel{Status: model.BacklogRegistered}
		attempt := model.BacklogAttempt{AttemptNumber: 2}
		ApplyAttemptOutcome(&backlog, &attempt, AttemptOutcome{
			Result:        model.AttemptFail,
			ObtainedMarks: marks(12),
			MaxMarks:      marks(100),
		}, now)

		assert.Equal(t, model.BacklogOpen, backlog.Status)
		assert.Nil(t, backlog.ClearedDate)
		assert.Equal(t, model.AttemptFail, *attempt.Result)
	})

	t.Run("absent reopens without marks", func(t *testing.T) {
		backlog := model.BacklogModel{Status: model.BacklogRegistered}
		attempt := model.BacklogAttempt{AttemptNumber: 1}
		ApplyAttemptOutcome(&backlog, &attempt, AttemptOutcome{Result: model.AttemptAbsent}, now)

		assert.Equal(t, model.BacklogOpen, backlog.Status)
		assert.Equal(t, model.AttemptAbsent, *attempt.Result)
		assert.Nil(t, attempt.ObtainedMarks)
		assert.Nil(t, attempt.MaxMarks)
	})
}

func TestAttemptResultValid(t *testing.T) {
	for _, r := range []model.AttemptResult{model.AttemptPass, model.AttemptFail, model.AttemptAbsent} {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, model.AttemptResult("Withdrawn").Valid())
}
