package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"campushub_backend/internals/features/campus/leaves/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayCount(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", day(2025, 3, 10), day(2025, 3, 10), 1},
		{"three day span", day(2025, 3, 10), day(2025, 3, 12), 3},
		{"across month boundary", day(2025, 3, 31), day(2025, 4, 1), 2},
		{"end before start", day(2025, 3, 12), day(2025, 3, 10), 0},
		{"ignores time of day", day(2025, 3, 10).Add(23 * time.Hour), day(2025, 3, 11), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayCount(tt.start, tt.end))
		})
	}
}

func TestReview(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		l := &model.LeaveModel{Status: model.LeavePending}
		assert.NoError(t, Review(l, model.LeaveApproved))
		assert.Equal(t, model.LeaveApproved, l.Status)
	})
	t.Run("reject pending", func(t *testing.T) {
		l := &model.LeaveModel{Status: model.LeavePending}
		assert.NoError(t, Review(l, model.LeaveRejected))
		assert.Equal(t, model.LeaveRejected, l.Status)
	})
	t.Run("approved is terminal", func(t *testing.T) {
		l := &model.LeaveModel{Status: model.LeaveApproved}
		assert.ErrorIs(t, Review(l, model.LeaveRejected), ErrNotPending)
		assert.Equal(t, model.LeaveApproved, l.Status)
	})
	t.Run("cancelled cannot be reviewed", func(t *testing.T) {
		l := &model.LeaveModel{Status: model.LeaveCancelled}
		assert.ErrorIs(t, Review(l, model.LeaveApproved), ErrNotPending)
	})
	t.Run("review target must be a decision", func(t *testing.T) {
		l := &model.LeaveModel{Status: model.LeavePending}
		assert.ErrorIs(t, Review(l, model.LeaveCancelled), ErrInvalidStatus)
		assert.Equal(t, model.LeavePending, l.Status)
	})
}

func TestCancel(t *testing.T) {
	t.Run("applicant cancels pending", func(t *testing.T) {
		l := &model.LeaveModel{Status: model.LeavePending}
		assert.NoError(t, Cancel(l, true))
		assert.Equal(t, model.LeaveCancelled, l.Status)
	})
	t.Run("only applicant may cancel", func(t *testing.T) {
		l := &model.LeaveModel{Status: model.LeavePending}
		assert.ErrorIs(t, Cancel(l, false), ErrNotApplicant)
		assert.Equal(t, model.LeavePending, l.Status)
	})
	t.Run("approved cannot be cancelled", func(t *testing.T) {
		l := &model.LeaveModel{Status: model.LeaveApproved}
		assert.ErrorIs(t, Cancel(l, true), ErrNotPending)
	})
}

func TestReviewNotifications(t *testing.T) {
	leave := model.LeaveModel{
		ApplicantID:   uuid.New(),
		ApplicantRole: "student",
		Type:          model.LeaveSick,
		StartDate:     day(2025, 3, 10),
		EndDate:       day(2025, 3, 12),
		Status:        model.LeaveApproved,
	}

	t.Run("student with linked parent notifies both", func(t *testing.T) {
		parentUserID := uuid.New()
		ns := ReviewNotifications(leave, parentUserID)
		assert.Len(t, ns, 2)
		assert.Equal(t, leave.ApplicantID, ns[0].RecipientID)
		assert.Equal(t, "student", ns[0].RecipientRole)
		assert.Equal(t, parentUserID, ns[1].RecipientID)
		assert.Equal(t, "parent", ns[1].RecipientRole)
		assert.Contains(t, ns[1].Message, "ward")
	})

	t.Run("student without linked parent", func(t *testing.T) {
		ns := ReviewNotifications(leave, uuid.Nil)
		assert.Len(t, ns, 1)
		assert.Equal(t, leave.ApplicantID, ns[0].RecipientID)
	})

	t.Run("teacher applicant never notifies a parent", func(t *testing.T) {
		l := leave
		l.ApplicantRole = "teacher"
		ns := ReviewNotifications(l, uuid.New())
		assert.Len(t, ns, 1)
		assert.Equal(t, "teacher", ns[0].RecipientRole)
	})
}

func TestLeaveTypeValid(t *testing.T) {
	for _, lt := range []model.LeaveType{model.LeaveSick, model.LeaveCasual, model.LeaveMedical, model.LeavePersonal, model.LeaveOther} {
		assert.True(t, lt.Valid(), string(lt))
	}
	assert.False(t, model.LeaveType("Vacation").Valid())
}
