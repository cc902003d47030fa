package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/campus/leaves/model"
	notifmodel "campushub_backend/internals/features/home/notifications/model"
)

var (
	ErrNotPending    = errors.New("leave is not pending")
	ErrNotApplicant  = errors.New("only the applicant may cancel")
	ErrInvalidStatus = errors.New("invalid review status")
)

// DayCount returns the inclusive number of calendar days between start and
// end. The same day counts as one.
func DayCount(start, end time.Time) int {
	s := start.Truncate(24 * time.Hour)
	e := end.Truncate(24 * time.Hour)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// Review moves a pending leave to Approved or Rejected. Both outcomes are
// terminal.
func Review(leave *model.LeaveModel, status model.LeaveStatus) error {
	if leave.Status != model.LeavePending {
		return ErrNotPending
	}
	if status != model.LeaveApproved && status != model.LeaveRejected {
		return ErrInvalidStatus
	}
	leave.Status = status
	return nil
}

// ReviewNotifications builds the fan-out for a reviewed leave: the applicant
// always hears back, and a student's linked parent does too. parentUserID is
// uuid.Nil when the applicant is not a student or has no linked parent.
func ReviewNotifications(leave model.LeaveModel, parentUserID uuid.UUID) []notifmodel.NotificationModel {
	span := fmt.Sprintf("%s leave from %s to %s",
		leave.Type, leave.StartDate.Format("02/01/2006"), leave.EndDate.Format("02/01/2006"))

	out := []notifmodel.NotificationModel{{
		RecipientID:   leave.ApplicantID,
		RecipientRole: leave.ApplicantRole,
		Title:         fmt.Sprintf("Leave %s", leave.Status),
		Message:       fmt.Sprintf("Your %s has been %s.", span, leave.Status),
		Type:          notifmodel.TypeLeave,
	}}
	if leave.ApplicantRole == constants.RoleStudent && parentUserID != uuid.Nil {
		out = append(out, notifmodel.NotificationModel{
			RecipientID:   parentUserID,
			RecipientRole: constants.RoleParent,
			Title:         fmt.Sprintf("Ward Leave %s", leave.Status),
			Message:       fmt.Sprintf("Your ward's %s has been %s.", span, leave.Status),
			Type:          notifmodel.TypeLeave,
		})
	}
	return out
}

// Cancel withdraws a pending leave. Only the applicant may cancel.
func Cancel(leave *model.LeaveModel, byApplicant bool) error {
	if !byApplicant {
		return ErrNotApplicant
	}
	if leave.Status != model.LeavePending {
		return ErrNotPending
	}
	leave.Status = model.LeaveCancelled
	return nil
}
