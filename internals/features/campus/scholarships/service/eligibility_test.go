package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	studentmodel "campushub_backend/internals/features/academics/students/model"
	"campushub_backend/internals/features/campus/scholarships/model"
)

func TestCheckEligibility(t *testing.T) {
	deadline := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	scheme := model.ScholarshipModel{
		IsActive:            true,
		ApplicationDeadline: deadline,
		EligibleDepartments: []string{"CSE", "ECE"},
		EligibleCategories:  []string{"SC", "ST"},
	}
	student := studentmodel.StudentModel{Department: "CSE", Category: "SC"}

	tests := []struct {
		name    string
		mutate  func(s *model.ScholarshipModel, st *studentmodel.StudentModel, now *time.Time)
		wantErr error
	}{
		{"eligible", nil, nil},
		{"inactive scheme", func(s *model.ScholarshipModel, _ *studentmodel.StudentModel, _ *time.Time) {
			s.IsActive = false
		}, ErrClosed},
		{"past deadline", func(_ *model.ScholarshipModel, _ *studentmodel.StudentModel, now *time.Time) {
			*now = deadline.AddDate(0, 0, 2)
		}, ErrClosed},
		{"hours past deadline closed", func(_ *model.ScholarshipModel, _ *studentmodel.StudentModel, now *time.Time) {
			*now = deadline.Add(18 * time.Hour)
		}, ErrClosed},
		{"at deadline still open", func(_ *model.ScholarshipModel, _ *studentmodel.StudentModel, now *time.Time) {
			*now = deadline
		}, nil},
		{"wrong department", func(_ *model.ScholarshipModel, st *studentmodel.StudentModel, _ *time.Time) {
			st.Department = "MECH"
		}, ErrDepartmentMismatch},
		{"wrong category", func(_ *model.ScholarshipModel, st *studentmodel.StudentModel, _ *time.Time) {
			st.Category = "General"
		}, ErrCategoryMismatch},
		{"closed wins over department", func(s *model.ScholarshipModel, st *studentmodel.StudentModel, _ *time.Time) {
			s.IsActive = false
			st.Department = "MECH"
		}, ErrClosed},
		{"department wins over category", func(_ *model.ScholarshipModel, st *studentmodel.StudentModel, _ *time.Time) {
			st.Department = "MECH"
			st.Category = "General"
		}, ErrDepartmentMismatch},
		{"empty department list admits all", func(s *model.ScholarshipModel, st *studentmodel.StudentModel, _ *time.Time) {
			s.EligibleDepartments = nil
			st.Department = "MECH"
		}, nil},
		{"empty category list admits all", func(s *model.ScholarshipModel, st *studentmodel.StudentModel, _ *time.Time) {
			s.EligibleCategories = nil
			st.Category = "General"
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, st, now := scheme, student, deadline.AddDate(0, 0, -7)
			s.EligibleDepartments = append([]string(nil), scheme.EligibleDepartments...)
			s.EligibleCategories = append([]string(nil), scheme.EligibleCategories...)
			if tt.mutate != nil {
				tt.mutate(&s, &st, &now)
			}
			err := CheckEligibility(s, st, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
