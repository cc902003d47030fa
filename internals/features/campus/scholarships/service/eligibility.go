package service

import (
	"errors"
	"time"

	"campushub_backend/internals/features/campus/scholarships/model"
	studentmodel "campushub_backend/internals/features/academics/students/model"
)

var (
	ErrClosed             = errors.New("scholarship is closed for applications")
	ErrDepartmentMismatch = errors.New("department not eligible")
	ErrCategoryMismatch   = errors.New("category not eligible")
)

// CheckEligibility runs the ordered eligibility gates: scheme open, then
// department restriction, then category restriction. An empty restriction
// list admits everyone on that axis. Applications close once the deadline
// has passed.
func CheckEligibility(s model.ScholarshipModel, student studentmodel.StudentModel, now time.Time) error {
	if !s.IsActive || now.After(s.ApplicationDeadline) {
		return ErrClosed
	}
	if len(s.EligibleDepartments) > 0 && !contains(s.EligibleDepartments, student.Department) {
		return ErrDepartmentMismatch
	}
	if len(s.EligibleCategories) > 0 && !contains(s.EligibleCategories, student.Category) {
		return ErrCategoryMismatch
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
