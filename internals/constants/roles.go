package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// Grouped role slices for route gating
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleParent,
	}
	StaffRoles = []string{
		RoleAdmin,
		RoleTeacher,
	}
	AdminOnly = []string{
		RoleAdmin,
	}
	TeacherOnly = []string{
		RoleTeacher,
	}
	StudentOnly = []string{
		RoleStudent,
	}
	ApplicantRoles = []string{
		RoleStudent,
		RoleTeacher,
	}
)

// Role error message templates
const (
	ErrOnlyStaffCanAccess  = "Only teachers or admins may access %s."
	ErrOnlyAdminsCanAccess = "Only admins may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
