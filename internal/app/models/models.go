package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleFaculty Role = "FACULTY"
	RoleAdmin   Role = "ADMIN"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// Grade values run from 0.0 to 4.0 in 0.5 steps.
const (
	MinGradeValue  = 0.0
	MaxGradeValue  = 4.0
	GradeValueStep = 0.5
)

// IsValidGradeValue reports whether v is one of the nine allowed grade points.
func IsValidGradeValue(v float64) bool {
	if v < MinGradeValue || v > MaxGradeValue {
		return false
	}
	// Multiples of 0.5 survive doubling exactly in binary floating point.
	doubled := v * 2
	return doubled == float64(int64(doubled))
}
