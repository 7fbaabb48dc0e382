package models

import "testing"

func TestIsValidGradeValue(t *testing.T) {
	for _, v := range []float64{0.0, 0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0} {
		if !IsValidGradeValue(v) {
			t.Errorf("IsValidGradeValue(%v) = false, want true", v)
		}
	}

	for _, v := range []float64{-0.5, 4.5, 4.25, 0.1, 1.3, 3.99} {
		if IsValidGradeValue(v) {
			t.Errorf("IsValidGradeValue(%v) = true, want false", v)
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleStudent, RoleFaculty, RoleAdmin} {
		if !r.IsValid() {
			t.Errorf("%q.IsValid() = false", r)
		}
	}
	for _, r := range []Role{"", "student", "TEACHER"} {
		if r.IsValid() {
			t.Errorf("%q.IsValid() = true", r)
		}
	}
}
