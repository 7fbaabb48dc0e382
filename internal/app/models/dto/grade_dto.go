package dto

import "time"

// GradeResponse represents one of a student's grades, denormalized for display
type GradeResponse struct {
	CourseCode  string    `json:"courseCode"`
	CourseName  string    `json:"courseName"`
	SectionCode string    `json:"sectionCode"`
	GradeValue  float64   `json:"gradeValue" example:"3.5"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// UploadGradeRequest represents a grade upload. The faculty member is the
// authenticated caller. GradeValue is a pointer so that an absent field is
// distinguishable from a legitimate 0.0.
type UploadGradeRequest struct {
	StudentID  int64    `json:"studentId" binding:"required,min=1"`
	SectionID  int64    `json:"sectionId" binding:"required,min=1"`
	GradeValue *float64 `json:"gradeValue" binding:"required"`
}

// SectionGradeResponse represents a grade row in a faculty's section listing
type SectionGradeResponse struct {
	StudentID   int64     `json:"studentId"`
	StudentName string    `json:"studentName"`
	GradeValue  float64   `json:"gradeValue"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
