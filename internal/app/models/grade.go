package models

import "time"

// Grade represents a grade record for a student in a section. The pair
// (StudentID, SectionID) is unique; a grade may only exist for an enrolled
// student and is only written by the section's owning faculty.
type Grade struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	SectionID  int64     `json:"sectionId" db:"section_id"`
	GradeValue float64   `json:"gradeValue" db:"grade_value"`
	UploadedAt time.Time `json:"uploadedAt" db:"uploaded_at"`
}

// GradeDetail is a grade denormalized with course display fields for
// student-facing listings.
type GradeDetail struct {
	Grade
	CourseCode  string `json:"courseCode"`
	CourseName  string `json:"courseName"`
	SectionCode string `json:"sectionCode"`
}

// SectionGrade is a grade denormalized with the student's display name for
// faculty-facing section listings.
type SectionGrade struct {
	Grade
	StudentName string `json:"studentName"`
}
