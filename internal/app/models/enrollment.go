package models

import "time"

// Enrollment represents a student's seat in a section. The pair
// (StudentID, SectionID) is unique; rows are only created through the
// enrollment repository's atomic enroll operation and never deleted by
// normal flow.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	SectionID  int64     `json:"sectionId" db:"section_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
}

// EnrollmentDetail is an enrollment denormalized with course, section and
// faculty display fields for student-facing listings.
type EnrollmentDetail struct {
	Enrollment
	CourseCode  string `json:"courseCode"`
	CourseName  string `json:"courseName"`
	SectionCode string `json:"sectionCode"`
	FacultyName string `json:"facultyName"`
}
