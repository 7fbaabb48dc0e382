package dto

import "time"

// CourseResponse represents a course in catalog listings
type CourseResponse struct {
	ID          int64  `json:"id"`
	Code        string `json:"code" example:"CSADPRG"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SectionResponse represents a section with its resolved faculty name
type SectionResponse struct {
	ID            int64  `json:"id"`
	CourseID      int64  `json:"courseId"`
	SectionCode   string `json:"sectionCode" example:"S11"`
	FacultyID     int64  `json:"facultyId"`
	FacultyName   string `json:"facultyName"`
	MaxCapacity   int    `json:"maxCapacity"`
	EnrolledCount int    `json:"enrolledCount"`
}

// EnrollRequest represents a seat request for a section. The student is the
// authenticated caller.
type EnrollRequest struct {
	SectionID int64 `json:"sectionId" binding:"required,min=1"`
}

// EnrollmentResponse represents one of a student's enrollments, denormalized
// for display
type EnrollmentResponse struct {
	ID          int64     `json:"id"`
	CourseCode  string    `json:"courseCode"`
	CourseName  string    `json:"courseName"`
	SectionCode string    `json:"sectionCode"`
	FacultyName string    `json:"facultyName"`
	EnrolledAt  time.Time `json:"enrolledAt"`
}
