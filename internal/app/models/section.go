package models

import "time"

// Section represents one scheduled offering of a course, with a seat cap and
// one owning faculty member. EnrolledCount must always equal the number of
// enrollment rows referencing the section; the enrollment repository's atomic
// enroll operation is the only writer allowed to move it.
type Section struct {
	ID            int64     `json:"id" db:"id"`
	CourseID      int64     `json:"courseId" db:"course_id"`
	SectionCode   string    `json:"sectionCode" db:"section_code"` // Unique per course
	FacultyID     int64     `json:"facultyId" db:"faculty_id"`
	MaxCapacity   int       `json:"maxCapacity" db:"max_capacity"`
	EnrolledCount int       `json:"enrolledCount" db:"enrolled_count"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	// FacultyName is resolved on reads that join the owning user row.
	FacultyName string `json:"facultyName,omitempty"`
}
