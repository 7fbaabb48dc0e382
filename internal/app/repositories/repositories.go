package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors shared by the repositories. Services translate these into
// typed application errors or soft rejections.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrSectionNotFound = errors.New("section not found")

	// Enrollment business outcomes surfaced by the atomic enroll operation
	ErrAlreadyEnrolled = errors.New("already enrolled")
	ErrSectionFull     = errors.New("section full")
)

// Repositories bundles all repository instances
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	SectionRepository    *SectionRepository
	EnrollmentRepository *EnrollmentRepository
	GradeRepository      *GradeRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		CourseRepository:     NewCourseRepository(db),
		SectionRepository:    NewSectionRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		GradeRepository:      NewGradeRepository(db),
	}
}
