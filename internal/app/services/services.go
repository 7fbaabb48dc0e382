package services

import (
	"context"

	"github.com/campuscore/registrar/internal/app/models"
	"github.com/campuscore/registrar/internal/app/models/dto"
)

// Services defined in this package:
// - AuthService: credential verification and session token lifecycle
// - EnrollmentService: course/section listings and atomic seat allocation
// - GradeService: grade reads, validation and owner-only uploads

// Repository contracts consumed by the services. The pgx implementations in
// the repositories package satisfy them; tests substitute in-memory fakes.

// UserRepository provides user lookups
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// CourseRepository provides course reads
type CourseRepository interface {
	GetAll(ctx context.Context, limit, offset int) ([]*models.Course, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// SectionRepository provides section reads
type SectionRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Section, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Section, error)
	GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Section, error)
}

// EnrollmentRepository provides enrollment reads and the atomic enroll
// operation. Enroll must be indivisible with respect to concurrent callers
// targeting the same section: it reports repositories.ErrAlreadyEnrolled and
// repositories.ErrSectionFull as outcomes and never commits a seat beyond
// capacity or a duplicate (student, section) row.
type EnrollmentRepository interface {
	Enroll(ctx context.Context, studentID, sectionID int64) (*models.Enrollment, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.EnrollmentDetail, error)
	Exists(ctx context.Context, studentID, sectionID int64) (bool, error)
}

// GradeRepository provides grade reads and the idempotent upsert
type GradeRepository interface {
	Upsert(ctx context.Context, grade *models.Grade) error
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.GradeDetail, error)
	GetBySectionID(ctx context.Context, sectionID int64) ([]*models.SectionGrade, error)
}

// Service contracts consumed by the controllers.

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) (*dto.OutcomeResponse, error)
	ValidateToken(ctx context.Context, token string) (*dto.ValidateTokenResponse, error)
}

// EnrollmentService owns course/section/enrollment consistency
type EnrollmentService interface {
	ListCourses(ctx context.Context, limit, offset int) ([]dto.CourseResponse, error)
	ListSections(ctx context.Context, courseID int64) ([]dto.SectionResponse, error)
	GetFacultySections(ctx context.Context, facultyID int64) ([]dto.SectionResponse, error)
	GetEnrollments(ctx context.Context, studentID int64) ([]dto.EnrollmentResponse, error)
	EnrollStudent(ctx context.Context, studentID, sectionID int64) (*dto.OutcomeResponse, error)
}

// GradeService owns grade validation and instructor-ownership authorization
type GradeService interface {
	GetGrades(ctx context.Context, studentID int64) ([]dto.GradeResponse, error)
	UploadGrade(ctx context.Context, facultyID, studentID, sectionID int64, gradeValue float64) (*dto.OutcomeResponse, error)
	GetSectionGrades(ctx context.Context, facultyID, sectionID int64) ([]dto.SectionGradeResponse, error)
}
