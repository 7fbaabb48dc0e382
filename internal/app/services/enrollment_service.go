package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campuscore/registrar/internal/app/models"
	"github.com/campuscore/registrar/internal/app/models/dto"
	"github.com/campuscore/registrar/internal/app/repositories"
	"github.com/campuscore/registrar/internal/pkg/apperrors"
	"github.com/campuscore/registrar/internal/pkg/helpers"
)

// Soft rejection messages for the enroll operation
const (
	msgAlreadyEnrolled = "already enrolled"
	msgSectionFull     = "section full"
	msgEnrolled        = "enrolled successfully"
)

// enrollmentService implements EnrollmentService. The capacity invariant
// itself lives in the enrollment repository's atomic Enroll operation; this
// layer validates input, resolves resources and separates business outcomes
// from infrastructure errors.
type enrollmentService struct {
	courseRepo     CourseRepository
	sectionRepo    SectionRepository
	enrollmentRepo EnrollmentRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	courseRepo CourseRepository,
	sectionRepo SectionRepository,
	enrollmentRepo EnrollmentRepository,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentService{
		courseRepo:     courseRepo,
		sectionRepo:    sectionRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// ListCourses returns the paginated course catalog
func (s *enrollmentService) ListCourses(ctx context.Context, limit, offset int) ([]dto.CourseResponse, error) {
	limit, offset = helpers.ClampLimitOffset(limit, offset)

	courses, err := s.courseRepo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list courses", err)
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.CourseResponse{
			ID:          course.ID,
			Code:        course.Code,
			Name:        course.Name,
			Description: course.Description,
		})
	}

	return responses, nil
}

// ListSections returns all sections of a course with resolved faculty names.
// An unknown course is a NotFound error, never an empty list.
func (s *enrollmentService) ListSections(ctx context.Context, courseID int64) ([]dto.SectionResponse, error) {
	if courseID <= 0 {
		return nil, apperrors.NewInvalidArgumentError("course id is required")
	}

	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to check course", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("course not found")
	}

	sections, err := s.sectionRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list sections", err)
	}

	return toSectionResponses(sections), nil
}

// GetFacultySections returns the sections owned by the given faculty member
func (s *enrollmentService) GetFacultySections(ctx context.Context, facultyID int64) ([]dto.SectionResponse, error) {
	if facultyID <= 0 {
		return nil, apperrors.NewInvalidArgumentError("faculty id is required")
	}

	sections, err := s.sectionRepo.GetByFacultyID(ctx, facultyID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list faculty sections", err)
	}

	return toSectionResponses(sections), nil
}

// GetEnrollments returns a student's enrollments denormalized for display
func (s *enrollmentService) GetEnrollments(ctx context.Context, studentID int64) ([]dto.EnrollmentResponse, error) {
	if studentID <= 0 {
		return nil, apperrors.NewInvalidArgumentError("student id is required")
	}

	enrollments, err := s.enrollmentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list enrollments", err)
	}

	responses := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		responses = append(responses, dto.EnrollmentResponse{
			ID:          e.ID,
			CourseCode:  e.CourseCode,
			CourseName:  e.CourseName,
			SectionCode: e.SectionCode,
			FacultyName: e.FacultyName,
			EnrolledAt:  e.EnrolledAt,
		})
	}

	return responses, nil
}

// EnrollStudent allocates a seat in the section for the student. A full
// section or a duplicate enrollment is a business outcome reported as a
// soft rejection; only infrastructure failures surface as errors.
func (s *enrollmentService) EnrollStudent(ctx context.Context, studentID, sectionID int64) (*dto.OutcomeResponse, error) {
	if studentID <= 0 || sectionID <= 0 {
		return nil, apperrors.NewInvalidArgumentError("student id and section id are required")
	}

	// Resolve the section first; enrolling into a nonexistent section is a
	// caller error, not a business outcome.
	if _, err := s.sectionRepo.GetByID(ctx, sectionID); err != nil {
		if errors.Is(err, repositories.ErrSectionNotFound) {
			return nil, apperrors.NewNotFoundError("section not found")
		}
		return nil, apperrors.NewInternalError("failed to resolve section", err)
	}

	_, err := s.enrollmentRepo.Enroll(ctx, studentID, sectionID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrAlreadyEnrolled):
			s.logger.Warn().Int64("studentId", studentID).Int64("sectionId", sectionID).Msg("Enrollment rejected: already enrolled")
			return &dto.OutcomeResponse{Success: false, Message: msgAlreadyEnrolled}, nil
		case errors.Is(err, repositories.ErrSectionFull):
			s.logger.Warn().Int64("studentId", studentID).Int64("sectionId", sectionID).Msg("Enrollment rejected: section full")
			return &dto.OutcomeResponse{Success: false, Message: msgSectionFull}, nil
		default:
			return nil, apperrors.NewInternalError("failed to enroll student", err)
		}
	}

	s.logger.Info().Int64("studentId", studentID).Int64("sectionId", sectionID).Msg("Enrollment successful")
	return &dto.OutcomeResponse{Success: true, Message: msgEnrolled}, nil
}

func toSectionResponses(sections []*models.Section) []dto.SectionResponse {
	responses := make([]dto.SectionResponse, 0, len(sections))
	for _, section := range sections {
		responses = append(responses, dto.SectionResponse{
			ID:            section.ID,
			CourseID:      section.CourseID,
			SectionCode:   section.SectionCode,
			FacultyID:     section.FacultyID,
			FacultyName:   section.FacultyName,
			MaxCapacity:   section.MaxCapacity,
			EnrolledCount: section.EnrolledCount,
		})
	}
	return responses
}
