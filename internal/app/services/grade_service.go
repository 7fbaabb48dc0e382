package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campuscore/registrar/internal/app/models"
	"github.com/campuscore/registrar/internal/app/models/dto"
	"github.com/campuscore/registrar/internal/app/repositories"
	"github.com/campuscore/registrar/internal/pkg/apperrors"
)

// Soft rejection messages for the upload operation
const (
	msgInvalidGradeValue = "invalid grade value"
	msgSectionMissing    = "section does not exist"
	msgNotAuthorized     = "not authorized"
	msgNotEnrolled       = "student not enrolled"
	msgGradeUploaded     = "grade uploaded successfully"
)

// gradeService implements GradeService. Mutation-path authorization failures
// are soft rejections; read-path authorization failures are hard errors.
// Callers branch on the difference, so the asymmetry is deliberate.
type gradeService struct {
	sectionRepo    SectionRepository
	enrollmentRepo EnrollmentRepository
	gradeRepo      GradeRepository
	logger         zerolog.Logger
}

// NewGradeService creates a new GradeService
func NewGradeService(
	sectionRepo SectionRepository,
	enrollmentRepo EnrollmentRepository,
	gradeRepo GradeRepository,
	logger zerolog.Logger,
) GradeService {
	return &gradeService{
		sectionRepo:    sectionRepo,
		enrollmentRepo: enrollmentRepo,
		gradeRepo:      gradeRepo,
		logger:         logger,
	}
}

// GetGrades returns a student's grades denormalized for display
func (s *gradeService) GetGrades(ctx context.Context, studentID int64) ([]dto.GradeResponse, error) {
	if studentID <= 0 {
		return nil, apperrors.NewInvalidArgumentError("student id is required")
	}

	grades, err := s.gradeRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list grades", err)
	}

	responses := make([]dto.GradeResponse, 0, len(grades))
	for _, g := range grades {
		responses = append(responses, dto.GradeResponse{
			CourseCode:  g.CourseCode,
			CourseName:  g.CourseName,
			SectionCode: g.SectionCode,
			GradeValue:  g.GradeValue,
			UploadedAt:  g.UploadedAt,
		})
	}

	return responses, nil
}

// UploadGrade validates and upserts a grade for an enrolled student. Each
// rejection on the way is a business outcome: the caller shows the message to
// the user rather than retrying or alerting. The upsert is idempotent, so
// re-uploading the same value leaves the same stored state.
func (s *gradeService) UploadGrade(ctx context.Context, facultyID, studentID, sectionID int64, gradeValue float64) (*dto.OutcomeResponse, error) {
	if facultyID <= 0 || studentID <= 0 || sectionID <= 0 {
		return nil, apperrors.NewInvalidArgumentError("faculty id, student id and section id are required")
	}

	if !models.IsValidGradeValue(gradeValue) {
		return &dto.OutcomeResponse{Success: false, Message: msgInvalidGradeValue}, nil
	}

	section, err := s.sectionRepo.GetByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, repositories.ErrSectionNotFound) {
			return &dto.OutcomeResponse{Success: false, Message: msgSectionMissing}, nil
		}
		return nil, apperrors.NewInternalError("failed to resolve section", err)
	}

	// Never leak anything about the section to a non-owner.
	if section.FacultyID != facultyID {
		s.logger.Warn().Int64("facultyId", facultyID).Int64("sectionId", sectionID).Msg("Grade upload rejected: not the section owner")
		return &dto.OutcomeResponse{Success: false, Message: msgNotAuthorized}, nil
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, studentID, sectionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to check enrollment", err)
	}
	if !enrolled {
		return &dto.OutcomeResponse{Success: false, Message: msgNotEnrolled}, nil
	}

	grade := &models.Grade{
		StudentID:  studentID,
		SectionID:  sectionID,
		GradeValue: gradeValue,
	}
	if err := s.gradeRepo.Upsert(ctx, grade); err != nil {
		return nil, apperrors.NewInternalError("failed to upsert grade", err)
	}

	s.logger.Info().Int64("facultyId", facultyID).Int64("studentId", studentID).Int64("sectionId", sectionID).Float64("gradeValue", gradeValue).Msg("Grade uploaded")
	return &dto.OutcomeResponse{Success: true, Message: msgGradeUploaded}, nil
}

// GetSectionGrades returns all grades of a section the caller owns. Unlike
// the upload path this is a read, and a non-owner gets a hard
// PermissionDenied error.
func (s *gradeService) GetSectionGrades(ctx context.Context, facultyID, sectionID int64) ([]dto.SectionGradeResponse, error) {
	if facultyID <= 0 || sectionID <= 0 {
		return nil, apperrors.NewInvalidArgumentError("faculty id and section id are required")
	}

	section, err := s.sectionRepo.GetByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, repositories.ErrSectionNotFound) {
			return nil, apperrors.NewNotFoundError("section not found")
		}
		return nil, apperrors.NewInternalError("failed to resolve section", err)
	}

	if section.FacultyID != facultyID {
		s.logger.Warn().Int64("facultyId", facultyID).Int64("sectionId", sectionID).Msg("Section grades read rejected: not the section owner")
		return nil, apperrors.NewPermissionDeniedError("you are not authorized to view grades for this section")
	}

	grades, err := s.gradeRepo.GetBySectionID(ctx, sectionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list section grades", err)
	}

	responses := make([]dto.SectionGradeResponse, 0, len(grades))
	for _, g := range grades {
		responses = append(responses, dto.SectionGradeResponse{
			StudentID:   g.StudentID,
			StudentName: g.StudentName,
			GradeValue:  g.GradeValue,
			UploadedAt:  g.UploadedAt,
		})
	}

	return responses, nil
}
