package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuscore/registrar/internal/app/models"
)

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// Upsert inserts the grade row keyed by (student_id, section_id), or
// overwrites its value and timestamp if it already exists. Each upsert is a
// single atomic statement; concurrent uploads for the same pair resolve to
// whichever committed last.
func (r *GradeRepository) Upsert(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (student_id, section_id, grade_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (student_id, section_id)
		DO UPDATE SET grade_value = EXCLUDED.grade_value, uploaded_at = NOW()
		RETURNING id, uploaded_at
	`

	err := r.db.QueryRow(ctx, query, grade.StudentID, grade.SectionID, grade.GradeValue).
		Scan(&grade.ID, &grade.UploadedAt)
	if err != nil {
		return fmt.Errorf("error upserting grade: %w", err)
	}

	return nil
}

// GetByStudentID retrieves a student's grades denormalized with course and
// section display fields
func (r *GradeRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.GradeDetail, error) {
	query := `
		SELECT g.id, g.student_id, g.section_id, g.grade_value, g.uploaded_at,
		       c.code, c.name, s.section_code
		FROM grades g
		JOIN sections s ON s.id = g.section_id
		JOIN courses c ON c.id = s.course_id
		WHERE g.student_id = $1
		ORDER BY g.uploaded_at ASC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.GradeDetail
	for rows.Next() {
		var detail models.GradeDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.StudentID,
			&detail.SectionID,
			&detail.GradeValue,
			&detail.UploadedAt,
			&detail.CourseCode,
			&detail.CourseName,
			&detail.SectionCode,
		); err != nil {
			return nil, err
		}
		grades = append(grades, &detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// GetBySectionID retrieves all grades of a section with student display names
func (r *GradeRepository) GetBySectionID(ctx context.Context, sectionID int64) ([]*models.SectionGrade, error) {
	query := `
		SELECT g.id, g.student_id, g.section_id, g.grade_value, g.uploaded_at,
		       u.name
		FROM grades g
		JOIN users u ON u.id = g.student_id
		WHERE g.section_id = $1
		ORDER BY u.name ASC
	`

	rows, err := r.db.Query(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("error listing section grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.SectionGrade
	for rows.Next() {
		var grade models.SectionGrade
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.SectionID,
			&grade.GradeValue,
			&grade.UploadedAt,
			&grade.StudentName,
		); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}
