package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuscore/registrar/internal/app/models"
	"github.com/campuscore/registrar/internal/db"
	"github.com/campuscore/registrar/internal/pkg/dberrors"
)

// enrollmentUniqueConstraint is the unique index on (student_id, section_id)
const enrollmentUniqueConstraint = "enrollments_student_id_section_id_key"

// EnrollmentRepository handles database operations for enrollments. Enroll is
// the only writer of enrollment rows and section seat counts.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Enroll atomically allocates a seat for the student in the section.
//
// Inside a single transaction it inserts the enrollment row and then runs a
// conditional increment of the section's seat count guarded by the capacity:
//
//	UPDATE sections SET enrolled_count = enrolled_count + 1
//	WHERE id = $1 AND enrolled_count < max_capacity
//
// A unique-violation on the enrollment insert means a prior enrollment exists
// (ErrAlreadyEnrolled); zero rows affected by the guarded update means the
// section is full (ErrSectionFull). Either outcome rolls back the whole unit
// of work, so enrolled_count always equals the number of enrollment rows.
// Concurrent calls against the same section serialize on the section row's
// lock; unrelated sections stay independently concurrent.
func (r *EnrollmentRepository) Enroll(ctx context.Context, studentID, sectionID int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertQuery := `
			INSERT INTO enrollments (student_id, section_id)
			VALUES ($1, $2)
			RETURNING id, student_id, section_id, enrolled_at
		`

		err := tx.QueryRow(ctx, insertQuery, studentID, sectionID).Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.SectionID,
			&enrollment.EnrolledAt,
		)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, enrollmentUniqueConstraint) {
				return ErrAlreadyEnrolled
			}
			return fmt.Errorf("error inserting enrollment: %w", err)
		}

		updateQuery := `
			UPDATE sections
			SET enrolled_count = enrolled_count + 1
			WHERE id = $1 AND enrolled_count < max_capacity
		`

		cmdTag, err := tx.Exec(ctx, updateQuery, sectionID)
		if err != nil {
			return fmt.Errorf("error incrementing enrolled count: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return ErrSectionFull
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &enrollment, nil
}

// GetByStudentID retrieves a student's enrollments denormalized with course,
// section and faculty display fields
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.EnrollmentDetail, error) {
	query := `
		SELECT e.id, e.student_id, e.section_id, e.enrolled_at,
		       c.code, c.name, s.section_code, u.name
		FROM enrollments e
		JOIN sections s ON s.id = e.section_id
		JOIN courses c ON c.id = s.course_id
		JOIN users u ON u.id = s.faculty_id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at ASC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.EnrollmentDetail
	for rows.Next() {
		var detail models.EnrollmentDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.StudentID,
			&detail.SectionID,
			&detail.EnrolledAt,
			&detail.CourseCode,
			&detail.CourseName,
			&detail.SectionCode,
			&detail.FacultyName,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, &detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Exists checks whether an enrollment exists for the (student, section) pair
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, sectionID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND section_id = $2)`,
		studentID, sectionID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}
