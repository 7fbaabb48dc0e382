package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuscore/registrar/internal/app/models"
)

// SectionRepository handles database operations for sections
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
	}
}

// sectionColumns are the select columns for section reads joined with the
// owning faculty's user row.
func sectionSelect() sq.SelectBuilder {
	return psql.
		Select(
			"s.id", "s.course_id", "s.section_code", "s.faculty_id",
			"s.max_capacity", "s.enrolled_count", "s.created_at", "u.name",
		).
		From("sections s").
		Join("users u ON u.id = s.faculty_id")
}

func scanSections(rows pgx.Rows) ([]*models.Section, error) {
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		var section models.Section
		if err := rows.Scan(
			&section.ID,
			&section.CourseID,
			&section.SectionCode,
			&section.FacultyID,
			&section.MaxCapacity,
			&section.EnrolledCount,
			&section.CreatedAt,
			&section.FacultyName,
		); err != nil {
			return nil, err
		}
		sections = append(sections, &section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// GetByID retrieves a section by ID with its resolved faculty name
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	query, args, err := sectionSelect().Where(sq.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building section query: %w", err)
	}

	var section models.Section
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&section.ID,
		&section.CourseID,
		&section.SectionCode,
		&section.FacultyID,
		&section.MaxCapacity,
		&section.EnrolledCount,
		&section.CreatedAt,
		&section.FacultyName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	return &section, nil
}

// GetByCourseID retrieves all sections of a course
func (r *SectionRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Section, error) {
	query, args, err := sectionSelect().
		Where(sq.Eq{"s.course_id": courseID}).
		OrderBy("s.section_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building section query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing sections: %w", err)
	}

	return scanSections(rows)
}

// GetByFacultyID retrieves all sections owned by the given faculty member
func (r *SectionRepository) GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Section, error) {
	query, args, err := sectionSelect().
		Where(sq.Eq{"s.faculty_id": facultyID}).
		OrderBy("s.course_id ASC", "s.section_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building section query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing faculty sections: %w", err)
	}

	return scanSections(rows)
}

// Create inserts a new section row. Provisioning/seeding only.
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (course_id, section_code, faculty_id, max_capacity, enrolled_count)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		section.CourseID, section.SectionCode, section.FacultyID, section.MaxCapacity).
		Scan(&section.ID, &section.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating section: %w", err)
	}

	return nil
}
