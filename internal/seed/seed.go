package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campuscore/registrar/internal/app/models"
	"github.com/campuscore/registrar/internal/app/repositories"
)

// Bcrypt hash of "password123", shared by every seeded account.
const seedPasswordHash = "$2b$10$VkkBYbohTTksjsDWbI7aoezO2aefnX3OcFJMTS6VmvE25UyCh6P12"

// CreateDefaultData seeds demo users, courses, sections, enrollments and
// grades when the database is empty. Re-runs are no-ops.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)

	// Skip entirely if any user already exists
	var userCount int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if userCount > 0 {
		lgr.Info().Msg("Seed data already present, skipping")
		return nil
	}

	lgr.Info().Msg("Seeding default data...")

	faculty, students, err := seedUsers(ctx, repos)
	if err != nil {
		return err
	}

	sections, err := seedCoursesAndSections(ctx, repos, faculty)
	if err != nil {
		return err
	}

	if err := seedEnrollments(ctx, repos, students, sections); err != nil {
		return err
	}

	if err := seedGrades(ctx, repos, students, sections); err != nil {
		return err
	}

	lgr.Info().
		Int("faculty", len(faculty)).
		Int("students", len(students)).
		Int("sections", len(sections)).
		Msg("Seed data created")
	return nil
}

func seedUsers(ctx context.Context, repos *repositories.Repositories) (faculty, students []*models.User, err error) {
	facultyNames := []string{"Dr. John Smith", "Prof. Jane Doe"}
	for i, name := range facultyNames {
		user := &models.User{
			Email:        fmt.Sprintf("faculty%d@dlsu.edu.ph", i+1),
			Name:         name,
			Role:         models.RoleFaculty,
			PasswordHash: seedPasswordHash,
		}
		if err := repos.UserRepository.Create(ctx, user); err != nil {
			return nil, nil, fmt.Errorf("failed to seed faculty user: %w", err)
		}
		faculty = append(faculty, user)
	}

	studentNames := []string{
		"Tony Stark", "Steve Rogers", "Natasha Romanoff", "Bruce Banner",
		"Thor Odinson", "Wanda Maximoff", "Peter Parker", "Elphaba Thropp",
		"Glinda Upland", "Fiyero Tigelaar", "Nessarose Thropp", "Boq Woodsman",
		"Phil Dunphy", "Claire Dunphy", "Haley Dunphy", "Alex Dunphy",
		"Luke Dunphy", "Gloria Pritchett", "Cameron Tucker", "Mitchell Pritchett",
	}
	for i, name := range studentNames {
		user := &models.User{
			Email:        fmt.Sprintf("student%d@dlsu.edu.ph", i+1),
			Name:         name,
			Role:         models.RoleStudent,
			PasswordHash: seedPasswordHash,
		}
		if err := repos.UserRepository.Create(ctx, user); err != nil {
			return nil, nil, fmt.Errorf("failed to seed student user: %w", err)
		}
		students = append(students, user)
	}

	return faculty, students, nil
}

func seedCoursesAndSections(ctx context.Context, repos *repositories.Repositories, faculty []*models.User) ([]*models.Section, error) {
	courses := []*models.Course{
		{Code: "STDISCM", Name: "Distributed Systems and Concurrent Computing", Description: "Study of distributed computing architectures and concurrent programming"},
		{Code: "CSSWENG", Name: "Software Engineering", Description: "Software development lifecycle and engineering practices"},
		{Code: "CSADPRG", Name: "Advanced Programming", Description: "Advanced programming concepts and paradigms"},
	}
	for _, course := range courses {
		if err := repos.CourseRepository.Create(ctx, course); err != nil {
			return nil, fmt.Errorf("failed to seed course: %w", err)
		}
	}

	// The small S11 of STDISCM exists to exercise the "section full" path.
	sectionSpecs := []struct {
		course   *models.Course
		code     string
		faculty  *models.User
		capacity int
	}{
		{courses[0], "S11", faculty[0], 5},
		{courses[0], "S12", faculty[1], 15},
		{courses[0], "S13", faculty[0], 15},
		{courses[1], "S11", faculty[0], 15},
		{courses[1], "S12", faculty[1], 15},
		{courses[1], "S13", faculty[0], 15},
		{courses[2], "S11", faculty[0], 15},
		{courses[2], "S12", faculty[1], 15},
	}

	var sections []*models.Section
	for _, spec := range sectionSpecs {
		section := &models.Section{
			CourseID:    spec.course.ID,
			SectionCode: spec.code,
			FacultyID:   spec.faculty.ID,
			MaxCapacity: spec.capacity,
		}
		if err := repos.SectionRepository.Create(ctx, section); err != nil {
			return nil, fmt.Errorf("failed to seed section: %w", err)
		}
		sections = append(sections, section)
	}

	return sections, nil
}

// seedEnrollments goes through the transactional Enroll path so section
// counters stay consistent with the enrollment rows.
func seedEnrollments(ctx context.Context, repos *repositories.Repositories, students []*models.User, sections []*models.Section) error {
	enroll := func(studentIdx, sectionIdx int) error {
		_, err := repos.EnrollmentRepository.Enroll(ctx, students[studentIdx].ID, sections[sectionIdx].ID)
		if err != nil {
			return fmt.Errorf("failed to seed enrollment: %w", err)
		}
		return nil
	}

	// STDISCM S11 (cap 5): full
	for i := 0; i < 5; i++ {
		if err := enroll(i, 0); err != nil {
			return err
		}
	}
	// STDISCM S12 (cap 15): one spot left
	for i := 5; i < 19; i++ {
		if err := enroll(i, 1); err != nil {
			return err
		}
	}
	// STDISCM S13: partial
	for i := 0; i < 10; i++ {
		if err := enroll(i, 2); err != nil {
			return err
		}
	}
	// CSSWENG S11: partial
	for i := 0; i < 8; i++ {
		if err := enroll(i, 3); err != nil {
			return err
		}
	}
	// CSSWENG S12: low
	for _, i := range []int{10, 15, 19} {
		if err := enroll(i, 4); err != nil {
			return err
		}
	}
	// CSSWENG S13 stays empty
	// CSADPRG S11: few
	for i := 0; i < 5; i++ {
		if err := enroll(i, 6); err != nil {
			return err
		}
	}
	// CSADPRG S12: low
	for _, i := range []int{18, 19} {
		if err := enroll(i, 7); err != nil {
			return err
		}
	}

	return nil
}

func seedGrades(ctx context.Context, repos *repositories.Repositories, students []*models.User, sections []*models.Section) error {
	grades := []struct {
		studentIdx int
		sectionIdx int
		value      float64
	}{
		{0, 0, 4.0},
		{1, 0, 3.5},
		{2, 0, 2.5},
		{5, 1, 3.0},
		{6, 1, 4.0},
		{0, 2, 3.5},
	}

	for _, g := range grades {
		grade := &models.Grade{
			StudentID:  students[g.studentIdx].ID,
			SectionID:  sections[g.sectionIdx].ID,
			GradeValue: g.value,
		}
		if err := repos.GradeRepository.Upsert(ctx, grade); err != nil {
			return fmt.Errorf("failed to seed grade: %w", err)
		}
	}

	return nil
}
