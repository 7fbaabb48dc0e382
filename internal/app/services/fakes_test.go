package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/campuscore/registrar/internal/app/models"
	"github.com/campuscore/registrar/internal/app/repositories"
)

// fakeRegistry is an in-memory implementation of all repository interfaces.
// Enroll takes the registry lock for the whole check-and-increment, matching
// the atomicity contract of the pgx implementation.
type fakeRegistry struct {
	mu          sync.Mutex
	users       map[int64]*models.User
	courses     []*models.Course
	sections    map[int64]*models.Section
	enrollments map[string]*models.Enrollment
	grades      map[string]*models.Grade
	nextID      int64
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		users:       make(map[int64]*models.User),
		sections:    make(map[int64]*models.Section),
		enrollments: make(map[string]*models.Enrollment),
		grades:      make(map[string]*models.Grade),
		nextID:      1,
	}
}

func pairKey(studentID, sectionID int64) string {
	return fmt.Sprintf("%d:%d", studentID, sectionID)
}

func (f *fakeRegistry) allocID() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeRegistry) addUser(email, name string, role models.Role, passwordHash string) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	user := &models.User{
		ID:           f.allocID(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeRegistry) addCourse(code, name string) *models.Course {
	f.mu.Lock()
	defer f.mu.Unlock()
	course := &models.Course{ID: f.allocID(), Code: code, Name: name}
	f.courses = append(f.courses, course)
	return course
}

func (f *fakeRegistry) addSection(courseID, facultyID int64, code string, capacity int) *models.Section {
	f.mu.Lock()
	defer f.mu.Unlock()
	section := &models.Section{
		ID:          f.allocID(),
		CourseID:    courseID,
		SectionCode: code,
		FacultyID:   facultyID,
		MaxCapacity: capacity,
	}
	f.sections[section.ID] = section
	return section
}

// UserRepository

func (f *fakeRegistry) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeRegistry) GetByID(ctx context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// CourseRepository

func (f *fakeRegistry) GetAll(ctx context.Context, limit, offset int) ([]*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if offset >= len(f.courses) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.courses) {
		end = len(f.courses)
	}
	out := make([]*models.Course, 0, end-offset)
	for _, course := range f.courses[offset:end] {
		copied := *course
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRegistry) Exists(ctx context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, course := range f.courses {
		if course.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// SectionRepository

func (f *fakeRegistry) sectionByID(id int64) (*models.Section, error) {
	section, ok := f.sections[id]
	if !ok {
		return nil, repositories.ErrSectionNotFound
	}
	copied := *section
	return &copied, nil
}

func (f *fakeRegistry) GetSectionByID(ctx context.Context, id int64) (*models.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sectionByID(id)
}

func (f *fakeRegistry) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Section
	for _, section := range f.sections {
		if section.CourseID == courseID {
			copied := *section
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRegistry) GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Section
	for _, section := range f.sections {
		if section.FacultyID == facultyID {
			copied := *section
			out = append(out, &copied)
		}
	}
	return out, nil
}

// EnrollmentRepository

func (f *fakeRegistry) Enroll(ctx context.Context, studentID, sectionID int64) (*models.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := pairKey(studentID, sectionID)
	if _, ok := f.enrollments[key]; ok {
		return nil, repositories.ErrAlreadyEnrolled
	}

	section, ok := f.sections[sectionID]
	if !ok {
		return nil, repositories.ErrSectionNotFound
	}
	if section.EnrolledCount >= section.MaxCapacity {
		return nil, repositories.ErrSectionFull
	}

	section.EnrolledCount++
	enrollment := &models.Enrollment{
		ID:         f.allocID(),
		StudentID:  studentID,
		SectionID:  sectionID,
		EnrolledAt: time.Now(),
	}
	f.enrollments[key] = enrollment
	copied := *enrollment
	return &copied, nil
}

func (f *fakeRegistry) GetEnrollmentsByStudentID(ctx context.Context, studentID int64) ([]*models.EnrollmentDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.EnrollmentDetail
	for _, e := range f.enrollments {
		if e.StudentID != studentID {
			continue
		}
		section := f.sections[e.SectionID]
		detail := &models.EnrollmentDetail{Enrollment: *e}
		if section != nil {
			detail.SectionCode = section.SectionCode
			for _, course := range f.courses {
				if course.ID == section.CourseID {
					detail.CourseCode = course.Code
					detail.CourseName = course.Name
				}
			}
			if faculty, ok := f.users[section.FacultyID]; ok {
				detail.FacultyName = faculty.Name
			}
		}
		out = append(out, detail)
	}
	return out, nil
}

func (f *fakeRegistry) EnrollmentExists(ctx context.Context, studentID, sectionID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.enrollments[pairKey(studentID, sectionID)]
	return ok, nil
}

// GradeRepository

func (f *fakeRegistry) Upsert(ctx context.Context, grade *models.Grade) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey(grade.StudentID, grade.SectionID)
	existing, ok := f.grades[key]
	if ok {
		existing.GradeValue = grade.GradeValue
		existing.UploadedAt = time.Now()
		grade.ID = existing.ID
		return nil
	}
	stored := *grade
	stored.ID = f.allocID()
	stored.UploadedAt = time.Now()
	f.grades[key] = &stored
	grade.ID = stored.ID
	return nil
}

func (f *fakeRegistry) GetGradesByStudentID(ctx context.Context, studentID int64) ([]*models.GradeDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.GradeDetail
	for _, g := range f.grades {
		if g.StudentID != studentID {
			continue
		}
		detail := &models.GradeDetail{Grade: *g}
		if section, ok := f.sections[g.SectionID]; ok {
			detail.SectionCode = section.SectionCode
			for _, course := range f.courses {
				if course.ID == section.CourseID {
					detail.CourseCode = course.Code
					detail.CourseName = course.Name
				}
			}
		}
		out = append(out, detail)
	}
	return out, nil
}

func (f *fakeRegistry) GetGradesBySectionID(ctx context.Context, sectionID int64) ([]*models.SectionGrade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.SectionGrade
	for _, g := range f.grades {
		if g.SectionID != sectionID {
			continue
		}
		sg := &models.SectionGrade{Grade: *g}
		if student, ok := f.users[g.StudentID]; ok {
			sg.StudentName = student.Name
		}
		out = append(out, sg)
	}
	return out, nil
}

func (f *fakeRegistry) gradeValue(studentID, sectionID int64) (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.grades[pairKey(studentID, sectionID)]
	if !ok {
		return 0, false
	}
	return g.GradeValue, true
}

func (f *fakeRegistry) enrolledCount(sectionID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sections[sectionID].EnrolledCount
}

// Adapters binding the registry to the individual repository interfaces.
// Several interfaces share method names with different signatures, so the
// registry cannot implement them all directly.

type fakeUserRepo struct{ reg *fakeRegistry }

func (r fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.reg.GetByEmail(ctx, email)
}

func (r fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.reg.GetByID(ctx, id)
}

type fakeCourseRepo struct{ reg *fakeRegistry }

func (r fakeCourseRepo) GetAll(ctx context.Context, limit, offset int) ([]*models.Course, error) {
	return r.reg.GetAll(ctx, limit, offset)
}

func (r fakeCourseRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return r.reg.Exists(ctx, id)
}

type fakeSectionRepo struct{ reg *fakeRegistry }

func (r fakeSectionRepo) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	return r.reg.GetSectionByID(ctx, id)
}

func (r fakeSectionRepo) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Section, error) {
	return r.reg.GetByCourseID(ctx, courseID)
}

func (r fakeSectionRepo) GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Section, error) {
	return r.reg.GetByFacultyID(ctx, facultyID)
}

type fakeEnrollmentRepo struct{ reg *fakeRegistry }

func (r fakeEnrollmentRepo) Enroll(ctx context.Context, studentID, sectionID int64) (*models.Enrollment, error) {
	return r.reg.Enroll(ctx, studentID, sectionID)
}

func (r fakeEnrollmentRepo) GetByStudentID(ctx context.Context, studentID int64) ([]*models.EnrollmentDetail, error) {
	return r.reg.GetEnrollmentsByStudentID(ctx, studentID)
}

func (r fakeEnrollmentRepo) Exists(ctx context.Context, studentID, sectionID int64) (bool, error) {
	return r.reg.EnrollmentExists(ctx, studentID, sectionID)
}

type fakeGradeRepo struct{ reg *fakeRegistry }

func (r fakeGradeRepo) Upsert(ctx context.Context, grade *models.Grade) error {
	return r.reg.Upsert(ctx, grade)
}

func (r fakeGradeRepo) GetByStudentID(ctx context.Context, studentID int64) ([]*models.GradeDetail, error) {
	return r.reg.GetGradesByStudentID(ctx, studentID)
}

func (r fakeGradeRepo) GetBySectionID(ctx context.Context, sectionID int64) ([]*models.SectionGrade, error) {
	return r.reg.GetGradesBySectionID(ctx, sectionID)
}
