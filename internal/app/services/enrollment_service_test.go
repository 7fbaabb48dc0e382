package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"

	"github.com/campuscore/registrar/internal/app/models"
	"github.com/campuscore/registrar/internal/pkg/apperrors"
)

func newEnrollmentService(reg *fakeRegistry) EnrollmentService {
	return NewEnrollmentService(
		fakeCourseRepo{reg},
		fakeSectionRepo{reg},
		fakeEnrollmentRepo{reg},
		zerolog.Nop(),
	)
}

func TestEnrollStudentSuccess(t *testing.T) {
	reg := newFakeRegistry()
	faculty := reg.addUser("prof@example.edu", "Prof", models.RoleFaculty, "")
	student := reg.addUser("stud@example.edu", "Stud", models.RoleStudent, "")
	course := reg.addCourse("STDISCM", "Distributed Computing")
	section := reg.addSection(course.ID, faculty.ID, "S11", 5)

	svc := newEnrollmentService(reg)

	outcome, err := svc.EnrollStudent(context.Background(), student.ID, section.ID)
	if err != nil {
		t.Fatalf("EnrollStudent returned error: %v", err)
	}
	if !outcome.Success {
		t.Fatalf("expected success, got rejection: %s", outcome.Message)
	}
	if got := reg.enrolledCount(section.ID); got != 1 {
		t.Fatalf("enrolled count = %d, want 1", got)
	}
}

func TestEnrollStudentAlreadyEnrolled(t *testing.T) {
	reg := newFakeRegistry()
	faculty := reg.addUser("prof@example.edu", "Prof", models.RoleFaculty, "")
	student := reg.addUser("stud@example.edu", "Stud", models.RoleStudent, "")
	course := reg.addCourse("STDISCM", "Distributed Computing")
	section := reg.addSection(course.ID, faculty.ID, "S11", 5)

	svc := newEnrollmentService(reg)

	if _, err := svc.EnrollStudent(context.Background(), student.ID, section.ID); err != nil {
		t.Fatalf("first enroll failed: %v", err)
	}

	outcome, err := svc.EnrollStudent(context.Background(), student.ID, section.ID)
	if err != nil {
		t.Fatalf("duplicate enroll returned error: %v", err)
	}
	if outcome.Success {
		t.Fatal("duplicate enroll was accepted")
	}
	if outcome.Message != "already enrolled" {
		t.Fatalf("message = %q, want %q", outcome.Message, "already enrolled")
	}
	if got := reg.enrolledCount(section.ID); got != 1 {
		t.Fatalf("enrolled count = %d after duplicate enroll, want 1", got)
	}
}

func TestEnrollStudentSectionFull(t *testing.T) {
	reg := newFakeRegistry()
	faculty := reg.addUser("prof@example.edu", "Prof", models.RoleFaculty, "")
	course := reg.addCourse("STDISCM", "Distributed Computing")
	section := reg.addSection(course.ID, faculty.ID, "S11", 2)

	svc := newEnrollmentService(reg)

	for i := 0; i < 2; i++ {
		student := reg.addUser("s@example.edu", "S", models.RoleStudent, "")
		outcome, err := svc.EnrollStudent(context.Background(), student.ID, section.ID)
		if err != nil || !outcome.Success {
			t.Fatalf("seat %d should have been granted: outcome=%v err=%v", i, outcome, err)
		}
	}

	late := reg.addUser("late@example.edu", "Late", models.RoleStudent, "")
	outcome, err := svc.EnrollStudent(context.Background(), late.ID, section.ID)
	if err != nil {
		t.Fatalf("enroll into full section returned error: %v", err)
	}
	if outcome.Success {
		t.Fatal("full section accepted an enrollment")
	}
	if outcome.Message != "section full" {
		t.Fatalf("message = %q, want %q", outcome.Message, "section full")
	}
}

func TestEnrollStudentUnknownSection(t *testing.T) {
	reg := newFakeRegistry()
	student := reg.addUser("stud@example.edu", "Stud", models.RoleStudent, "")

	svc := newEnrollmentService(reg)

	_, err := svc.EnrollStudent(context.Background(), student.ID, 999)
	if err == nil {
		t.Fatal("expected error for unknown section")
	}
	if apperrors.KindOf(err) != codes.NotFound {
		t.Fatalf("kind = %v, want NotFound", apperrors.KindOf(err))
	}
}

func TestEnrollStudentInvalidIDs(t *testing.T) {
	svc := newEnrollmentService(newFakeRegistry())

	for _, pair := range [][2]int64{{0, 1}, {1, 0}, {-1, 5}} {
		_, err := svc.EnrollStudent(context.Background(), pair[0], pair[1])
		if apperrors.KindOf(err) != codes.InvalidArgument {
			t.Fatalf("EnrollStudent(%d, %d): kind = %v, want InvalidArgument", pair[0], pair[1], apperrors.KindOf(err))
		}
	}
}

// Distinct students race for a section with fewer seats than contenders.
// Exactly capacity many must win and the counter must end at capacity.
func TestEnrollStudentConcurrentCapacity(t *testing.T) {
	const capacity = 5
	const contenders = 20

	reg := newFakeRegistry()
	faculty := reg.addUser("prof@example.edu", "Prof", models.RoleFaculty, "")
	course := reg.addCourse("STDISCM", "Distributed Computing")
	section := reg.addSection(course.ID, faculty.ID, "S11", capacity)

	students := make([]*models.User, contenders)
	for i := range students {
		students[i] = reg.addUser("s@example.edu", "S", models.RoleStudent, "")
	}

	svc := newEnrollmentService(reg)

	var wg sync.WaitGroup
	outcomes := make([]bool, contenders)
	errs := make([]error, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcome, err := svc.EnrollStudent(context.Background(), students[i].ID, section.ID)
			if err != nil {
				errs[i] = err
				return
			}
			outcomes[i] = outcome.Success
		}(i)
	}
	wg.Wait()

	granted := 0
	for i := 0; i < contenders; i++ {
		if errs[i] != nil {
			t.Fatalf("contender %d got error: %v", i, errs[i])
		}
		if outcomes[i] {
			granted++
		}
	}

	if granted != capacity {
		t.Fatalf("granted = %d, want exactly %d", granted, capacity)
	}
	if got := reg.enrolledCount(section.ID); got != capacity {
		t.Fatalf("enrolled count = %d, want %d", got, capacity)
	}
}

// The same student races against itself; at most one attempt may win.
func TestEnrollStudentConcurrentDuplicate(t *testing.T) {
	const attempts = 10

	reg := newFakeRegistry()
	faculty := reg.addUser("prof@example.edu", "Prof", models.RoleFaculty, "")
	student := reg.addUser("stud@example.edu", "Stud", models.RoleStudent, "")
	course := reg.addCourse("STDISCM", "Distributed Computing")
	section := reg.addSection(course.ID, faculty.ID, "S11", 30)

	svc := newEnrollmentService(reg)

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := svc.EnrollStudent(context.Background(), student.ID, section.ID)
			if err == nil && outcome.Success {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if granted != 1 {
		t.Fatalf("granted = %d, want exactly 1", granted)
	}
	if got := reg.enrolledCount(section.ID); got != 1 {
		t.Fatalf("enrolled count = %d, want 1", got)
	}
}

func TestListSectionsUnknownCourse(t *testing.T) {
	svc := newEnrollmentService(newFakeRegistry())

	_, err := svc.ListSections(context.Background(), 42)
	if apperrors.KindOf(err) != codes.NotFound {
		t.Fatalf("kind = %v, want NotFound", apperrors.KindOf(err))
	}
}

func TestListSectionsResolvesFacultyName(t *testing.T) {
	reg := newFakeRegistry()
	faculty := reg.addUser("prof@example.edu", "Dr. John Smith", models.RoleFaculty, "")
	course := reg.addCourse("CSSWENG", "Software Engineering")
	reg.addSection(course.ID, faculty.ID, "S11", 15)

	// The pgx repository resolves the name with a join; the fake does not,
	// so only shape and count are asserted here.
	svc := newEnrollmentService(reg)

	sections, err := svc.ListSections(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("ListSections returned error: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(sections))
	}
	if sections[0].SectionCode != "S11" || sections[0].MaxCapacity != 15 {
		t.Fatalf("unexpected section: %+v", sections[0])
	}
}

func TestListCoursesPagination(t *testing.T) {
	reg := newFakeRegistry()
	for _, code := range []string{"A", "B", "C"} {
		reg.addCourse(code, code)
	}

	svc := newEnrollmentService(reg)

	courses, err := svc.ListCourses(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("ListCourses returned error: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("len(courses) = %d, want 2", len(courses))
	}

	rest, err := svc.ListCourses(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("ListCourses offset returned error: %v", err)
	}
	if len(rest) != 1 {
		t.Fatalf("len(rest) = %d, want 1", len(rest))
	}
}

func TestGetEnrollmentsDenormalized(t *testing.T) {
	reg := newFakeRegistry()
	faculty := reg.addUser("prof@example.edu", "Dr. John Smith", models.RoleFaculty, "")
	student := reg.addUser("stud@example.edu", "Stud", models.RoleStudent, "")
	course := reg.addCourse("STDISCM", "Distributed Computing")
	section := reg.addSection(course.ID, faculty.ID, "S11", 5)

	svc := newEnrollmentService(reg)

	if _, err := svc.EnrollStudent(context.Background(), student.ID, section.ID); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	enrollments, err := svc.GetEnrollments(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("GetEnrollments returned error: %v", err)
	}
	if len(enrollments) != 1 {
		t.Fatalf("len(enrollments) = %d, want 1", len(enrollments))
	}
	e := enrollments[0]
	if e.CourseCode != "STDISCM" || e.SectionCode != "S11" || e.FacultyName != "Dr. John Smith" {
		t.Fatalf("unexpected enrollment detail: %+v", e)
	}
}

func TestGetFacultySections(t *testing.T) {
	reg := newFakeRegistry()
	faculty := reg.addUser("prof@example.edu", "Prof", models.RoleFaculty, "")
	other := reg.addUser("other@example.edu", "Other", models.RoleFaculty, "")
	course := reg.addCourse("STDISCM", "Distributed Computing")
	reg.addSection(course.ID, faculty.ID, "S11", 5)
	reg.addSection(course.ID, faculty.ID, "S13", 15)
	reg.addSection(course.ID, other.ID, "S12", 15)

	svc := newEnrollmentService(reg)

	sections, err := svc.GetFacultySections(context.Background(), faculty.ID)
	if err != nil {
		t.Fatalf("GetFacultySections returned error: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}
}

func TestSoftRejectionIsNotAnAppError(t *testing.T) {
	reg := newFakeRegistry()
	faculty := reg.addUser("prof@example.edu", "Prof", models.RoleFaculty, "")
	student := reg.addUser("stud@example.edu", "Stud", models.RoleStudent, "")
	course := reg.addCourse("STDISCM", "Distributed Computing")
	section := reg.addSection(course.ID, faculty.ID, "S11", 0)

	// Capacity zero forces the full path; the result must come back on the
	// outcome channel with a nil error.
	svc := newEnrollmentService(reg)

	outcome, err := svc.EnrollStudent(context.Background(), student.ID, section.ID)
	if err != nil {
		t.Fatalf("soft rejection surfaced as error: %v", err)
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		t.Fatal("soft rejection wrapped an AppError")
	}
	if outcome.Success {
		t.Fatal("expected rejection for zero-capacity section")
	}
}
