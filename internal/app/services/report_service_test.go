package services

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/pkg/apperrors"
	"github.com/campushub/studentms/internal/pkg/export"
)

type reportFixture struct {
	userRepo       *fakeUserRepo
	courseRepo     *fakeCourseRepo
	enrollmentRepo *fakeEnrollmentRepo
	svc            ReportService

	teacher *models.User
	student *models.User
	course  *models.Course
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()

	f := &reportFixture{
		userRepo:       newFakeUserRepo(),
		courseRepo:     newFakeCourseRepo(),
		enrollmentRepo: newFakeEnrollmentRepo(),
	}

	certificates, err := export.NewCertificateGenerator(t.TempDir())
	require.NoError(t, err)
	roster, err := export.NewRosterExporter(t.TempDir())
	require.NoError(t, err)

	f.svc = NewReportService(f.userRepo, f.courseRepo, f.enrollmentRepo, certificates, roster, zerolog.Nop())

	f.teacher = f.userRepo.addUser("Jordan Teacher", "teacher@example.com", models.RoleTeacher)
	f.student = f.userRepo.addUser("Sam Student", "student@example.com", models.RoleStudent)

	f.course = &models.Course{
		Title:        "Algorithms",
		Code:         "CS301",
		Credits:      6,
		InstructorID: &f.teacher.ID,
	}
	require.NoError(t, f.courseRepo.Create(context.Background(), f.course))
	return f
}

func TestGenerateCertificate(t *testing.T) {
	ctx := context.Background()

	t.Run("writes a PDF for an enrolled student", func(t *testing.T) {
		f := newReportFixture(t)
		require.NoError(t, f.enrollmentRepo.Add(ctx, f.student.ID, f.course.ID))

		path, err := f.svc.GenerateCertificate(ctx, f.teacher.ID, f.student.ID, f.course.ID)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, len(content) > 4 && string(content[:4]) == "%PDF")
	})

	t.Run("rejects non-instructor", func(t *testing.T) {
		f := newReportFixture(t)
		other := f.userRepo.addUser("Other Teacher", "other@example.com", models.RoleTeacher)
		require.NoError(t, f.enrollmentRepo.Add(ctx, f.student.ID, f.course.ID))

		_, err := f.svc.GenerateCertificate(ctx, other.ID, f.student.ID, f.course.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Contains(t, err.Error(), "You are not the instructor for this course")
	})

	t.Run("rejects non-enrolled student", func(t *testing.T) {
		f := newReportFixture(t)

		_, err := f.svc.GenerateCertificate(ctx, f.teacher.ID, f.student.ID, f.course.ID)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotEnrolled)
	})

	t.Run("fails for missing student", func(t *testing.T) {
		f := newReportFixture(t)

		_, err := f.svc.GenerateCertificate(ctx, f.teacher.ID, 999, f.course.ID)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.Contains(t, err.Error(), "Student or course not found")
	})

	t.Run("fails for missing course", func(t *testing.T) {
		f := newReportFixture(t)

		_, err := f.svc.GenerateCertificate(ctx, f.teacher.ID, f.student.ID, 999)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}

func TestExportStudentRoster(t *testing.T) {
	ctx := context.Background()

	f := newReportFixture(t)
	f.enrollmentRepo.rows = []models.RosterRow{
		{
			StudentID:      f.student.ID,
			StudentName:    f.student.FullName,
			Email:          f.student.Email,
			CourseTitle:    f.course.Title,
			DepartmentName: "Computer Science",
			InstructorName: f.teacher.FullName,
		},
	}

	path, err := f.svc.ExportStudentRoster(ctx)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
