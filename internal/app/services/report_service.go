package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/app/repositories"
	"github.com/campushub/studentms/internal/pkg/apperrors"
	"github.com/campushub/studentms/internal/pkg/export"
)

// ReportService produces downloadable artifacts: completion certificates
// and the full student roster workbook.
type ReportService interface {
	// GenerateCertificate renders a completion certificate PDF. The
	// requesting teacher must be the instructor of the course and the
	// student must be enrolled in it.
	GenerateCertificate(ctx context.Context, teacherID, studentID, courseID int64) (string, error)

	// ExportStudentRoster writes an Excel workbook describing every
	// student enrollment and returns its path.
	ExportStudentRoster(ctx context.Context) (string, error)
}

type reportService struct {
	userRepo       repositories.UserRepository
	courseRepo     repositories.CourseRepository
	enrollmentRepo repositories.EnrollmentRepository
	certificates   *export.CertificateGenerator
	roster         *export.RosterExporter
	logger         zerolog.Logger
}

// NewReportService creates a new report service instance.
func NewReportService(
	userRepo repositories.UserRepository,
	courseRepo repositories.CourseRepository,
	enrollmentRepo repositories.EnrollmentRepository,
	certificates *export.CertificateGenerator,
	roster *export.RosterExporter,
	logger zerolog.Logger,
) ReportService {
	return &reportService{
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		certificates:   certificates,
		roster:         roster,
		logger:         logger,
	}
}

func (s *reportService) GenerateCertificate(ctx context.Context, teacherID, studentID, courseID int64) (string, error) {
	student, err := s.userRepo.GetByIDAndRole(ctx, studentID, models.RoleStudent)
	if err != nil {
		return "", apperrors.NewResourceNotFoundError("Student or course not found")
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return "", apperrors.NewResourceNotFoundError("Student or course not found")
	}

	if course.InstructorID == nil || *course.InstructorID != teacherID {
		return "", apperrors.NewForbiddenError("You are not the instructor for this course")
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, studentID, courseID)
	if err != nil {
		return "", err
	}
	if !enrolled {
		return "", apperrors.NewCustomError(apperrors.ErrStudentNotEnrolled, "Student not enrolled in this course")
	}

	teacher, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		return "", err
	}

	path, err := s.certificates.Generate(studentID, courseID, export.CertificateData{
		StudentName:    student.FullName,
		CourseTitle:    course.Title,
		InstructorName: teacher.FullName,
		IssuedAt:       time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrExportFailed, err)
	}

	s.logger.Info().
		Int64("studentId", studentID).
		Int64("courseId", courseID).
		Str("path", path).
		Msg("Certificate generated")
	return path, nil
}

func (s *reportService) ExportStudentRoster(ctx context.Context) (string, error) {
	rows, err := s.enrollmentRepo.RosterRows(ctx)
	if err != nil {
		return "", err
	}

	path, err := s.roster.Export(rows)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrExportFailed, err)
	}

	s.logger.Info().
		Int("rows", len(rows)).
		Str("path", path).
		Msg("Student roster exported")
	return path, nil
}
