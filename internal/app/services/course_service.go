package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/app/models/dto"
	"github.com/campushub/studentms/internal/app/repositories"
	"github.com/campushub/studentms/internal/pkg/apperrors"
)

// CourseService handles course management and enrollments.
type CourseService interface {
	// Create adds a course owned by the calling instructor.
	Create(ctx context.Context, instructorID int64, req *dto.CreateCourseRequest) (*models.Course, error)
	ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error)
	// Update and Delete require the course to be owned by the caller.
	Update(ctx context.Context, courseID, instructorID int64, req *dto.CreateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, courseID, instructorID int64) error

	// AssignInstructor reassigns a course to a teacher and returns the
	// assigned teacher.
	AssignInstructor(ctx context.Context, courseID, newInstructorID int64) (*models.User, error)

	// AssignStudent enrolls a student into a course and returns both.
	AssignStudent(ctx context.Context, req *dto.AssignCourseRequest) (*models.Course, *models.User, error)

	// ListStudentCourses lists the courses a student is enrolled in.
	ListStudentCourses(ctx context.Context, studentID int64) ([]*models.Course, error)
}

type courseService struct {
	courseRepo     repositories.CourseRepository
	departmentRepo repositories.DepartmentRepository
	userRepo       repositories.UserRepository
	enrollmentRepo repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewCourseService creates a new course service instance.
func NewCourseService(
	courseRepo repositories.CourseRepository,
	departmentRepo repositories.DepartmentRepository,
	userRepo repositories.UserRepository,
	enrollmentRepo repositories.EnrollmentRepository,
	logger zerolog.Logger,
) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

func (s *courseService) Create(ctx context.Context, instructorID int64, req *dto.CreateCourseRequest) (*models.Course, error) {
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:        req.CourseTitle,
		Code:         req.CourseCode,
		Credits:      req.Credits,
		InstructorID: &instructorID,
		DepartmentID: &req.DepartmentID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("instructorId", instructorID).
		Str("courseCode", course.Code).
		Msg("Course created")
	return course, nil
}

func (s *courseService) ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	return s.courseRepo.ListByInstructor(ctx, instructorID)
}

func (s *courseService) Update(ctx context.Context, courseID, instructorID int64, req *dto.CreateCourseRequest) (*models.Course, error) {
	course, err := s.getOwned(ctx, courseID, instructorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	course.Title = req.CourseTitle
	course.Code = req.CourseCode
	course.Credits = req.Credits
	course.DepartmentID = &req.DepartmentID

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("instructorId", instructorID).
		Str("courseCode", course.Code).
		Msg("Course updated")
	return course, nil
}

func (s *courseService) Delete(ctx context.Context, courseID, instructorID int64) error {
	course, err := s.getOwned(ctx, courseID, instructorID)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, course.ID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("instructorId", instructorID).
		Str("courseCode", course.Code).
		Msg("Course deleted")
	return nil
}

// getOwned fetches a course only when the instructor owns it. Ownership
// mismatch reads the same as a missing course, matching the API contract.
func (s *courseService) getOwned(ctx context.Context, courseID, instructorID int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByIDAndInstructor(ctx, courseID, instructorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Course not found or not authorized")
		}
		return nil, err
	}
	return course, nil
}

func (s *courseService) AssignInstructor(ctx context.Context, courseID, newInstructorID int64) (*models.User, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	// A course instructor must hold the Teacher role.
	teacher, err := s.userRepo.GetByIDAndRole(ctx, newInstructorID, models.RoleTeacher)
	if err != nil {
		return nil, apperrors.NewResourceNotFoundError("Teacher not found")
	}

	if err := s.courseRepo.SetInstructor(ctx, courseID, newInstructorID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("courseId", courseID).
		Int64("instructorId", newInstructorID).
		Msg("Course instructor assigned")
	return teacher, nil
}

func (s *courseService) AssignStudent(ctx context.Context, req *dto.AssignCourseRequest) (*models.Course, *models.User, error) {
	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, nil, err
	}

	// Only users holding the Student role can be enrolled.
	student, err := s.userRepo.GetByIDAndRole(ctx, req.StudentID, models.RoleStudent)
	if err != nil {
		return nil, nil, apperrors.NewResourceNotFoundError("Student not found")
	}

	if err := s.enrollmentRepo.Add(ctx, student.ID, course.ID); err != nil {
		return nil, nil, err
	}

	s.logger.Info().
		Str("courseCode", course.Code).
		Str("studentEmail", student.Email).
		Msg("Course assigned to student")
	return course, student, nil
}

func (s *courseService) ListStudentCourses(ctx context.Context, studentID int64) ([]*models.Course, error) {
	courses, err := s.courseRepo.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student courses: %w", err)
	}
	return courses, nil
}
