package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/pkg/apperrors"
	"github.com/campushub/studentms/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	// GetByIDAndInstructor returns the course only when it is owned by the
	// given instructor; otherwise ErrCourseNotFound.
	GetByIDAndInstructor(ctx context.Context, id, instructorID int64) (*models.Course, error)
	ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error)
	ListForStudent(ctx context.Context, studentID int64) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	SetInstructor(ctx context.Context, courseID, instructorID int64) error
}

type courseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository backed by pgx.
func NewCourseRepository(pool *pgxpool.Pool) CourseRepository {
	return &courseRepository{db: pool}
}

const courseColumns = `id, title, code, credits, instructor_id, department_id, created_at`

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, code, credits, instructor_id, department_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Title, course.Code, course.Credits, course.InstructorID, course.DepartmentID,
	).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *courseRepository) GetByIDAndInstructor(ctx context.Context, id, instructorID int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1 AND instructor_id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, id, instructorID))
}

func (r *courseRepository) ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE instructor_id = $1 ORDER BY id`
	return r.list(ctx, query, instructorID)
}

func (r *courseRepository) ListForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.title, c.code, c.credits, c.instructor_id, c.department_id, c.created_at
		FROM courses c
		JOIN student_courses sc ON sc.course_id = c.id
		WHERE sc.student_id = $1
		ORDER BY c.id
	`
	return r.list(ctx, query, studentID)
}

func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, code = $2, credits = $3, department_id = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Title, course.Code, course.Credits, course.DepartmentID, course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

func (r *courseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

func (r *courseRepository) SetInstructor(ctx context.Context, courseID, instructorID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE courses SET instructor_id = $1 WHERE id = $2`, instructorID, courseID)
	if err != nil {
		return fmt.Errorf("error assigning instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

func (r *courseRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Code,
			&course.Credits,
			&course.InstructorID,
			&course.DepartmentID,
			&course.CreatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) scanOne(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Code,
		&course.Credits,
		&course.InstructorID,
		&course.DepartmentID,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}
