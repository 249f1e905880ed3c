package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/pkg/apperrors"
	"github.com/campushub/studentms/internal/pkg/dberrors"
)

// EnrollmentRepository handles the student/course join table
type EnrollmentRepository interface {
	Add(ctx context.Context, studentID, courseID int64) error
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	// RosterRows joins every student with each of their enrolled courses,
	// the course's department and its instructor, for the roster export.
	RosterRows(ctx context.Context) ([]models.RosterRow, error)
}

type enrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository backed by pgx.
func NewEnrollmentRepository(pool *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{db: pool}
}

func (r *enrollmentRepository) Add(ctx context.Context, studentID, courseID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO student_courses (student_id, course_id) VALUES ($1, $2)`,
		studentID, courseID)
	if err != nil {
		// Duplicate (student, course) pair hits the primary key.
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

func (r *enrollmentRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM student_courses
			WHERE student_id = $1 AND course_id = $2
		)`, studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}

	return exists, nil
}

func (r *enrollmentRepository) RosterRows(ctx context.Context) ([]models.RosterRow, error) {
	query := `
		SELECT s.id, s.full_name, s.email,
		       c.title,
		       COALESCE(d.name, 'N/A'),
		       COALESCE(i.full_name, 'N/A')
		FROM users s
		JOIN roles r ON r.id = s.role_id AND r.name = $1
		JOIN student_courses sc ON sc.student_id = s.id
		JOIN courses c ON c.id = sc.course_id
		LEFT JOIN departments d ON d.id = c.department_id
		LEFT JOIN users i ON i.id = c.instructor_id
		ORDER BY s.id, c.id
	`

	rows, err := r.db.Query(ctx, query, string(models.RoleStudent))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []models.RosterRow
	for rows.Next() {
		var row models.RosterRow
		if err := rows.Scan(
			&row.StudentID,
			&row.StudentName,
			&row.Email,
			&row.CourseTitle,
			&row.DepartmentName,
			&row.InstructorName,
		); err != nil {
			return nil, err
		}
		roster = append(roster, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}
