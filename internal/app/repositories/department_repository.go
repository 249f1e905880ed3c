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

// DepartmentRepository handles database operations for departments
type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	// Delete removes a department; its courses go with it (FK cascade).
	Delete(ctx context.Context, id int64) error
	SetHead(ctx context.Context, departmentID, headUserID int64) error
}

type departmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository backed by pgx.
func NewDepartmentRepository(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{db: pool}
}

func (r *departmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name, head_user_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, department.Name, department.HeadUserID).Scan(&department.ID)
	if err != nil {
		return mapDepartmentError(err)
	}

	return nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name, head_user_id
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.Name,
		&department.HeadUserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

func (r *departmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, name, head_user_id
		FROM departments
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.HeadUserID,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET name = $1, head_user_id = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, department.Name, department.HeadUserID, department.ID)
	if err != nil {
		return mapDepartmentError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

func (r *departmentRepository) SetHead(ctx context.Context, departmentID, headUserID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE departments SET head_user_id = $1 WHERE id = $2`, headUserID, departmentID)
	if err != nil {
		return mapDepartmentError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// mapDepartmentError translates constraint violations into domain errors.
func mapDepartmentError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "departments_name_key"):
		return apperrors.ErrDepartmentAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "departments_head_user_id_key"):
		return apperrors.ErrHeadAlreadyAssigned
	default:
		return fmt.Errorf("department query failed: %w", err)
	}
}
