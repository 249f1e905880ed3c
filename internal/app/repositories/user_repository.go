package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/db"
	"github.com/campushub/studentms/internal/pkg/apperrors"
	"github.com/campushub/studentms/internal/pkg/dberrors"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// CreateWithRole inserts a user holding the named role. The role lookup
	// and the insert run in one transaction.
	CreateWithRole(ctx context.Context, user *models.User, role models.RoleName) error

	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByIDAndRole(ctx context.Context, id int64, role models.RoleName) (*models.User, error)
	GetByEmailAndRole(ctx context.Context, email string, role models.RoleName) (*models.User, error)
	ListByRole(ctx context.Context, role models.RoleName) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error

	// AdminExists reports whether any user holds the Admin role.
	AdminExists(ctx context.Context) (bool, error)
}

type userRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository backed by pgx.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{db: pool}
}

const userColumns = `u.id, u.full_name, u.email, u.password_hash, u.date_of_birth, u.role_id, COALESCE(r.name, '')`

func (r *userRepository) CreateWithRole(ctx context.Context, user *models.User, role models.RoleName) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var roleID int64
		err := tx.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, string(role)).Scan(&roleID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("role %s not found", role)
			}
			return fmt.Errorf("error looking up role: %w", err)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO users (full_name, email, password_hash, date_of_birth, role_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, user.FullName, user.Email, user.PasswordHash, user.DateOfBirth, roleID).Scan(&user.ID)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		user.RoleID = &roleID
		user.RoleName = role
		return nil
	})
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByIDAndRole(ctx context.Context, id int64, role models.RoleName) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1 AND r.name = $2
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id, string(role)))
}

func (r *userRepository) GetByEmailAndRole(ctx context.Context, email string, role models.RoleName) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.email = $1 AND r.name = $2
	`
	return r.scanOne(r.db.QueryRow(ctx, query, email, string(role)))
}

func (r *userRepository) ListByRole(ctx context.Context, role models.RoleName) ([]*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE r.name = $1
		ORDER BY u.id
	`

	rows, err := r.db.Query(ctx, query, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.FullName,
			&user.Email,
			&user.PasswordHash,
			&user.DateOfBirth,
			&user.RoleID,
			&user.RoleName,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET full_name = $1, email = $2, password_hash = $3, date_of_birth = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		user.FullName, user.Email, user.PasswordHash, user.DateOfBirth, user.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM users u
			JOIN roles r ON r.id = u.role_id
			WHERE r.name = $1
		)`, string(models.RoleAdmin)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}

	return exists, nil
}

func (r *userRepository) scanOne(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.DateOfBirth,
		&user.RoleID,
		&user.RoleName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}
