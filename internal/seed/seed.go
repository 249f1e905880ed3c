package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/pkg/logger"
)

// Roles inserts the fixed role set if missing. Registration relies on
// these rows existing.
func Roles(ctx context.Context, db *pgxpool.Pool) error {
	roles := []models.RoleName{models.RoleAdmin, models.RoleTeacher, models.RoleStudent}

	for _, role := range roles {
		_, err := db.Exec(ctx,
			`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			string(role))
		if err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role, err)
		}
	}

	logger.Debug().Msg("Roles seeded")
	return nil
}
