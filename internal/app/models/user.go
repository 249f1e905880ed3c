package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
type User struct {
	ID           int64      `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	FullName     string     `json:"full_name" db:"full_name" example:"Jane Doe"`             // User's full name
	Email        string     `json:"email" db:"email" example:"jane.doe@example.edu"`         // User's email address (unique)
	PasswordHash string     `json:"-" db:"password_hash"`                                    // User's hashed password (excluded from JSON)
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`              // Date of birth (nullable)
	RoleID       *int64     `json:"role_id,omitempty" db:"role_id"`                          // Role reference, nil when the role was deleted
	RoleName     RoleName   `json:"role,omitempty" db:"role_name" example:"Student"`         // Role name (joined from roles)
}
