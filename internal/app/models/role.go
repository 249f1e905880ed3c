package models

// RoleName identifies one of the fixed application roles.
type RoleName string

const (
	RoleAdmin   RoleName = "Admin"
	RoleTeacher RoleName = "Teacher"
	RoleStudent RoleName = "Student"
)

// Role defines the role model based on the 'roles' table.
type Role struct {
	ID   int64    `json:"id" db:"id"`
	Name RoleName `json:"name" db:"name"`
}
