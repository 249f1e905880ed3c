package models

import "time"

// Course represents a course owned by a department and taught by an instructor.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"course_title" db:"title"`
	Code         string    `json:"course_code" db:"code"`
	Credits      int       `json:"credits" db:"credits"`
	InstructorID *int64    `json:"instructor_id,omitempty" db:"instructor_id"`
	DepartmentID *int64    `json:"department_id,omitempty" db:"department_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// Relations (populated when needed)
	Instructor *User       `json:"instructor,omitempty"`
	Department *Department `json:"department,omitempty"`
}
