package dto

import (
	"time"

	"github.com/campushub/studentms/internal/app/models"
)

// UserResponse represents basic user information
type UserResponse struct {
	ID          int64      `json:"user_id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Role        string     `json:"role,omitempty"`
}

// NewUserResponse maps a user model to its API representation.
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		DateOfBirth: user.DateOfBirth,
		Role:        string(user.RoleName),
	}
}

// NewUserResponseList maps a slice of user models.
func NewUserResponseList(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// NewCourseResponse maps a course model to its API representation.
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:        course.ID,
		Title:     course.Title,
		Code:      course.Code,
		Credits:   course.Credits,
		CreatedAt: course.CreatedAt,
	}
}

// NewCourseResponseList maps a slice of course models.
func NewCourseResponseList(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

// NewDepartmentResponse maps a department model to its API representation.
func NewDepartmentResponse(department *models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:         department.ID,
		Name:       department.Name,
		HeadUserID: department.HeadUserID,
	}
}

// NewDepartmentResponseList maps a slice of department models.
func NewDepartmentResponseList(departments []*models.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, NewDepartmentResponse(d))
	}
	return out
}
