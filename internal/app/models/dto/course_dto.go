package dto

import "time"

// CreateCourseRequest represents course creation/update data
type CreateCourseRequest struct {
	CourseTitle  string `json:"course_title" binding:"required,max=100"`
	CourseCode   string `json:"course_code" binding:"required,max=20"`
	Credits      int    `json:"credits" binding:"required,min=1"`
	DepartmentID int64  `json:"department_id" binding:"required,min=1"`
}

// AssignCourseRequest represents a course-to-student assignment
type AssignCourseRequest struct {
	CourseID  int64 `json:"course_id" binding:"required,min=1"`
	StudentID int64 `json:"student_id" binding:"required,min=1"`
}

// CourseResponse represents course information
type CourseResponse struct {
	ID        int64     `json:"course_id"`
	Title     string    `json:"course_title"`
	Code      string    `json:"course_code"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
}
