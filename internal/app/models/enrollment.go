package models

// Enrollment is the many-to-many association between a student and a course,
// backed by the 'student_courses' join table.
type Enrollment struct {
	StudentID int64 `json:"student_id" db:"student_id"`
	CourseID  int64 `json:"course_id" db:"course_id"`
}

// RosterRow is one line of the student roster export: a student joined with
// one of their enrolled courses.
type RosterRow struct {
	StudentID      int64
	StudentName    string
	Email          string
	CourseTitle    string
	DepartmentName string
	InstructorName string
}
