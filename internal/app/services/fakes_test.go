package services

import (
	"context"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/pkg/apperrors"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserRepo) addUser(fullName, email string, role models.RoleName) *models.User {
	user := &models.User{
		ID:       f.nextID,
		FullName: fullName,
		Email:    email,
		RoleName: role,
	}
	f.users[user.ID] = user
	f.nextID++
	return user
}

func (f *fakeUserRepo) CreateWithRole(ctx context.Context, user *models.User, role models.RoleName) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = f.nextID
	user.RoleName = role
	f.users[user.ID] = user
	f.nextID++
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByIDAndRole(ctx context.Context, id int64, role models.RoleName) (*models.User, error) {
	user, ok := f.users[id]
	if !ok || user.RoleName != role {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmailAndRole(ctx context.Context, email string, role models.RoleName) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email && user.RoleName == role {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role models.RoleName) ([]*models.User, error) {
	var out []*models.User
	for _, user := range f.users {
		if user.RoleName == role {
			out = append(out, user)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	existing, ok := f.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.RoleName = existing.RoleName
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) AdminExists(ctx context.Context) (bool, error) {
	for _, user := range f.users {
		if user.RoleName == models.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

type fakeDepartmentRepo struct {
	departments map[int64]*models.Department
	nextID      int64
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: make(map[int64]*models.Department), nextID: 1}
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, department *models.Department) error {
	for _, existing := range f.departments {
		if existing.Name == department.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
		if department.HeadUserID != nil && existing.HeadUserID != nil && *existing.HeadUserID == *department.HeadUserID {
			return apperrors.ErrHeadAlreadyAssigned
		}
	}
	department.ID = f.nextID
	f.departments[department.ID] = department
	f.nextID++
	return nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	department, ok := f.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return department, nil
}

func (f *fakeDepartmentRepo) GetAll(ctx context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(f.departments))
	for _, department := range f.departments {
		out = append(out, department)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, department *models.Department) error {
	if _, ok := f.departments[department.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	for _, other := range f.departments {
		if other.ID == department.ID {
			continue
		}
		if other.Name == department.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
		if department.HeadUserID != nil && other.HeadUserID != nil && *other.HeadUserID == *department.HeadUserID {
			return apperrors.ErrHeadAlreadyAssigned
		}
	}
	f.departments[department.ID] = department
	return nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(f.departments, id)
	return nil
}

func (f *fakeDepartmentRepo) SetHead(ctx context.Context, departmentID, headUserID int64) error {
	department, ok := f.departments[departmentID]
	if !ok {
		return apperrors.ErrDepartmentNotFound
	}
	for _, other := range f.departments {
		if other.ID != departmentID && other.HeadUserID != nil && *other.HeadUserID == headUserID {
			return apperrors.ErrHeadAlreadyAssigned
		}
	}
	department.HeadUserID = &headUserID
	return nil
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]*models.Course), nextID: 1}
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	for _, existing := range f.courses {
		if existing.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	course.ID = f.nextID
	f.courses[course.ID] = course
	f.nextID++
	return nil
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseRepo) GetByIDAndInstructor(ctx context.Context, id, instructorID int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok || course.InstructorID == nil || *course.InstructorID != instructorID {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseRepo) ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, course := range f.courses {
		if course.InstructorID != nil && *course.InstructorID == instructorID {
			out = append(out, course)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) ListForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	return nil, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for _, existing := range f.courses {
		if existing.ID != course.ID && existing.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseRepo) SetInstructor(ctx context.Context, courseID, instructorID int64) error {
	course, ok := f.courses[courseID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	course.InstructorID = &instructorID
	return nil
}

type enrollmentKey struct {
	studentID int64
	courseID  int64
}

type fakeEnrollmentRepo struct {
	enrollments map[enrollmentKey]bool
	rows        []models.RosterRow
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: make(map[enrollmentKey]bool)}
}

func (f *fakeEnrollmentRepo) Add(ctx context.Context, studentID, courseID int64) error {
	key := enrollmentKey{studentID, courseID}
	if f.enrollments[key] {
		return apperrors.ErrAlreadyEnrolled
	}
	f.enrollments[key] = true
	return nil
}

func (f *fakeEnrollmentRepo) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	return f.enrollments[enrollmentKey{studentID, courseID}], nil
}

func (f *fakeEnrollmentRepo) RosterRows(ctx context.Context) ([]models.RosterRow, error) {
	return f.rows, nil
}
