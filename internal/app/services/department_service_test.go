package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/app/models/dto"
	"github.com/campushub/studentms/internal/pkg/apperrors"
)

func TestDepartmentCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates department with existing head", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		head := userRepo.addUser("Dr. Head", "head@example.com", models.RoleTeacher)
		svc := NewDepartmentService(newFakeDepartmentRepo(), userRepo, zerolog.Nop())

		department, err := svc.Create(ctx, &dto.CreateDepartmentRequest{
			DepartmentName: "Computer Science",
			HeadUserID:     head.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Computer Science", department.Name)
		require.NotNil(t, department.HeadUserID)
		assert.Equal(t, head.ID, *department.HeadUserID)
	})

	t.Run("fails when head user does not exist", func(t *testing.T) {
		svc := NewDepartmentService(newFakeDepartmentRepo(), newFakeUserRepo(), zerolog.Nop())

		_, err := svc.Create(ctx, &dto.CreateDepartmentRequest{
			DepartmentName: "Computer Science",
			HeadUserID:     99,
		})
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.Contains(t, err.Error(), "Head user not found")
	})

	t.Run("rejects duplicate department name", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		head1 := userRepo.addUser("Dr. Head", "head1@example.com", models.RoleTeacher)
		head2 := userRepo.addUser("Dr. Other", "head2@example.com", models.RoleTeacher)
		svc := NewDepartmentService(newFakeDepartmentRepo(), userRepo, zerolog.Nop())

		_, err := svc.Create(ctx, &dto.CreateDepartmentRequest{DepartmentName: "Physics", HeadUserID: head1.ID})
		require.NoError(t, err)

		_, err = svc.Create(ctx, &dto.CreateDepartmentRequest{DepartmentName: "Physics", HeadUserID: head2.ID})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
	})

	t.Run("rejects head already assigned elsewhere", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		head := userRepo.addUser("Dr. Head", "head@example.com", models.RoleTeacher)
		svc := NewDepartmentService(newFakeDepartmentRepo(), userRepo, zerolog.Nop())

		_, err := svc.Create(ctx, &dto.CreateDepartmentRequest{DepartmentName: "Physics", HeadUserID: head.ID})
		require.NoError(t, err)

		_, err = svc.Create(ctx, &dto.CreateDepartmentRequest{DepartmentName: "Chemistry", HeadUserID: head.ID})
		assert.ErrorIs(t, err, apperrors.ErrHeadAlreadyAssigned)
	})
}

func TestDepartmentUpdate(t *testing.T) {
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	head := userRepo.addUser("Dr. Head", "head@example.com", models.RoleTeacher)
	departmentRepo := newFakeDepartmentRepo()
	svc := NewDepartmentService(departmentRepo, userRepo, zerolog.Nop())

	department, err := svc.Create(ctx, &dto.CreateDepartmentRequest{DepartmentName: "Maths", HeadUserID: head.ID})
	require.NoError(t, err)

	t.Run("renames department", func(t *testing.T) {
		name := "Mathematics"
		updated, err := svc.Update(ctx, department.ID, &dto.UpdateDepartmentRequest{DepartmentName: &name})
		require.NoError(t, err)
		assert.Equal(t, "Mathematics", updated.Name)
	})

	t.Run("fails for missing department", func(t *testing.T) {
		name := "Ghost"
		_, err := svc.Update(ctx, 999, &dto.UpdateDepartmentRequest{DepartmentName: &name})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})

	t.Run("fails when new head does not exist", func(t *testing.T) {
		missing := int64(999)
		_, err := svc.Update(ctx, department.ID, &dto.UpdateDepartmentRequest{HeadUserID: &missing})
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.Contains(t, err.Error(), "New head user not found")
	})

	t.Run("rejects head already assigned elsewhere", func(t *testing.T) {
		otherHead := userRepo.addUser("Dr. Other", "other@example.com", models.RoleTeacher)
		other, err := svc.Create(ctx, &dto.CreateDepartmentRequest{DepartmentName: "Statistics", HeadUserID: otherHead.ID})
		require.NoError(t, err)

		_, err = svc.Update(ctx, other.ID, &dto.UpdateDepartmentRequest{HeadUserID: &head.ID})
		assert.ErrorIs(t, err, apperrors.ErrHeadAlreadyAssigned)
	})
}

func TestDepartmentAssignHead(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeUserRepo, *fakeDepartmentRepo, DepartmentService, *models.Department) {
		userRepo := newFakeUserRepo()
		head := userRepo.addUser("Dr. Head", "head@example.com", models.RoleTeacher)
		departmentRepo := newFakeDepartmentRepo()
		svc := NewDepartmentService(departmentRepo, userRepo, zerolog.Nop())

		department, err := svc.Create(ctx, &dto.CreateDepartmentRequest{DepartmentName: "Biology", HeadUserID: head.ID})
		require.NoError(t, err)
		return userRepo, departmentRepo, svc, department
	}

	t.Run("assigns a teacher as head", func(t *testing.T) {
		userRepo, departmentRepo, svc, department := setup(t)
		teacher := userRepo.addUser("New Head", "new@example.com", models.RoleTeacher)

		assigned, err := svc.AssignHead(ctx, department.ID, teacher.ID)
		require.NoError(t, err)
		assert.Equal(t, teacher.ID, assigned.ID)

		stored, err := departmentRepo.GetByID(ctx, department.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.HeadUserID)
		assert.Equal(t, teacher.ID, *stored.HeadUserID)
	})

	t.Run("rejects non-teacher head", func(t *testing.T) {
		userRepo, _, svc, department := setup(t)
		student := userRepo.addUser("A Student", "student@example.com", models.RoleStudent)

		_, err := svc.AssignHead(ctx, department.ID, student.ID)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.Contains(t, err.Error(), "Teacher not found")
	})

	t.Run("fails for missing department", func(t *testing.T) {
		userRepo, _, svc, _ := setup(t)
		teacher := userRepo.addUser("New Head", "new2@example.com", models.RoleTeacher)

		_, err := svc.AssignHead(ctx, 999, teacher.ID)
		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentDelete(t *testing.T) {
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	head := userRepo.addUser("Dr. Head", "head@example.com", models.RoleTeacher)
	departmentRepo := newFakeDepartmentRepo()
	svc := NewDepartmentService(departmentRepo, userRepo, zerolog.Nop())

	department, err := svc.Create(ctx, &dto.CreateDepartmentRequest{DepartmentName: "History", HeadUserID: head.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, department.ID))

	err = svc.Delete(ctx, department.ID)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}
