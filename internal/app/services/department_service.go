package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/app/models/dto"
	"github.com/campushub/studentms/internal/app/repositories"
	"github.com/campushub/studentms/internal/pkg/apperrors"
)

// DepartmentService handles department management.
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error)
	List(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error)
	// Delete removes the department and, through the schema cascade, all of
	// its courses.
	Delete(ctx context.Context, id int64) error
	// AssignHead makes a teacher the department's head and returns the
	// assigned teacher.
	AssignHead(ctx context.Context, departmentID, newHeadID int64) (*models.User, error)
}

type departmentService struct {
	departmentRepo repositories.DepartmentRepository
	userRepo       repositories.UserRepository
	logger         zerolog.Logger
}

// NewDepartmentService creates a new department service instance.
func NewDepartmentService(departmentRepo repositories.DepartmentRepository, userRepo repositories.UserRepository, logger zerolog.Logger) DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if _, err := s.userRepo.GetByID(ctx, req.HeadUserID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Head user not found")
		}
		return nil, fmt.Errorf("error checking head user: %w", err)
	}

	department := &models.Department{
		Name:       req.DepartmentName,
		HeadUserID: &req.HeadUserID,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().Str("department", department.Name).Msg("Department created")
	return department, nil
}

func (s *departmentService) List(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}

	return departments, nil
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentName != nil {
		department.Name = *req.DepartmentName
	}

	if req.HeadUserID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.HeadUserID); err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return nil, apperrors.NewResourceNotFoundError("New head user not found")
			}
			return nil, fmt.Errorf("error checking head user: %w", err)
		}
		department.HeadUserID = req.HeadUserID
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().Str("department", department.Name).Msg("Department updated")
	return department, nil
}

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("department", department.Name).Msg("Department deleted")
	return nil
}

func (s *departmentService) AssignHead(ctx context.Context, departmentID, newHeadID int64) (*models.User, error) {
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	// A department head must hold the Teacher role.
	teacher, err := s.userRepo.GetByIDAndRole(ctx, newHeadID, models.RoleTeacher)
	if err != nil {
		return nil, apperrors.NewResourceNotFoundError("Teacher not found")
	}

	if err := s.departmentRepo.SetHead(ctx, departmentID, newHeadID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("departmentId", departmentID).
		Int64("headUserId", newHeadID).
		Msg("Department head assigned")
	return teacher, nil
}
