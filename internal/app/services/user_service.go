package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/app/models/dto"
	"github.com/campushub/studentms/internal/app/repositories"
	"github.com/campushub/studentms/internal/pkg/apperrors"
)

// UserService handles teacher and student account management.
type UserService interface {
	RegisterTeacher(ctx context.Context, req *dto.RegisterUserRequest) error
	UpdateTeacher(ctx context.Context, id int64, req *dto.RegisterUserRequest) error
	DeleteTeacher(ctx context.Context, id int64) error

	RegisterStudent(ctx context.Context, req *dto.RegisterUserRequest) error
	UpdateStudent(ctx context.Context, id int64, req *dto.RegisterUserRequest) error
	DeleteStudent(ctx context.Context, id int64) error
	ListStudents(ctx context.Context) ([]*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service instance.
func NewUserService(userRepo repositories.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) RegisterTeacher(ctx context.Context, req *dto.RegisterUserRequest) error {
	return s.register(ctx, req, models.RoleTeacher)
}

func (s *userService) RegisterStudent(ctx context.Context, req *dto.RegisterUserRequest) error {
	return s.register(ctx, req, models.RoleStudent)
}

func (s *userService) register(ctx context.Context, req *dto.RegisterUserRequest, role models.RoleName) error {
	user, err := newUserFromRequest(req)
	if err != nil {
		return err
	}

	if err := s.userRepo.CreateWithRole(ctx, user, role); err != nil {
		return err
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(role)).Msg("User registered successfully")
	return nil
}

func (s *userService) UpdateTeacher(ctx context.Context, id int64, req *dto.RegisterUserRequest) error {
	return s.update(ctx, id, req, models.RoleTeacher)
}

func (s *userService) UpdateStudent(ctx context.Context, id int64, req *dto.RegisterUserRequest) error {
	return s.update(ctx, id, req, models.RoleStudent)
}

func (s *userService) update(ctx context.Context, id int64, req *dto.RegisterUserRequest, role models.RoleName) error {
	user, err := s.userRepo.GetByIDAndRole(ctx, id, role)
	if err != nil {
		return apperrors.NewResourceNotFoundError(string(role) + " not found")
	}

	updated, err := newUserFromRequest(req)
	if err != nil {
		return err
	}
	updated.ID = user.ID

	if err := s.userRepo.Update(ctx, updated); err != nil {
		return err
	}

	s.logger.Info().Str("email", updated.Email).Str("role", string(role)).Msg("User updated")
	return nil
}

func (s *userService) DeleteTeacher(ctx context.Context, id int64) error {
	return s.delete(ctx, id, models.RoleTeacher)
}

func (s *userService) DeleteStudent(ctx context.Context, id int64) error {
	return s.delete(ctx, id, models.RoleStudent)
}

func (s *userService) delete(ctx context.Context, id int64, role models.RoleName) error {
	user, err := s.userRepo.GetByIDAndRole(ctx, id, role)
	if err != nil {
		return apperrors.NewResourceNotFoundError(string(role) + " not found")
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(role)).Msg("User deleted")
	return nil
}

func (s *userService) ListStudents(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListByRole(ctx, models.RoleStudent)
}
