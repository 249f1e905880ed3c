package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/app/models/dto"
	"github.com/campushub/studentms/internal/app/repositories"
	"github.com/campushub/studentms/internal/pkg/apperrors"
	"github.com/campushub/studentms/internal/pkg/auth"
)

// AuthService handles registration of the first admin and role-scoped logins.
type AuthService interface {
	// RegisterAdmin bootstraps the single admin account. It is gated by the
	// server-held registration secret and fails once an admin exists.
	RegisterAdmin(ctx context.Context, req *dto.RegisterUserRequest, secretKey string) error

	// Login performs a role-scoped credential check and issues a token.
	Login(ctx context.Context, req *dto.LoginRequest, role models.RoleName) (*dto.TokenResponse, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	jwtService  *auth.JWTService
	adminSecret string
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance.
func NewAuthService(userRepo repositories.UserRepository, jwtService *auth.JWTService, adminSecret string, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		adminSecret: adminSecret,
		logger:      logger,
	}
}

func (s *authService) RegisterAdmin(ctx context.Context, req *dto.RegisterUserRequest, secretKey string) error {
	if subtle.ConstantTimeCompare([]byte(secretKey), []byte(s.adminSecret)) != 1 {
		s.logger.Warn().Msg("Unauthorized admin registration attempt with invalid secret key")
		return apperrors.NewForbiddenError("Unauthorized: Invalid secret key")
	}

	exists, err := s.userRepo.AdminExists(ctx)
	if err != nil {
		return fmt.Errorf("error checking admin existence: %w", err)
	}
	if exists {
		s.logger.Info().Msg("Admin registration blocked: admin already exists")
		return apperrors.ErrAdminAlreadyExists
	}

	user, err := newUserFromRequest(req)
	if err != nil {
		return err
	}

	if err := s.userRepo.CreateWithRole(ctx, user, models.RoleAdmin); err != nil {
		return err
	}

	s.logger.Info().Str("email", user.Email).Msg("Admin registered successfully")
	return nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, role models.RoleName) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmailAndRole(ctx, req.Email, role)
	if err != nil {
		s.logger.Warn().Str("email", req.Email).Str("role", string(role)).Msg("Login failed: user not found")
		return nil, apperrors.NewResourceNotFoundError(string(role) + " not found")
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("email", req.Email).Msg("Login failed: incorrect password")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid password")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(role)).Msg("Login successful")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// newUserFromRequest builds a user model with a hashed password.
func newUserFromRequest(req *dto.RegisterUserRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	return &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		DateOfBirth:  dob,
	}, nil
}

func parseDateOfBirth(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, apperrors.NewBadRequestError("date_of_birth must be in YYYY-MM-DD format")
	}

	return &t, nil
}
