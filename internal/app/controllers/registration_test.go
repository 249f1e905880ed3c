package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/app/models/dto"
)

type stubAuthService struct{}

func (s *stubAuthService) RegisterAdmin(ctx context.Context, req *dto.RegisterUserRequest, secretKey string) error {
	return nil
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest, role models.RoleName) (*dto.TokenResponse, error) {
	return &dto.TokenResponse{AccessToken: "token", TokenType: "bearer", ExpiresIn: 3600}, nil
}

type stubUserService struct{}

func (s *stubUserService) RegisterTeacher(ctx context.Context, req *dto.RegisterUserRequest) error {
	return nil
}
func (s *stubUserService) UpdateTeacher(ctx context.Context, id int64, req *dto.RegisterUserRequest) error {
	return nil
}
func (s *stubUserService) DeleteTeacher(ctx context.Context, id int64) error { return nil }
func (s *stubUserService) RegisterStudent(ctx context.Context, req *dto.RegisterUserRequest) error {
	return nil
}
func (s *stubUserService) UpdateStudent(ctx context.Context, id int64, req *dto.RegisterUserRequest) error {
	return nil
}
func (s *stubUserService) DeleteStudent(ctx context.Context, id int64) error { return nil }
func (s *stubUserService) ListStudents(ctx context.Context) ([]*models.User, error) {
	return nil, nil
}

const registerBody = `{"full_name":"Ada Admin","email":"ada@example.com","password":"secret123"}`

func postJSON(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Successful registration answers 200 with a message, matching the login-free
// account endpoints; 201 is reserved for department and course creation.
func TestRegistrationEndpointsReturn200(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authController := NewAuthController(&stubAuthService{})
	userController := NewUserController(&stubUserService{})

	router := gin.New()
	router.POST("/admin/register-admin", authController.RegisterAdmin)
	router.POST("/teacher/register-teacher", userController.RegisterTeacher)
	router.POST("/teacher/register-student", userController.RegisterStudent)

	tests := []struct {
		path    string
		message string
	}{
		{"/admin/register-admin?secret_key=test-admin-secret", "Admin registered successfully"},
		{"/teacher/register-teacher", "Teacher registered successfully"},
		{"/teacher/register-student", "Student registered successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := postJSON(router, tt.path)
			assert.Equal(t, http.StatusOK, w.Code)

			var resp dto.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}
