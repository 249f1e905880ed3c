package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/app/models/dto"
	"github.com/campushub/studentms/internal/app/services"
	"github.com/campushub/studentms/internal/middleware"
)

// AuthController handles admin bootstrap and the role-scoped login endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterAdmin creates the single admin account
// @Summary Register the admin account
// @Description Creates the admin account. Requires the server registration secret and fails once an admin exists
// @Tags auth
// @Accept json
// @Produce json
// @Param secret_key query string true "Admin registration secret"
// @Param request body dto.RegisterUserRequest true "Admin account information"
// @Success 200 {object} dto.APIResponse "Admin registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or admin already exists"
// @Failure 403 {object} dto.ErrorResponse "Invalid secret key"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/register-admin [post]
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	secretKey := ctx.Query("secret_key")

	if err := c.authService.RegisterAdmin(ctx.Request.Context(), &req, secretKey); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Admin registered successfully"))
}

// LoginAdmin authenticates an admin
// @Summary Admin login
// @Description Authenticates an admin account and issues an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Token issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid password"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/login-admin [post]
func (c *AuthController) LoginAdmin(ctx *gin.Context) {
	c.login(ctx, models.RoleAdmin)
}

// LoginTeacher authenticates a teacher
// @Summary Teacher login
// @Description Authenticates a teacher account and issues an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Token issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid password"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/login-teacher [post]
func (c *AuthController) LoginTeacher(ctx *gin.Context) {
	c.login(ctx, models.RoleTeacher)
}

// LoginStudent authenticates a student
// @Summary Student login
// @Description Authenticates a student account and issues an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Token issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid password"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/login-student [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	c.login(ctx, models.RoleStudent)
}

func (c *AuthController) login(ctx *gin.Context, role models.RoleName) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, token)
}
