package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/app/models/dto"
	"github.com/campushub/studentms/internal/pkg/apperrors"
	"github.com/campushub/studentms/internal/pkg/auth"
)

// UserLoader resolves the authenticated user from storage so that each
// request acts on the current account state, not on stale token claims.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthMiddleware provides token validation and role gating for routes.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      UserLoader
}

// NewAuthMiddleware creates a new authentication middleware instance.
func NewAuthMiddleware(jwtService *auth.JWTService, users UserLoader) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// JWTAuth validates the bearer token, loads the current user row and
// stores the user's identity and role in the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Authorization header missing or malformed")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
			} else {
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid or malformed token")
			}
			return
		}

		user, err := m.users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				errDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
				c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(errDetail))
				return
			}
			errDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An internal server error occurred")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errDetail))
			return
		}

		c.Set("userID", user.ID)
		c.Set("fullName", user.FullName)
		c.Set("role", user.RoleName)
		c.Next()
	}
}

// RoleRequired allows the request to proceed only when the authenticated
// user holds one of the given roles. Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		role, ok := value.(models.RoleName)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		errDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Not authorized to perform this action")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errDetail))
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	errDetail := dto.NewErrorDetail(code, message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errDetail))
}

// GetUserID extracts the authenticated user's ID from the gin context.
func GetUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
