package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/studentms/internal/app/models/dto"
	"github.com/campushub/studentms/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"email conflict", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"department conflict", apperrors.ErrDepartmentAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"head conflict", apperrors.ErrHeadAlreadyAssigned, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"course code conflict", apperrors.ErrCourseCodeExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate enrollment", apperrors.ErrAlreadyEnrolled, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"admin exists is a bad request", apperrors.ErrAdminAlreadyExists, http.StatusBadRequest, dto.ErrorCodeBadRequest},
		{"not enrolled is a bad request", apperrors.ErrStudentNotEnrolled, http.StatusBadRequest, dto.ErrorCodeBadRequest},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"department not found", apperrors.ErrDepartmentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped not found keeps message", apperrors.NewResourceNotFoundError("Teacher not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"forbidden", apperrors.NewForbiddenError("You are not the instructor for this course"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{"invalid credentials", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid password"), http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"bad request", apperrors.NewBadRequestError("date_of_birth must be in YYYY-MM-DD format"), http.StatusBadRequest, dto.ErrorCodeBadRequest},
		{"export failure", apperrors.ErrExportFailed, http.StatusInternalServerError, dto.ErrorCodeExportFailed},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorSurfacesMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, apperrors.NewResourceNotFoundError("Student not found"))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Student not found", resp.Error.Message)
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, errors.New("pq: connection refused on 10.0.0.3"))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
	assert.NotContains(t, resp.Error.Message, "10.0.0.3")
}
