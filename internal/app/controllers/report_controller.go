package controllers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/studentms/internal/app/models/dto"
	"github.com/campushub/studentms/internal/app/services"
	"github.com/campushub/studentms/internal/middleware"
)

// ReportController handles certificate and roster export downloads
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GenerateCertificate renders and serves a completion certificate PDF
// @Summary Generate a completion certificate
// @Description Generates a PDF certificate for a student enrolled in one of the calling teacher's courses
// @Tags reports
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param course_id query int true "Course ID"
// @Success 200 {file} file "Certificate PDF"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters or student not enrolled"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the instructor for this course"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate export"
// @Router /reports/certificates/student/{id} [get]
func (c *ReportController) GenerateCertificate(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	studentID, ok := parseIDParam(ctx, "Student")
	if !ok {
		return
	}

	courseID, err := strconv.ParseInt(ctx.Query("course_id"), 10, 64)
	if err != nil || courseID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course_id")
		errorDetail = errorDetail.WithDetails("course_id must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	path, err := c.reportService.GenerateCertificate(ctx.Request.Context(), userID, studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, filepath.Base(path))
}

// ExportStudentsExcel serves the full student roster as an Excel workbook
// @Summary Export the student roster
// @Description Generates an Excel workbook listing every student enrollment
// @Tags reports
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Roster workbook"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate export"
// @Router /reports/export/students/excel [get]
func (c *ReportController) ExportStudentsExcel(ctx *gin.Context) {
	path, err := c.reportService.ExportStudentRoster(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, filepath.Base(path))
}
