package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/studentms/internal/app/controllers"
	"github.com/campushub/studentms/internal/app/models"
	"github.com/campushub/studentms/internal/app/models/dto"
	"github.com/campushub/studentms/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewMessageResponse("ok"))
	})

	// --- Admin routes ---
	admin := router.Group("/admin")
	{
		// Public: admin bootstrap and login
		admin.POST("/register-admin", authController.RegisterAdmin)
		admin.POST("/login-admin", authController.LoginAdmin)

		adminProtected := admin.Group("")
		adminProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminProtected.POST("/departments", departmentController.CreateDepartment)
			adminProtected.GET("/departments", departmentController.ListDepartments)
			adminProtected.PUT("/departments/:id", departmentController.UpdateDepartment)
			adminProtected.DELETE("/departments/:id", departmentController.DeleteDepartment)
			adminProtected.PUT("/assign-department-head/:id", departmentController.AssignDepartmentHead)
			adminProtected.PUT("/assign-course-instructor/:id", courseController.AssignCourseInstructor)
		}
	}

	// --- Teacher routes ---
	teacher := router.Group("/teacher")
	{
		teacher.POST("/login-teacher", authController.LoginTeacher)

		teacherOnly := teacher.Group("")
		teacherOnly.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleTeacher))
		{
			teacherOnly.POST("/courses", courseController.CreateCourse)
			teacherOnly.GET("/courses", courseController.ListCourses)
			teacherOnly.PUT("/courses/:id", courseController.UpdateCourse)
			teacherOnly.DELETE("/courses/:id", courseController.DeleteCourse)
			teacherOnly.POST("/assign-course", courseController.AssignCourse)
			teacherOnly.POST("/register-student", userController.RegisterStudent)
		}

		// Teacher account management is reserved for admins
		teacherAdmin := teacher.Group("")
		teacherAdmin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
		{
			teacherAdmin.POST("/register-teacher", userController.RegisterTeacher)
			teacherAdmin.PUT("/update-teacher/:id", userController.UpdateTeacher)
			teacherAdmin.DELETE("/delete-teacher/:id", userController.DeleteTeacher)
		}

		// Student roster management is shared between admins and teachers
		teacherShared := teacher.Group("")
		teacherShared.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin, models.RoleTeacher))
		{
			teacherShared.GET("/all-students", userController.ListStudents)
			teacherShared.PUT("/update-student/:id", userController.UpdateStudent)
			teacherShared.DELETE("/delete-student/:id", userController.DeleteStudent)
		}
	}

	// --- Student routes ---
	student := router.Group("/student")
	{
		student.POST("/login-student", authController.LoginStudent)

		studentProtected := student.Group("")
		studentProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleStudent))
		{
			studentProtected.GET("/my-courses", courseController.MyCourses)
		}
	}

	// --- Report routes ---
	reports := router.Group("/reports")
	reports.Use(authMiddleware.JWTAuth())
	{
		certificates := reports.Group("")
		certificates.Use(authMiddleware.RoleRequired(models.RoleTeacher))
		{
			certificates.GET("/certificates/student/:id", reportController.GenerateCertificate)
		}

		exports := reports.Group("")
		exports.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			exports.GET("/export/students/excel", reportController.ExportStudentsExcel)
		}
	}
}
