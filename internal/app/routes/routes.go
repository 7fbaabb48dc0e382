package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campuscore/registrar/internal/app/controllers"
	"github.com/campuscore/registrar/internal/app/models"
	"github.com/campuscore/registrar/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	gradeController *controllers.GradeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.POST("/validate", authController.ValidateToken)
	}

	// --- Public Course routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/sections/:courseId", courseController.ListSections)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Course routes gated by role
		coursesProtected := authenticated.Group("/courses")
		{
			coursesProtected.GET("/enrollments", courseController.GetEnrollments)

			coursesStudent := coursesProtected.Group("")
			coursesStudent.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				coursesStudent.POST("/enroll", courseController.EnrollStudent)
			}

			coursesFaculty := coursesProtected.Group("")
			coursesFaculty.Use(authMiddleware.RoleRequired(string(models.RoleFaculty)))
			{
				coursesFaculty.GET("/faculty/sections", courseController.GetFacultySections)
			}
		}

		// Grade routes
		grades := authenticated.Group("/grades")
		{
			grades.GET("", gradeController.GetGrades)

			gradesFaculty := grades.Group("")
			gradesFaculty.Use(authMiddleware.RoleRequired(string(models.RoleFaculty)))
			{
				gradesFaculty.POST("", gradeController.UploadGrade)
				gradesFaculty.GET("/section/:sectionId", gradeController.GetSectionGrades)
			}
		}
	}
}
