package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/registrar/internal/app/models/dto"
	"github.com/campuscore/registrar/internal/app/services"
	"github.com/campuscore/registrar/internal/middleware"
	"github.com/campuscore/registrar/internal/pkg/helpers"
)

// CourseController handles course, section and enrollment endpoints
type CourseController struct {
	enrollmentService services.EnrollmentService
}

// NewCourseController creates a new CourseController
func NewCourseController(enrollmentService services.EnrollmentService) *CourseController {
	return &CourseController{
		enrollmentService: enrollmentService,
	}
}

// ListCourses lists the course catalog
// @Summary List courses
// @Description Retrieves the course catalog with optional limit/offset pagination
// @Tags courses
// @Produce json
// @Param limit query int false "Maximum number of courses to return"
// @Param offset query int false "Number of courses to skip"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)

	courses, err := c.enrollmentService.ListCourses(ctx, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, ""))
}

// ListSections lists the sections of a course
// @Summary List sections of a course
// @Description Retrieves all sections of the course with resolved faculty names
// @Tags courses
// @Produce json
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.SectionResponse} "Sections retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/sections/{courseId} [get]
func (c *CourseController) ListSections(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Param("courseId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sections, err := c.enrollmentService.ListSections(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sections, ""))
}

// GetFacultySections lists the sections owned by the calling faculty member
// @Summary List own sections
// @Description Retrieves the sections owned by the authenticated faculty member
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SectionResponse} "Sections retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Faculty access required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/faculty/sections [get]
func (c *CourseController) GetFacultySections(ctx *gin.Context) {
	facultyID := middleware.CallerID(ctx)

	sections, err := c.enrollmentService.GetFacultySections(ctx, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sections, ""))
}

// EnrollStudent requests a seat in a section for the calling student
// @Summary Enroll in a section
// @Description Atomically allocates a seat; a full section or duplicate enrollment is a soft rejection
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollRequest true "Section to enroll in"
// @Success 200 {object} dto.OutcomeResponse "Enrollment outcome"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Student access required"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/enroll [post]
func (c *CourseController) EnrollStudent(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	studentID := middleware.CallerID(ctx)

	outcome, err := c.enrollmentService.EnrollStudent(ctx, studentID, req.SectionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Soft rejections travel as 200 responses with success=false.
	ctx.JSON(http.StatusOK, outcome)
}

// GetEnrollments lists the calling student's enrollments
// @Summary List own enrollments
// @Description Retrieves the authenticated student's enrollments with display fields
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/enrollments [get]
func (c *CourseController) GetEnrollments(ctx *gin.Context) {
	studentID := middleware.CallerID(ctx)

	enrollments, err := c.enrollmentService.GetEnrollments(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments, ""))
}
