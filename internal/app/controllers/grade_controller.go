package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/registrar/internal/app/models/dto"
	"github.com/campuscore/registrar/internal/app/services"
	"github.com/campuscore/registrar/internal/middleware"
)

// GradeController handles grade endpoints
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// GetGrades lists the calling student's grades
// @Summary List own grades
// @Description Retrieves the authenticated student's grades with display fields
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeResponse} "Grades retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [get]
func (c *GradeController) GetGrades(ctx *gin.Context) {
	studentID := middleware.CallerID(ctx)

	grades, err := c.gradeService.GetGrades(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades, ""))
}

// UploadGrade creates or overwrites a grade for a student in a section
// @Summary Upload a grade
// @Description Upserts a grade; validation and ownership failures are soft rejections
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UploadGradeRequest true "Grade to upload"
// @Success 200 {object} dto.OutcomeResponse "Upload outcome"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Faculty access required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [post]
func (c *GradeController) UploadGrade(ctx *gin.Context) {
	var req dto.UploadGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	facultyID := middleware.CallerID(ctx)

	outcome, err := c.gradeService.UploadGrade(ctx, facultyID, req.StudentID, req.SectionID, *req.GradeValue)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, outcome)
}

// GetSectionGrades lists all grades of a section the caller owns
// @Summary List grades of an owned section
// @Description Retrieves all grades of the section; non-owners get a hard 403
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param sectionId path int true "Section ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.SectionGradeResponse} "Grades retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the section owner"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/section/{sectionId} [get]
func (c *GradeController) GetSectionGrades(ctx *gin.Context) {
	sectionID, err := strconv.ParseInt(ctx.Param("sectionId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section ID")
		errorDetail = errorDetail.WithDetails("Section ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	facultyID := middleware.CallerID(ctx)

	grades, err := c.gradeService.GetSectionGrades(ctx, facultyID, sectionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades, ""))
}
