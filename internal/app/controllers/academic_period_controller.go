package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/services"
	"github.com/kaan/examportal/internal/middleware"
)

// AcademicPeriodController handles academic period operations
type AcademicPeriodController struct {
	periodService services.AcademicPeriodService
}

// NewAcademicPeriodController creates a new AcademicPeriodController
func NewAcademicPeriodController(periodService services.AcademicPeriodService) *AcademicPeriodController {
	return &AcademicPeriodController{periodService: periodService}
}

// ListByDepartment returns the academic periods of a department
// @Summary List academic periods of a department
// @Tags academic-periods
// @Produce json
// @Param departmentId path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicPeriod} "Academic periods retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid department ID"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /departments/{departmentId}/academic-periods [get]
func (c *AcademicPeriodController) ListByDepartment(ctx *gin.Context) {
	departmentID, ok := parseIDParam(ctx, "departmentId")
	if !ok {
		return
	}

	periods, err := c.periodService.ListByDepartment(ctx.Request.Context(), departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(periods))
}

// CreateAcademicPeriod creates an academic period under a department
// @Summary Create an academic period
// @Tags academic-periods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAcademicPeriodRequest true "Academic period"
// @Success 201 {object} dto.APIResponse{data=models.AcademicPeriod} "Academic period created"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /academic-periods [post]
func (c *AcademicPeriodController) CreateAcademicPeriod(ctx *gin.Context) {
	var req dto.CreateAcademicPeriodRequest
	if !bindJSON(ctx, &req) {
		return
	}

	period, err := c.periodService.CreateAcademicPeriod(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(period))
}

// UpdateAcademicPeriod renames an academic period
// @Summary Update an academic period
// @Tags academic-periods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param academicPeriodId path int true "Academic period ID"
// @Param request body dto.UpdateAcademicPeriodRequest true "Academic period"
// @Success 200 {object} dto.APIResponse{data=models.AcademicPeriod} "Academic period updated"
// @Failure 404 {object} dto.APIResponse "Academic period not found"
// @Router /academic-periods/{academicPeriodId} [put]
func (c *AcademicPeriodController) UpdateAcademicPeriod(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "academicPeriodId")
	if !ok {
		return
	}
	var req dto.UpdateAcademicPeriodRequest
	if !bindJSON(ctx, &req) {
		return
	}

	period, err := c.periodService.UpdateAcademicPeriod(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(period))
}

// DeleteAcademicPeriod deletes an academic period without materials
// @Summary Delete an academic period
// @Tags academic-periods
// @Produce json
// @Security BearerAuth
// @Param academicPeriodId path int true "Academic period ID"
// @Success 200 {object} dto.APIResponse "Academic period deleted"
// @Failure 404 {object} dto.APIResponse "Academic period not found"
// @Failure 409 {object} dto.APIResponse "Academic period has materials"
// @Router /academic-periods/{academicPeriodId} [delete]
func (c *AcademicPeriodController) DeleteAcademicPeriod(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "academicPeriodId")
	if !ok {
		return
	}

	if err := c.periodService.DeleteAcademicPeriod(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Academic period deleted"))
}
