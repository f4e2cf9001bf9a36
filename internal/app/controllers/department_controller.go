package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/services"
	"github.com/kaan/examportal/internal/middleware"
)

// DepartmentController handles department operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// ListByExamType returns the departments of an exam type
// @Summary List departments of an exam type
// @Tags departments
// @Produce json
// @Param examTypeId path int true "Exam type ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Department} "Departments retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid exam type ID"
// @Failure 404 {object} dto.APIResponse "Exam type not found"
// @Router /exam-types/{examTypeId}/departments [get]
func (c *DepartmentController) ListByExamType(ctx *gin.Context) {
	examTypeID, ok := parseIDParam(ctx, "examTypeId")
	if !ok {
		return
	}

	departments, err := c.departmentService.ListByExamType(ctx.Request.Context(), examTypeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments))
}

// CreateDepartment creates a department under an exam type
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department"
// @Success 201 {object} dto.APIResponse{data=models.Department} "Department created"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Exam type not found"
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	department, err := c.departmentService.CreateDepartment(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(department))
}

// UpdateDepartment renames a department
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param departmentId path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Department"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department updated"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /departments/{departmentId} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "departmentId")
	if !ok {
		return
	}
	var req dto.UpdateDepartmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	department, err := c.departmentService.UpdateDepartment(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department))
}

// DeleteDepartment deletes a department without academic periods
// @Summary Delete a department
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param departmentId path int true "Department ID"
// @Success 200 {object} dto.APIResponse "Department deleted"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Failure 409 {object} dto.APIResponse "Department has academic periods"
// @Router /departments/{departmentId} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "departmentId")
	if !ok {
		return
	}

	if err := c.departmentService.DeleteDepartment(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Department deleted"))
}
