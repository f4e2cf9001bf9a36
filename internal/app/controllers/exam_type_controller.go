package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/services"
	"github.com/kaan/examportal/internal/middleware"
)

// ExamTypeController handles exam type operations
type ExamTypeController struct {
	examTypeService services.ExamTypeService
}

// NewExamTypeController creates a new ExamTypeController
func NewExamTypeController(examTypeService services.ExamTypeService) *ExamTypeController {
	return &ExamTypeController{examTypeService: examTypeService}
}

// ListExamTypes returns the full content hierarchy
// @Summary List exam types
// @Description Returns all exam types with nested departments, academic periods and materials
// @Tags exam-types
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ExamType} "Exam types retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /exam-types [get]
func (c *ExamTypeController) ListExamTypes(ctx *gin.Context) {
	examTypes, err := c.examTypeService.ListExamTypes(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(examTypes))
}

// CreateExamType creates an exam type
// @Summary Create an exam type
// @Tags exam-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExamTypeRequest true "Exam type"
// @Success 201 {object} dto.APIResponse{data=models.ExamType} "Exam type created"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /exam-types [post]
func (c *ExamTypeController) CreateExamType(ctx *gin.Context) {
	var req dto.CreateExamTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	examType, err := c.examTypeService.CreateExamType(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(examType))
}

// UpdateExamType updates an exam type
// @Summary Update an exam type
// @Tags exam-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param examTypeId path int true "Exam type ID"
// @Param request body dto.UpdateExamTypeRequest true "Exam type"
// @Success 200 {object} dto.APIResponse{data=models.ExamType} "Exam type updated"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Exam type not found"
// @Router /exam-types/{examTypeId} [put]
func (c *ExamTypeController) UpdateExamType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "examTypeId")
	if !ok {
		return
	}
	var req dto.UpdateExamTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	examType, err := c.examTypeService.UpdateExamType(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(examType))
}

// DeleteExamType deletes an exam type without departments
// @Summary Delete an exam type
// @Tags exam-types
// @Produce json
// @Security BearerAuth
// @Param examTypeId path int true "Exam type ID"
// @Success 200 {object} dto.APIResponse "Exam type deleted"
// @Failure 404 {object} dto.APIResponse "Exam type not found"
// @Failure 409 {object} dto.APIResponse "Exam type has departments"
// @Router /exam-types/{examTypeId} [delete]
func (c *ExamTypeController) DeleteExamType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "examTypeId")
	if !ok {
		return
	}

	if err := c.examTypeService.DeleteExamType(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Exam type deleted"))
}
