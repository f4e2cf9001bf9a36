package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/services"
	"github.com/kaan/examportal/internal/middleware"
)

// MaterialController handles material and attached content operations
type MaterialController struct {
	materialService services.MaterialService
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService services.MaterialService) *MaterialController {
	return &MaterialController{materialService: materialService}
}

// ListByAcademicPeriod returns the materials of an academic period
// @Summary List materials of an academic period
// @Description Materials with nested documents and questions with options
// @Tags materials
// @Produce json
// @Param academicPeriodId path int true "Academic period ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Material} "Materials retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid academic period ID"
// @Failure 404 {object} dto.APIResponse "Academic period not found"
// @Router /academic-periods/{academicPeriodId}/materials [get]
func (c *MaterialController) ListByAcademicPeriod(ctx *gin.Context) {
	academicPeriodID, ok := parseIDParam(ctx, "academicPeriodId")
	if !ok {
		return
	}

	materials, err := c.materialService.ListByAcademicPeriod(ctx.Request.Context(), academicPeriodID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(materials))
}

// GetContent returns a single material with its documents and questions
// @Summary Get material content
// @Tags materials
// @Produce json
// @Param materialId path int true "Material ID"
// @Success 200 {object} dto.APIResponse{data=models.Material} "Material retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid material ID"
// @Failure 404 {object} dto.APIResponse "Material not found"
// @Router /materials/{materialId}/content [get]
func (c *MaterialController) GetContent(ctx *gin.Context) {
	materialID, ok := parseIDParam(ctx, "materialId")
	if !ok {
		return
	}

	material, err := c.materialService.GetContent(ctx.Request.Context(), materialID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(material))
}

// GetBreadcrumb returns the navigation trail for a material
// @Summary Get material breadcrumb
// @Tags materials
// @Produce json
// @Param materialId path int true "Material ID"
// @Success 200 {object} dto.APIResponse{data=[]breadcrumb.Crumb} "Breadcrumb retrieved"
// @Failure 404 {object} dto.APIResponse "Material not found"
// @Router /materials/{materialId}/breadcrumb [get]
func (c *MaterialController) GetBreadcrumb(ctx *gin.Context) {
	materialID, ok := parseIDParam(ctx, "materialId")
	if !ok {
		return
	}

	crumbs, err := c.materialService.Breadcrumb(ctx.Request.Context(), materialID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(crumbs))
}

// CreateMaterial creates a material under an academic period
// @Summary Create a material
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMaterialRequest true "Material"
// @Success 201 {object} dto.APIResponse{data=models.Material} "Material created"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Academic period not found"
// @Router /materials [post]
func (c *MaterialController) CreateMaterial(ctx *gin.Context) {
	var req dto.CreateMaterialRequest
	if !bindJSON(ctx, &req) {
		return
	}

	material, err := c.materialService.CreateMaterial(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(material))
}

// UpdateMaterial updates a material's title and type
// @Summary Update a material
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param materialId path int true "Material ID"
// @Param request body dto.UpdateMaterialRequest true "Material"
// @Success 200 {object} dto.APIResponse{data=models.Material} "Material updated"
// @Failure 404 {object} dto.APIResponse "Material not found"
// @Router /materials/{materialId} [put]
func (c *MaterialController) UpdateMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "materialId")
	if !ok {
		return
	}
	var req dto.UpdateMaterialRequest
	if !bindJSON(ctx, &req) {
		return
	}

	material, err := c.materialService.UpdateMaterial(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(material))
}

// DeleteMaterial deletes a material without content
// @Summary Delete a material
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param materialId path int true "Material ID"
// @Success 200 {object} dto.APIResponse "Material deleted"
// @Failure 404 {object} dto.APIResponse "Material not found"
// @Failure 409 {object} dto.APIResponse "Material has content"
// @Router /materials/{materialId} [delete]
func (c *MaterialController) DeleteMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "materialId")
	if !ok {
		return
	}

	if err := c.materialService.DeleteMaterial(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Material deleted"))
}

// UploadDocument attaches an uploaded file to a material
// @Summary Upload a document
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param materialId path int true "Material ID"
// @Param file formData file true "Document file"
// @Success 201 {object} dto.APIResponse{data=models.Document} "Document uploaded"
// @Failure 400 {object} dto.APIResponse "Missing or unsupported file"
// @Failure 404 {object} dto.APIResponse "Material not found"
// @Router /materials/{materialId}/documents [post]
func (c *MaterialController) UploadDocument(ctx *gin.Context) {
	materialID, ok := parseIDParam(ctx, "materialId")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("A file is required"))
		return
	}

	document, err := c.materialService.AddDocument(ctx.Request.Context(), materialID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(document))
}

// DeleteDocument removes a document row and its stored file
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param documentId path int true "Document ID"
// @Success 200 {object} dto.APIResponse "Document deleted"
// @Failure 404 {object} dto.APIResponse "Document not found"
// @Router /documents/{documentId} [delete]
func (c *MaterialController) DeleteDocument(ctx *gin.Context) {
	documentID, ok := parseIDParam(ctx, "documentId")
	if !ok {
		return
	}

	if err := c.materialService.DeleteDocument(ctx.Request.Context(), documentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Document deleted"))
}

// CreateQuestion attaches a question with options to a material
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param materialId path int true "Material ID"
// @Param request body dto.CreateQuestionRequest true "Question with options"
// @Success 201 {object} dto.APIResponse{data=models.Question} "Question created"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Material not found"
// @Router /materials/{materialId}/questions [post]
func (c *MaterialController) CreateQuestion(ctx *gin.Context) {
	materialID, ok := parseIDParam(ctx, "materialId")
	if !ok {
		return
	}
	var req dto.CreateQuestionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	question, err := c.materialService.AddQuestion(ctx.Request.Context(), materialID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(question))
}

// DeleteQuestion removes a question and its options
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param questionId path int true "Question ID"
// @Success 200 {object} dto.APIResponse "Question deleted"
// @Failure 404 {object} dto.APIResponse "Question not found"
// @Router /questions/{questionId} [delete]
func (c *MaterialController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "questionId")
	if !ok {
		return
	}

	if err := c.materialService.DeleteQuestion(ctx.Request.Context(), questionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Question deleted"))
}
