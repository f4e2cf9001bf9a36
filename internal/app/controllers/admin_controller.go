package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/services"
	"github.com/kaan/examportal/internal/middleware"
)

// AdminController handles administrator account management
type AdminController struct {
	authService services.AuthService
}

// NewAdminController creates a new AdminController
func NewAdminController(authService services.AuthService) *AdminController {
	return &AdminController{authService: authService}
}

// CreateAdmin creates an administrator account
// @Summary Create an admin
// @Description Creates an administrator account. Requires super admin.
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdminRequest true "Admin details"
// @Success 201 {object} dto.APIResponse{data=models.Admin} "Admin created"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Super admin required"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /admins [post]
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if !bindJSON(ctx, &req) {
		return
	}

	creatorID := ctx.GetInt64(middleware.ContextIdentityID)
	admin, err := c.authService.CreateAdmin(ctx.Request.Context(), creatorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(admin))
}

// SetAdminActive toggles an admin account's active flag
// @Summary Enable or disable an admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param adminId path int true "Admin ID"
// @Param request body dto.SetActiveRequest true "Active flag"
// @Success 200 {object} dto.APIResponse "Flag updated"
// @Failure 403 {object} dto.APIResponse "Super admin required"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /admins/{adminId}/active [patch]
func (c *AdminController) SetAdminActive(ctx *gin.Context) {
	adminID, ok := parseIDParam(ctx, "adminId")
	if !ok {
		return
	}
	var req dto.SetActiveRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.SetAdminActive(ctx.Request.Context(), adminID, *req.IsActive); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Admin updated"))
}
