package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/services"
	"github.com/kaan/examportal/internal/middleware"
	"github.com/kaan/examportal/internal/pkg/validation"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles user login
// @Summary Log in as a user
// @Description Authenticates user credentials and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Logged in"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid credentials format"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	c.login(ctx, models.IdentityUser)
}

// AdminLogin handles admin login
// @Summary Log in as an admin
// @Description Authenticates admin credentials and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Logged in"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid credentials format"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/admin/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	c.login(ctx, models.IdentityAdmin)
}

func (c *AuthController) login(ctx *gin.Context, kind models.IdentityKind) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	email, fieldErrors := validation.ValidateLoginInput(req.Email, req.Password)
	if len(fieldErrors) > 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(fieldErrors))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), kind, email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// The cookie feeds the edge route guard; bearer transport stays
	// authoritative for the API.
	ctx.SetCookie(middleware.AccessTokenCookie, resp.Token.AccessToken, int(resp.Token.ExpiresIn), "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Refresh rotates a refresh token
// @Summary Refresh tokens
// @Description Revokes the presented refresh token and issues a new pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Tokens rotated"
// @Failure 401 {object} dto.APIResponse "Invalid, expired or revoked token"
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(middleware.AccessTokenCookie, resp.Token.AccessToken, int(resp.Token.ExpiresIn), "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Logout revokes a refresh token
// @Summary Log out
// @Description Revokes the presented refresh token and clears the guard cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.Logout(ctx.Request.Context(), req.RefreshToken); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// Me returns the authenticated identity
// @Summary Current identity
// @Description Returns the identity claims of the presented access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Identity} "Identity retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	kind, _ := ctx.Get(middleware.ContextIdentityKind)
	k, ok := kind.(models.IdentityKind)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	identity := models.Identity{
		ID:    ctx.GetInt64(middleware.ContextIdentityID),
		Email: ctx.GetString(middleware.ContextEmail),
		Name:  ctx.GetString(middleware.ContextName),
		Kind:  k,
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(identity))
}

// RegisterUser handles public user registration
// @Summary Register a user account
// @Description Creates a user account and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "Account details"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "Account created"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /users [post]
func (c *AuthController) RegisterUser(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.RegisterUser(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(middleware.AccessTokenCookie, resp.Token.AccessToken, int(resp.Token.ExpiresIn), "/", "", false, true)
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}
