package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/repositories"
	"github.com/kaan/examportal/internal/pkg/auth"
)

// Context keys set by BearerAuth.
const (
	ContextIdentityID   = "identityID"
	ContextIdentityKind = "identityKind"
	ContextEmail        = "email"
	ContextName         = "name"
)

// AuthMiddleware enforces bearer-token authentication and role checks.
type AuthMiddleware struct {
	tokenService *auth.TokenService
	adminRepo    *repositories.AdminRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokenService *auth.TokenService, adminRepo *repositories.AdminRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		adminRepo:    adminRepo,
	}
}

// BearerAuth validates the Authorization header access token and stores the
// identity claims on the request context.
func (m *AuthMiddleware) BearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid authorization header"))
			return
		}

		claims, err := m.tokenService.VerifyAccessToken(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextIdentityID, claims.IdentityID)
		c.Set(ContextIdentityKind, claims.Kind)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextName, claims.Name)
		c.Next()
	}
}

// AdminRequired allows only admin identities. Must run after BearerAuth.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, _ := c.Get(ContextIdentityKind)
		if k, ok := kind.(models.IdentityKind); !ok || k != models.IdentityAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Permission denied"))
			return
		}
		c.Next()
	}
}

// SuperAdminRequired allows only admins with the super-admin flag. The flag
// is read from storage rather than the token so revoking it takes effect
// immediately.
func (m *AuthMiddleware) SuperAdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, _ := c.Get(ContextIdentityKind)
		if k, ok := kind.(models.IdentityKind); !ok || k != models.IdentityAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Permission denied"))
			return
		}

		identityID := c.GetInt64(ContextIdentityID)
		admin, err := m.adminRepo.GetByID(c.Request.Context(), identityID)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}
		if !admin.IsSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Permission denied"))
			return
		}
		c.Next()
	}
}
