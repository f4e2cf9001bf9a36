package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/pkg/auth"
)

func newTestTokenService() *auth.TokenService {
	return auth.NewTokenService(auth.TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessExp:     15 * time.Minute,
		RefreshExp:    168 * time.Hour,
		Issuer:        "examportal.app",
		Audience:      "examportal-clients",
	})
}

func bearerTestRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	protected := router.Group("", m.BearerAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"identityID": c.GetInt64(ContextIdentityID),
			"email":      c.GetString(ContextEmail),
		})
	})
	adminOnly := protected.Group("", m.AdminRequired())
	adminOnly.GET("/admin-area", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestBearerAuthMissingHeader(t *testing.T) {
	router := bearerTestRouter(NewAuthMiddleware(newTestTokenService(), nil))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuthWrongScheme(t *testing.T) {
	router := bearerTestRouter(NewAuthMiddleware(newTestTokenService(), nil))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuthValidToken(t *testing.T) {
	svc := newTestTokenService()
	router := bearerTestRouter(NewAuthMiddleware(svc, nil))

	pair, err := svc.GenerateTokenPair(models.Identity{ID: 9, Email: "user@example.com", Name: "User", Kind: models.IdentityUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"identityID":9`)
	assert.Contains(t, rec.Body.String(), `"email":"user@example.com"`)
}

func TestBearerAuthRejectsRefreshToken(t *testing.T) {
	svc := newTestTokenService()
	router := bearerTestRouter(NewAuthMiddleware(svc, nil))

	pair, err := svc.GenerateTokenPair(models.Identity{ID: 9, Email: "user@example.com", Kind: models.IdentityUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRequiredForbidsUsers(t *testing.T) {
	svc := newTestTokenService()
	router := bearerTestRouter(NewAuthMiddleware(svc, nil))

	pair, err := svc.GenerateTokenPair(models.Identity{ID: 9, Email: "user@example.com", Kind: models.IdentityUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-area", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRequiredAllowsAdmins(t *testing.T) {
	svc := newTestTokenService()
	router := bearerTestRouter(NewAuthMiddleware(svc, nil))

	pair, err := svc.GenerateTokenPair(models.Identity{ID: 1, Email: "admin@example.com", Kind: models.IdentityAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-area", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
