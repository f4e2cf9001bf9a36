package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/middleware"
	"github.com/kaan/examportal/internal/pkg/apperrors"
)

type fakeAuthService struct {
	resp      *dto.AuthResponse
	err       error
	lastKind  models.IdentityKind
	lastEmail string
}

func (f *fakeAuthService) Login(ctx context.Context, kind models.IdentityKind, email, password string) (*dto.AuthResponse, error) {
	f.lastKind = kind
	f.lastEmail = email
	return f.resp, f.err
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuthService) Logout(ctx context.Context, refreshToken string) error {
	return f.err
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.AuthResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuthService) CreateAdmin(ctx context.Context, creatorID int64, req *dto.CreateAdminRequest) (*models.Admin, error) {
	return nil, f.err
}

func (f *fakeAuthService) SetAdminActive(ctx context.Context, id int64, isActive bool) error {
	return f.err
}

func (f *fakeAuthService) IsSuperAdmin(ctx context.Context, adminID int64) (bool, error) {
	return false, f.err
}

func authTestRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAuthController(svc)
	router.POST("/api/v1/auth/login", controller.Login)
	router.POST("/api/v1/auth/admin/login", controller.AdminLogin)
	router.POST("/api/v1/auth/logout", controller.Logout)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	svc := &fakeAuthService{resp: &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:  "access-token",
			TokenType:    "Bearer",
			ExpiresIn:    900,
			RefreshToken: "refresh-token",
		},
		Identity: models.Identity{ID: 1, Email: "user@example.com", Name: "User", Kind: models.IdentityUser},
	}}
	router := authTestRouter(svc)

	rec := postJSON(router, "/api/v1/auth/login", `{"email":"User@Example.com","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"access-token"`)
	assert.Equal(t, models.IdentityUser, svc.lastKind)
	// the email reaches the service lower-cased
	assert.Equal(t, "user@example.com", svc.lastEmail)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AccessTokenCookie, cookies[0].Name)
	assert.Equal(t, "access-token", cookies[0].Value)
}

func TestAdminLoginSelectsAdminKind(t *testing.T) {
	svc := &fakeAuthService{err: apperrors.ErrInvalidCredentials}
	router := authTestRouter(svc)

	rec := postJSON(router, "/api/v1/auth/admin/login", `{"email":"admin@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, models.IdentityAdmin, svc.lastKind)
	assert.JSONEq(t, `{"success":false,"message":"Invalid credentials"}`, rec.Body.String())
}

func TestLoginValidationFailure(t *testing.T) {
	router := authTestRouter(&fakeAuthService{})

	rec := postJSON(router, "/api/v1/auth/login", `{"email":"not-an-email","password":"secret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"email"`)
}

func TestLoginMissingPassword(t *testing.T) {
	router := authTestRouter(&fakeAuthService{})

	rec := postJSON(router, "/api/v1/auth/login", `{"email":"user@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"password"`)
}

func TestLogoutClearsCookie(t *testing.T) {
	router := authTestRouter(&fakeAuthService{})

	rec := postJSON(router, "/api/v1/auth/logout", `{"refreshToken":"some-token"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AccessTokenCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}
