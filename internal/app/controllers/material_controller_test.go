package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/pkg/apperrors"
	"github.com/kaan/examportal/internal/pkg/breadcrumb"
)

// fakeMaterialService returns canned values for handler tests.
type fakeMaterialService struct {
	materials []*models.Material
	material  *models.Material
	crumbs    []breadcrumb.Crumb
	err       error
}

func (f *fakeMaterialService) ListByAcademicPeriod(ctx context.Context, academicPeriodID int64) ([]*models.Material, error) {
	return f.materials, f.err
}

func (f *fakeMaterialService) GetContent(ctx context.Context, id int64) (*models.Material, error) {
	return f.material, f.err
}

func (f *fakeMaterialService) Breadcrumb(ctx context.Context, materialID int64) ([]breadcrumb.Crumb, error) {
	return f.crumbs, f.err
}

func (f *fakeMaterialService) CreateMaterial(ctx context.Context, req *dto.CreateMaterialRequest) (*models.Material, error) {
	return f.material, f.err
}

func (f *fakeMaterialService) UpdateMaterial(ctx context.Context, id int64, req *dto.UpdateMaterialRequest) (*models.Material, error) {
	return f.material, f.err
}

func (f *fakeMaterialService) DeleteMaterial(ctx context.Context, id int64) error {
	return f.err
}

func (f *fakeMaterialService) AddDocument(ctx context.Context, materialID int64, fileHeader *multipart.FileHeader) (*models.Document, error) {
	return nil, f.err
}

func (f *fakeMaterialService) DeleteDocument(ctx context.Context, documentID int64) error {
	return f.err
}

func (f *fakeMaterialService) AddQuestion(ctx context.Context, materialID int64, req *dto.CreateQuestionRequest) (*models.Question, error) {
	return nil, f.err
}

func (f *fakeMaterialService) DeleteQuestion(ctx context.Context, questionID int64) error {
	return f.err
}

func materialTestRouter(svc *fakeMaterialService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewMaterialController(svc)
	router.GET("/api/v1/academic-periods/:academicPeriodId/materials", controller.ListByAcademicPeriod)
	router.GET("/api/v1/materials/:materialId/content", controller.GetContent)
	router.GET("/api/v1/materials/:materialId/breadcrumb", controller.GetBreadcrumb)
	return router
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetContentNotFound(t *testing.T) {
	router := materialTestRouter(&fakeMaterialService{err: apperrors.ErrMaterialNotFound})

	rec := doRequest(router, http.MethodGet, "/api/v1/materials/99/content")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Material not found"}`, rec.Body.String())
}

func TestGetContentProjection(t *testing.T) {
	svc := &fakeMaterialService{material: &models.Material{
		ID:               7,
		AcademicPeriodID: 3,
		Title:            "Limits",
		Type:             models.MaterialTypeDocument,
		Documents:        []*models.Document{},
		Questions:        []*models.Question{},
	}}
	router := materialTestRouter(svc)

	rec := doRequest(router, http.MethodGet, "/api/v1/materials/7/content")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"title":"Limits"`)
	assert.Contains(t, body, `"documents":[]`)
	assert.Contains(t, body, `"questions":[]`)
	// the parent period appears only as a foreign key, never as an object
	assert.NotContains(t, body, `"academicPeriod":{`)
}

func TestListMaterialsEmpty(t *testing.T) {
	router := materialTestRouter(&fakeMaterialService{materials: []*models.Material{}})

	rec := doRequest(router, http.MethodGet, "/api/v1/academic-periods/3/materials")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestListMaterialsBadParam(t *testing.T) {
	router := materialTestRouter(&fakeMaterialService{})

	rec := doRequest(router, http.MethodGet, "/api/v1/academic-periods/abc/materials")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "academicPeriodId")
}

func TestGetBreadcrumb(t *testing.T) {
	svc := &fakeMaterialService{crumbs: breadcrumb.Build(breadcrumb.Trail{
		ExamType:       &models.ExamType{ID: 1, Name: "University Entrance"},
		Department:     &models.Department{ID: 2, Name: "Mathematics"},
		AcademicPeriod: &models.AcademicPeriod{ID: 3, Name: "2025-2026"},
		Material:       &models.Material{ID: 4, Title: "Limits"},
	})}
	router := materialTestRouter(svc)

	rec := doRequest(router, http.MethodGet, "/api/v1/materials/4/breadcrumb")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"home"`)
	assert.Contains(t, rec.Body.String(), `"id":"material-4"`)
}

func TestGetBreadcrumbBadParam(t *testing.T) {
	router := materialTestRouter(&fakeMaterialService{})

	rec := doRequest(router, http.MethodGet, "/api/v1/materials/0/breadcrumb")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "materialId")
}
