package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/pkg/apperrors"
)

type fakeExamTypeService struct {
	examTypes []*models.ExamType
	examType  *models.ExamType
	err       error
}

func (f *fakeExamTypeService) ListExamTypes(ctx context.Context) ([]*models.ExamType, error) {
	return f.examTypes, f.err
}

func (f *fakeExamTypeService) CreateExamType(ctx context.Context, req *dto.CreateExamTypeRequest) (*models.ExamType, error) {
	return f.examType, f.err
}

func (f *fakeExamTypeService) UpdateExamType(ctx context.Context, id int64, req *dto.UpdateExamTypeRequest) (*models.ExamType, error) {
	return f.examType, f.err
}

func (f *fakeExamTypeService) DeleteExamType(ctx context.Context, id int64) error {
	return f.err
}

func examTypeTestRouter(svc *fakeExamTypeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewExamTypeController(svc)
	router.GET("/api/v1/exam-types", controller.ListExamTypes)
	router.POST("/api/v1/exam-types", controller.CreateExamType)
	router.DELETE("/api/v1/exam-types/:examTypeId", controller.DeleteExamType)
	return router
}

func TestListExamTypesEmpty(t *testing.T) {
	router := examTypeTestRouter(&fakeExamTypeService{examTypes: []*models.ExamType{}})

	rec := doRequest(router, http.MethodGet, "/api/v1/exam-types")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestListExamTypesTree(t *testing.T) {
	svc := &fakeExamTypeService{examTypes: []*models.ExamType{
		{
			ID:   1,
			Name: "University Entrance",
			Departments: []*models.Department{
				{ID: 2, ExamTypeID: 1, Name: "Mathematics", AcademicPeriods: []*models.AcademicPeriod{}},
			},
		},
	}}
	router := examTypeTestRouter(svc)

	rec := doRequest(router, http.MethodGet, "/api/v1/exam-types")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"name":"University Entrance"`)
	assert.Contains(t, body, `"name":"Mathematics"`)
	// leaf collections serialize as empty arrays, not null
	assert.Contains(t, body, `"academicPeriods":[]`)
}

func TestCreateExamTypeValidation(t *testing.T) {
	router := examTypeTestRouter(&fakeExamTypeService{})

	rec := postJSON(router, "/api/v1/exam-types", `{"name":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"name"`)
}

func TestDeleteExamTypeWithChildren(t *testing.T) {
	svc := &fakeExamTypeService{err: apperrors.NewConflictError("Exam type has departments and cannot be deleted")}
	router := examTypeTestRouter(svc)

	rec := doRequest(router, http.MethodDelete, "/api/v1/exam-types/1")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "cannot be deleted")
}

func TestDeleteExamTypeBadParam(t *testing.T) {
	router := examTypeTestRouter(&fakeExamTypeService{})

	rec := doRequest(router, http.MethodDelete, "/api/v1/exam-types/abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "examTypeId")
}
