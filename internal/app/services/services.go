package services

import (
	"context"
	"mime/multipart"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/pkg/breadcrumb"
)

// ExamTypeService manages hierarchy roots.
type ExamTypeService interface {
	ListExamTypes(ctx context.Context) ([]*models.ExamType, error)
	CreateExamType(ctx context.Context, req *dto.CreateExamTypeRequest) (*models.ExamType, error)
	UpdateExamType(ctx context.Context, id int64, req *dto.UpdateExamTypeRequest) (*models.ExamType, error)
	DeleteExamType(ctx context.Context, id int64) error
}

// DepartmentService manages departments under exam types.
type DepartmentService interface {
	ListByExamType(ctx context.Context, examTypeID int64) ([]*models.Department, error)
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error)
	UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
}

// AcademicPeriodService manages periods under departments.
type AcademicPeriodService interface {
	ListByDepartment(ctx context.Context, departmentID int64) ([]*models.AcademicPeriod, error)
	CreateAcademicPeriod(ctx context.Context, req *dto.CreateAcademicPeriodRequest) (*models.AcademicPeriod, error)
	UpdateAcademicPeriod(ctx context.Context, id int64, req *dto.UpdateAcademicPeriodRequest) (*models.AcademicPeriod, error)
	DeleteAcademicPeriod(ctx context.Context, id int64) error
}

// MaterialService manages materials and their attached content.
type MaterialService interface {
	ListByAcademicPeriod(ctx context.Context, academicPeriodID int64) ([]*models.Material, error)
	GetContent(ctx context.Context, id int64) (*models.Material, error)
	Breadcrumb(ctx context.Context, materialID int64) ([]breadcrumb.Crumb, error)
	CreateMaterial(ctx context.Context, req *dto.CreateMaterialRequest) (*models.Material, error)
	UpdateMaterial(ctx context.Context, id int64, req *dto.UpdateMaterialRequest) (*models.Material, error)
	DeleteMaterial(ctx context.Context, id int64) error
	AddDocument(ctx context.Context, materialID int64, fileHeader *multipart.FileHeader) (*models.Document, error)
	DeleteDocument(ctx context.Context, documentID int64) error
	AddQuestion(ctx context.Context, materialID int64, req *dto.CreateQuestionRequest) (*models.Question, error)
	DeleteQuestion(ctx context.Context, questionID int64) error
}

// AuthService is the authentication boundary: credential checks, token
// issuance and rotation, and account management.
type AuthService interface {
	Login(ctx context.Context, kind models.IdentityKind, email, password string) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.AuthResponse, error)
	CreateAdmin(ctx context.Context, creatorID int64, req *dto.CreateAdminRequest) (*models.Admin, error)
	SetAdminActive(ctx context.Context, id int64, isActive bool) error
	IsSuperAdmin(ctx context.Context, adminID int64) (bool, error)
}
