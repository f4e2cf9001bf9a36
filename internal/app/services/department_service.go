package services

import (
	"context"
	"fmt"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/repositories"
	"github.com/kaan/examportal/internal/pkg/apperrors"
)

type departmentService struct {
	deptRepo     *repositories.DepartmentRepository
	examTypeRepo *repositories.ExamTypeRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(
	deptRepo *repositories.DepartmentRepository,
	examTypeRepo *repositories.ExamTypeRepository,
) DepartmentService {
	return &departmentService{
		deptRepo:     deptRepo,
		examTypeRepo: examTypeRepo,
	}
}

// ListByExamType returns the departments of an exam type. The parent is
// checked first so a missing exam type is reported as such rather than as an
// empty list.
func (s *departmentService) ListByExamType(ctx context.Context, examTypeID int64) ([]*models.Department, error) {
	if _, err := s.examTypeRepo.GetByID(ctx, examTypeID); err != nil {
		return nil, err
	}
	return s.deptRepo.GetByExamTypeID(ctx, examTypeID)
}

func (s *departmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if _, err := s.examTypeRepo.GetByID(ctx, req.ExamTypeID); err != nil {
		return nil, err
	}

	department := &models.Department{
		ExamTypeID: req.ExamTypeID,
		Name:       req.Name,
	}
	if err := s.deptRepo.Create(ctx, department); err != nil {
		return nil, fmt.Errorf("error creating department: %w", err)
	}
	department.AcademicPeriods = make([]*models.AcademicPeriod, 0)
	return department, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department.Name = req.Name
	if err := s.deptRepo.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, id int64) error {
	hasChildren, err := s.deptRepo.HasAcademicPeriods(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return apperrors.NewConflictError("Department has academic periods and cannot be deleted")
	}

	return s.deptRepo.Delete(ctx, id)
}
