package services

import (
	"context"
	"fmt"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/repositories"
	"github.com/kaan/examportal/internal/pkg/apperrors"
)

type academicPeriodService struct {
	periodRepo *repositories.AcademicPeriodRepository
	deptRepo   *repositories.DepartmentRepository
}

// NewAcademicPeriodService creates a new AcademicPeriodService
func NewAcademicPeriodService(
	periodRepo *repositories.AcademicPeriodRepository,
	deptRepo *repositories.DepartmentRepository,
) AcademicPeriodService {
	return &academicPeriodService{
		periodRepo: periodRepo,
		deptRepo:   deptRepo,
	}
}

func (s *academicPeriodService) ListByDepartment(ctx context.Context, departmentID int64) ([]*models.AcademicPeriod, error) {
	if _, err := s.deptRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.periodRepo.GetByDepartmentID(ctx, departmentID)
}

func (s *academicPeriodService) CreateAcademicPeriod(ctx context.Context, req *dto.CreateAcademicPeriodRequest) (*models.AcademicPeriod, error) {
	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	period := &models.AcademicPeriod{
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
	}
	if err := s.periodRepo.Create(ctx, period); err != nil {
		return nil, fmt.Errorf("error creating academic period: %w", err)
	}
	period.Materials = make([]*models.Material, 0)
	return period, nil
}

func (s *academicPeriodService) UpdateAcademicPeriod(ctx context.Context, id int64, req *dto.UpdateAcademicPeriodRequest) (*models.AcademicPeriod, error) {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	period.Name = req.Name
	if err := s.periodRepo.Update(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

func (s *academicPeriodService) DeleteAcademicPeriod(ctx context.Context, id int64) error {
	hasChildren, err := s.periodRepo.HasMaterials(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return apperrors.NewConflictError("Academic period has materials and cannot be deleted")
	}

	return s.periodRepo.Delete(ctx, id)
}
