package services

import (
	"context"
	"fmt"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/repositories"
	"github.com/kaan/examportal/internal/pkg/apperrors"
)

type examTypeService struct {
	examTypeRepo *repositories.ExamTypeRepository
	deptRepo     *repositories.DepartmentRepository
	periodRepo   *repositories.AcademicPeriodRepository
	materialRepo *repositories.MaterialRepository
}

// NewExamTypeService creates a new ExamTypeService
func NewExamTypeService(
	examTypeRepo *repositories.ExamTypeRepository,
	deptRepo *repositories.DepartmentRepository,
	periodRepo *repositories.AcademicPeriodRepository,
	materialRepo *repositories.MaterialRepository,
) ExamTypeService {
	return &examTypeService{
		examTypeRepo: examTypeRepo,
		deptRepo:     deptRepo,
		periodRepo:   periodRepo,
		materialRepo: materialRepo,
	}
}

// ListExamTypes returns all exam types with departments, periods and
// materials nested for display. The whole tree is assembled from four
// parent-scoped queries rather than per-row lookups.
func (s *examTypeService) ListExamTypes(ctx context.Context) ([]*models.ExamType, error) {
	examTypes, err := s.examTypeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing exam types: %w", err)
	}

	departments, err := s.deptRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	periods, err := s.periodRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing academic periods: %w", err)
	}
	materials, err := s.materialRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing materials: %w", err)
	}

	periodByID := make(map[int64]*models.AcademicPeriod, len(periods))
	for _, p := range periods {
		p.Materials = make([]*models.Material, 0)
		periodByID[p.ID] = p
	}
	for _, m := range materials {
		if p, ok := periodByID[m.AcademicPeriodID]; ok {
			p.Materials = append(p.Materials, m)
		}
	}

	deptByID := make(map[int64]*models.Department, len(departments))
	for _, d := range departments {
		d.AcademicPeriods = make([]*models.AcademicPeriod, 0)
		deptByID[d.ID] = d
	}
	for _, p := range periods {
		if d, ok := deptByID[p.DepartmentID]; ok {
			d.AcademicPeriods = append(d.AcademicPeriods, p)
		}
	}

	etByID := make(map[int64]*models.ExamType, len(examTypes))
	for _, et := range examTypes {
		et.Departments = make([]*models.Department, 0)
		etByID[et.ID] = et
	}
	for _, d := range departments {
		if et, ok := etByID[d.ExamTypeID]; ok {
			et.Departments = append(et.Departments, d)
		}
	}

	return examTypes, nil
}

func (s *examTypeService) CreateExamType(ctx context.Context, req *dto.CreateExamTypeRequest) (*models.ExamType, error) {
	examType := &models.ExamType{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.examTypeRepo.Create(ctx, examType); err != nil {
		return nil, fmt.Errorf("error creating exam type: %w", err)
	}
	examType.Departments = make([]*models.Department, 0)
	return examType, nil
}

func (s *examTypeService) UpdateExamType(ctx context.Context, id int64, req *dto.UpdateExamTypeRequest) (*models.ExamType, error) {
	examType, err := s.examTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	examType.Name = req.Name
	examType.Description = req.Description
	if err := s.examTypeRepo.Update(ctx, examType); err != nil {
		return nil, err
	}
	return examType, nil
}

// DeleteExamType refuses to delete a root that still owns departments.
func (s *examTypeService) DeleteExamType(ctx context.Context, id int64) error {
	hasChildren, err := s.examTypeRepo.HasDepartments(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return apperrors.NewConflictError("Exam type has departments and cannot be deleted")
	}

	return s.examTypeRepo.Delete(ctx, id)
}
