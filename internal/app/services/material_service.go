package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/app/repositories"
	"github.com/kaan/examportal/internal/pkg/apperrors"
	"github.com/kaan/examportal/internal/pkg/breadcrumb"
	"github.com/kaan/examportal/internal/pkg/filestorage"
	"github.com/kaan/examportal/internal/pkg/logger"
)

type materialService struct {
	materialRepo *repositories.MaterialRepository
	periodRepo   *repositories.AcademicPeriodRepository
	deptRepo     *repositories.DepartmentRepository
	examTypeRepo *repositories.ExamTypeRepository
	documentRepo *repositories.DocumentRepository
	questionRepo *repositories.QuestionRepository
	storage      *filestorage.LocalStorage
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(
	materialRepo *repositories.MaterialRepository,
	periodRepo *repositories.AcademicPeriodRepository,
	deptRepo *repositories.DepartmentRepository,
	examTypeRepo *repositories.ExamTypeRepository,
	documentRepo *repositories.DocumentRepository,
	questionRepo *repositories.QuestionRepository,
	storage *filestorage.LocalStorage,
) MaterialService {
	return &materialService{
		materialRepo: materialRepo,
		periodRepo:   periodRepo,
		deptRepo:     deptRepo,
		examTypeRepo: examTypeRepo,
		documentRepo: documentRepo,
		questionRepo: questionRepo,
		storage:      storage,
	}
}

func (s *materialService) ListByAcademicPeriod(ctx context.Context, academicPeriodID int64) ([]*models.Material, error) {
	if _, err := s.periodRepo.GetByID(ctx, academicPeriodID); err != nil {
		return nil, err
	}

	materials, err := s.materialRepo.GetByAcademicPeriodID(ctx, academicPeriodID)
	if err != nil {
		return nil, err
	}
	if err := s.attachContent(ctx, materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// GetContent returns a material with its documents and questions loaded.
func (s *materialService) GetContent(ctx context.Context, id int64) (*models.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachContent(ctx, []*models.Material{material}); err != nil {
		return nil, err
	}
	return material, nil
}

// attachContent loads documents and questions for the given materials in two
// batched queries and distributes them onto their owners.
func (s *materialService) attachContent(ctx context.Context, materials []*models.Material) error {
	if len(materials) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(materials))
	byID := make(map[int64]*models.Material, len(materials))
	for _, m := range materials {
		m.Documents = make([]*models.Document, 0)
		m.Questions = make([]*models.Question, 0)
		ids = append(ids, m.ID)
		byID[m.ID] = m
	}

	documents, err := s.documentRepo.GetByMaterialIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading documents: %w", err)
	}
	for _, d := range documents {
		if m, ok := byID[d.MaterialID]; ok {
			m.Documents = append(m.Documents, d)
		}
	}

	questions, err := s.questionRepo.GetByMaterialIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading questions: %w", err)
	}
	for _, q := range questions {
		if m, ok := byID[q.MaterialID]; ok {
			m.Questions = append(m.Questions, q)
		}
	}
	return nil
}

// Breadcrumb resolves the material's ancestors up to the hierarchy root and
// renders the navigation trail.
func (s *materialService) Breadcrumb(ctx context.Context, materialID int64) ([]breadcrumb.Crumb, error) {
	material, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	period, err := s.periodRepo.GetByID(ctx, material.AcademicPeriodID)
	if err != nil {
		return nil, err
	}
	department, err := s.deptRepo.GetByID(ctx, period.DepartmentID)
	if err != nil {
		return nil, err
	}
	examType, err := s.examTypeRepo.GetByID(ctx, department.ExamTypeID)
	if err != nil {
		return nil, err
	}

	return breadcrumb.Build(breadcrumb.Trail{
		ExamType:       examType,
		Department:     department,
		AcademicPeriod: period,
		Material:       material,
	}), nil
}

func (s *materialService) CreateMaterial(ctx context.Context, req *dto.CreateMaterialRequest) (*models.Material, error) {
	if _, err := s.periodRepo.GetByID(ctx, req.AcademicPeriodID); err != nil {
		return nil, err
	}

	material := &models.Material{
		AcademicPeriodID: req.AcademicPeriodID,
		Title:            req.Title,
		Type:             models.MaterialType(req.Type),
	}
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, fmt.Errorf("error creating material: %w", err)
	}
	material.Documents = make([]*models.Document, 0)
	material.Questions = make([]*models.Question, 0)
	return material, nil
}

func (s *materialService) UpdateMaterial(ctx context.Context, id int64, req *dto.UpdateMaterialRequest) (*models.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	material.Title = req.Title
	material.Type = models.MaterialType(req.Type)
	if err := s.materialRepo.Update(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *materialService) DeleteMaterial(ctx context.Context, id int64) error {
	hasContent, err := s.materialRepo.HasContent(ctx, id)
	if err != nil {
		return err
	}
	if hasContent {
		return apperrors.NewConflictError("Material has documents or questions and cannot be deleted")
	}

	return s.materialRepo.Delete(ctx, id)
}

// AddDocument stores the uploaded file under a generated name and records it
// against the material.
func (s *materialService) AddDocument(ctx context.Context, materialID int64, fileHeader *multipart.FileHeader) (*models.Document, error) {
	if _, err := s.materialRepo.GetByID(ctx, materialID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !filestorage.IsAllowedExtension(ext) {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Unsupported file type: %s", ext))
	}

	storedName, err := s.storage.SaveUpload(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("error saving upload: %w", err)
	}

	document := &models.Document{
		MaterialID:   materialID,
		FilePath:     storedName,
		FileType:     strings.TrimPrefix(ext, "."),
		OriginalName: filepath.Base(fileHeader.Filename),
	}
	if err := s.documentRepo.Create(ctx, document); err != nil {
		// best effort cleanup of the orphaned file
		if rmErr := s.storage.Delete(storedName); rmErr != nil {
			logger.Warn().Err(rmErr).Str("file", storedName).Msg("Failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("error creating document record: %w", err)
	}
	return document, nil
}

func (s *materialService) DeleteDocument(ctx context.Context, documentID int64) error {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, documentID); err != nil {
		return err
	}
	if err := s.storage.Delete(document.FilePath); err != nil {
		logger.Warn().Err(err).Str("file", document.FilePath).Msg("Failed to remove stored file")
	}
	return nil
}

// AddQuestion creates a question with its options. At least one option must
// be marked correct.
func (s *materialService) AddQuestion(ctx context.Context, materialID int64, req *dto.CreateQuestionRequest) (*models.Question, error) {
	if _, err := s.materialRepo.GetByID(ctx, materialID); err != nil {
		return nil, err
	}

	hasCorrect := false
	for _, opt := range req.Options {
		if opt.IsCorrect {
			hasCorrect = true
			break
		}
	}
	if !hasCorrect {
		return nil, apperrors.NewBadRequestError("At least one option must be marked correct")
	}

	question := &models.Question{
		MaterialID:   materialID,
		QuestionText: req.QuestionText,
		Explanation:  req.Explanation,
	}
	question.Options = make([]*models.QuestionOption, 0, len(req.Options))
	for _, opt := range req.Options {
		question.Options = append(question.Options, &models.QuestionOption{
			OptionText: opt.OptionText,
			IsCorrect:  opt.IsCorrect,
		})
	}

	if err := s.questionRepo.CreateWithOptions(ctx, question); err != nil {
		return nil, fmt.Errorf("error creating question: %w", err)
	}
	return question, nil
}

func (s *materialService) DeleteQuestion(ctx context.Context, questionID int64) error {
	if _, err := s.questionRepo.GetByID(ctx, questionID); err != nil {
		return err
	}
	return s.questionRepo.Delete(ctx, questionID)
}
