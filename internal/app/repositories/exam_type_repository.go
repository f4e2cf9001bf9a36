package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/pkg/apperrors"
)

// ExamTypeRepository handles database operations for exam types
type ExamTypeRepository struct {
	db *pgxpool.Pool
}

// NewExamTypeRepository creates a new exam type repository
func NewExamTypeRepository(db *pgxpool.Pool) *ExamTypeRepository {
	return &ExamTypeRepository{db: db}
}

// GetAll retrieves all exam types ordered by name
func (r *ExamTypeRepository) GetAll(ctx context.Context) ([]*models.ExamType, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM exam_types
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	examTypes := make([]*models.ExamType, 0)
	for rows.Next() {
		var et models.ExamType
		if err := rows.Scan(&et.ID, &et.Name, &et.Description, &et.CreatedAt, &et.UpdatedAt); err != nil {
			return nil, err
		}
		et.Departments = make([]*models.Department, 0)
		examTypes = append(examTypes, &et)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return examTypes, nil
}

// GetByID retrieves an exam type by ID
func (r *ExamTypeRepository) GetByID(ctx context.Context, id int64) (*models.ExamType, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM exam_types
		WHERE id = $1
	`

	var et models.ExamType
	err := r.db.QueryRow(ctx, query, id).Scan(&et.ID, &et.Name, &et.Description, &et.CreatedAt, &et.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamTypeNotFound
		}
		return nil, fmt.Errorf("error retrieving exam type: %w", err)
	}
	et.Departments = make([]*models.Department, 0)

	return &et, nil
}

// Create creates a new exam type
func (r *ExamTypeRepository) Create(ctx context.Context, examType *models.ExamType) error {
	query := `
		INSERT INTO exam_types (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, examType.Name, examType.Description).
		Scan(&examType.ID, &examType.CreatedAt, &examType.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// Update updates an existing exam type
func (r *ExamTypeRepository) Update(ctx context.Context, examType *models.ExamType) error {
	query := `
		UPDATE exam_types
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, examType.Name, examType.Description, examType.ID).
		Scan(&examType.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrExamTypeNotFound
		}
		return fmt.Errorf("error updating exam type: %w", err)
	}

	return nil
}

// Delete deletes an exam type by ID
func (r *ExamTypeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM exam_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting exam type: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamTypeNotFound
	}

	return nil
}

// HasDepartments reports whether the exam type owns any departments
func (r *ExamTypeRepository) HasDepartments(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM departments WHERE exam_type_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking exam type departments: %w", err)
	}

	return exists, nil
}
