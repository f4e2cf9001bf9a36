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

// MaterialRepository handles database operations for materials
type MaterialRepository struct {
	db *pgxpool.Pool
}

// NewMaterialRepository creates a new material repository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{db: db}
}

const materialColumns = `id, academic_period_id, title, type, created_at, updated_at`

func scanMaterialRows(rows pgx.Rows) ([]*models.Material, error) {
	materials := make([]*models.Material, 0)
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.AcademicPeriodID, &m.Title, &m.Type, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		m.Documents = make([]*models.Document, 0)
		m.Questions = make([]*models.Question, 0)
		materials = append(materials, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}

// GetAll retrieves all materials ordered by title
func (r *MaterialRepository) GetAll(ctx context.Context) ([]*models.Material, error) {
	rows, err := r.db.Query(ctx, `SELECT `+materialColumns+` FROM materials ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMaterialRows(rows)
}

// GetByID retrieves a material by ID
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	var m models.Material
	err := r.db.QueryRow(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id).
		Scan(&m.ID, &m.AcademicPeriodID, &m.Title, &m.Type, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("error retrieving material: %w", err)
	}
	m.Documents = make([]*models.Document, 0)
	m.Questions = make([]*models.Question, 0)

	return &m, nil
}

// GetByAcademicPeriodID retrieves all materials under a given period
func (r *MaterialRepository) GetByAcademicPeriodID(ctx context.Context, academicPeriodID int64) ([]*models.Material, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+materialColumns+` FROM materials WHERE academic_period_id = $1 ORDER BY title`, academicPeriodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMaterialRows(rows)
}

// Create creates a new material
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	query := `
		INSERT INTO materials (academic_period_id, title, type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query, material.AcademicPeriodID, material.Title, material.Type).
		Scan(&material.ID, &material.CreatedAt, &material.UpdatedAt)
}

// Update updates a material's title and type
func (r *MaterialRepository) Update(ctx context.Context, material *models.Material) error {
	query := `
		UPDATE materials
		SET title = $1, type = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, material.Title, material.Type, material.ID).Scan(&material.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrMaterialNotFound
		}
		return fmt.Errorf("error updating material: %w", err)
	}

	return nil
}

// Delete deletes a material by ID
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting material: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}

	return nil
}

// HasContent reports whether the material owns documents or questions
func (r *MaterialRepository) HasContent(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM documents WHERE material_id = $1)
		    OR EXISTS(SELECT 1 FROM questions WHERE material_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking material content: %w", err)
	}

	return exists, nil
}
