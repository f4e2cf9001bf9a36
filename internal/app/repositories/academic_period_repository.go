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

// AcademicPeriodRepository handles database operations for academic periods
type AcademicPeriodRepository struct {
	db *pgxpool.Pool
}

// NewAcademicPeriodRepository creates a new academic period repository
func NewAcademicPeriodRepository(db *pgxpool.Pool) *AcademicPeriodRepository {
	return &AcademicPeriodRepository{db: db}
}

const academicPeriodColumns = `id, department_id, name, created_at, updated_at`

func scanAcademicPeriodRows(rows pgx.Rows) ([]*models.AcademicPeriod, error) {
	periods := make([]*models.AcademicPeriod, 0)
	for rows.Next() {
		var p models.AcademicPeriod
		if err := rows.Scan(&p.ID, &p.DepartmentID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Materials = make([]*models.Material, 0)
		periods = append(periods, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}

// GetAll retrieves all academic periods ordered by name
func (r *AcademicPeriodRepository) GetAll(ctx context.Context) ([]*models.AcademicPeriod, error) {
	rows, err := r.db.Query(ctx, `SELECT `+academicPeriodColumns+` FROM academic_periods ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAcademicPeriodRows(rows)
}

// GetByID retrieves an academic period by ID
func (r *AcademicPeriodRepository) GetByID(ctx context.Context, id int64) (*models.AcademicPeriod, error) {
	var p models.AcademicPeriod
	err := r.db.QueryRow(ctx, `SELECT `+academicPeriodColumns+` FROM academic_periods WHERE id = $1`, id).
		Scan(&p.ID, &p.DepartmentID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAcademicPeriodNotFound
		}
		return nil, fmt.Errorf("error retrieving academic period: %w", err)
	}
	p.Materials = make([]*models.Material, 0)

	return &p, nil
}

// GetByDepartmentID retrieves all periods under a given department
func (r *AcademicPeriodRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.AcademicPeriod, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+academicPeriodColumns+` FROM academic_periods WHERE department_id = $1 ORDER BY name`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAcademicPeriodRows(rows)
}

// Create creates a new academic period
func (r *AcademicPeriodRepository) Create(ctx context.Context, period *models.AcademicPeriod) error {
	query := `
		INSERT INTO academic_periods (department_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query, period.DepartmentID, period.Name).
		Scan(&period.ID, &period.CreatedAt, &period.UpdatedAt)
}

// Update renames an existing academic period
func (r *AcademicPeriodRepository) Update(ctx context.Context, period *models.AcademicPeriod) error {
	query := `
		UPDATE academic_periods
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, period.Name, period.ID).Scan(&period.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAcademicPeriodNotFound
		}
		return fmt.Errorf("error updating academic period: %w", err)
	}

	return nil
}

// Delete deletes an academic period by ID
func (r *AcademicPeriodRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM academic_periods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting academic period: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicPeriodNotFound
	}

	return nil
}

// HasMaterials reports whether the period owns any materials
func (r *AcademicPeriodRepository) HasMaterials(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM materials WHERE academic_period_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking period materials: %w", err)
	}

	return exists, nil
}
