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

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

const departmentColumns = `id, exam_type_id, name, created_at, updated_at`

func scanDepartmentRows(rows pgx.Rows) ([]*models.Department, error) {
	departments := make([]*models.Department, 0)
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.ExamTypeID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		d.AcademicPeriods = make([]*models.AcademicPeriod, 0)
		departments = append(departments, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetAll retrieves all departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDepartmentRows(rows)
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	var d models.Department
	err := r.db.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id).
		Scan(&d.ID, &d.ExamTypeID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	d.AcademicPeriods = make([]*models.AcademicPeriod, 0)

	return &d, nil
}

// GetByExamTypeID retrieves all departments under a given exam type
func (r *DepartmentRepository) GetByExamTypeID(ctx context.Context, examTypeID int64) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+departmentColumns+` FROM departments WHERE exam_type_id = $1 ORDER BY name`, examTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDepartmentRows(rows)
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (exam_type_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query, department.ExamTypeID, department.Name).
		Scan(&department.ID, &department.CreatedAt, &department.UpdatedAt)
}

// Update renames an existing department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, department.Name, department.ID).Scan(&department.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating department: %w", err)
	}

	return nil
}

// Delete deletes a department by ID
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// HasAcademicPeriods reports whether the department owns any periods
func (r *DepartmentRepository) HasAcademicPeriods(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM academic_periods WHERE department_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking department periods: %w", err)
	}

	return exists, nil
}
