package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/examportal/internal/app/models"
	"github.com/kaan/examportal/internal/pkg/apperrors"
	"github.com/kaan/examportal/internal/pkg/dberrors"
)

// AdminRepository handles database operations for administrators
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `id, email, password, name, is_active, is_super_admin, created_by, created_at, updated_at`

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var a models.Admin
	err := row.Scan(&a.ID, &a.Email, &a.Password, &a.Name, &a.IsActive, &a.IsSuperAdmin, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return &a, nil
}

// GetByEmail retrieves an admin by email. Callers pass an already
// normalized (lower-cased) email.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return scanAdmin(r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = $1`, email))
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return scanAdmin(r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
}

// Create creates a new admin
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (email, password, name, is_active, is_super_admin, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		admin.Email, admin.Password, admin.Name, admin.IsActive, admin.IsSuperAdmin, admin.CreatedBy).
		Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// SetActive toggles an admin's active flag
func (r *AdminRepository) SetActive(ctx context.Context, id int64, isActive bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE admins SET is_active = $1, updated_at = NOW() WHERE id = $2`, isActive, id)
	if err != nil {
		return fmt.Errorf("error updating admin: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// EmailExists checks if an admin email is taken
func (r *AdminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin email: %w", err)
	}

	return exists, nil
}
