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

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

const documentColumns = `id, material_id, file_path, file_type, original_name, created_at`

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	var d models.Document
	err := r.db.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id).
		Scan(&d.ID, &d.MaterialID, &d.FilePath, &d.FileType, &d.OriginalName, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("error retrieving document: %w", err)
	}

	return &d, nil
}

// GetByMaterialIDs retrieves documents for a set of materials in one query
func (r *DocumentRepository) GetByMaterialIDs(ctx context.Context, materialIDs []int64) ([]*models.Document, error) {
	documents := make([]*models.Document, 0)
	if len(materialIDs) == 0 {
		return documents, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE material_id = ANY($1) ORDER BY created_at`, materialIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.MaterialID, &d.FilePath, &d.FileType, &d.OriginalName, &d.CreatedAt); err != nil {
			return nil, err
		}
		documents = append(documents, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}

// Create records an uploaded document
func (r *DocumentRepository) Create(ctx context.Context, document *models.Document) error {
	query := `
		INSERT INTO documents (material_id, file_path, file_type, original_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		document.MaterialID, document.FilePath, document.FileType, document.OriginalName).
		Scan(&document.ID, &document.CreatedAt)
}

// Delete deletes a document row by ID
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}
