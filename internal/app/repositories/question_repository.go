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

// QuestionRepository handles database operations for questions and options
type QuestionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// GetByID retrieves a question with its options
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	var q models.Question
	err := r.db.QueryRow(ctx, `
		SELECT id, material_id, question_text, explanation, created_at, updated_at
		FROM questions WHERE id = $1`, id).
		Scan(&q.ID, &q.MaterialID, &q.QuestionText, &q.Explanation, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error retrieving question: %w", err)
	}

	options, err := r.getOptionsByQuestionIDs(ctx, []int64{q.ID})
	if err != nil {
		return nil, err
	}
	q.Options = options

	return &q, nil
}

// GetByMaterialIDs retrieves questions with their options for a set of
// materials in two queries.
func (r *QuestionRepository) GetByMaterialIDs(ctx context.Context, materialIDs []int64) ([]*models.Question, error) {
	questions := make([]*models.Question, 0)
	if len(materialIDs) == 0 {
		return questions, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, material_id, question_text, explanation, created_at, updated_at
		FROM questions WHERE material_id = ANY($1) ORDER BY created_at`, materialIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questionIDs := make([]int64, 0)
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.MaterialID, &q.QuestionText, &q.Explanation, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		q.Options = make([]*models.QuestionOption, 0)
		questions = append(questions, &q)
		questionIDs = append(questionIDs, q.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	options, err := r.getOptionsByQuestionIDs(ctx, questionIDs)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[int64]*models.Question, len(questions))
	for _, q := range questions {
		byQuestion[q.ID] = q
	}
	for _, opt := range options {
		if q, ok := byQuestion[opt.QuestionID]; ok {
			q.Options = append(q.Options, opt)
		}
	}

	return questions, nil
}

func (r *QuestionRepository) getOptionsByQuestionIDs(ctx context.Context, questionIDs []int64) ([]*models.QuestionOption, error) {
	options := make([]*models.QuestionOption, 0)
	if len(questionIDs) == 0 {
		return options, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, question_id, option_text, is_correct, created_at
		FROM question_options WHERE question_id = ANY($1) ORDER BY id`, questionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o models.QuestionOption
		if err := rows.Scan(&o.ID, &o.QuestionID, &o.OptionText, &o.IsCorrect, &o.CreatedAt); err != nil {
			return nil, err
		}
		options = append(options, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return options, nil
}

// CreateWithOptions inserts a question and its options in one transaction.
func (r *QuestionRepository) CreateWithOptions(ctx context.Context, question *models.Question) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO questions (material_id, question_text, explanation)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		question.MaterialID, question.QuestionText, question.Explanation).
		Scan(&question.ID, &question.CreatedAt, &question.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating question: %w", err)
	}

	for _, opt := range question.Options {
		opt.QuestionID = question.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO question_options (question_id, option_text, is_correct)
			VALUES ($1, $2, $3)
			RETURNING id, created_at`,
			opt.QuestionID, opt.OptionText, opt.IsCorrect).
			Scan(&opt.ID, &opt.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating question option: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Delete deletes a question by ID; options go with it via cascade.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting question: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}

	return nil
}
