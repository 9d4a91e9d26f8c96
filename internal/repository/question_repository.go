package repository

import (
	"context"
	"fmt"

	"quizapi/internal/domain"
	"quizapi/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresQuestionRepository struct {
	db *database.PostgresDB
}

func NewQuestionRepository(db *database.PostgresDB) *PostgresQuestionRepository {
	return &PostgresQuestionRepository{db: db}
}

// Create inserts a new question record
func (r *PostgresQuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (id, question_text, type, time_limit, explanation, correct_answer, possible_answers)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		question.ID,
		question.QuestionText,
		question.Type,
		question.TimeLimit,
		question.Explanation,
		question.CorrectAnswer,
		question.PossibleAnswers,
	).Scan(&question.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	return nil
}

// GetByID gets a question by ID
func (r *PostgresQuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	var question domain.Question
	query := `
		SELECT id, question_text, type, time_limit, explanation, correct_answer, possible_answers, created_at
		FROM questions
		WHERE id = $1
	`

	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&question.ID,
		&question.QuestionText,
		&question.Type,
		&question.TimeLimit,
		&question.Explanation,
		&question.CorrectAnswer,
		&question.PossibleAnswers,
		&question.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return &question, nil
}

// List gets all questions ordered by creation time
func (r *PostgresQuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	query := `
		SELECT id, question_text, type, time_limit, explanation, correct_answer, possible_answers, created_at
		FROM questions
		ORDER BY created_at ASC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions := make([]domain.Question, 0)
	for rows.Next() {
		var question domain.Question
		err := rows.Scan(
			&question.ID,
			&question.QuestionText,
			&question.Type,
			&question.TimeLimit,
			&question.Explanation,
			&question.CorrectAnswer,
			&question.PossibleAnswers,
			&question.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return questions, nil
}

// Update persists the mutable fields of the question inside a transaction
func (r *PostgresQuestionRepository) Update(ctx context.Context, question *domain.Question) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE questions
		SET question_text = $2, type = $3, time_limit = $4, explanation = $5,
		    correct_answer = $6, possible_answers = $7
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query,
		question.ID,
		question.QuestionText,
		question.Type,
		question.TimeLimit,
		question.Explanation,
		question.CorrectAnswer,
		question.PossibleAnswers,
	)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit question update: %w", err)
	}

	return nil
}

// Delete removes the question inside a transaction
func (r *PostgresQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit question delete: %w", err)
	}

	return nil
}
