package repository

import (
	"context"
	"fmt"

	"quizapi/internal/domain"
	"quizapi/pkg/database"

	"github.com/jackc/pgx/v5"
)

type PostgresQuizRepository struct {
	db *database.PostgresDB
}

func NewQuizRepository(db *database.PostgresDB) *PostgresQuizRepository {
	return &PostgresQuizRepository{db: db}
}

// Create inserts a new quiz record
func (r *PostgresQuizRepository) Create(ctx context.Context, quiz *domain.Quiz) error {
	query := `
		INSERT INTO quizzes (owner_id, title, description, category, difficulty, is_public)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		quiz.OwnerID,
		quiz.Title,
		quiz.Description,
		quiz.Category,
		quiz.Difficulty,
		quiz.IsPublic,
	).Scan(&quiz.ID, &quiz.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}

	return nil
}

// GetByID gets a quiz by ID
func (r *PostgresQuizRepository) GetByID(ctx context.Context, id int64) (*domain.Quiz, error) {
	var quiz domain.Quiz
	query := `
		SELECT id, owner_id, title, description, category, difficulty, is_public, created_at
		FROM quizzes
		WHERE id = $1
	`

	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&quiz.ID,
		&quiz.OwnerID,
		&quiz.Title,
		&quiz.Description,
		&quiz.Category,
		&quiz.Difficulty,
		&quiz.IsPublic,
		&quiz.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	return &quiz, nil
}

// List gets quizzes ordered by id ascending with offset/limit pagination
func (r *PostgresQuizRepository) List(ctx context.Context, skip, limit int) ([]domain.Quiz, error) {
	query := `
		SELECT id, owner_id, title, description, category, difficulty, is_public, created_at
		FROM quizzes
		ORDER BY id ASC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := make([]domain.Quiz, 0)
	for rows.Next() {
		var quiz domain.Quiz
		err := rows.Scan(
			&quiz.ID,
			&quiz.OwnerID,
			&quiz.Title,
			&quiz.Description,
			&quiz.Category,
			&quiz.Difficulty,
			&quiz.IsPublic,
			&quiz.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quiz: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	return quizzes, nil
}

// Update persists the mutable fields of the quiz. The write runs in a
// transaction; any failure rolls back before the error propagates.
func (r *PostgresQuizRepository) Update(ctx context.Context, quiz *domain.Quiz) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE quizzes
		SET title = $2, description = $3, category = $4, difficulty = $5, is_public = $6
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query,
		quiz.ID,
		quiz.Title,
		quiz.Description,
		quiz.Category,
		quiz.Difficulty,
		quiz.IsPublic,
	)
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuizNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit quiz update: %w", err)
	}

	return nil
}

// Delete removes the quiz. Runs in a transaction like Update.
func (r *PostgresQuizRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuizNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit quiz delete: %w", err)
	}

	return nil
}
