package repository

import (
	"context"

	"quizapi/internal/domain"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// Create inserts the user; returns domain.ErrDuplicateEmail when the
	// email uniqueness constraint is violated
	Create(ctx context.Context, user *domain.User) error

	// GetByID returns nil when no user exists with the id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail returns nil when no user exists with the (normalized) email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// QuizRepository defines persistence operations for quizzes
type QuizRepository interface {
	Create(ctx context.Context, quiz *domain.Quiz) error

	// GetByID returns nil when no quiz exists with the id
	GetByID(ctx context.Context, id int64) (*domain.Quiz, error)

	// List returns quizzes ordered by id ascending
	List(ctx context.Context, skip, limit int) ([]domain.Quiz, error)

	// Update persists all mutable fields of the quiz inside a transaction
	Update(ctx context.Context, quiz *domain.Quiz) error

	// Delete removes the quiz inside a transaction
	Delete(ctx context.Context, id int64) error
}

// QuestionRepository defines persistence operations for questions
type QuestionRepository interface {
	Create(ctx context.Context, question *domain.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	List(ctx context.Context) ([]domain.Question, error)
	Update(ctx context.Context, question *domain.Question) error
	Delete(ctx context.Context, id uuid.UUID) error
}
