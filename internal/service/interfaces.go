package service

import (
	"context"

	"quizapi/internal/domain"

	"github.com/google/uuid"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register creates a user from a signup intent; exactly one auth method
	// is guaranteed by the SignupMethod type
	Register(ctx context.Context, signup domain.SignupMethod) (*domain.User, error)

	// Login authenticates an email/password pair and issues an access token.
	// Every failure mode yields the same domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)

	// LoginWithGoogle verifies a Google ID token, creating the account on
	// first login, and issues an access token
	LoginWithGoogle(ctx context.Context, idToken string) (string, error)

	// ResolvePrincipal parses an access token and loads the subject user;
	// domain.ErrInvalidToken on any token or lookup failure
	ResolvePrincipal(ctx context.Context, token string) (*domain.User, error)

	// GetUser loads a user by id; domain.ErrUserNotFound when absent
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// QuizService defines the interface for quiz CRUD operations
type QuizService interface {
	Create(ctx context.Context, in *domain.QuizCreate, ownerID uuid.UUID) (*domain.Quiz, error)
	Get(ctx context.Context, id int64) (*domain.Quiz, error)
	List(ctx context.Context, skip, limit int) ([]domain.Quiz, error)
	Update(ctx context.Context, id int64, in *domain.QuizUpdate, requesterID uuid.UUID) (*domain.Quiz, error)
	Delete(ctx context.Context, id int64, requesterID uuid.UUID) error
}

// QuestionService defines the interface for question CRUD operations
type QuestionService interface {
	Create(ctx context.Context, in *domain.QuestionCreate) (*domain.Question, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	List(ctx context.Context) ([]domain.Question, error)
	Update(ctx context.Context, id uuid.UUID, in *domain.QuestionUpdate) (*domain.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Services aggregates all service interfaces
type Services struct {
	Auth     AuthService
	Quiz     QuizService
	Question QuestionService
}
