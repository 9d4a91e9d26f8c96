package service

import (
	"context"

	"quizapi/internal/domain"
	"quizapi/internal/repository"
	"quizapi/pkg/logger"

	"github.com/google/uuid"
)

const (
	listDefaultLimit = 100
	listMaxLimit     = 100
)

type quizService struct {
	quizzes repository.QuizRepository
	cache   *CacheService
	log     *logger.Logger
}

// NewQuizService creates the quiz CRUD service
func NewQuizService(quizzes repository.QuizRepository, cache *CacheService, log *logger.Logger) QuizService {
	return &quizService{
		quizzes: quizzes,
		cache:   cache,
		log:     log,
	}
}

// Create validates the input and persists a quiz owned by ownerID
func (s *quizService) Create(ctx context.Context, in *domain.QuizCreate, ownerID uuid.UUID) (*domain.Quiz, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	quiz := &domain.Quiz{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Difficulty:  in.Difficulty,
		IsPublic:    true,
	}
	if in.IsPublic != nil {
		quiz.IsPublic = *in.IsPublic
	}

	if err := s.quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}

	s.cache.InvalidateQuiz(ctx, quiz.ID)
	s.log.WithFields(map[string]interface{}{
		"quiz_id":  quiz.ID,
		"owner_id": ownerID.String(),
	}).Info("Quiz created")

	return quiz, nil
}

// Get loads a quiz by id, serving from cache when possible
func (s *quizService) Get(ctx context.Context, id int64) (*domain.Quiz, error) {
	if quiz := s.cache.GetQuiz(ctx, id); quiz != nil {
		return quiz, nil
	}

	quiz, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, domain.ErrQuizNotFound
	}

	s.cache.SetQuiz(ctx, quiz)
	return quiz, nil
}

// List returns a page of quizzes ordered by id ascending. Skip is clamped to
// zero, limit to [1, 100]; a missing or non-positive limit means 100.
func (s *quizService) List(ctx context.Context, skip, limit int) ([]domain.Quiz, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = listDefaultLimit
	}
	if limit > listMaxLimit {
		limit = listMaxLimit
	}

	if quizzes := s.cache.GetQuizList(ctx, skip, limit); quizzes != nil {
		return quizzes, nil
	}

	quizzes, err := s.quizzes.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	s.cache.SetQuizList(ctx, skip, limit, quizzes)
	return quizzes, nil
}

// Update applies the fields present in the payload to the quiz. Only the
// owner may mutate; fields absent from the payload keep their values.
func (s *quizService) Update(ctx context.Context, id int64, in *domain.QuizUpdate, requesterID uuid.UUID) (*domain.Quiz, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	quiz, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, domain.ErrQuizNotFound
	}
	if !domain.CanMutate(requesterID, quiz) {
		return nil, domain.ErrPermissionDenied
	}

	in.Apply(quiz)

	if err := s.quizzes.Update(ctx, quiz); err != nil {
		return nil, err
	}

	s.cache.InvalidateQuiz(ctx, id)
	return quiz, nil
}

// Delete removes the quiz; only the owner may delete
func (s *quizService) Delete(ctx context.Context, id int64, requesterID uuid.UUID) error {
	quiz, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quiz == nil {
		return domain.ErrQuizNotFound
	}
	if !domain.CanMutate(requesterID, quiz) {
		return domain.ErrPermissionDenied
	}

	if err := s.quizzes.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.InvalidateQuiz(ctx, id)
	s.log.WithFields(map[string]interface{}{
		"quiz_id":  id,
		"owner_id": requesterID.String(),
	}).Info("Quiz deleted")

	return nil
}
