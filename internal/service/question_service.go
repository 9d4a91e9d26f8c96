package service

import (
	"context"

	"quizapi/internal/domain"
	"quizapi/internal/repository"
	"quizapi/pkg/logger"

	"github.com/google/uuid"
)

type questionService struct {
	questions repository.QuestionRepository
	log       *logger.Logger
}

// NewQuestionService creates the question CRUD service
func NewQuestionService(questions repository.QuestionRepository, log *logger.Logger) QuestionService {
	return &questionService{questions: questions, log: log}
}

// Create validates the input and persists a question
func (s *questionService) Create(ctx context.Context, in *domain.QuestionCreate) (*domain.Question, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	question := &domain.Question{
		ID:              uuid.New(),
		QuestionText:    in.QuestionText,
		Type:            in.Type,
		TimeLimit:       domain.QuestionDefaultTimeLimit,
		Explanation:     in.Explanation,
		CorrectAnswer:   in.CorrectAnswer,
		PossibleAnswers: in.PossibleAnswers,
	}
	if in.TimeLimit != nil {
		question.TimeLimit = *in.TimeLimit
	}

	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// Get loads a question by id
func (s *questionService) Get(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, domain.ErrQuestionNotFound
	}
	return question, nil
}

// List returns all questions
func (s *questionService) List(ctx context.Context) ([]domain.Question, error) {
	return s.questions.List(ctx)
}

// Update applies the fields present in the payload to the question
func (s *questionService) Update(ctx context.Context, id uuid.UUID, in *domain.QuestionUpdate) (*domain.Question, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, domain.ErrQuestionNotFound
	}

	in.Apply(question)

	if err := s.questions.Update(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// Delete removes the question
func (s *questionService) Delete(ctx context.Context, id uuid.UUID) error {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if question == nil {
		return domain.ErrQuestionNotFound
	}

	return s.questions.Delete(ctx, id)
}
