package service

import (
	"context"
	"encoding/json"

	"quizapi/internal/domain"
	"quizapi/pkg/redis"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CacheService provides read-through caching for quiz and user lookups.
// A nil redis client disables caching; every method degrades to a no-op so
// the API keeps working without Redis.
type CacheService struct {
	redis *redis.Client
	log   *zap.Logger
}

func NewCacheService(redisClient *redis.Client, log *zap.Logger) *CacheService {
	return &CacheService{redis: redisClient, log: log}
}

// GetQuiz returns the cached quiz or nil on a miss
func (s *CacheService) GetQuiz(ctx context.Context, id int64) *domain.Quiz {
	if s.redis == nil {
		return nil
	}

	data, err := s.redis.Get(ctx, s.redis.KeyBuilder.KeyQuizByID(id))
	if err != nil || data == "" {
		return nil
	}

	var quiz domain.Quiz
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		s.log.Warn("failed to decode cached quiz", zap.Int64("quiz_id", id), zap.Error(err))
		return nil
	}
	return &quiz
}

// SetQuiz caches a quiz; failures are logged, never surfaced
func (s *CacheService) SetQuiz(ctx context.Context, quiz *domain.Quiz) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(quiz)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, s.redis.KeyBuilder.KeyQuizByID(quiz.ID), string(data), redis.TTLQuiz); err != nil {
		s.log.Warn("failed to cache quiz", zap.Int64("quiz_id", quiz.ID), zap.Error(err))
	}
}

// InvalidateQuiz drops the cached quiz and every cached listing page after a
// mutation so stale data is never served
func (s *CacheService) InvalidateQuiz(ctx context.Context, id int64) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Delete(ctx, s.redis.KeyBuilder.KeyQuizByID(id)); err != nil {
		s.log.Warn("failed to invalidate quiz cache", zap.Int64("quiz_id", id), zap.Error(err))
	}
	if err := s.redis.DeleteByPattern(ctx, s.redis.KeyBuilder.KeyQuizListPattern()); err != nil {
		s.log.Warn("failed to invalidate quiz list cache", zap.Error(err))
	}
}

// GetUser returns the cached user or nil on a miss
func (s *CacheService) GetUser(ctx context.Context, id uuid.UUID) *domain.User {
	if s.redis == nil {
		return nil
	}

	data, err := s.redis.Get(ctx, s.redis.KeyBuilder.KeyUserByID(id.String()))
	if err != nil || data == "" {
		return nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		s.log.Warn("failed to decode cached user", zap.String("user_id", id.String()), zap.Error(err))
		return nil
	}
	return &user
}

// SetUser caches a user for principal lookups
func (s *CacheService) SetUser(ctx context.Context, user *domain.User) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, s.redis.KeyBuilder.KeyUserByID(user.ID.String()), string(data), redis.TTLUser); err != nil {
		s.log.Warn("failed to cache user", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
}

// InvalidateUser drops the cached user
func (s *CacheService) InvalidateUser(ctx context.Context, id uuid.UUID) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Delete(ctx, s.redis.KeyBuilder.KeyUserByID(id.String())); err != nil {
		s.log.Warn("failed to invalidate user cache", zap.String("user_id", id.String()), zap.Error(err))
	}
}

// GetQuizList returns a cached listing page or nil on a miss
func (s *CacheService) GetQuizList(ctx context.Context, skip, limit int) []domain.Quiz {
	if s.redis == nil {
		return nil
	}

	data, err := s.redis.Get(ctx, s.redis.KeyBuilder.KeyQuizList(skip, limit))
	if err != nil || data == "" {
		return nil
	}

	var quizzes []domain.Quiz
	if err := json.Unmarshal([]byte(data), &quizzes); err != nil {
		return nil
	}
	return quizzes
}

// SetQuizList caches a listing page with a short TTL
func (s *CacheService) SetQuizList(ctx context.Context, skip, limit int, quizzes []domain.Quiz) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(quizzes)
	if err != nil {
		return
	}
	_ = s.redis.Set(ctx, s.redis.KeyBuilder.KeyQuizList(skip, limit), string(data), redis.TTLList)
}

// HealthCheck verifies the cache is reachable; nil client is healthy
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Health(ctx)
}
