package service

import (
	"context"
	"testing"

	"quizapi/internal/domain"
	"quizapi/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	client := redis.NewClientFromRDB(rdb, "test", zap.NewNop())
	return NewCacheService(client, zap.NewNop()), mr
}

func TestCacheService_QuizRoundtrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	quiz := &domain.Quiz{ID: 42, OwnerID: uuid.New(), Title: "Cached quiz", IsPublic: true}

	assert.Nil(t, cache.GetQuiz(ctx, 42), "miss before set")

	cache.SetQuiz(ctx, quiz)

	got := cache.GetQuiz(ctx, 42)
	require.NotNil(t, got)
	assert.Equal(t, quiz.ID, got.ID)
	assert.Equal(t, quiz.OwnerID, got.OwnerID)
	assert.Equal(t, "Cached quiz", got.Title)
}

func TestCacheService_InvalidateQuiz(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	quiz := &domain.Quiz{ID: 7, OwnerID: uuid.New(), Title: "Stale soon"}
	cache.SetQuiz(ctx, quiz)
	cache.SetQuizList(ctx, 0, 100, []domain.Quiz{*quiz})

	require.NotNil(t, cache.GetQuiz(ctx, 7))
	require.NotNil(t, cache.GetQuizList(ctx, 0, 100))

	cache.InvalidateQuiz(ctx, 7)

	assert.Nil(t, cache.GetQuiz(ctx, 7))
	assert.Nil(t, cache.GetQuizList(ctx, 0, 100), "listing pages are dropped with the quiz")
}

func TestCacheService_UserRoundtrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Email: "alice@example.com", IsActive: true}

	assert.Nil(t, cache.GetUser(ctx, user.ID))

	cache.SetUser(ctx, user)

	got := cache.GetUser(ctx, user.ID)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)

	cache.InvalidateUser(ctx, user.ID)
	assert.Nil(t, cache.GetUser(ctx, user.ID))
}

func TestCacheService_ListExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.SetQuizList(ctx, 0, 100, []domain.Quiz{{ID: 1, Title: "Page entry"}})
	require.NotNil(t, cache.GetQuizList(ctx, 0, 100))

	mr.FastForward(redis.TTLList + 1)

	assert.Nil(t, cache.GetQuizList(ctx, 0, 100))
}

func TestCacheService_NilClientDegrades(t *testing.T) {
	cache := NewCacheService(nil, zap.NewNop())
	ctx := context.Background()

	cache.SetQuiz(ctx, &domain.Quiz{ID: 1, Title: "No cache"})
	assert.Nil(t, cache.GetQuiz(ctx, 1))
	cache.InvalidateQuiz(ctx, 1)
	assert.NoError(t, cache.HealthCheck(ctx))
}
