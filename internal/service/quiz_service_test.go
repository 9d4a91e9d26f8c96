package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"quizapi/internal/domain"
	"quizapi/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuizRepository is an in-memory QuizRepository mirroring the Postgres
// contract: serial ids, nil on missing rows, id-ordered listing.
type fakeQuizRepository struct {
	nextID  int64
	quizzes map[int64]*domain.Quiz
}

func newFakeQuizRepository() *fakeQuizRepository {
	return &fakeQuizRepository{nextID: 1, quizzes: make(map[int64]*domain.Quiz)}
}

func (r *fakeQuizRepository) Create(_ context.Context, quiz *domain.Quiz) error {
	quiz.ID = r.nextID
	r.nextID++
	quiz.CreatedAt = time.Now()
	clone := *quiz
	r.quizzes[quiz.ID] = &clone
	return nil
}

func (r *fakeQuizRepository) GetByID(_ context.Context, id int64) (*domain.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, nil
	}
	clone := *quiz
	return &clone, nil
}

func (r *fakeQuizRepository) List(_ context.Context, skip, limit int) ([]domain.Quiz, error) {
	ids := make([]int64, 0, len(r.quizzes))
	for id := range r.quizzes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]domain.Quiz, 0, limit)
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, *r.quizzes[id])
	}
	return result, nil
}

func (r *fakeQuizRepository) Update(_ context.Context, quiz *domain.Quiz) error {
	if _, ok := r.quizzes[quiz.ID]; !ok {
		return domain.ErrQuizNotFound
	}
	clone := *quiz
	r.quizzes[quiz.ID] = &clone
	return nil
}

func (r *fakeQuizRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.quizzes[id]; !ok {
		return domain.ErrQuizNotFound
	}
	delete(r.quizzes, id)
	return nil
}

func newTestQuizService(repo *fakeQuizRepository) QuizService {
	return NewQuizService(repo, NewCacheService(nil, logger.NewNop().Logger), logger.NewNop())
}

func seedQuiz(t *testing.T, svc QuizService, owner uuid.UUID, title string) *domain.Quiz {
	t.Helper()
	quiz, err := svc.Create(context.Background(), &domain.QuizCreate{Title: title}, owner)
	require.NoError(t, err)
	return quiz
}

func TestQuizService_CreateAndGet(t *testing.T) {
	svc := newTestQuizService(newFakeQuizRepository())
	owner := uuid.New()
	ctx := context.Background()

	created := seedQuiz(t, svc, owner, "Capitals of Europe")
	assert.Equal(t, owner, created.OwnerID)
	assert.True(t, created.IsPublic)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Capitals of Europe", got.Title)
}

func TestQuizService_CreateRejectsInvalid(t *testing.T) {
	svc := newTestQuizService(newFakeQuizRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.QuizCreate{Title: "   "}, uuid.New())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestQuizService_GetMissing(t *testing.T) {
	svc := newTestQuizService(newFakeQuizRepository())

	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrQuizNotFound)
}

func TestQuizService_ListClamping(t *testing.T) {
	repo := newFakeQuizRepository()
	svc := newTestQuizService(repo)
	owner := uuid.New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedQuiz(t, svc, owner, "Quiz")
	}

	tests := []struct {
		name      string
		skip      int
		limit     int
		wantCount int
		wantFirst int64
	}{
		{name: "defaults", skip: 0, limit: 0, wantCount: 5, wantFirst: 1},
		{name: "negative skip clamps to zero", skip: -3, limit: 0, wantCount: 5, wantFirst: 1},
		{name: "limit respected", skip: 0, limit: 2, wantCount: 2, wantFirst: 1},
		{name: "skip offsets", skip: 2, limit: 2, wantCount: 2, wantFirst: 3},
		{name: "oversized limit clamps", skip: 0, limit: 1000, wantCount: 5, wantFirst: 1},
		{name: "skip beyond rows", skip: 50, limit: 10, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quizzes, err := svc.List(ctx, tt.skip, tt.limit)
			require.NoError(t, err)
			require.Len(t, quizzes, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, quizzes[0].ID)
			}
		})
	}
}

func TestQuizService_UpdateByOwner(t *testing.T) {
	svc := newTestQuizService(newFakeQuizRepository())
	owner := uuid.New()
	ctx := context.Background()

	quiz := seedQuiz(t, svc, owner, "Old title")

	title := "New title"
	updated, err := svc.Update(ctx, quiz.ID, &domain.QuizUpdate{Title: &title}, owner)
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)

	got, err := svc.Get(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
}

func TestQuizService_EmptyUpdateIsNoOp(t *testing.T) {
	svc := newTestQuizService(newFakeQuizRepository())
	owner := uuid.New()
	ctx := context.Background()

	quiz := seedQuiz(t, svc, owner, "Unchanged")

	updated, err := svc.Update(ctx, quiz.ID, &domain.QuizUpdate{}, owner)
	require.NoError(t, err)
	assert.Equal(t, "Unchanged", updated.Title)
	assert.Equal(t, quiz.IsPublic, updated.IsPublic)
}

func TestQuizService_UpdateByNonOwner(t *testing.T) {
	svc := newTestQuizService(newFakeQuizRepository())
	ctx := context.Background()

	quiz := seedQuiz(t, svc, uuid.New(), "Protected")

	title := "Hijacked"
	_, err := svc.Update(ctx, quiz.ID, &domain.QuizUpdate{Title: &title}, uuid.New())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	got, err := svc.Get(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "Protected", got.Title)
}

func TestQuizService_UpdateMissing(t *testing.T) {
	svc := newTestQuizService(newFakeQuizRepository())

	title := "whatever"
	_, err := svc.Update(context.Background(), 404, &domain.QuizUpdate{Title: &title}, uuid.New())
	assert.ErrorIs(t, err, domain.ErrQuizNotFound)
}

func TestQuizService_Delete(t *testing.T) {
	svc := newTestQuizService(newFakeQuizRepository())
	owner := uuid.New()
	ctx := context.Background()

	quiz := seedQuiz(t, svc, owner, "Ephemeral")

	require.Error(t, svc.Delete(ctx, quiz.ID, uuid.New()), "non-owner delete must fail")
	require.NoError(t, svc.Delete(ctx, quiz.ID, owner))

	_, err := svc.Get(ctx, quiz.ID)
	assert.ErrorIs(t, err, domain.ErrQuizNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, quiz.ID, owner), domain.ErrQuizNotFound)
}
