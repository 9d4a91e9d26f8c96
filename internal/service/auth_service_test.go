package service

import (
	"context"
	"testing"
	"time"

	"quizapi/internal/auth"
	"quizapi/internal/domain"
	"quizapi/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepository is an in-memory UserRepository with the same contract as
// the Postgres implementation: email uniqueness and nil on missing rows.
type fakeUserRepository struct {
	byID    map[uuid.UUID]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    make(map[uuid.UUID]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *fakeUserRepository) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrDuplicateEmail
	}
	user.CreatedAt = time.Now()
	clone := *user
	r.byID[user.ID] = &clone
	r.byEmail[user.Email] = &clone
	return nil
}

func (r *fakeUserRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

// fakeGoogleVerifier accepts a single known token
type fakeGoogleVerifier struct {
	token    string
	identity auth.GoogleIdentity
}

func (v *fakeGoogleVerifier) Verify(_ context.Context, idToken string) (*auth.GoogleIdentity, error) {
	if idToken != v.token {
		return nil, domain.ErrInvalidCredentials
	}
	identity := v.identity
	return &identity, nil
}

func newTestAuthService(users *fakeUserRepository, google auth.GoogleVerifier) AuthService {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	codec := auth.NewTokenCodec("test-secret", time.Hour)
	cache := NewCacheService(nil, logger.NewNop().Logger)
	return NewAuthService(users, hasher, codec, google, cache, logger.NewNop())
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	users := newFakeUserRepository()
	svc := newTestAuthService(users, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, domain.PasswordSignup{
		Email:    "Alice@Example.com",
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.IsActive)
	require.NotNil(t, user.PasswordDigest)
	assert.NotEqual(t, "password123", *user.PasswordDigest)

	token, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_RegisterDuplicateNormalizedEmail(t *testing.T) {
	users := newFakeUserRepository()
	svc := newTestAuthService(users, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.PasswordSignup{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)

	// same address with different casing collides after normalization
	_, err = svc.Register(ctx, domain.PasswordSignup{
		Email:    "ALICE@example.com",
		Username: "alice2",
		Password: "password456",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthService_LoginFailuresAreUniform(t *testing.T) {
	users := newFakeUserRepository()
	google := &fakeGoogleVerifier{
		token:    "good-google-token",
		identity: auth.GoogleIdentity{Sub: "sub-1", Email: "carol@example.com", Name: "carol"},
	}
	svc := newTestAuthService(users, google)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.PasswordSignup{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)

	// federated-only account has no digest to check against
	_, err = svc.LoginWithGoogle(ctx, "good-google-token")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "nobody@example.com", password: "password123"},
		{name: "wrong password", email: "alice@example.com", password: "not-the-password"},
		{name: "empty password", email: "alice@example.com", password: ""},
		{name: "federated-only account", email: "carol@example.com", password: "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	users := newFakeUserRepository()
	google := &fakeGoogleVerifier{
		token:    "good-google-token",
		identity: auth.GoogleIdentity{Sub: "sub-1", Email: "bob@example.com", Name: "bob"},
	}
	svc := newTestAuthService(users, google)
	ctx := context.Background()

	// first login creates the account
	token, err := svc.LoginWithGoogle(ctx, "good-google-token")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	created, err := users.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, created.GoogleID)
	assert.Equal(t, "sub-1", *created.GoogleID)
	assert.Nil(t, created.PasswordDigest)

	// second login reuses it
	_, err = svc.LoginWithGoogle(ctx, "good-google-token")
	require.NoError(t, err)

	// bad token is rejected
	_, err = svc.LoginWithGoogle(ctx, "forged-token")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_GoogleLoginDoesNotLinkPasswordAccount(t *testing.T) {
	users := newFakeUserRepository()
	google := &fakeGoogleVerifier{
		token:    "good-google-token",
		identity: auth.GoogleIdentity{Sub: "sub-1", Email: "alice@example.com", Name: "alice"},
	}
	svc := newTestAuthService(users, google)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.PasswordSignup{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)

	// the email belongs to a password account; federated login must not
	// silently take it over
	_, err = svc.LoginWithGoogle(ctx, "good-google-token")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ResolvePrincipal(t *testing.T) {
	users := newFakeUserRepository()
	svc := newTestAuthService(users, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, domain.PasswordSignup{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)

	principal, err := svc.ResolvePrincipal(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.ID)
	assert.Equal(t, "alice@example.com", principal.Email)

	_, err = svc.ResolvePrincipal(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_GetUser(t *testing.T) {
	users := newFakeUserRepository()
	svc := newTestAuthService(users, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, domain.PasswordSignup{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
