package service

import (
	"context"
	"fmt"

	"quizapi/internal/auth"
	"quizapi/internal/domain"
	"quizapi/internal/repository"
	"quizapi/pkg/logger"

	"github.com/google/uuid"
)

type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	codec  *auth.TokenCodec
	google auth.GoogleVerifier
	cache  *CacheService
	log    *logger.Logger
}

// NewAuthService creates the authentication service. The google verifier may
// be nil when federated login is not configured.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, codec *auth.TokenCodec, google auth.GoogleVerifier, cache *CacheService, log *logger.Logger) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		codec:  codec,
		google: google,
		cache:  cache,
		log:    log,
	}
}

// Register creates a user from a signup intent
func (s *authService) Register(ctx context.Context, signup domain.SignupMethod) (*domain.User, error) {
	if err := signup.Validate(); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.New(),
		IsActive: true,
	}

	switch m := signup.(type) {
	case domain.PasswordSignup:
		digest, err := s.hasher.Hash(m.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Email = domain.NormalizeEmail(m.Email)
		user.Username = m.Username
		user.PasswordDigest = &digest
	case domain.GoogleSignup:
		googleID := m.GoogleID
		user.Email = domain.NormalizeEmail(m.Email)
		user.Username = m.Username
		user.GoogleID = &googleID
	default:
		return nil, fmt.Errorf("%w: unsupported signup method", domain.ErrValidation)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.WithField("user_id", user.ID.String()).Info("User registered")
	return user, nil
}

// Login authenticates an email/password pair and issues an access token.
// Unknown email, federated-only account and wrong password all collapse into
// the same error so responses cannot be used to enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if user == nil || password == "" || user.PasswordDigest == nil ||
		!s.hasher.Verify(password, *user.PasswordDigest) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID.String(), user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.WithField("user_id", user.ID.String()).Debug("User logged in")
	return token, nil
}

// LoginWithGoogle verifies a Google ID token and issues an access token,
// creating the account on first login
func (s *authService) LoginWithGoogle(ctx context.Context, idToken string) (string, error) {
	if s.google == nil {
		return "", domain.ErrInvalidCredentials
	}

	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		s.log.WithError(err).Debug("Google id token rejected")
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, identity.Email)
	if err != nil {
		return "", err
	}

	if user == nil {
		username := identity.Name
		if username == "" {
			username = identity.Email
		}
		user, err = s.Register(ctx, domain.GoogleSignup{
			Email:    identity.Email,
			Username: username,
			GoogleID: identity.Sub,
		})
		if err != nil {
			return "", err
		}
	} else if user.GoogleID == nil || *user.GoogleID != identity.Sub {
		// The email belongs to a password account or a different Google
		// subject; do not silently link identities.
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID.String(), user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// ResolvePrincipal parses an access token and loads the subject user
func (s *authService) ResolvePrincipal(ctx context.Context, token string) (*domain.User, error) {
	claims, ok := s.codec.Parse(token)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidToken
	}

	return user, nil
}

// GetUser loads a user by id
func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.lookupUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// lookupUser reads through the principal cache; the TTL bounds staleness of
// out-of-band deactivations
func (s *authService) lookupUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if user := s.cache.GetUser(ctx, id); user != nil {
		return user, nil
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user != nil {
		s.cache.SetUser(ctx, user)
	}
	return user, nil
}
