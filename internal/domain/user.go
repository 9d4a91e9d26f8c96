package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a user row. The password digest and Google subject never
// leave this package as JSON; responses go through UserResponse.
type User struct {
	ID             uuid.UUID
	Email          string
	Username       string
	PasswordDigest *string
	GoogleID       *string
	IsActive       bool
	CreatedAt      time.Time
}

// UserResponse is the wire representation of a user
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a user row to its wire representation
func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// NormalizeEmail trims whitespace and lower-cases an email address. Lookups
// and inserts both go through this so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignupMethod is the tagged union of ways to create an account. Exactly one
// auth method per signup is guaranteed by the type, not by a validator.
type SignupMethod interface {
	Validate() error
	signupMethod()
}

// PasswordSignup registers an account with an email/password pair
type PasswordSignup struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (PasswordSignup) signupMethod() {}

// Validate checks the signup fields
func (s PasswordSignup) Validate() error {
	if err := validateIdentity(s.Email, s.Username); err != nil {
		return err
	}
	if len(s.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if len(s.Password) > 72 {
		return fmt.Errorf("%w: password must be at most 72 bytes", ErrValidation)
	}
	return nil
}

// GoogleSignup registers an account backed by a verified Google identity
type GoogleSignup struct {
	Email    string
	Username string
	GoogleID string
}

func (GoogleSignup) signupMethod() {}

// Validate checks the signup fields
func (s GoogleSignup) Validate() error {
	if err := validateIdentity(s.Email, s.Username); err != nil {
		return err
	}
	if s.GoogleID == "" {
		return fmt.Errorf("%w: google id is required", ErrValidation)
	}
	return nil
}

func validateIdentity(email, username string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	return nil
}

// LoginRequest is the password login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest is the federated login payload
type GoogleLoginRequest struct {
	GoogleIDToken string `json:"google_id_token"`
}

// TokenResponse carries an issued access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
