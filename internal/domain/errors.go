package domain

import "errors"

// Sentinel errors raised by repositories and services. Handlers translate
// these into HTTP status codes.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// ErrValidation is the base for input validation failures; wrap it with
	// fmt.Errorf("%w: reason") so callers can match with errors.Is.
	ErrValidation = errors.New("validation failed")
)
