package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when config supplies none
const DefaultBcryptCost = 12

// PasswordHasher turns plaintext passwords into salted bcrypt digests.
// The cost is injectable so tests can use bcrypt.MinCost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given bcrypt cost; out-of-range
// values fall back to the default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash hashes a plaintext password. The returned digest embeds the salt and
// cost, so it is the only value that needs persisting.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	if len(plaintext) > 72 {
		// bcrypt silently truncates beyond 72 bytes; reject instead
		return "", fmt.Errorf("password must be at most 72 bytes")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A mismatch and
// a malformed digest both return false; this never produces an error.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
