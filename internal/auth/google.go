package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GoogleIdentity is the subset of a verified Google ID token this service uses
type GoogleIdentity struct {
	Sub   string
	Email string
	Name  string
}

// GoogleVerifier validates Google ID tokens. An interface so the auth service
// can be tested without calling Google.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// GoogleIDTokenVerifier verifies ID tokens against Google's public keys and
// checks the audience matches our OAuth client id.
type GoogleIDTokenVerifier struct {
	clientID string
}

// NewGoogleIDTokenVerifier creates a verifier bound to the given client id
func NewGoogleIDTokenVerifier(clientID string) *GoogleIDTokenVerifier {
	return &GoogleIDTokenVerifier{clientID: clientID}
}

// Verify validates the token and extracts the identity claims
func (v *GoogleIDTokenVerifier) Verify(ctx context.Context, token string) (*GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate google id token: %w", err)
	}

	identity := &GoogleIdentity{Sub: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}

	if identity.Sub == "" || identity.Email == "" {
		return nil, fmt.Errorf("google id token missing identity claims")
	}

	return identity, nil
}
