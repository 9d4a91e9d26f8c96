package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice@Example.COM", "alice@example.com"},
		{"  bob@example.com  ", "bob@example.com"},
		{"carol@example.com", "carol@example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in))
	}
}

func TestPasswordSignup_Validate(t *testing.T) {
	tests := []struct {
		name    string
		signup  PasswordSignup
		wantErr bool
	}{
		{
			name:   "valid",
			signup: PasswordSignup{Email: "alice@example.com", Username: "alice", Password: "longenough"},
		},
		{
			name:    "invalid email",
			signup:  PasswordSignup{Email: "not-an-email", Username: "alice", Password: "longenough"},
			wantErr: true,
		},
		{
			name:    "missing username",
			signup:  PasswordSignup{Email: "alice@example.com", Username: "  ", Password: "longenough"},
			wantErr: true,
		},
		{
			name:    "password too short",
			signup:  PasswordSignup{Email: "alice@example.com", Username: "alice", Password: "short"},
			wantErr: true,
		},
		{
			name:    "password too long",
			signup:  PasswordSignup{Email: "alice@example.com", Username: "alice", Password: strings.Repeat("p", 73)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.signup.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGoogleSignup_Validate(t *testing.T) {
	valid := GoogleSignup{Email: "alice@example.com", Username: "alice", GoogleID: "sub-123"}
	assert.NoError(t, valid.Validate())

	missing := GoogleSignup{Email: "alice@example.com", Username: "alice"}
	assert.ErrorIs(t, missing.Validate(), ErrValidation)
}

func TestUserResponse_NeverSerializesSecrets(t *testing.T) {
	digest := "$2a$12$somethingsecret"
	googleID := "google-sub"
	user := &User{
		Email:          "alice@example.com",
		Username:       "alice",
		PasswordDigest: &digest,
		GoogleID:       &googleID,
		IsActive:       true,
	}

	data, err := json.Marshal(NewUserResponse(user))
	require.NoError(t, err)

	body := string(data)
	assert.NotContains(t, body, digest)
	assert.NotContains(t, body, googleID)
	assert.Contains(t, body, "alice@example.com")
}
