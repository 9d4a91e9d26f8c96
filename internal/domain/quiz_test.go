package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestQuizCreate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   QuizCreate
		wantErr bool
	}{
		{
			name:  "valid minimal",
			input: QuizCreate{Title: "Capitals of Europe"},
		},
		{
			name:  "valid full",
			input: QuizCreate{Title: "Capitals", Description: strPtr("Geography basics"), Difficulty: intPtr(3)},
		},
		{
			name:    "blank title",
			input:   QuizCreate{Title: "   "},
			wantErr: true,
		},
		{
			name:    "title too long",
			input:   QuizCreate{Title: strings.Repeat("a", QuizTitleMaxLen+1)},
			wantErr: true,
		},
		{
			name:  "title at limit",
			input: QuizCreate{Title: strings.Repeat("a", QuizTitleMaxLen)},
		},
		{
			name:    "description too long",
			input:   QuizCreate{Title: "ok", Description: strPtr(strings.Repeat("d", QuizDescriptionMaxLen+1))},
			wantErr: true,
		},
		{
			name:    "difficulty below range",
			input:   QuizCreate{Title: "ok", Difficulty: intPtr(0)},
			wantErr: true,
		},
		{
			name:    "difficulty above range",
			input:   QuizCreate{Title: "ok", Difficulty: intPtr(6)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuizCreate_ValidateTrimsTitle(t *testing.T) {
	in := QuizCreate{Title: "  Capitals  "}
	require.NoError(t, in.Validate())
	assert.Equal(t, "Capitals", in.Title)
}

func TestQuizUpdate_UnmarshalDistinguishesNullFromAbsent(t *testing.T) {
	var absent QuizUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"description":"new"}`), &absent))
	assert.Nil(t, absent.Title)
	assert.NoError(t, absent.Validate())

	var explicitNull QuizUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"title":null}`), &explicitNull))
	assert.Nil(t, explicitNull.Title)
	err := explicitNull.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestQuizUpdate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   QuizUpdate
		wantErr bool
	}{
		{name: "empty update is a no-op", input: QuizUpdate{}},
		{name: "valid title", input: QuizUpdate{Title: strPtr("New title")}},
		{name: "blank title", input: QuizUpdate{Title: strPtr("  ")}, wantErr: true},
		{name: "title too long", input: QuizUpdate{Title: strPtr(strings.Repeat("t", QuizTitleMaxLen+1))}, wantErr: true},
		{name: "difficulty out of range", input: QuizUpdate{Difficulty: intPtr(9)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuizUpdate_Apply(t *testing.T) {
	owner := uuid.New()
	quiz := &Quiz{
		ID:       7,
		OwnerID:  owner,
		Title:    "Old title",
		IsPublic: true,
	}

	update := QuizUpdate{
		Title:      strPtr("New title"),
		Difficulty: intPtr(4),
		IsPublic:   boolPtr(false),
	}
	update.Apply(quiz)

	assert.Equal(t, "New title", quiz.Title)
	assert.Equal(t, 4, *quiz.Difficulty)
	assert.False(t, quiz.IsPublic)
	assert.Nil(t, quiz.Description)
	assert.Equal(t, owner, quiz.OwnerID)
}

func boolPtr(b bool) *bool { return &b }

func TestCanMutate(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	quiz := &Quiz{ID: 1, OwnerID: owner}

	assert.True(t, CanMutate(owner, quiz))
	assert.False(t, CanMutate(stranger, quiz))
	assert.False(t, CanMutate(uuid.Nil, quiz))
}
