package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	QuizTitleMaxLen       = 50
	QuizDescriptionMaxLen = 250
	QuizDifficultyMin     = 1
	QuizDifficultyMax     = 5
)

// Quiz represents a quiz row
type Quiz struct {
	ID          int64
	OwnerID     uuid.UUID
	Title       string
	Description *string
	Category    *string
	Difficulty  *int
	IsPublic    bool
	CreatedAt   time.Time
}

// CanMutate reports whether the principal may update or delete the quiz.
// Ownership is the sole basis for mutation authorization.
func CanMutate(principalID uuid.UUID, q *Quiz) bool {
	return q.OwnerID == principalID
}

// QuizCreate is the payload for creating a quiz
type QuizCreate struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Difficulty  *int    `json:"difficulty"`
	IsPublic    *bool   `json:"is_public"`
}

// Validate checks the payload and trims the title in place
func (in *QuizCreate) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return fmt.Errorf("%w: title must not be blank", ErrValidation)
	}
	if len(in.Title) > QuizTitleMaxLen {
		return fmt.Errorf("%w: title must be at most %d characters", ErrValidation, QuizTitleMaxLen)
	}
	return validateQuizFields(in.Description, in.Difficulty)
}

// QuizUpdate is the partial-update payload. Nil pointers leave the field
// untouched; an explicit JSON null on title is recorded so it can be
// rejected (title is non-nullable).
type QuizUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Difficulty  *int    `json:"difficulty"`
	IsPublic    *bool   `json:"is_public"`

	titleNull bool
}

// UnmarshalJSON decodes the payload and remembers whether title was an
// explicit null, which plain pointer decoding cannot distinguish from absent.
func (in *QuizUpdate) UnmarshalJSON(data []byte) error {
	type alias QuizUpdate
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*in = QuizUpdate(aux)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["title"]; ok && string(v) == "null" {
		in.titleNull = true
	}
	return nil
}

// Validate checks the payload and trims a present title in place
func (in *QuizUpdate) Validate() error {
	if in.titleNull {
		return fmt.Errorf("%w: title cannot be set to null", ErrValidation)
	}
	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		if trimmed == "" {
			return fmt.Errorf("%w: title must not be blank", ErrValidation)
		}
		if len(trimmed) > QuizTitleMaxLen {
			return fmt.Errorf("%w: title must be at most %d characters", ErrValidation, QuizTitleMaxLen)
		}
		in.Title = &trimmed
	}
	return validateQuizFields(in.Description, in.Difficulty)
}

// Apply copies the fields present in the payload onto the quiz
func (in *QuizUpdate) Apply(q *Quiz) {
	if in.Title != nil {
		q.Title = *in.Title
	}
	if in.Description != nil {
		q.Description = in.Description
	}
	if in.Category != nil {
		q.Category = in.Category
	}
	if in.Difficulty != nil {
		q.Difficulty = in.Difficulty
	}
	if in.IsPublic != nil {
		q.IsPublic = *in.IsPublic
	}
}

func validateQuizFields(description *string, difficulty *int) error {
	if description != nil && len(*description) > QuizDescriptionMaxLen {
		return fmt.Errorf("%w: description must be at most %d characters", ErrValidation, QuizDescriptionMaxLen)
	}
	if difficulty != nil && (*difficulty < QuizDifficultyMin || *difficulty > QuizDifficultyMax) {
		return fmt.Errorf("%w: difficulty must be between %d and %d", ErrValidation, QuizDifficultyMin, QuizDifficultyMax)
	}
	return nil
}

// QuizResponse is the wire representation of a quiz
type QuizResponse struct {
	ID          int64     `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Difficulty  *int      `json:"difficulty"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewQuizResponse maps a quiz row to its wire representation
func NewQuizResponse(q *Quiz) *QuizResponse {
	return &QuizResponse{
		ID:          q.ID,
		OwnerID:     q.OwnerID,
		Title:       q.Title,
		Description: q.Description,
		Category:    q.Category,
		Difficulty:  q.Difficulty,
		IsPublic:    q.IsPublic,
		CreatedAt:   q.CreatedAt,
	}
}
