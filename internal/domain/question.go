package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuestionType enumerates the supported question formats
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "MC"
	QuestionTypeTrueOrFalse    QuestionType = "TF"
	QuestionTypeSelectMultiple QuestionType = "SM"
)

const (
	QuestionTextMaxLen        = 250
	QuestionExplanationMaxLen = 250
	QuestionDefaultTimeLimit  = 30
)

// Valid reports whether the question type is one of the known formats
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeTrueOrFalse, QuestionTypeSelectMultiple:
		return true
	}
	return false
}

// Question represents a question row. Answers are stored as JSON documents
// because their shape depends on the question type.
type Question struct {
	ID              uuid.UUID
	QuestionText    string
	Type            QuestionType
	TimeLimit       int
	Explanation     *string
	CorrectAnswer   map[string]interface{}
	PossibleAnswers map[string]interface{}
	CreatedAt       time.Time
}

// QuestionCreate is the payload for creating a question
type QuestionCreate struct {
	QuestionText    string                 `json:"question_text"`
	Type            QuestionType           `json:"type"`
	TimeLimit       *int                   `json:"time_limit"`
	Explanation     *string                `json:"explanation"`
	CorrectAnswer   map[string]interface{} `json:"correct_answer"`
	PossibleAnswers map[string]interface{} `json:"possible_answers"`
}

// Validate checks the payload; a missing type defaults to multiple choice and
// a missing time limit defaults to 30 seconds.
func (in *QuestionCreate) Validate() error {
	in.QuestionText = strings.TrimSpace(in.QuestionText)
	if in.QuestionText == "" {
		return fmt.Errorf("%w: question_text must not be blank", ErrValidation)
	}
	if len(in.QuestionText) > QuestionTextMaxLen {
		return fmt.Errorf("%w: question_text must be at most %d characters", ErrValidation, QuestionTextMaxLen)
	}
	if in.Type == "" {
		in.Type = QuestionTypeMultipleChoice
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: type must be one of MC, TF, SM", ErrValidation)
	}
	if in.TimeLimit != nil && *in.TimeLimit <= 0 {
		return fmt.Errorf("%w: time_limit must be positive", ErrValidation)
	}
	if in.Explanation != nil && len(*in.Explanation) > QuestionExplanationMaxLen {
		return fmt.Errorf("%w: explanation must be at most %d characters", ErrValidation, QuestionExplanationMaxLen)
	}
	if len(in.CorrectAnswer) == 0 {
		return fmt.Errorf("%w: correct_answer is required", ErrValidation)
	}
	if len(in.PossibleAnswers) == 0 {
		return fmt.Errorf("%w: possible_answers is required", ErrValidation)
	}
	return nil
}

// QuestionUpdate is the partial-update payload for a question
type QuestionUpdate struct {
	QuestionText    *string                `json:"question_text"`
	Type            *QuestionType          `json:"type"`
	TimeLimit       *int                   `json:"time_limit"`
	Explanation     *string                `json:"explanation"`
	CorrectAnswer   map[string]interface{} `json:"correct_answer"`
	PossibleAnswers map[string]interface{} `json:"possible_answers"`
}

// Validate checks the fields present in the payload
func (in *QuestionUpdate) Validate() error {
	if in.QuestionText != nil {
		trimmed := strings.TrimSpace(*in.QuestionText)
		if trimmed == "" {
			return fmt.Errorf("%w: question_text must not be blank", ErrValidation)
		}
		if len(trimmed) > QuestionTextMaxLen {
			return fmt.Errorf("%w: question_text must be at most %d characters", ErrValidation, QuestionTextMaxLen)
		}
		in.QuestionText = &trimmed
	}
	if in.Type != nil && !in.Type.Valid() {
		return fmt.Errorf("%w: type must be one of MC, TF, SM", ErrValidation)
	}
	if in.TimeLimit != nil && *in.TimeLimit <= 0 {
		return fmt.Errorf("%w: time_limit must be positive", ErrValidation)
	}
	if in.Explanation != nil && len(*in.Explanation) > QuestionExplanationMaxLen {
		return fmt.Errorf("%w: explanation must be at most %d characters", ErrValidation, QuestionExplanationMaxLen)
	}
	return nil
}

// Apply copies the fields present in the payload onto the question
func (in *QuestionUpdate) Apply(q *Question) {
	if in.QuestionText != nil {
		q.QuestionText = *in.QuestionText
	}
	if in.Type != nil {
		q.Type = *in.Type
	}
	if in.TimeLimit != nil {
		q.TimeLimit = *in.TimeLimit
	}
	if in.Explanation != nil {
		q.Explanation = in.Explanation
	}
	if in.CorrectAnswer != nil {
		q.CorrectAnswer = in.CorrectAnswer
	}
	if in.PossibleAnswers != nil {
		q.PossibleAnswers = in.PossibleAnswers
	}
}

// QuestionResponse is the wire representation of a question
type QuestionResponse struct {
	ID              uuid.UUID              `json:"id"`
	QuestionText    string                 `json:"question_text"`
	Type            QuestionType           `json:"type"`
	TimeLimit       int                    `json:"time_limit"`
	Explanation     *string                `json:"explanation"`
	CorrectAnswer   map[string]interface{} `json:"correct_answer"`
	PossibleAnswers map[string]interface{} `json:"possible_answers"`
	CreatedAt       time.Time              `json:"created_at"`
}

// NewQuestionResponse maps a question row to its wire representation
func NewQuestionResponse(q *Question) *QuestionResponse {
	return &QuestionResponse{
		ID:              q.ID,
		QuestionText:    q.QuestionText,
		Type:            q.Type,
		TimeLimit:       q.TimeLimit,
		Explanation:     q.Explanation,
		CorrectAnswer:   q.CorrectAnswer,
		PossibleAnswers: q.PossibleAnswers,
		CreatedAt:       q.CreatedAt,
	}
}
