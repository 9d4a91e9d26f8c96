package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string // Environment prefix (staging/prod)
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" {
		prefix = "staging"
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

func (kb *KeyBuilder) KeyQuizByID(quizID int64) string {
	return kb.BuildKey(fmt.Sprintf(KeyQuizByID, quizID))
}

func (kb *KeyBuilder) KeyUserByID(userID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyUserByID, userID))
}

func (kb *KeyBuilder) KeyQuizList(skip, limit int) string {
	return kb.BuildKey(fmt.Sprintf(KeyQuizList, skip, limit))
}

// KeyQuizListPattern matches every cached quiz listing page
func (kb *KeyBuilder) KeyQuizListPattern() string {
	return kb.BuildKey("quiz:list:*")
}

// KeyCustom builds a key from a custom format string
func (kb *KeyBuilder) KeyCustom(format string, args ...interface{}) string {
	return kb.BuildKey(fmt.Sprintf(format, args...))
}
