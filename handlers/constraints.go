package handlers

import (
	"quizforge/models"

	"github.com/google/uuid"
)

// Shared predicates for constraint declarations. Each endpoint still owns
// its field set and messages.

func nonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

func validID(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func positiveInt(v any) bool {
	n, ok := v.(int)
	return ok && n > 0
}

func atLeastOneOption(v any) bool {
	opts, ok := v.([]models.Option)
	return ok && len(opts) >= 1
}
