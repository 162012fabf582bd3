package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateSubmitIdeaInput(input SubmitIdeaInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Type) == "" {
		errors = append(errors, ValidationError{"type", "is required"})
	}
	if strings.TrimSpace(input.Description) == "" {
		errors = append(errors, ValidationError{"description", "is required"})
	}
	if strings.TrimSpace(input.Priority) == "" {
		errors = append(errors, ValidationError{"priority", "is required"})
	}

	return errors
}
