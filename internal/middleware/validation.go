package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/kerem/schoolhub/internal/app/models/dto"
)

// FormatBindingError turns gin binding/validator errors into the standard
// error detail shape.
func FormatBindingError(err error) *dto.ErrorDetail {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, formatFieldError(fe))
		}
		return detail.WithDetails(messages)
	}

	return detail.WithDetails(err.Error())
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
