package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type huntClickRequest struct {
	ID string `validate:"required,max=64"`
}

type answerRequest struct {
	Answer string `validate:"required,oneof=MINE HIS HERS THEIRS"`
}

type choiceRequest struct {
	Choice string `validate:"required,oneof=yes no"`
}

type foodRequest struct {
	Food string `validate:"required,max=64"`
}

type friendRequest struct {
	NPC string `validate:"required,max=64"`
}

type viewportRequest struct {
	Width   float64 `validate:"gt=0,lte=20000"`
	Height  float64 `validate:"gt=0,lte=20000"`
	Wrapper float64 `validate:"gte=0,lte=20000"`
}

// FormatValidationError formats validation errors into a user-friendly map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "gt", "gte", "lte":
			errs[field] = "Out of range"
		default:
			errs[field] = "Invalid value"
		}
	}
	return errs
}
