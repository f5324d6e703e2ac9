package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrInvalidRequest wraps every struct-tag validation failure.
var ErrInvalidRequest = errors.New("invalid request")

var validate = validator.New()

// Validate checks the validate tags of a request or batch and joins every
// violation into a single error.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Namespace()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Namespace(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is not valid", fe.Namespace()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, ", "))
}
