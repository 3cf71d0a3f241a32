package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/Domenick1991/reserva-backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their JSON name.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ToValidationError converts the first failed field of a validator error.
func ToValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &domain.ValidationError{Field: fieldErrs[0].Field()}
	}
	return &domain.ValidationError{Field: "body", Reason: err.Error()}
}
