package validation

import (
	"errors"
	"testing"

	"github.com/Domenick1991/reserva-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	FullName string `json:"full_name" validate:"required"`
	Hidden   string `json:"-" validate:"required"`
}

func TestToValidationError_UsesJSONName(t *testing.T) {
	err := New().Struct(sample{Hidden: "x"})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.True(t, errors.As(ToValidationError(err), &validationErr))
	assert.Equal(t, "full_name", validationErr.Field)
}

func TestToValidationError_NonValidatorError(t *testing.T) {
	var validationErr *domain.ValidationError
	require.True(t, errors.As(ToValidationError(errors.New("boom")), &validationErr))
	assert.Equal(t, "body", validationErr.Field)
	assert.Equal(t, "boom", validationErr.Reason)
}
