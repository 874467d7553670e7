package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/proapp/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "contact-email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "contact-message", Message: "too short"})

		assert.Equal(t, "validation failed: contact-email: is required; contact-message: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "a", Message: "one"})
	errs.Add(validator.ValidationError{Field: "b", Message: "two"})
	errs.Add(validator.ValidationError{Field: "a", Message: "three"})

	assert.True(t, errs.Has("a"))
	assert.False(t, errs.Has("c"))
	assert.Equal(t, []string{"one", "three"}, errs.Get("a"))
	assert.Equal(t, []string{"a", "b"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "Name", "Ana"),
			validator.SimpleEmail("email", "ana@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("aggregates every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "Name", ""),
			validator.SimpleEmail("email", "nope"),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"name", "email"}, errs.Fields())
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when every rule passes", func(t *testing.T) {
		assert.Nil(t, validator.First(validator.RequiredString("name", "Name", "x")))
	})

	t.Run("stops at the first failing rule", func(t *testing.T) {
		err := validator.First(
			validator.RequiredString("name", "Name", "x"),
			validator.MinLenString("name", "x", 2),
			validator.SimpleEmail("name", "x"),
		)
		require.NotNil(t, err)
		assert.Equal(t, "validation.min_length", err.TranslationKey)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	assert.False(t, validator.IsValidationError(errors.New("boom")))

	wrapped := errors.Join(errors.New("context"), validator.ValidationErrors{{Field: "x", Message: "bad"}})
	assert.Equal(t, []string{"x"}, validator.ExtractValidationErrors(wrapped).Fields())
}
