package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorUnwrap(t *testing.T) {
	err := Invalid(ErrInvalidAmount, "amount", "-5")

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, `amount "-5": invalid amount`, err.Error())

	wrapped := fmt.Errorf("make payment: %w", err)
	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "amount", ve.Field)
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{
		"cvv":        "CVV must be 3 digits",
		"cardNumber": "Invalid card number",
	}

	assert.ErrorIs(t, fe, ErrValidation)
	assert.Equal(t, "validation failed: cardNumber: Invalid card number; cvv: CVV must be 3 digits", fe.Error())

	var target FieldErrors
	assert.True(t, errors.As(fmt.Errorf("add card: %w", fe), &target))
	assert.Len(t, target, 2)
}

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrExceedsOutstanding, "ExceedsOutstanding"},
		{Invalid(ErrSplitMismatch, "participants", "4500"), "SplitMismatch"},
		{fmt.Errorf("wrapped: %w", ErrCardNotFound), "CardNotFound"},
		{FieldErrors{"cvv": "bad"}, "ValidationFailed"},
		{errors.New("boom"), "Internal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Code(tt.err))
	}
}
