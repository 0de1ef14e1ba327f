// Package apperrors holds the error taxonomy shared by the ledger packages.
//
// Every failure is a value: a sentinel matched with errors.Is, optionally
// wrapped in a *ValidationError carrying the offending field and value, or a
// FieldErrors map for form validation. Nothing here is fatal; a rejected
// command leaves state unchanged.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidAmount indicates an amount that is missing, non-numeric,
	// non-positive or non-finite.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrExceedsOutstanding indicates a payment larger than the card's outstanding balance.
	ErrExceedsOutstanding = errors.New("amount exceeds outstanding balance")

	// ErrCardNotFound indicates a command referenced a card ID not present in state.
	ErrCardNotFound = errors.New("card not found")

	// ErrSplitMismatch indicates custom split amounts that do not add up to the bill total.
	ErrSplitMismatch = errors.New("split amounts do not match total")

	ErrMissingTitle           = errors.New("title is required")
	ErrMissingParticipantName = errors.New("participant name is required")
	ErrNoParticipants         = errors.New("must have at least one participant")
	ErrMissingMerchant        = errors.New("merchant is required")
	ErrMissingCategory        = errors.New("category is required")

	// ErrInsufficientPoints indicates a reward redemption the balance cannot cover.
	ErrInsufficientPoints = errors.New("insufficient reward points")

	// ErrUnknownCommand indicates a command type the dispatcher does not handle.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")
)

// ValidationError pairs an error kind with the field and value that caused it.
type ValidationError struct {
	Kind  error
	Field string
	Value string
}

// Invalid builds a ValidationError for the given kind.
func Invalid(kind error, field, value string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Value: value}
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Kind)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Kind)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// FieldErrors maps form field names to user-facing messages. All violations
// are collected, not just the first.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + f[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets callers match any FieldErrors with errors.Is(err, ErrValidation).
func (f FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidAmount, "InvalidAmount"},
	{ErrExceedsOutstanding, "ExceedsOutstanding"},
	{ErrCardNotFound, "CardNotFound"},
	{ErrSplitMismatch, "SplitMismatch"},
	{ErrMissingTitle, "MissingTitle"},
	{ErrMissingParticipantName, "MissingParticipantName"},
	{ErrNoParticipants, "NoParticipants"},
	{ErrMissingMerchant, "MissingMerchant"},
	{ErrMissingCategory, "MissingCategory"},
	{ErrInsufficientPoints, "InsufficientPoints"},
	{ErrUnknownCommand, "UnknownCommand"},
	{ErrNotFound, "NotFound"},
	{ErrValidation, "ValidationFailed"},
}

// Code returns the stable error code the UI keys its messages on.
// It returns "" for nil and "Internal" for errors outside the taxonomy.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "Internal"
}
