package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNotFound           = "not found"
	ErrMsgFoodNotFound       = "food not found"
	ErrMsgIngredientNotFound = "ingredient not found"
	ErrMsgRecipeNotFound     = "this food has no recipe"
	ErrMsgEntryNotFound      = "food log entry not found"
	ErrMsgUserNotFound       = "user not found"

	ErrMsgAlreadyExists       = "already exists"
	ErrMsgInvalidInput        = "invalid input"
	ErrMsgUpstreamUnavailable = "nutrition provider unavailable"
)

// Common domain errors. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details)
// for additional context; every *NotFound error matches ErrNotFound via errors.Is.
var (
	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrFoodNotFound       = fmt.Errorf("food %w", ErrNotFound)
	ErrIngredientNotFound = fmt.Errorf("ingredient %w", ErrNotFound)
	ErrRecipeNotFound     = &notFound{msg: ErrMsgRecipeNotFound}
	ErrEntryNotFound      = fmt.Errorf("food log entry %w", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)

	ErrAlreadyExists       = errors.New(ErrMsgAlreadyExists)
	ErrInvalidInput        = errors.New(ErrMsgInvalidInput)
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)
)

// notFound carries a custom message while still matching ErrNotFound.
type notFound struct{ msg string }

func (e *notFound) Error() string { return e.msg }
func (e *notFound) Unwrap() error { return ErrNotFound }
