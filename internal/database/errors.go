package database

import (
	"errors"
	"fmt"
)

type ErrorClass int

const (
	ErrorClassInternal ErrorClass = iota
	ErrorClassValidation
	ErrorClassNotFound
)

func (c ErrorClass) String() string {
	switch c {
	case ErrorClassValidation:
		return "validation"
	case ErrorClassNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ErrorClassInternal
	}

	if errors.Is(err, ErrValidation) {
		return ErrorClassValidation
	}
	if errors.Is(err, ErrNotFound) {
		return ErrorClassNotFound
	}

	return ErrorClassInternal
}

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

const (
	EntityUser    = "user"
	EntityProduct = "product"
	EntityOrder   = "order"
)

// ValidationError reports a malformed or out-of-range input field.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func NewValidationError(entity, field, reason string) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s", e.Entity, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports an identifier that does not resolve to a live entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return true
	case ErrUserNotFound:
		return e.Entity == EntityUser
	case ErrProductNotFound:
		return e.Entity == EntityProduct
	case ErrOrderNotFound:
		return e.Entity == EntityOrder
	}
	return false
}
