// Package common defines shared sentinel errors used across the bookstore
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")

	// Validation errors (field grammar or argument shape).
	ErrValidation = errors.New("validation failed")

	// Authorization / session errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoSelection  = errors.New("no book selected")

	// Business-rule violations.
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAccountInUse      = errors.New("account is logged in")
	ErrPasswordMismatch  = errors.New("password mismatch")
)
