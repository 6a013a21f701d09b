package domain

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when a resource already exists
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when a mutation conflicts with current state
	// (e.g., a disallowed order status transition)
	ErrConflict = errors.New("conflict occurred")

	// ErrUnauthorized is returned when no valid identity accompanies a call
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden is returned when the caller's identity does not permit the operation
	ErrForbidden = errors.New("operation not permitted")

	// ErrEmptyCart is returned when checkout is attempted on an empty cart
	ErrEmptyCart = errors.New("cart is empty")

	// ErrOutOfStock is returned when checkout requests more units than remain
	ErrOutOfStock = errors.New("insufficient stock")

	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
)
