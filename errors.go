package fintrack

import "errors"

// Sentinel errors for the domain. They are always wrapped with context
// (the offending symbol, account or constraint) using fmt.Errorf and %w,
// so callers test them with errors.Is.
var (
	// ErrNotFound is returned when a symbol, display name or account
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExists is returned when creating a position or account whose
	// symbol or name is already taken.
	ErrExists = errors.New("already exists")

	// ErrInvalidArgument is returned when an operation argument breaks a
	// validation rule (negative cost, zero quantity, missing column...).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientQuantity is returned when a sale would take the
	// owned quantity of a position below zero.
	ErrInsufficientQuantity = errors.New("insufficient quantity")

	// ErrZeroCostBasis is returned when a relative profit is requested
	// on a position whose cost basis is zero.
	ErrZeroCostBasis = errors.New("zero cost basis")

	// ErrStore wraps I/O failures of the backing store.
	ErrStore = errors.New("store failure")
)
