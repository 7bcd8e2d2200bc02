package domain

import "errors"

// Sentinel errors for the items domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateTitle indicates another item already uses the same title.
	ErrDuplicateTitle = errors.New("title has already been taken")

	// ErrInvalidTitle indicates the title violates domain constraints.
	ErrInvalidTitle = errors.New("invalid item title")
)
