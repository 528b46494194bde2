package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is returned when a profile username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)
