package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrItemNotFound indicates that content item was not found
	ErrItemNotFound = errors.New("item not found")

	// ErrOrderMismatch indicates that a reorder payload does not cover the
	// stored identity set of the collection
	ErrOrderMismatch = errors.New("reorder payload does not match collection contents")
)
