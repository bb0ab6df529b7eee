package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no session data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrCollectionNotCached indicates that a collection has never been fetched
	ErrCollectionNotCached = errors.New("collection is not cached")

	// ErrOrderNotFound indicates that no working order exists for a collection
	ErrOrderNotFound = errors.New("working order not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
