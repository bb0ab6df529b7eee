package storage

import (
	"context"

	"github.com/montagemotion/backoffice/internal/models"
)

//go:generate moq -out catalogstorage_mock.go . CatalogStorage

// CatalogStorage defines interface for the local cache of collection
// contents. The cache holds the last server response per collection so
// the CLI can show lists and build order buffers without a network call.
type CatalogStorage interface {
	// SaveItems replaces the cached items of a collection
	SaveItems(ctx context.Context, collection string, items []models.Item) error

	// GetItems returns the cached items of a collection in stored order
	// Returns ErrCollectionNotCached if the collection was never fetched
	GetItems(ctx context.Context, collection string) ([]models.Item, error)

	// DeleteItems drops the cache of a collection
	DeleteItems(ctx context.Context, collection string) error
}
