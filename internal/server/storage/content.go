package storage

import (
	"context"

	"github.com/montagemotion/backoffice/internal/models"
)

// ContentStorage defines interface for content item persistence
type ContentStorage interface {
	// CreateItem inserts a new item with the position it carries
	CreateItem(ctx context.Context, item *models.Item) error

	// GetItem retrieves a single item of a collection by ID
	// Returns ErrItemNotFound if item doesn't exist
	GetItem(ctx context.Context, collection, id string) (*models.Item, error)

	// ListItems retrieves all items of a collection ordered by position
	// Returns empty slice if collection is empty
	ListItems(ctx context.Context, collection string) ([]*models.Item, error)

	// UpdateItem replaces the fields of an existing item (full update)
	// Returns ErrItemNotFound if item doesn't exist
	UpdateItem(ctx context.Context, item *models.Item) error

	// DeleteItem removes an item and re-compacts remaining positions to 1..n
	// Returns ErrItemNotFound if item doesn't exist
	DeleteItem(ctx context.Context, collection, id string) error

	// ReorderItems applies a full position assignment to a collection in a
	// single transaction. The payload must cover exactly the stored identity
	// set; otherwise ErrOrderMismatch is returned and nothing is changed.
	ReorderItems(ctx context.Context, collection string, updates []models.PositionUpdate) error

	// NextPosition returns max(position)+1 for a collection (1 when empty)
	NextPosition(ctx context.Context, collection string) (int, error)
}
