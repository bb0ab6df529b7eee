package storage

import "context"

//go:generate moq -out orderstorage_mock.go . OrderStorage

// OrderStorage defines interface for persisting the local working order
// of a collection between CLI invocations. The working order is a plain
// list of item IDs as the admin arranged them; it only reaches the
// server on an explicit commit.
type OrderStorage interface {
	// SaveOrder stores the working order of a collection
	SaveOrder(ctx context.Context, collection string, ids []string) error

	// GetOrder returns the stored working order
	// Returns ErrOrderNotFound if no order was saved
	GetOrder(ctx context.Context, collection string) ([]string, error)

	// DeleteOrder removes the stored working order (after commit or reset)
	DeleteOrder(ctx context.Context, collection string) error
}
