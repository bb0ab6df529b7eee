package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/montagemotion/backoffice/internal/client/storage"
)

// SaveOrder stores the working order of a collection
func (s *Storage) SaveOrder(ctx context.Context, collection string, ids []string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		if bucket == nil {
			return fmt.Errorf("orders bucket not found")
		}

		data, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("failed to marshal order: %w", err)
		}

		if err := bucket.Put([]byte(collection), data); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		return nil
	})
}

// GetOrder returns the stored working order
func (s *Storage) GetOrder(ctx context.Context, collection string) ([]string, error) {
	var ids []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		if bucket == nil {
			return fmt.Errorf("orders bucket not found")
		}

		data := bucket.Get([]byte(collection))
		if data == nil {
			return storage.ErrOrderNotFound
		}

		if err := json.Unmarshal(data, &ids); err != nil {
			return fmt.Errorf("failed to unmarshal order: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return ids, nil
}

// DeleteOrder removes the stored working order
func (s *Storage) DeleteOrder(ctx context.Context, collection string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		if bucket == nil {
			return fmt.Errorf("orders bucket not found")
		}

		if err := bucket.Delete([]byte(collection)); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}

		return nil
	})
}
