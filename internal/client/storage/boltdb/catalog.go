package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/montagemotion/backoffice/internal/client/storage"
	"github.com/montagemotion/backoffice/internal/models"
)

// SaveItems replaces the cached items of a collection
func (s *Storage) SaveItems(ctx context.Context, collection string, items []models.Item) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCollections)
		if bucket == nil {
			return fmt.Errorf("collections bucket not found")
		}

		data, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("failed to marshal items: %w", err)
		}

		if err := bucket.Put([]byte(collection), data); err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}

		return nil
	})
}

// GetItems returns the cached items of a collection in stored order
func (s *Storage) GetItems(ctx context.Context, collection string) ([]models.Item, error) {
	var items []models.Item

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCollections)
		if bucket == nil {
			return fmt.Errorf("collections bucket not found")
		}

		data := bucket.Get([]byte(collection))
		if data == nil {
			return storage.ErrCollectionNotCached
		}

		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("failed to unmarshal items: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return items, nil
}

// DeleteItems drops the cache of a collection
func (s *Storage) DeleteItems(ctx context.Context, collection string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCollections)
		if bucket == nil {
			return fmt.Errorf("collections bucket not found")
		}

		if err := bucket.Delete([]byte(collection)); err != nil {
			return fmt.Errorf("failed to delete items: %w", err)
		}

		return nil
	})
}
