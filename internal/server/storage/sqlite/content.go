package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/montagemotion/backoffice/internal/models"
	"github.com/montagemotion/backoffice/internal/server/storage"
)

// CreateItem inserts a new content item
func (s *Storage) CreateItem(ctx context.Context, item *models.Item) error {
	fieldsJSON, err := json.Marshal(item.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	query := `
		INSERT INTO content_items (id, collection, fields, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		item.ID,
		item.Collection,
		string(fieldsJSON),
		item.Position,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// GetItem retrieves a single item of a collection by ID
func (s *Storage) GetItem(ctx context.Context, collection, id string) (*models.Item, error) {
	query := `
		SELECT id, collection, fields, position, created_at, updated_at
		FROM content_items
		WHERE collection = ? AND id = ?
	`

	row := s.db.QueryRowContext(ctx, query, collection, id)

	item, err := scanItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// ListItems retrieves all items of a collection ordered by position.
// Для неупорядочиваемых коллекций position везде 0, тогда порядок
// определяется временем создания.
func (s *Storage) ListItems(ctx context.Context, collection string) ([]*models.Item, error) {
	query := `
		SELECT id, collection, fields, position, created_at, updated_at
		FROM content_items
		WHERE collection = ?
		ORDER BY position ASC, created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	items := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

// UpdateItem replaces the fields of an existing item (full update).
// Position не меняется: порядок управляется только через ReorderItems.
func (s *Storage) UpdateItem(ctx context.Context, item *models.Item) error {
	fieldsJSON, err := json.Marshal(item.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	query := `
		UPDATE content_items
		SET fields = ?, updated_at = ?
		WHERE collection = ? AND id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		string(fieldsJSON),
		item.UpdatedAt,
		item.Collection,
		item.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrItemNotFound
	}

	return nil
}

// DeleteItem removes an item and re-compacts remaining positions to 1..n
func (s *Storage) DeleteItem(ctx context.Context, collection, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM content_items WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrItemNotFound
	}

	// Пересчитываем позиции оставшихся записей в 1..n без дыр
	if err := compactPositions(ctx, tx, collection); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ReorderItems applies a full position assignment to a collection in a single
// transaction: whole array or nothing
func (s *Storage) ReorderItems(ctx context.Context, collection string, updates []models.PositionUpdate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Payload обязан покрывать ровно все записи коллекции
	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM content_items WHERE collection = ?`, collection).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count items: %w", err)
	}
	if count != len(updates) {
		return storage.ErrOrderMismatch
	}

	for _, u := range updates {
		result, err := tx.ExecContext(ctx,
			`UPDATE content_items SET position = ? WHERE collection = ? AND id = ?`,
			u.Position, collection, u.ID)
		if err != nil {
			return fmt.Errorf("failed to update position: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		// Неизвестный id означает, что payload не совпадает с содержимым
		if rows == 0 {
			return storage.ErrOrderMismatch
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// NextPosition returns max(position)+1 for a collection (1 when empty)
func (s *Storage) NextPosition(ctx context.Context, collection string) (int, error) {
	var max sql.NullInt64

	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(position) FROM content_items WHERE collection = ?`, collection).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max position: %w", err)
	}

	if !max.Valid {
		return 1, nil
	}

	return int(max.Int64) + 1, nil
}

// compactPositions перенумеровывает записи коллекции в 1..n по текущему порядку
func compactPositions(ctx context.Context, tx *sql.Tx, collection string) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM content_items WHERE collection = ? AND position > 0 ORDER BY position ASC`,
		collection)
	if err != nil {
		return fmt.Errorf("failed to query positions: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return fmt.Errorf("rows iteration error: %w", err)
	}
	_ = rows.Close()

	for i, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE content_items SET position = ? WHERE collection = ? AND id = ?`,
			i+1, collection, id); err != nil {
			return fmt.Errorf("failed to compact position: %w", err)
		}
	}

	return nil
}

// scanItem is a helper to scan one content item row
func scanItem(scan func(dest ...any) error) (*models.Item, error) {
	item := &models.Item{}
	var fieldsJSON string

	err := scan(
		&item.ID,
		&item.Collection,
		&fieldsJSON,
		&item.Position,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(fieldsJSON), &item.Fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
	}

	return item, nil
}
