package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montagemotion/backoffice/internal/models"
	"github.com/montagemotion/backoffice/internal/server/storage"
)

func TestContentStorage_CreateAndGetItem(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	fields := map[string]string{
		"title":             "A",
		"short_description": "B",
		"description":       "C",
		"image":             "http://x/y.jpg",
		"alt":               "z",
	}
	item := createTestItem(t, ctx, s, "blogs", 1, fields)

	retrieved, err := s.GetItem(ctx, "blogs", item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, retrieved.ID)
	assert.Equal(t, "blogs", retrieved.Collection)
	assert.Equal(t, 1, retrieved.Position)
	// Поля должны пережить сохранение без изменений
	assert.Equal(t, fields, retrieved.Fields)

	// Запись не видна через другую коллекцию
	_, err = s.GetItem(ctx, "works", item.ID)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	_, err = s.GetItem(ctx, "blogs", uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestContentStorage_ListItems_OrderedByPosition(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Вставляем не по порядку позиций
	third := createTestItem(t, ctx, s, "works", 3, map[string]string{"title": "third"})
	first := createTestItem(t, ctx, s, "works", 1, map[string]string{"title": "first"})
	second := createTestItem(t, ctx, s, "works", 2, map[string]string{"title": "second"})

	// Запись другой коллекции не попадает в список
	createTestItem(t, ctx, s, "blogs", 1, map[string]string{"title": "unrelated"})

	items, err := s.ListItems(ctx, "works")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
	assert.Equal(t, third.ID, items[2].ID)
}

func TestContentStorage_ListItems_Empty(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	items, err := s.ListItems(ctx, "pricing")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestContentStorage_UpdateItem(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	item := createTestItem(t, ctx, s, "blogs", 2, map[string]string{"title": "before"})

	item.Fields = map[string]string{"title": "after"}
	item.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.UpdateItem(ctx, item))

	retrieved, err := s.GetItem(ctx, "blogs", item.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", retrieved.Fields["title"])
	// Позиция при update полей не меняется
	assert.Equal(t, 2, retrieved.Position)

	missing := &models.Item{
		ID:         uuid.New().String(),
		Collection: "blogs",
		Fields:     map[string]string{"title": "ghost"},
		UpdatedAt:  time.Now(),
	}
	err = s.UpdateItem(ctx, missing)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestContentStorage_DeleteItem_CompactsPositions(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := createTestItem(t, ctx, s, "faq", 1, map[string]string{"title": "one"})
	second := createTestItem(t, ctx, s, "faq", 2, map[string]string{"title": "two"})
	third := createTestItem(t, ctx, s, "faq", 3, map[string]string{"title": "three"})

	require.NoError(t, s.DeleteItem(ctx, "faq", second.ID))

	items, err := s.ListItems(ctx, "faq")
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Позиции снова непрерывные 1..n
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, 1, items[0].Position)
	assert.Equal(t, third.ID, items[1].ID)
	assert.Equal(t, 2, items[1].Position)

	err = s.DeleteItem(ctx, "faq", second.ID)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestContentStorage_ReorderItems(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	a := createTestItem(t, ctx, s, "pricing", 1, map[string]string{"name": "Basic", "price": "500"})
	b := createTestItem(t, ctx, s, "pricing", 2, map[string]string{"name": "Standard", "price": "900"})
	c := createTestItem(t, ctx, s, "pricing", 3, map[string]string{"name": "Premium", "price": "1500"})

	// Меняем порядок: c, a, b
	updates := []models.PositionUpdate{
		{ID: c.ID, Position: 1},
		{ID: a.ID, Position: 2},
		{ID: b.ID, Position: 3},
	}
	require.NoError(t, s.ReorderItems(ctx, "pricing", updates))

	items, err := s.ListItems(ctx, "pricing")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, c.ID, items[0].ID)
	assert.Equal(t, a.ID, items[1].ID)
	assert.Equal(t, b.ID, items[2].ID)
}

func TestContentStorage_ReorderItems_RejectsPartialPayload(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	a := createTestItem(t, ctx, s, "pricing", 1, map[string]string{"name": "Basic", "price": "500"})
	b := createTestItem(t, ctx, s, "pricing", 2, map[string]string{"name": "Standard", "price": "900"})

	// Payload покрывает только одну запись из двух
	err := s.ReorderItems(ctx, "pricing", []models.PositionUpdate{
		{ID: a.ID, Position: 1},
	})
	assert.ErrorIs(t, err, storage.ErrOrderMismatch)

	// Payload ссылается на несуществующую запись
	err = s.ReorderItems(ctx, "pricing", []models.PositionUpdate{
		{ID: a.ID, Position: 1},
		{ID: uuid.New().String(), Position: 2},
	})
	assert.ErrorIs(t, err, storage.ErrOrderMismatch)

	// После отклоненных попыток порядок не изменился
	items, err := s.ListItems(ctx, "pricing")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, b.ID, items[1].ID)
}

func TestContentStorage_NextPosition(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	next, err := s.NextPosition(ctx, "blogs")
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	createTestItem(t, ctx, s, "blogs", 1, map[string]string{"title": "one"})
	createTestItem(t, ctx, s, "blogs", 2, map[string]string{"title": "two"})

	next, err = s.NextPosition(ctx, "blogs")
	require.NoError(t, err)
	assert.Equal(t, 3, next)
}
