package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montagemotion/backoffice/internal/client/storage"
)

func TestSaveOrder_GetOrder(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	ids := []string{"id-3", "id-1", "id-2"}
	require.NoError(t, store.SaveOrder(ctx, "blogs", ids))

	got, err := store.GetOrder(ctx, "blogs")
	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

func TestSaveOrder_Overwrite(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveOrder(ctx, "faq", []string{"a", "b"}))
	require.NoError(t, store.SaveOrder(ctx, "faq", []string{"b", "a"}))

	got, err := store.GetOrder(ctx, "faq")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, got)
}

func TestGetOrder_NotFound(t *testing.T) {
	store := newTestStorage(t)

	got, err := store.GetOrder(context.Background(), "works")
	assert.ErrorIs(t, err, storage.ErrOrderNotFound)
	assert.Nil(t, got)
}

func TestDeleteOrder(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveOrder(ctx, "services", []string{"x"}))
	require.NoError(t, store.DeleteOrder(ctx, "services"))

	_, err := store.GetOrder(ctx, "services")
	assert.ErrorIs(t, err, storage.ErrOrderNotFound)
}
