package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/montagemotion/backoffice/internal/models"
)

// setupTestStorage создает in-memory SQLite storage для тестов
func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		require.NoError(t, s.Close())
	}

	return s, cleanup
}

// createTestUser создает тестового администратора и возвращает его ID
func createTestUser(t *testing.T, ctx context.Context, s *Storage) string {
	t.Helper()

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     "editor_" + uuid.New().String()[:8],
		PasswordHash: "argon2id$c2FsdA$aGFzaA",
		CreatedAt:    time.Now(),
	}

	require.NoError(t, s.CreateUser(ctx, user))
	return user.ID
}

// createTestItem создает запись коллекции с заданной позицией
func createTestItem(t *testing.T, ctx context.Context, s *Storage, collection string, position int, fields map[string]string) *models.Item {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	item := &models.Item{
		ID:         uuid.New().String(),
		Collection: collection,
		Fields:     fields,
		Position:   position,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	require.NoError(t, s.CreateItem(ctx, item))
	return item
}

func timePtr(t time.Time) *time.Time {
	return &t
}
