package auth

import (
	"context"

	"github.com/montagemotion/backoffice/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for authentication operations.
// This service manages register/login against the server and the local
// session (tokens in client storage).
type Service interface {
	// Register регистрирует нового администратора на сервере
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию локально
	Login(ctx context.Context, username, password string) (*storage.AuthData, error)

	// AccessToken возвращает действующий access token.
	// Если токен истек, пытается обновить его по refresh token.
	AccessToken(ctx context.Context) (string, error)

	// RefreshToken обменивает refresh token на новую пару токенов
	// и сохраняет её в хранилище
	RefreshToken(ctx context.Context) error

	// Session возвращает сохраненную сессию
	Session(ctx context.Context) (*storage.AuthData, error)

	// IsAuthenticated проверяет наличие живой сессии
	IsAuthenticated(ctx context.Context) (bool, error)

	// Logout инвалидирует сессию на сервере и удаляет её локально
	Logout(ctx context.Context) error
}
