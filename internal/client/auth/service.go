package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpClient "github.com/montagemotion/backoffice/internal/client/api"
	"github.com/montagemotion/backoffice/internal/client/storage"
	"github.com/montagemotion/backoffice/internal/validation"
	pkgapi "github.com/montagemotion/backoffice/pkg/api"
)

// service предоставляет функции авторизации
type service struct {
	apiClient   httpClient.ClientAPI
	authStorage storage.AuthStorage
	logger      *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient httpClient.ClientAPI, authStorage storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		apiClient:   apiClient,
		authStorage: authStorage,
		logger:      logger,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string // username
}

// Register регистрирует нового администратора
func (s *service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	// Валидация входных данных до похода на сервер
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	req := pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	}

	resp, err := s.apiClient.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("Admin registered", "username", username)

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
	}, nil
}

// Login выполняет аутентификацию и сохраняет сессию локально
func (s *service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	req := pkgapi.LoginRequest{
		Username: username,
		Password: password,
	}

	resp, err := s.apiClient.Login(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	auth := &storage.AuthData{
		Username:     username,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Unix() + resp.ExpiresIn,
	}

	if err := s.authStorage.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Logged in", "username", username)
	return auth, nil
}

// AccessToken возвращает действующий access token, обновляя его при
// необходимости по refresh token
func (s *service) AccessToken(ctx context.Context) (string, error) {
	auth, err := s.authStorage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", fmt.Errorf("not logged in, run login first")
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	// Токен еще жив, запас в минуту на время запроса
	if time.Now().Unix() < auth.ExpiresAt-60 {
		return auth.AccessToken, nil
	}

	if err := s.RefreshToken(ctx); err != nil {
		return "", fmt.Errorf("session expired: %w", err)
	}

	auth, err = s.authStorage.GetAuth(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get refreshed session: %w", err)
	}

	return auth.AccessToken, nil
}

// RefreshToken обменивает refresh token на новую пару токенов
func (s *service) RefreshToken(ctx context.Context) error {
	auth, err := s.authStorage.GetAuth(ctx)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	resp, err := s.apiClient.Refresh(ctx, auth.RefreshToken)
	if err != nil {
		return fmt.Errorf("token refresh failed: %w", err)
	}

	auth.AccessToken = resp.AccessToken
	auth.RefreshToken = resp.RefreshToken
	auth.ExpiresAt = time.Now().Unix() + resp.ExpiresIn

	if err := s.authStorage.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save refreshed session: %w", err)
	}

	s.logger.Debug("Tokens refreshed", "username", auth.Username)
	return nil
}

// Session возвращает сохраненную сессию
func (s *service) Session(ctx context.Context) (*storage.AuthData, error) {
	return s.authStorage.GetAuth(ctx)
}

// IsAuthenticated проверяет наличие живой сессии
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.authStorage.IsAuthenticated(ctx)
}

// Logout выполняет выход из системы.
// Сервер уведомляется best effort, локальная сессия удаляется всегда.
func (s *service) Logout(ctx context.Context) error {
	auth, err := s.authStorage.GetAuth(ctx)
	if err != nil {
		// Если данных нет, просто логируем и продолжаем
		s.logger.Debug("no session found during logout", "error", err)
	} else {
		if logoutErr := s.apiClient.Logout(ctx, auth.AccessToken); logoutErr != nil {
			// Не прерываем процесс, если сервер недоступен
			s.logger.Warn("failed to logout on server", "error", logoutErr)
		}
	}

	if err := s.authStorage.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete local session: %w", err)
	}

	return nil
}
