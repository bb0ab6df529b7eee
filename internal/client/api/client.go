package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/montagemotion/backoffice/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс REST клиента back-office сервера
type ClientAPI interface {
	// Register регистрирует нового администратора
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login выполняет аутентификацию по username/password
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Refresh обменивает refresh token на новую пару токенов
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)

	// Logout инвалидирует все refresh токены пользователя
	Logout(ctx context.Context, accessToken string) error

	// ListItems возвращает записи коллекции в серверном порядке
	ListItems(ctx context.Context, accessToken, collection string) (*api.ListResponse, error)

	// GetItem возвращает одну запись коллекции
	GetItem(ctx context.Context, accessToken, collection, id string) (*api.Item, error)

	// CreateItem создает запись коллекции
	CreateItem(ctx context.Context, accessToken, collection string, req api.ItemRequest) (*api.Item, error)

	// UpdateItem полностью заменяет поля записи
	UpdateItem(ctx context.Context, accessToken, collection, id string, req api.ItemRequest) (*api.Item, error)

	// DeleteItem удаляет запись
	DeleteItem(ctx context.Context, accessToken, collection, id string) error

	// Reorder атомарно применяет новый порядок коллекции
	Reorder(ctx context.Context, accessToken, collection string, req api.ReorderRequest) error

	// Upload загружает медиа файл и возвращает его URL
	Upload(ctx context.Context, accessToken, kind, filename string, content io.Reader) (*api.UploadResponse, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time check
var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового администратора
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", refreshToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout инвалидирует все refresh токены пользователя
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", accessToken, nil, nil)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// ListItems возвращает записи коллекции в серверном порядке
func (c *Client) ListItems(ctx context.Context, accessToken, collection string) (*api.ListResponse, error) {
	var resp api.ListResponse
	path := "/api/v1/collections/" + collection
	err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list request failed: %w", err)
	}
	return &resp, nil
}

// GetItem возвращает одну запись коллекции
func (c *Client) GetItem(ctx context.Context, accessToken, collection, id string) (*api.Item, error) {
	var resp api.Item
	path := fmt.Sprintf("/api/v1/collections/%s/%s", collection, id)
	err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	return &resp, nil
}

// CreateItem создает запись коллекции
func (c *Client) CreateItem(ctx context.Context, accessToken, collection string, req api.ItemRequest) (*api.Item, error) {
	var resp api.Item
	path := "/api/v1/collections/" + collection
	err := c.doRequest(ctx, http.MethodPost, path, accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	return &resp, nil
}

// UpdateItem полностью заменяет поля записи
func (c *Client) UpdateItem(ctx context.Context, accessToken, collection, id string, req api.ItemRequest) (*api.Item, error) {
	var resp api.Item
	path := fmt.Sprintf("/api/v1/collections/%s/%s", collection, id)
	err := c.doRequest(ctx, http.MethodPut, path, accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update request failed: %w", err)
	}
	return &resp, nil
}

// DeleteItem удаляет запись
func (c *Client) DeleteItem(ctx context.Context, accessToken, collection, id string) error {
	path := fmt.Sprintf("/api/v1/collections/%s/%s", collection, id)
	err := c.doRequest(ctx, http.MethodDelete, path, accessToken, nil, nil)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	return nil
}

// Reorder атомарно применяет новый порядок коллекции
func (c *Client) Reorder(ctx context.Context, accessToken, collection string, req api.ReorderRequest) error {
	path := fmt.Sprintf("/api/v1/collections/%s/positions", collection)
	err := c.doRequest(ctx, http.MethodPatch, path, accessToken, req, nil)
	if err != nil {
		return fmt.Errorf("reorder request failed: %w", err)
	}
	return nil
}

// Upload загружает медиа файл через multipart запрос
func (c *Client) Upload(ctx context.Context, accessToken, kind, filename string, content io.Reader) (*api.UploadResponse, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/upload?kind=%s", c.baseURL, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+accessToken)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, decodeError(httpResp.StatusCode, respBody)
	}

	var resp api.UploadResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &resp, nil
}

// doRequest выполняет HTTP запрос с JSON телом
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeError превращает error-ответ сервера в go ошибку
func decodeError(statusCode int, body []byte) error {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return fmt.Errorf("server error (%d): %s", statusCode, errResp.Message)
	}
	return fmt.Errorf("request failed with status %d: %s", statusCode, string(body))
}
