package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/montagemotion/backoffice/internal/models"
)

// accessToken возвращает действующий access token или понятную ошибку
func (c *Cli) accessToken(ctx context.Context) (string, error) {
	token, err := c.authService.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("authentication required: %w", err)
	}
	return token, nil
}

// uploadFile отправляет локальный файл на сервер и возвращает URL
func (c *Cli) uploadFile(accessToken string) func(ctx context.Context, kind models.FieldKind, path string) (string, error) {
	return func(ctx context.Context, kind models.FieldKind, path string) (string, error) {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()

		resp, err := c.apiClient.Upload(ctx, accessToken, string(kind), path, f)
		if err != nil {
			return "", err
		}
		return resp.URL, nil
	}
}

// itemTitle выбирает отображаемый заголовок записи для списков
func itemTitle(item models.Item) string {
	for _, key := range []string{"title", "name", "question", "author", "page"} {
		if v := item.Fields[key]; v != "" {
			return v
		}
	}
	return "-"
}
