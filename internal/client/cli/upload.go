package cli

import (
	"context"
	"fmt"

	"github.com/montagemotion/backoffice/internal/models"
	"github.com/montagemotion/backoffice/internal/validation"
)

func (c *Cli) runUpload(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: backoffice upload <image|video> <path>")
	}
	kind := models.FieldKind(args[0])
	path := args[1]

	// Проверяем файл локально до похода на сервер
	if err := validation.ValidateUploadFile(kind, path); err != nil {
		return err
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	url, err := c.uploadFile(token)(ctx, kind, path)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Uploaded: %s\n", url)
	return nil
}
