// Package forms строит интерактивные формы по схеме коллекции.
// Одна форма обслуживает и создание, и редактирование: поля запрашиваются
// по описанию из реестра коллекций, медиа поля заполняются через upload.
package forms

import (
	"context"
	"fmt"
	"strings"

	"github.com/montagemotion/backoffice/internal/client/iocli"
	"github.com/montagemotion/backoffice/internal/models"
	"github.com/montagemotion/backoffice/internal/validation"
)

// UploadFunc загружает локальный файл на сервер и возвращает URL.
// Подставляется CLI слоем поверх API клиента.
type UploadFunc func(ctx context.Context, kind models.FieldKind, path string) (string, error)

// Form запрашивает значения полей коллекции через iocli.IO
type Form struct {
	io     iocli.IO
	upload UploadFunc
}

// New создает форму
func New(io iocli.IO, upload UploadFunc) *Form {
	return &Form{
		io:     io,
		upload: upload,
	}
}

// Fill запрашивает значения всех полей схемы.
// existing содержит текущие значения при редактировании; пустой ввод
// оставляет текущее значение. Возвращаемая map проходит ту же валидацию,
// что и на сервере.
func (f *Form) Fill(ctx context.Context, col models.Collection, existing map[string]string) (map[string]string, error) {
	fields := make(map[string]string, len(col.Fields))

	for _, field := range col.Fields {
		value, err := f.fillField(ctx, field, existing[field.Name])
		if err != nil {
			return nil, err
		}
		if value != "" {
			fields[field.Name] = value
		}
	}

	if err := validation.ValidateFields(col, fields); err != nil {
		return nil, err
	}

	return fields, nil
}

// fillField запрашивает значение одного поля с учетом его типа
func (f *Form) fillField(ctx context.Context, field models.Field, current string) (string, error) {
	switch field.Kind {
	case models.KindEnum:
		return f.fillEnum(field, current)
	case models.KindImage, models.KindVideo:
		return f.fillMedia(ctx, field, current)
	default:
		return f.fillText(field, current)
	}
}

// fillText запрашивает текстовое поле
func (f *Form) fillText(field models.Field, current string) (string, error) {
	input, err := f.io.ReadInput(f.prompt(field, current))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", field.Name, err)
	}

	if input == "" {
		input = current
	}
	if input == "" && field.Required {
		return "", fmt.Errorf("%s cannot be empty", field.Name)
	}

	return input, nil
}

// fillEnum запрашивает поле с фиксированным набором значений
func (f *Form) fillEnum(field models.Field, current string) (string, error) {
	f.io.Printf("%s options: %s\n", field.Name, strings.Join(field.Options, ", "))

	input, err := f.io.ReadInput(f.prompt(field, current))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", field.Name, err)
	}

	if input == "" {
		input = current
	}
	if input == "" {
		if field.Required {
			return "", fmt.Errorf("%s cannot be empty", field.Name)
		}
		return "", nil
	}

	for _, opt := range field.Options {
		if input == opt {
			return input, nil
		}
	}
	return "", fmt.Errorf("%s must be one of: %s", field.Name, strings.Join(field.Options, ", "))
}

// fillMedia запрашивает медиа поле.
// Ввод пути к локальному файлу запускает загрузку на сервер; готовый URL
// (/uploads/... или http...) принимается как есть.
func (f *Form) fillMedia(ctx context.Context, field models.Field, current string) (string, error) {
	input, err := f.io.ReadInput(f.mediaPrompt(field, current))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", field.Name, err)
	}

	if input == "" {
		if current != "" {
			return current, nil
		}
		if field.Required {
			return "", fmt.Errorf("%s cannot be empty", field.Name)
		}
		return "", nil
	}

	if isMediaURL(input) {
		return input, nil
	}

	// Локальный файл проверяем до отправки, чтобы не гонять
	// заведомо негодный файл по сети
	if err := validation.ValidateUploadFile(field.Kind, input); err != nil {
		return "", fmt.Errorf("%s: %w", field.Name, err)
	}

	url, err := f.upload(ctx, field.Kind, input)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", field.Name, err)
	}

	f.io.Printf("✓ Uploaded %s\n", url)
	return url, nil
}

// prompt строит приглашение для поля
func (f *Form) prompt(field models.Field, current string) string {
	switch {
	case current != "":
		return fmt.Sprintf("%s [%s]: ", field.Name, current)
	case field.Required:
		return fmt.Sprintf("%s (required): ", field.Name)
	default:
		return fmt.Sprintf("%s (optional): ", field.Name)
	}
}

// mediaPrompt строит приглашение для медиа поля
func (f *Form) mediaPrompt(field models.Field, current string) string {
	if current != "" {
		return fmt.Sprintf("%s file path or URL [%s]: ", field.Name, current)
	}
	if field.Required {
		return fmt.Sprintf("%s file path or URL (required): ", field.Name)
	}
	return fmt.Sprintf("%s file path or URL (optional): ", field.Name)
}

// isMediaURL распознает уже загруженный или внешний URL
func isMediaURL(input string) bool {
	return strings.HasPrefix(input, "/uploads/") ||
		strings.HasPrefix(input, "http://") ||
		strings.HasPrefix(input, "https://")
}
