package validation

import (
	"fmt"
	"strings"

	"github.com/montagemotion/backoffice/internal/models"
)

// MaxFieldLen ограничивает длину одного поля, чтобы не хранить мегабайтные
// blob'ы в текстовых колонках
const MaxFieldLen = 64 * 1024

// FieldError описывает ошибку валидации одного поля.
// Ошибки привязаны к полю, чтобы клиент мог показать их рядом с формой.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// ValidateFields проверяет поля записи против схемы коллекции:
// обязательные поля заполнены, enum-поля содержат только допустимые
// значения, неизвестные поля отклоняются.
func ValidateFields(col models.Collection, fields map[string]string) error {
	// Неизвестные поля не пропускаем: схема коллекции закрыта
	for name := range fields {
		if _, ok := col.Field(name); !ok {
			return &FieldError{Field: name, Message: fmt.Sprintf("unknown field for collection %q", col.Name)}
		}
	}

	for _, f := range col.Fields {
		value, present := fields[f.Name]
		value = strings.TrimSpace(value)

		if f.Required && value == "" {
			return &FieldError{Field: f.Name, Message: "is required"}
		}
		if !present || value == "" {
			continue
		}

		if len(value) > MaxFieldLen {
			return &FieldError{Field: f.Name, Message: fmt.Sprintf("exceeds %d bytes", MaxFieldLen)}
		}

		if f.Kind == models.KindEnum && !contains(f.Options, value) {
			return &FieldError{
				Field:   f.Name,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(f.Options, ", ")),
			}
		}
	}

	return nil
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
