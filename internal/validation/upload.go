package validation

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/montagemotion/backoffice/internal/models"
)

const (
	// MaxImageSize максимальный размер изображения (5 MiB)
	MaxImageSize = 5 << 20
	// MaxVideoSize максимальный размер видео (100 MiB)
	MaxVideoSize = 100 << 20

	// sniffLen сколько байт достаточно для определения типа содержимого
	sniffLen = 3072
)

// Допустимые MIME типы по виду поля. Тип определяется по содержимому,
// расширению файла не доверяем.
var (
	imageTypes = []string{"image/jpeg", "image/png", "image/webp"}
	videoTypes = []string{"video/mp4", "video/quicktime"}
)

// UploadLimits возвращает допустимые MIME типы и лимит размера для вида поля.
// Поддерживаются только KindImage и KindVideo.
func UploadLimits(kind models.FieldKind) ([]string, int64, error) {
	switch kind {
	case models.KindImage:
		return imageTypes, MaxImageSize, nil
	case models.KindVideo:
		return videoTypes, MaxVideoSize, nil
	default:
		return nil, 0, fmt.Errorf("field kind %q is not uploadable", kind)
	}
}

// ValidateUpload проверяет размер и реальный тип содержимого до любого
// сетевого вызова. head должен содержать первые байты файла (достаточно
// sniffLen), size — полный размер.
func ValidateUpload(kind models.FieldKind, size int64, head []byte) error {
	allowed, maxSize, err := UploadLimits(kind)
	if err != nil {
		return err
	}

	if size <= 0 {
		return fmt.Errorf("file is empty")
	}
	if size > maxSize {
		return fmt.Errorf("file size %d exceeds limit of %d bytes", size, maxSize)
	}

	// Определяем тип по содержимому
	detected := mimetype.Detect(head)
	for _, t := range allowed {
		if detected.Is(t) {
			return nil
		}
	}

	return fmt.Errorf("file type %s is not allowed, expected one of: %s",
		detected.String(), strings.Join(allowed, ", "))
}

// ValidateUploadFile применяет ValidateUpload к файлу на диске
func ValidateUploadFile(kind models.FieldKind, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	head := make([]byte, sniffLen)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}

	return ValidateUpload(kind, info.Size(), head[:n])
}
