package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/montagemotion/backoffice/internal/models"
	"github.com/montagemotion/backoffice/internal/validation"
	"github.com/montagemotion/backoffice/pkg/api"
)

// sniffLen сколько байт читаем из начала файла для определения типа
const sniffLen = 3072

// UploadHandler обрабатывает загрузку медиа файлов
type UploadHandler struct {
	logger *slog.Logger
	dir    string // каталог, куда сохраняются файлы
}

// NewUploadHandler создает новый handler для загрузок.
// dir должен существовать и быть доступен на запись.
func NewUploadHandler(logger *slog.Logger, dir string) *UploadHandler {
	return &UploadHandler{
		logger: logger,
		dir:    dir,
	}
}

// Upload обрабатывает POST /api/v1/upload?kind=image|video
// Файл передается как multipart поле "file". Тип проверяется по содержимому,
// а не по расширению, поэтому guard нельзя обойти переименованием.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind := models.FieldKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = models.KindImage
	}

	_, maxSize, err := validation.UploadLimits(kind)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Обрезаем тело запроса с запасом на multipart заголовки
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.WarnContext(ctx, "failed to read multipart file", slog.Any("error", err))
		h.sendError(w, "multipart field \"file\" is required", http.StatusBadRequest)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	// Читаем начало файла для определения типа содержимого
	head := make([]byte, sniffLen)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		h.logger.ErrorContext(ctx, "failed to read upload", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	head = head[:n]

	if err := validation.ValidateUpload(kind, header.Size, head); err != nil {
		h.logger.WarnContext(ctx, "upload rejected",
			slog.String("filename", header.Filename),
			slog.Int64("size", header.Size),
			slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Имя файла генерируем сами, оригинальное имя не попадает на диск
	name := uuid.New().String() + safeExt(header.Filename)
	dstPath := filepath.Join(h.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create upload file", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer func() {
		_ = dst.Close()
	}()

	// head уже прочитан из file, поэтому склеиваем его с остатком
	written, err := io.Copy(dst, io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		_ = os.Remove(dstPath)
		h.logger.ErrorContext(ctx, "failed to write upload file", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	userID, _ := GetUserID(ctx)
	h.logger.InfoContext(ctx, "file uploaded",
		slog.String("name", name),
		slog.String("kind", string(kind)),
		slog.Int64("size", written),
		slog.String("user_id", userID))

	resp := api.UploadResponse{
		URL:  "/uploads/" + name,
		Size: written,
	}

	h.sendJSON(w, resp, http.StatusCreated)
}

// safeExt возвращает расширение оригинального имени, если оно из короткого
// списка известных, иначе пустую строку
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".mp4", ".mov":
		return ext
	default:
		return ""
	}
}

// sendJSON отправляет JSON ответ
func (h *UploadHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *UploadHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
