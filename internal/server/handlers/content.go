package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/montagemotion/backoffice/internal/models"
	"github.com/montagemotion/backoffice/internal/server/storage"
	"github.com/montagemotion/backoffice/internal/validation"
	"github.com/montagemotion/backoffice/pkg/api"
)

// ContentHandler обрабатывает CRUD запросы к коллекциям контента
type ContentHandler struct {
	logger  *slog.Logger
	storage storage.ContentStorage
}

// NewContentHandler создает новый handler для контента
func NewContentHandler(logger *slog.Logger, contentStorage storage.ContentStorage) *ContentHandler {
	return &ContentHandler{
		logger:  logger,
		storage: contentStorage,
	}
}

// List обрабатывает GET /api/v1/collections/{collection}
// Возвращает все записи коллекции в порядке position
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	col, ok := h.collection(w, r)
	if !ok {
		return
	}

	items, err := h.storage.ListItems(ctx, col.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list items",
			slog.String("collection", col.Name), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ListResponse{
		Items: make([]api.Item, 0, len(items)),
		Total: len(items),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, itemToAPI(item))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/collections/{collection}/{id}
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	col, ok := h.collection(w, r)
	if !ok {
		return
	}

	item, err := h.storage.GetItem(ctx, col.Name, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			h.sendError(w, "item not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get item", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, itemToAPI(item), http.StatusOK)
}

// Create обрабатывает POST /api/v1/collections/{collection}
// Новая запись упорядочиваемой коллекции добавляется в конец списка
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	col, ok := h.collection(w, r)
	if !ok {
		return
	}

	var req api.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode item request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Проверяем поля против схемы коллекции
	if err := validation.ValidateFields(col, req.Fields); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	position := 0
	if col.Orderable {
		next, err := h.storage.NextPosition(ctx, col.Name)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to get next position", slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		position = next
	}

	now := time.Now()
	item := &models.Item{
		ID:         uuid.New().String(),
		Collection: col.Name,
		Fields:     req.Fields,
		Position:   position,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.storage.CreateItem(ctx, item); err != nil {
		h.logger.ErrorContext(ctx, "failed to create item",
			slog.String("collection", col.Name), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "item created",
		slog.String("collection", col.Name),
		slog.String("item_id", item.ID),
		slog.String("admin", actor(ctx)))

	h.sendJSON(w, itemToAPI(item), http.StatusCreated)
}

// Update обрабатывает PUT /api/v1/collections/{collection}/{id}
// Полная замена полей записи; позиция при этом не меняется
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	col, ok := h.collection(w, r)
	if !ok {
		return
	}

	var req api.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode item request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateFields(col, req.Fields); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.storage.GetItem(ctx, col.Name, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			h.sendError(w, "item not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get item", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	item.Fields = req.Fields
	item.UpdatedAt = time.Now()

	if err := h.storage.UpdateItem(ctx, item); err != nil {
		h.logger.ErrorContext(ctx, "failed to update item",
			slog.String("collection", col.Name), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "item updated",
		slog.String("collection", col.Name),
		slog.String("item_id", item.ID),
		slog.String("admin", actor(ctx)))

	h.sendJSON(w, itemToAPI(item), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/collections/{collection}/{id}
// После удаления позиции оставшихся записей снова непрерывные 1..n
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	col, ok := h.collection(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if err := h.storage.DeleteItem(ctx, col.Name, id); err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			h.sendError(w, "item not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete item",
			slog.String("collection", col.Name), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "item deleted",
		slog.String("collection", col.Name),
		slog.String("item_id", id),
		slog.String("admin", actor(ctx)))

	w.WriteHeader(http.StatusNoContent)
}

// Reorder обрабатывает PATCH /api/v1/collections/{collection}/positions
// Применяет массив позиций атомарно: либо весь, либо ничего
func (h *ContentHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	col, ok := h.collection(w, r)
	if !ok {
		return
	}
	if !col.Orderable {
		h.sendError(w, "collection does not support ordering", http.StatusBadRequest)
		return
	}

	var req api.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode reorder request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateReorder(req.Positions); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updates := make([]models.PositionUpdate, 0, len(req.Positions))
	for _, p := range req.Positions {
		updates = append(updates, models.PositionUpdate{ID: p.ID, Position: p.Position})
	}

	if err := h.storage.ReorderItems(ctx, col.Name, updates); err != nil {
		if errors.Is(err, storage.ErrOrderMismatch) {
			h.logger.WarnContext(ctx, "reorder payload does not match stored items",
				slog.String("collection", col.Name))
			h.sendError(w, "positions must cover every item of the collection exactly once", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to reorder items",
			slog.String("collection", col.Name), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "collection reordered",
		slog.String("collection", col.Name),
		slog.Int("items", len(updates)),
		slog.String("admin", actor(ctx)))

	w.WriteHeader(http.StatusNoContent)
}

// collection резолвит path параметр {collection} через реестр коллекций
func (h *ContentHandler) collection(w http.ResponseWriter, r *http.Request) (models.Collection, bool) {
	col, err := models.CollectionByName(r.PathValue("collection"))
	if err != nil {
		h.sendError(w, err.Error(), http.StatusNotFound)
		return models.Collection{}, false
	}
	return col, true
}

// validateReorder проверяет, что позиции образуют перестановку 1..n без
// дубликатов id
func validateReorder(positions []api.PositionUpdate) error {
	if len(positions) == 0 {
		return errors.New("positions must not be empty")
	}

	seenIDs := make(map[string]struct{}, len(positions))
	seenPos := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		if p.ID == "" {
			return errors.New("position entry is missing id")
		}
		if _, dup := seenIDs[p.ID]; dup {
			return errors.New("duplicate id in positions")
		}
		seenIDs[p.ID] = struct{}{}

		if p.Position < 1 || p.Position > len(positions) {
			return errors.New("positions must form a contiguous range starting at 1")
		}
		if _, dup := seenPos[p.Position]; dup {
			return errors.New("duplicate position in positions")
		}
		seenPos[p.Position] = struct{}{}
	}

	return nil
}

// actor возвращает имя админа из контекста запроса для audit логов
func actor(ctx context.Context) string {
	if username, ok := GetUsername(ctx); ok {
		return username
	}
	return "unknown"
}

// itemToAPI конвертирует модель в API представление
func itemToAPI(item *models.Item) api.Item {
	return api.Item{
		ID:         item.ID,
		Collection: item.Collection,
		Fields:     item.Fields,
		Position:   item.Position,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

// sendJSON отправляет JSON ответ
func (h *ContentHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *ContentHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
