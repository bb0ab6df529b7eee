// Package catalog реализует клиентскую работу с коллекциями контента:
// загрузку записей с сервера, локальный кеш и буфер порядка с атомарным
// коммитом перестановок.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpClient "github.com/montagemotion/backoffice/internal/client/api"
	"github.com/montagemotion/backoffice/internal/client/order"
	"github.com/montagemotion/backoffice/internal/client/storage"
	"github.com/montagemotion/backoffice/internal/models"
	"github.com/montagemotion/backoffice/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// ErrOrderClean возвращается при попытке коммита порядка без изменений
var ErrOrderClean = errors.New("working order matches server order")

// Service определяет интерфейс для catalog.Service
type Service interface {
	// Refresh загружает записи коллекции с сервера и обновляет кеш
	Refresh(ctx context.Context, accessToken, collection string) ([]models.Item, error)

	// Items возвращает записи коллекции: из кеша, либо с сервера при промахе
	Items(ctx context.Context, accessToken, collection string) ([]models.Item, error)

	// Item возвращает одну запись коллекции с сервера
	Item(ctx context.Context, accessToken, collection, id string) (*models.Item, error)

	// Create создает запись и обновляет кеш коллекции
	Create(ctx context.Context, accessToken, collection string, fields map[string]string) (*models.Item, error)

	// Update заменяет поля записи и обновляет кеш коллекции
	Update(ctx context.Context, accessToken, collection, id string, fields map[string]string) (*models.Item, error)

	// Delete удаляет запись и обновляет кеш коллекции
	Delete(ctx context.Context, accessToken, collection, id string) error

	// OrderBuffer строит рабочий порядок коллекции поверх кеша
	OrderBuffer(ctx context.Context, accessToken, collection string) (*order.Buffer, error)

	// Move переставляет запись в рабочем порядке и сохраняет его локально
	Move(ctx context.Context, accessToken, collection string, from, to int) (*order.Buffer, error)

	// CommitOrder атомарно отправляет рабочий порядок на сервер
	CommitOrder(ctx context.Context, accessToken, collection string) error

	// ResetOrder отбрасывает локальный рабочий порядок
	ResetOrder(ctx context.Context, collection string) error
}

// service handles collection catalog operations on the client side
type service struct {
	apiClient      httpClient.ClientAPI
	catalogStorage storage.CatalogStorage
	orderStorage   storage.OrderStorage
	logger         *slog.Logger
}

// NewService creates a new catalog service
func NewService(apiClient httpClient.ClientAPI, catalogStorage storage.CatalogStorage, orderStorage storage.OrderStorage, logger *slog.Logger) Service {
	return &service{
		apiClient:      apiClient,
		catalogStorage: catalogStorage,
		orderStorage:   orderStorage,
		logger:         logger,
	}
}

// Refresh загружает записи коллекции с сервера и обновляет кеш
func (s *service) Refresh(ctx context.Context, accessToken, collection string) ([]models.Item, error) {
	resp, err := s.apiClient.ListItems(ctx, accessToken, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}

	items := make([]models.Item, 0, len(resp.Items))
	for _, it := range resp.Items {
		items = append(items, itemFromAPI(it))
	}

	if err := s.catalogStorage.SaveItems(ctx, collection, items); err != nil {
		// Кеш не критичен, работаем дальше со свежими данными
		s.logger.Warn("Failed to cache collection", "collection", collection, "error", err)
	}

	s.logger.Info("Collection refreshed", "collection", collection, "count", len(items))
	return items, nil
}

// Items возвращает записи коллекции, предпочитая локальный кеш
func (s *service) Items(ctx context.Context, accessToken, collection string) ([]models.Item, error) {
	items, err := s.catalogStorage.GetItems(ctx, collection)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, storage.ErrCollectionNotCached) {
		s.logger.Warn("Failed to read collection cache", "collection", collection, "error", err)
	}

	return s.Refresh(ctx, accessToken, collection)
}

// Item возвращает одну запись с сервера
func (s *service) Item(ctx context.Context, accessToken, collection, id string) (*models.Item, error) {
	it, err := s.apiClient.GetItem(ctx, accessToken, collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	item := itemFromAPI(*it)
	return &item, nil
}

// Create создает запись и перечитывает кеш коллекции
func (s *service) Create(ctx context.Context, accessToken, collection string, fields map[string]string) (*models.Item, error) {
	it, err := s.apiClient.CreateItem(ctx, accessToken, collection, api.ItemRequest{Fields: fields})
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	// Перечитываем коллекцию, чтобы кеш отражал серверные позиции
	if _, err := s.Refresh(ctx, accessToken, collection); err != nil {
		s.logger.Warn("Failed to refresh collection after create", "collection", collection, "error", err)
	}

	item := itemFromAPI(*it)
	return &item, nil
}

// Update заменяет поля записи и перечитывает кеш коллекции
func (s *service) Update(ctx context.Context, accessToken, collection, id string, fields map[string]string) (*models.Item, error) {
	it, err := s.apiClient.UpdateItem(ctx, accessToken, collection, id, api.ItemRequest{Fields: fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	if _, err := s.Refresh(ctx, accessToken, collection); err != nil {
		s.logger.Warn("Failed to refresh collection after update", "collection", collection, "error", err)
	}

	item := itemFromAPI(*it)
	return &item, nil
}

// Delete удаляет запись и перечитывает кеш коллекции.
// Сервер сам уплотняет позиции, поэтому кеш нужно перечитать, а не править.
func (s *service) Delete(ctx context.Context, accessToken, collection, id string) error {
	if err := s.apiClient.DeleteItem(ctx, accessToken, collection, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	if _, err := s.Refresh(ctx, accessToken, collection); err != nil {
		s.logger.Warn("Failed to refresh collection after delete", "collection", collection, "error", err)
	}

	return nil
}

// OrderBuffer строит рабочий порядок коллекции.
// Сохраненный локальный порядок накладывается поверх актуальных записей:
// удаленные на сервере записи выпадают, новые добавляются в конец.
func (s *service) OrderBuffer(ctx context.Context, accessToken, collection string) (*order.Buffer, error) {
	col, err := models.CollectionByName(collection)
	if err != nil {
		return nil, err
	}
	if !col.Orderable {
		return nil, fmt.Errorf("collection %s does not support manual ordering", collection)
	}

	items, err := s.Items(ctx, accessToken, collection)
	if err != nil {
		return nil, err
	}

	ids, err := s.orderStorage.GetOrder(ctx, collection)
	if err != nil {
		if !errors.Is(err, storage.ErrOrderNotFound) {
			s.logger.Warn("Failed to read saved order", "collection", collection, "error", err)
		}
		return order.NewBuffer(collection, items), nil
	}

	return order.Restore(collection, items, ids), nil
}

// Move переставляет запись в рабочем порядке и сохраняет его
func (s *service) Move(ctx context.Context, accessToken, collection string, from, to int) (*order.Buffer, error) {
	buf, err := s.OrderBuffer(ctx, accessToken, collection)
	if err != nil {
		return nil, err
	}

	if err := buf.Move(from, to); err != nil {
		return nil, err
	}

	if err := s.orderStorage.SaveOrder(ctx, collection, buf.IDs()); err != nil {
		return nil, fmt.Errorf("failed to save working order: %w", err)
	}

	return buf, nil
}

// CommitOrder отправляет рабочий порядок на сервер одним запросом.
// Если порядок не отличается от серверного, коммит не выполняется
// и возвращается ErrOrderClean.
func (s *service) CommitOrder(ctx context.Context, accessToken, collection string) error {
	buf, err := s.OrderBuffer(ctx, accessToken, collection)
	if err != nil {
		return err
	}

	if !buf.Dirty() {
		// Чистим возможный сохраненный порядок, совпадающий с серверным
		if err := s.orderStorage.DeleteOrder(ctx, collection); err != nil {
			s.logger.Warn("Failed to drop clean order", "collection", collection, "error", err)
		}
		return ErrOrderClean
	}

	updates := buf.Payload()
	positions := make([]api.PositionUpdate, 0, len(updates))
	for _, u := range updates {
		positions = append(positions, api.PositionUpdate{
			ID:       u.ID,
			Position: u.Position,
		})
	}

	if err := s.apiClient.Reorder(ctx, accessToken, collection, api.ReorderRequest{Positions: positions}); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	s.logger.Info("Order committed", "collection", collection, "count", len(positions))

	// Локальный порядок больше не нужен, кеш перечитываем с сервера
	if err := s.orderStorage.DeleteOrder(ctx, collection); err != nil {
		s.logger.Warn("Failed to drop committed order", "collection", collection, "error", err)
	}
	if _, err := s.Refresh(ctx, accessToken, collection); err != nil {
		s.logger.Warn("Failed to refresh collection after commit", "collection", collection, "error", err)
	}

	return nil
}

// ResetOrder отбрасывает локальный рабочий порядок коллекции
func (s *service) ResetOrder(ctx context.Context, collection string) error {
	if err := s.orderStorage.DeleteOrder(ctx, collection); err != nil {
		return fmt.Errorf("failed to reset order: %w", err)
	}
	return nil
}

// itemFromAPI конвертирует API запись во внутреннюю модель
func itemFromAPI(it api.Item) models.Item {
	return models.Item{
		ID:         it.ID,
		Collection: it.Collection,
		Fields:     it.Fields,
		Position:   it.Position,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
}
