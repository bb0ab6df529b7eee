package api

import "time"

// Item представляет одну запись коллекции контента
type Item struct {
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Fields     map[string]string `json:"fields"`
	ID         string            `json:"id"`
	Collection string            `json:"collection"`
	Position   int               `json:"position"` // 1-based порядок показа, 0 для неупорядочиваемых коллекций
}

// ListResponse представляет список записей коллекции в порядке position
type ListResponse struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

// ItemRequest представляет тело запроса create/update записи
type ItemRequest struct {
	Fields map[string]string `json:"fields"`
}

// PositionUpdate представляет новую позицию одной записи
type PositionUpdate struct {
	ID       string `json:"id"`
	Position int    `json:"position"` // 1-based, позиции в запросе должны быть непрерывны
}

// ReorderRequest представляет запрос на массовое обновление позиций.
// Сервер применяет весь массив атомарно либо отклоняет целиком.
type ReorderRequest struct {
	Positions []PositionUpdate `json:"positions"`
}
