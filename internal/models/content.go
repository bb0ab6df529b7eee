package models

import "time"

// Item представляет одну запись коллекции контента.
// Fields хранит отображаемые поля записи (title, description, image и т.д.)
// по схеме коллекции; сервер хранит их как JSON blob.
type Item struct {
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Fields     map[string]string `json:"fields"`
	ID         string            `json:"id"`
	Collection string            `json:"collection"`
	Position   int               `json:"position"` // 1-based порядок показа, 0 для неупорядочиваемых коллекций
}

// PositionUpdate представляет новую позицию одной записи при массовом
// обновлении порядка
type PositionUpdate struct {
	ID       string
	Position int
}
