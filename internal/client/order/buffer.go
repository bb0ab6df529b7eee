// Package order реализует локальный буфер порядка записей.
// Перестановки накапливаются в буфере и отправляются на сервер одним
// атомарным коммитом, а не по одной на каждое перемещение.
package order

import (
	"fmt"
	"sort"

	"github.com/montagemotion/backoffice/internal/models"
)

// Entry одна запись буфера
type Entry struct {
	ID             string
	Title          string
	ServerPosition int // позиция записи на сервере на момент загрузки
}

// Buffer хранит рабочий порядок записей одной коллекции.
// Индекс записи в буфере определяет ее желаемую позицию (индекс+1).
type Buffer struct {
	collection string
	entries    []Entry
}

// NewBuffer строит буфер из записей коллекции.
// Записи сортируются по серверной позиции, рабочий порядок изначально
// совпадает с серверным.
func NewBuffer(collection string, items []models.Item) *Buffer {
	sorted := make([]models.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	entries := make([]Entry, 0, len(sorted))
	for _, item := range sorted {
		entries = append(entries, Entry{
			ID:             item.ID,
			Title:          itemTitle(item),
			ServerPosition: item.Position,
		})
	}

	return &Buffer{
		collection: collection,
		entries:    entries,
	}
}

// Restore восстанавливает сохраненный рабочий порядок поверх свежих записей.
// Записи, которых больше нет на сервере, выбрасываются из порядка;
// новые записи добавляются в конец в серверном порядке.
func Restore(collection string, items []models.Item, ids []string) *Buffer {
	buf := NewBuffer(collection, items)

	byID := make(map[string]Entry, len(buf.entries))
	for _, e := range buf.entries {
		byID[e.ID] = e
	}

	restored := make([]Entry, 0, len(buf.entries))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		e, ok := byID[id]
		if !ok {
			continue // запись удалена на сервере
		}
		restored = append(restored, e)
		seen[id] = true
	}

	// Новые записи, отсутствовавшие в сохраненном порядке
	for _, e := range buf.entries {
		if !seen[e.ID] {
			restored = append(restored, e)
		}
	}

	buf.entries = restored
	return buf
}

// Collection возвращает имя коллекции буфера
func (b *Buffer) Collection() string {
	return b.collection
}

// Entries возвращает копию текущего рабочего порядка
func (b *Buffer) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len возвращает количество записей в буфере
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Move переставляет запись с позиции from на позицию to (1-based).
// Остальные записи сдвигаются, как при drag-and-drop.
func (b *Buffer) Move(from, to int) error {
	n := len(b.entries)
	if from < 1 || from > n {
		return fmt.Errorf("position %d out of range 1..%d", from, n)
	}
	if to < 1 || to > n {
		return fmt.Errorf("position %d out of range 1..%d", to, n)
	}
	if from == to {
		return nil
	}

	entry := b.entries[from-1]
	rest := append(b.entries[:from-1], b.entries[from:]...)
	b.entries = append(rest[:to-1], append([]Entry{entry}, rest[to-1:]...)...)
	return nil
}

// MoveID переставляет запись с данным идентификатором на позицию to
func (b *Buffer) MoveID(id string, to int) error {
	for i, e := range b.entries {
		if e.ID == id {
			return b.Move(i+1, to)
		}
	}
	return fmt.Errorf("item %s not found in order buffer", id)
}

// Dirty сообщает, отличается ли рабочий порядок от серверного.
// Порядок чист тогда и только тогда, когда каждая запись стоит на своей
// серверной позиции.
func (b *Buffer) Dirty() bool {
	for i, e := range b.entries {
		if e.ServerPosition != i+1 {
			return true
		}
	}
	return false
}

// IDs возвращает идентификаторы записей в рабочем порядке
func (b *Buffer) IDs() []string {
	ids := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// Payload возвращает полный список позиций для атомарного коммита.
// Позиции образуют перестановку 1..N независимо от того, какие записи
// были передвинуты.
func (b *Buffer) Payload() []models.PositionUpdate {
	updates := make([]models.PositionUpdate, 0, len(b.entries))
	for i, e := range b.entries {
		updates = append(updates, models.PositionUpdate{
			ID:       e.ID,
			Position: i + 1,
		})
	}
	return updates
}

// itemTitle выбирает отображаемый заголовок записи для списка порядка
func itemTitle(item models.Item) string {
	for _, key := range []string{"title", "name", "question", "author"} {
		if v := item.Fields[key]; v != "" {
			return v
		}
	}
	return item.ID
}
