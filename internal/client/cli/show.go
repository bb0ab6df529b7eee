package cli

import (
	"context"
	"fmt"

	"github.com/montagemotion/backoffice/internal/models"
)

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: backoffice show <collection> <id>")
	}
	collection, id := args[0], args[1]

	col, err := models.CollectionByName(collection)
	if err != nil {
		return err
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	item, err := c.catalogService.Item(ctx, token, collection, id)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s / %s ===\n", collection, item.ID)
	c.io.Println()
	if item.Position > 0 {
		c.io.Printf("%-18s %d\n", "position:", item.Position)
	}
	// Поля выводим в порядке схемы коллекции
	for _, field := range col.Fields {
		if value, ok := item.Fields[field.Name]; ok {
			c.io.Printf("%-18s %s\n", field.Name+":", value)
		}
	}
	if !item.UpdatedAt.IsZero() {
		c.io.Printf("%-18s %s\n", "updated:", item.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
