package cli

import (
	"context"
	"fmt"

	"github.com/montagemotion/backoffice/internal/models"
)

func (c *Cli) runCreate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing collection. Usage: backoffice create <collection>")
	}
	collection := args[0]

	col, err := models.CollectionByName(collection)
	if err != nil {
		return err
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("=== Create %s item ===\n", col.Name)
	c.io.Println()

	fields, err := c.form(token).Fill(ctx, col, nil)
	if err != nil {
		return err
	}

	item, err := c.catalogService.Create(ctx, token, collection, fields)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Created %s (id %s)\n", itemTitle(*item), item.ID)
	if item.Position > 0 {
		c.io.Printf("Position: %d\n", item.Position)
	}
	return nil
}
