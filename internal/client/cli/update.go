package cli

import (
	"context"
	"fmt"

	"github.com/montagemotion/backoffice/internal/models"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: backoffice update <collection> <id>")
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

	existing, err := c.catalogService.Item(ctx, token, collection, id)
	if err != nil {
		return err
	}

	c.io.Printf("=== Update %s / %s ===\n", col.Name, id)
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	fields, err := c.form(token).Fill(ctx, col, existing.Fields)
	if err != nil {
		return err
	}

	item, err := c.catalogService.Update(ctx, token, collection, id, fields)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Updated %s\n", itemTitle(*item))
	return nil
}
