package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing collection. Usage: backoffice list <collection> [--refresh]")
	}
	collection := args[0]

	refresh := false
	for _, arg := range args[1:] {
		if arg == "--refresh" {
			refresh = true
		}
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	fetch := c.catalogService.Items
	if refresh {
		fetch = c.catalogService.Refresh
	}

	items, err := fetch(ctx, token, collection)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s ===\n", collection)
	c.io.Println()

	if len(items) == 0 {
		c.io.Println("No items yet.")
		return nil
	}

	for _, item := range items {
		if item.Position > 0 {
			c.io.Printf("%3d. %-36s %s\n", item.Position, item.ID, itemTitle(item))
		} else {
			c.io.Printf("     %-36s %s\n", item.ID, itemTitle(item))
		}
	}
	c.io.Println()
	c.io.Printf("Total: %d\n", len(items))
	return nil
}
