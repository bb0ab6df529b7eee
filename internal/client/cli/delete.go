package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: backoffice delete <collection> <id>")
	}
	collection, id := args[0], args[1]

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	confirm, err := c.io.ReadInput(fmt.Sprintf("Delete %s from %s? [y/N]: ", id, collection))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if confirm != "y" && confirm != "Y" {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.catalogService.Delete(ctx, token, collection, id); err != nil {
		return err
	}

	c.io.Println("✓ Item deleted, positions compacted on the server")
	return nil
}
