package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/montagemotion/backoffice/internal/client/catalog"
)

func (c *Cli) runOrder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing collection. Usage: backoffice order <collection>")
	}
	collection := args[0]

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	buf, err := c.catalogService.OrderBuffer(ctx, token, collection)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s working order ===\n", collection)
	c.io.Println()

	for i, entry := range buf.Entries() {
		marker := " "
		if entry.ServerPosition != i+1 {
			marker = "*"
		}
		c.io.Printf("%s %3d. %-36s %s\n", marker, i+1, entry.ID, entry.Title)
	}

	c.io.Println()
	if buf.Dirty() {
		c.io.Println("Order differs from the server (*). Run 'commit' to apply or 'reset-order' to discard.")
	} else {
		c.io.Println("Order matches the server.")
	}
	return nil
}

func (c *Cli) runMove(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: backoffice move <collection> <from> <to>")
	}
	collection := args[0]

	from, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid position %q", args[1])
	}
	to, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid position %q", args[2])
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	buf, err := c.catalogService.Move(ctx, token, collection, from, to)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Moved item %d -> %d (not committed yet)\n", from, to)
	c.io.Println()

	for i, entry := range buf.Entries() {
		c.io.Printf("%3d. %s\n", i+1, entry.Title)
	}
	return nil
}

func (c *Cli) runCommit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing collection. Usage: backoffice commit <collection>")
	}
	collection := args[0]

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	if err := c.catalogService.CommitOrder(ctx, token, collection); err != nil {
		if errors.Is(err, catalog.ErrOrderClean) {
			c.io.Println("Nothing to commit, order matches the server.")
			return nil
		}
		return err
	}

	c.io.Println("✓ Order committed atomically")
	return nil
}

func (c *Cli) runResetOrder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing collection. Usage: backoffice reset-order <collection>")
	}
	collection := args[0]

	if err := c.catalogService.ResetOrder(ctx, collection); err != nil {
		return err
	}

	c.io.Println("✓ Local order changes discarded")
	return nil
}
