package cli

import (
	"github.com/montagemotion/backoffice/internal/models"
)

func (c *Cli) runCollections() error {
	c.io.Println("=== Collections ===")
	c.io.Println()

	for _, col := range models.Collections {
		ordering := "fixed order"
		if col.Orderable {
			ordering = "manual order"
		}
		c.io.Printf("%-14s %-20s %2d fields, %s\n", col.Name, col.Title, len(col.Fields), ordering)
	}
	return nil
}
