package cli

import (
	"context"
	"errors"
	"time"

	"github.com/montagemotion/backoffice/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	session, err := c.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Not logged in. Run 'backoffice login' first.")
			return nil
		}
		return err
	}

	ok, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Username:   %s\n", session.Username)
	if ok {
		expires := time.Unix(session.ExpiresAt, 0).Format(time.RFC3339)
		c.io.Printf("Session:    active (access token expires %s)\n", expires)
	} else {
		c.io.Println("Session:    expired, token will be refreshed on next command")
	}
	return nil
}
