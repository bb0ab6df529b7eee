package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.readLoginPassword()
	if err != nil {
		return err
	}

	auth, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Logged in as %s\n", auth.Username)
	return nil
}

// readLoginPassword берет пароль из MONTAGE_PASSWORD для скриптов,
// иначе спрашивает интерактивно
func (c *Cli) readLoginPassword() (string, error) {
	if envPassword := os.Getenv("MONTAGE_PASSWORD"); envPassword != "" {
		return envPassword, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}
