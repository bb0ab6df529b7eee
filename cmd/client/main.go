package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/montagemotion/backoffice/internal/client/api"
	"github.com/montagemotion/backoffice/internal/client/auth"
	"github.com/montagemotion/backoffice/internal/client/catalog"
	"github.com/montagemotion/backoffice/internal/client/cli"
	"github.com/montagemotion/backoffice/internal/client/iocli"
	"github.com/montagemotion/backoffice/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", defaultDBPath(), "Path to local database")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	command := ""
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	ctx := context.Background()

	// Логи клиента уходят в stderr, чтобы не мешаться с выводом команд
	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Открываем локальное BoltDB хранилище
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Собираем сервисы: boltStorage реализует auth, catalog и order хранилища
	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, boltStorage, logger)
	catalogService := catalog.NewService(apiClient, boltStorage, boltStorage, logger)

	app := cli.New(apiClient, authService, catalogService, iocli.NewStdio())

	if err := app.Run(ctx, command, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultDBPath кладет базу клиента в домашний каталог пользователя
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "backoffice-client.db"
	}
	return filepath.Join(home, ".backoffice-client.db")
}

func printVersion() {
	fmt.Printf("Montage Motion Back Office Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
