package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/montagemotion/backoffice/internal/server/handlers"
	"github.com/montagemotion/backoffice/internal/server/middleware"
	"github.com/montagemotion/backoffice/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	shutdownTimeout  = 10 * time.Second
	accessTokenTTL   = 15 * time.Minute
	refreshTokenTTL  = 30 * 24 * time.Hour
	tokenCleanupTick = 1 * time.Hour
)

func main() {
	// Parse flags
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "backoffice.db", "Path to sqlite database")
	uploadsDir := flag.String("uploads", "uploads", "Directory for uploaded media")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger, *addr, *dbPath, *uploadsDir); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath, uploadsDir string) error {
	// JWT secret приходит только из окружения, в флагах ему не место
	secret := os.Getenv("MONTAGE_JWT_SECRET")
	if secret == "" {
		return errors.New("MONTAGE_JWT_SECRET environment variable is required")
	}

	if err := os.MkdirAll(uploadsDir, 0o750); err != nil {
		return fmt.Errorf("failed to create uploads directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:          []byte(secret),
		AccessTokenTTL:  accessTokenTTL,
		RefreshTokenTTL: refreshTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	contentHandler := handlers.NewContentHandler(logger, store)
	uploadHandler := handlers.NewUploadHandler(logger, uploadsDir)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	authRequired := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()

	// Публичные endpoints
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)

	// Чтение коллекций публичное, его потребляет сам сайт
	mux.HandleFunc("GET /api/v1/collections/{collection}", contentHandler.List)
	mux.HandleFunc("GET /api/v1/collections/{collection}/{id}", contentHandler.Get)

	// Изменения только для аутентифицированных админов
	mux.Handle("POST /api/v1/collections/{collection}", authRequired(http.HandlerFunc(contentHandler.Create)))
	mux.Handle("PATCH /api/v1/collections/{collection}/positions", authRequired(http.HandlerFunc(contentHandler.Reorder)))
	mux.Handle("PUT /api/v1/collections/{collection}/{id}", authRequired(http.HandlerFunc(contentHandler.Update)))
	mux.Handle("DELETE /api/v1/collections/{collection}/{id}", authRequired(http.HandlerFunc(contentHandler.Delete)))

	// Загрузка медиа и раздача загруженных файлов
	mux.Handle("POST /api/v1/upload", authRequired(http.HandlerFunc(uploadHandler.Upload)))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	// Более жесткие лимиты на auth endpoints против перебора паролей
	rateLimits := []middleware.PathRateLimit{
		{Path: "/api/v1/auth/login", Rate: 10, Window: 1 * time.Minute},
		{Path: "/api/v1/auth/register", Rate: 5, Window: 1 * time.Minute},
	}

	var handler http.Handler = mux
	handler = middleware.RateLimitByPathMiddleware(rateLimits, 300, 1*time.Minute, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Периодическая чистка протухших refresh токенов
	go cleanupExpiredTokens(ctx, logger, store)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.String("addr", addr),
			slog.String("db", dbPath),
			slog.String("uploads", filepath.Clean(uploadsDir)),
			slog.String("version", Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}

// cleanupExpiredTokens удаляет протухшие refresh токены раз в час
func cleanupExpiredTokens(ctx context.Context, logger *slog.Logger, store *sqlite.Storage) {
	ticker := time.NewTicker(tokenCleanupTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := store.DeleteExpiredTokens(ctx)
			if err != nil {
				logger.Error("failed to delete expired tokens", slog.Any("error", err))
				continue
			}
			if count > 0 {
				logger.Info("deleted expired refresh tokens", slog.Int("count", count))
			}
		}
	}
}

func printVersion() {
	fmt.Printf("Montage Motion Back Office Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
