package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/knit-designer/internal/handler"
	"github.com/msomdec/knit-designer/internal/repository/sqlite"
	"github.com/msomdec/knit-designer/internal/service"
	"github.com/spf13/cobra"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Open the database, apply migrations, seed the predefined stitch pattern
catalog and serve the API until SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	if err := a.cfg.RequireServer(); err != nil {
		return err
	}
	policy, err := a.cfg.Policy()
	if err != nil {
		return fmt.Errorf("load policy: %w", err)
	}

	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	authService := service.NewAuthService(db.Users(), a.cfg.JWTSecret, a.cfg.BcryptCost)
	catalogService, err := service.NewStitchPatternService(db.StitchPatterns(), a.cfg.CatalogCacheSize)
	if err != nil {
		return err
	}
	profileService := service.NewProfileService(db.Profiles())
	definitionService := service.NewDefinitionService(db.Sessions(), profileService, catalogService, policy)

	// Seed predefined stitch patterns (idempotent).
	if err := catalogService.SeedPredefined(ctx); err != nil {
		return fmt.Errorf("seed predefined stitch patterns: %w", err)
	}
	slog.Info("predefined stitch patterns seeded")

	// Five attempts, then one every ten seconds.
	limiter := service.NewTokenBucket(0.1, 5)
	defer limiter.Close()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, db, authService, catalogService, profileService, definitionService, limiter, a.cfg.CookieSecure)

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "ready_threshold", policy.ReadyThreshold)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func (a *app) openDB(ctx context.Context) (*sqlite.DB, error) {
	db, err := sqlite.New(a.cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied", "path", a.cfg.DatabasePath)
	return db, nil
}
