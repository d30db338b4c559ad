package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kartuli-app/kartuli-backend/internal/adapter/jsonfile"
	"github.com/kartuli-app/kartuli-backend/internal/adapter/postgres"
	pglexicon "github.com/kartuli-app/kartuli-backend/internal/adapter/postgres/lexicon"
	"github.com/kartuli-app/kartuli-backend/internal/config"
	"github.com/kartuli-app/kartuli-backend/internal/lexicon"
	"github.com/kartuli-app/kartuli-backend/internal/service/catalog"
	"github.com/kartuli-app/kartuli-backend/internal/service/processor"
	"github.com/kartuli-app/kartuli-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, reads the verb
// dataset, processes every verb up front, and serves the catalog and
// example-generation endpoints until SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("data_dir", cfg.Data.Dir),
		slog.String("lexicon_source", cfg.Data.LexiconSource),
	)

	loader := jsonfile.NewLoader(cfg.Data.Dir, logger)
	dataset, err := loader.LoadDataset(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	var (
		store lexicon.Store = dataset.Lexicon
		pool  *pgxpool.Pool
	)
	if cfg.Data.LexiconSource == config.LexiconSourcePostgres {
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()
		store = pglexicon.New(pool)
	}

	proc := processor.New(logger, lexicon.NewResolver(store), processor.Config{
		GlossCacheSize:   cfg.Cache.GlossSize,
		ExampleCacheSize: cfg.Cache.ExampleSize,
	})

	processed, stats, err := proc.ProcessAll(ctx, dataset.Verbs)
	if err != nil {
		return fmt.Errorf("process verbs: %w", err)
	}

	catalogSvc := catalog.NewService(logger, dataset.Verbs, processed, proc)

	var db rest.Pinger
	if pool != nil {
		db = pool
	}

	handler, stopRouter := rest.NewRouter(rest.RouterDeps{
		Verbs:            rest.NewVerbsHandler(catalogSvc, logger),
		Examples:         rest.NewExamplesHandler(catalogSvc, logger),
		Health:           rest.NewHealthHandler(db, BuildVersion(), stats.VerbsProcessed),
		Logger:           logger,
		CORS:             cfg.CORS,
		ExampleRateLimit: cfg.Server.ExampleRateLimit,
	})
	defer stopRouter()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
