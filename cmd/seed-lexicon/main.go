// Command seed-lexicon pushes the four lexicon JSON documents into
// PostgreSQL for deployments that serve lookups from the database. It
// applies pending goose migrations first, then upserts all documents in a
// single transaction.
//
// Flags:
//
//	--data-dir    override the configured data directory
//	--migrations  path to the goose migrations directory (default: ./migrations)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/kartuli-app/kartuli-backend/internal/adapter/jsonfile"
	"github.com/kartuli-app/kartuli-backend/internal/adapter/postgres"
	pglexicon "github.com/kartuli-app/kartuli-backend/internal/adapter/postgres/lexicon"
	"github.com/kartuli-app/kartuli-backend/internal/app"
	"github.com/kartuli-app/kartuli-backend/internal/config"
	"github.com/kartuli-app/kartuli-backend/internal/lexicon"
)

func main() {
	dataDirFlag := flag.String("data-dir", "", "override the configured data directory")
	migrationsFlag := flag.String("migrations", "./migrations", "path to the goose migrations directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if *dataDirFlag != "" {
		cfg.Data.Dir = *dataDirFlag
	}
	if cfg.Database.DSN == "" {
		logger.Error("DATABASE_DSN is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := migrate(ctx, cfg.Database.DSN, *migrationsFlag); err != nil {
		logger.Error("apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loader := jsonfile.NewLoader(cfg.Data.Dir, logger)
	docs, err := loader.LoadLexiconDocs(ctx)
	if err != nil {
		logger.Error("load lexicon documents", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := pglexicon.New(pool)
	txManager := postgres.NewTxManager(pool)

	total := 0
	err = txManager.RunInTx(ctx, func(ctx context.Context) error {
		// Seed in lookup order so logs mirror resolution precedence.
		for _, tableName := range lexicon.TableNames() {
			affected, err := repo.BulkUpsert(ctx, tableName, docs[tableName])
			if err != nil {
				return err
			}
			total += affected
			logger.Info("table seeded",
				slog.String("table", tableName),
				slog.Int("entries", affected),
			)
		}
		return nil
	})
	if err != nil {
		logger.Error("seed lexicon", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed complete", slog.Int("entries", total))
}

// migrate applies pending goose migrations. goose requires *sql.DB, so a
// short-lived database/sql connection is used instead of the pool.
func migrate(ctx context.Context, dsn, dir string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(dir))
	if err != nil {
		return err
	}

	_, err = provider.Up(ctx)
	return err
}
