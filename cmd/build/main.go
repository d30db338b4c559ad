// Command build runs the batch pipeline: it loads the verb dataset,
// processes every verb, and writes the processed output document for
// static-site rendering.
//
// Flags:
//
//	--data-dir  override the configured data directory
//	--output    override the configured output path
//	--pretty    indent the output JSON
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kartuli-app/kartuli-backend/internal/adapter/jsonfile"
	"github.com/kartuli-app/kartuli-backend/internal/app"
	"github.com/kartuli-app/kartuli-backend/internal/config"
	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/lexicon"
	"github.com/kartuli-app/kartuli-backend/internal/service/processor"
)

// outputDoc is the on-disk shape of the processed dataset.
type outputDoc struct {
	GeneratedAt time.Time                        `json:"generated_at"`
	Version     string                           `json:"version"`
	Verbs       map[string]*domain.ProcessedVerb `json:"verbs"`
}

func main() {
	dataDirFlag := flag.String("data-dir", "", "override the configured data directory")
	outputFlag := flag.String("output", "", "override the configured output path")
	prettyFlag := flag.Bool("pretty", false, "indent the output JSON")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log).With(
		slog.String("run_id", uuid.New().String()),
	)

	if *dataDirFlag != "" {
		cfg.Data.Dir = *dataDirFlag
	}
	if *outputFlag != "" {
		cfg.Data.OutputPath = *outputFlag
	}

	ctx := context.Background()

	loader := jsonfile.NewLoader(cfg.Data.Dir, logger)
	dataset, err := loader.LoadDataset(ctx)
	if err != nil {
		logger.Error("load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	proc := processor.New(logger, lexicon.NewResolver(dataset.Lexicon), processor.Config{
		GlossCacheSize:   cfg.Cache.GlossSize,
		ExampleCacheSize: cfg.Cache.ExampleSize,
	})

	processed, stats, err := proc.ProcessAll(ctx, dataset.Verbs)
	if err != nil {
		logger.Error("process verbs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	doc := outputDoc{
		GeneratedAt: time.Now().UTC(),
		Version:     app.BuildVersion(),
		Verbs:       processed,
	}

	var data []byte
	if *prettyFlag {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		logger.Error("encode output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Data.OutputPath), 0o755); err != nil {
		logger.Error("create output directory", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := os.WriteFile(cfg.Data.OutputPath, data, 0o644); err != nil {
		logger.Error("write output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("build complete",
		slog.String("output", cfg.Data.OutputPath),
		slog.Int("verbs", stats.VerbsProcessed),
		slog.Int("examples", stats.ExamplesGenerated),
		slog.Int("warnings", stats.Warnings),
		slog.Duration("duration", stats.Duration),
	)
}
