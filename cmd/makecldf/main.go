// Command makecldf converts the raw antipassive survey into a CLDF
// StructureDataset. It reads the raw export and bibliography from the raw/
// directory, the hand-maintained side tables from etc/, looks languages up
// in a local Glottolog export and writes the dataset into cldf/.
//
// Flags:
//
//	--config     path to YAML config file (overrides CONFIG_PATH)
//	--glottolog  path to the Glottolog languoid export (overrides config)
//
// Exit codes: 0 = success, 1 = error. A fatal error writes no output.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/cldf-datasets/antipassives/internal/adapter/glottolog"
	"github.com/cldf-datasets/antipassives/internal/app"
	"github.com/cldf-datasets/antipassives/internal/app/builder"
	"github.com/cldf-datasets/antipassives/internal/config"
)

// Compile-time interface assertion.
var _ builder.Catalog = (*glottolog.Catalog)(nil)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	glottologFlag := flag.String("glottolog", "", "path to the Glottolog languoid export")
	flag.Parse()

	if *configFlag != "" {
		os.Setenv("CONFIG_PATH", *configFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("makecldf starting", slog.String("version", app.BuildVersion()))

	// CLI flags override config.
	if *glottologFlag != "" {
		cfg.Catalog.Glottolog = *glottologFlag
	}
	if cfg.Catalog.Glottolog == "" {
		logger.Error("catalog.glottolog is not configured")
		os.Exit(1)
	}

	catalog, err := glottolog.Open(cfg.Catalog.Glottolog)
	if err != nil {
		logger.Error("open glottolog catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("glottolog catalog loaded", slog.Int("languoids", catalog.Len()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pipeline := builder.New(logger, catalog, cfg.Dataset)
	if err := pipeline.Run(ctx); err != nil {
		logger.Error("build failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	result := pipeline.Result()
	logger.Info("build completed",
		slog.Int("languages", result.Languages),
		slog.Int("codes", result.Codes),
		slog.Int("constructions", result.Constructions),
		slog.Int("values", result.Values),
		slog.Int("unknown_citations", len(result.UnknownCitations)))
}
